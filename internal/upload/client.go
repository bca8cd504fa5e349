// Package upload sends images to an unsigned Cloudinary upload preset and
// returns the hosted URL.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("image upload is not configured: set upload.cloud_name and upload.preset")

// Client posts multipart uploads to a fixed endpoint.
type Client struct {
	cloudName string
	preset    string
	endpoint  string
	http      *http.Client
}

// NewClient builds a client for cloudName and preset. An empty endpoint
// means the public Cloudinary API.
func NewClient(cloudName, preset, endpoint string) *Client {
	if endpoint == "" && cloudName != "" {
		endpoint = fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName)
	}
	return &Client{
		cloudName: cloudName,
		preset:    preset,
		endpoint:  endpoint,
		http:      &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether uploads can be attempted.
func (c *Client) Configured() bool {
	return c.cloudName != "" && c.preset != ""
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file and returns its secure URL. There is no retry; a
// failure is returned with the host's message when it provides one.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if err := mw.WriteField("upload_preset", c.preset); err != nil {
		return "", fmt.Errorf("write preset: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && out.Error != nil && out.Error.Message != "" {
			return "", errors.New(out.Error.Message)
		}
		return "", fmt.Errorf("upload failed: %s", statusText(resp))
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode upload response: %w", decodeErr)
	}
	if out.SecureURL == "" {
		return "", errors.New("upload failed: response has no secure_url")
	}
	return out.SecureURL, nil
}

// statusText is the reason phrase, e.g. "Bad Request".
func statusText(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
