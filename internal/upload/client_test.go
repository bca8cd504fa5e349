package upload

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "portfolio_unsigned", r.FormValue("upload_preset"))

		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "cover.png", hdr.Filename)
		assert.Equal(t, "PNGDATA", string(data))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://res.example.com/cover.png"}`))
	}))
	defer srv.Close()

	c := NewClient("demo", "portfolio_unsigned", srv.URL)
	url, err := c.Upload(context.Background(), "cover.png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)
	assert.Equal(t, "https://res.example.com/cover.png", url)
}

func TestUpload_ErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer srv.Close()

	_, err := NewClient("demo", "p", srv.URL).Upload(context.Background(), "a.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, "Upload preset not found", err.Error())
}

func TestUpload_ErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	_, err := NewClient("demo", "p", srv.URL).Upload(context.Background(), "a.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, "upload failed: Bad Gateway", err.Error())
}

func TestUpload_NotConfigured(t *testing.T) {
	c := NewClient("", "", "")
	assert.False(t, c.Configured())

	_, err := c.Upload(context.Background(), "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewClient_DefaultEndpoint(t *testing.T) {
	c := NewClient("demo", "p", "")
	assert.True(t, c.Configured())
	assert.Equal(t, "https://api.cloudinary.com/v1_1/demo/image/upload", c.endpoint)
}
