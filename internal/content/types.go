package content

// Project is one portfolio entry.
type Project struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	Image             string   `json:"image"`
	Link              string   `json:"link,omitempty"`
	DetailDescription string   `json:"detailDescription,omitempty"` // HTML or plain text
	Technologies      []string `json:"technologies,omitempty"`
	Year              string   `json:"year,omitempty"`
}

// ProjectInput is the input for creating a project. The ID is derived
// from the title.
type ProjectInput struct {
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	Image             string   `json:"image"`
	Link              string   `json:"link,omitempty"`
	DetailDescription string   `json:"detailDescription,omitempty"`
	Technologies      []string `json:"technologies,omitempty"`
	Year              string   `json:"year,omitempty"`
}

// ProjectUpdate carries a partial update. Nil fields are left alone.
type ProjectUpdate struct {
	Title             *string   `json:"title,omitempty"`
	Category          *string   `json:"category,omitempty"`
	Description       *string   `json:"description,omitempty"`
	Image             *string   `json:"image,omitempty"`
	Link              *string   `json:"link,omitempty"`
	DetailDescription *string   `json:"detailDescription,omitempty"`
	Technologies      *[]string `json:"technologies,omitempty"`
	Year              *string   `json:"year,omitempty"`
}

type AboutStat struct {
	Value  int    `json:"value"`
	Suffix string `json:"suffix"`
	Label  string `json:"label"`
}

// StatCount is the number of stats the about section always shows.
const StatCount = 3

type About struct {
	Label    string      `json:"label"`
	Headline string      `json:"headline"`
	Body     string      `json:"body"` // paragraphs separated by blank lines
	ImageURL string      `json:"imageUrl"`
	Stats    []AboutStat `json:"stats"`
}

// AboutUpdate is a shallow merge. A nil Stats keeps the current stats; a
// non-nil one replaces them.
type AboutUpdate struct {
	Label    *string     `json:"label,omitempty"`
	Headline *string     `json:"headline,omitempty"`
	Body     *string     `json:"body,omitempty"`
	ImageURL *string     `json:"imageUrl,omitempty"`
	Stats    []AboutStat `json:"stats,omitempty"`
}

type SocialLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type ContactInfoItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href"`
}

type Contact struct {
	Label       string            `json:"label"`
	Headline    string            `json:"headline"`
	Subheadline string            `json:"subheadline"`
	ContactInfo []ContactInfoItem `json:"contactInfo"`
}

// ContactUpdate is a shallow merge. A nil ContactInfo keeps the current
// list; a non-nil one replaces it.
type ContactUpdate struct {
	Label       *string           `json:"label,omitempty"`
	Headline    *string           `json:"headline,omitempty"`
	Subheadline *string           `json:"subheadline,omitempty"`
	ContactInfo []ContactInfoItem `json:"contactInfo,omitempty"`
}

// Snapshot is a consistent copy of all site content.
type Snapshot struct {
	Projects    []Project    `json:"projects"`
	Categories  []string     `json:"categories"`
	About       About        `json:"about"`
	SocialLinks []SocialLink `json:"socialLinks"`
	Contact     Contact      `json:"contact"`
}

// CategoryUsage is a category with the number of projects filed under it.
type CategoryUsage struct {
	Name     string `json:"name"`
	Projects int    `json:"projects"`
}
