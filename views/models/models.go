package models

// ProjectView represents a project for template rendering
type ProjectView struct {
	ID           string
	Title        string
	Category     string
	Description  string
	Image        string
	Link         string
	Year         string
	Technologies []string

	// DetailDescription is the raw detail markup, for editing.
	DetailDescription string
}

// DetailView is a project page. DetailHTML is already sanitized.
type DetailView struct {
	Project    ProjectView
	DetailHTML string
}

// CategoryView represents a category for template rendering
type CategoryView struct {
	Name   string
	Count  int
	Active bool
}

type StatView struct {
	Value  int
	Suffix string
	Label  string
}

// AboutView carries the about section. BodyHTML is already sanitized;
// Body is the raw text for edit forms.
type AboutView struct {
	Label    string
	Headline string
	Body     string
	BodyHTML string
	ImageURL string
	Stats    []StatView
}

type SocialLinkView struct {
	Name string
	Href string
	Icon string
}

type ContactItemView struct {
	Label string
	Value string
	Href  string
	Icon  string
}

type ContactView struct {
	Label       string
	Headline    string
	Subheadline string
	Items       []ContactItemView
}

type HomeView struct {
	About      AboutView
	Contact    ContactView
	Social     []SocialLinkView
	Projects   []ProjectView
	Categories []CategoryView
}

type ProjectsView struct {
	Projects   []ProjectView
	Categories []CategoryView
	Active     string
}

// Flash is a one-line status message shown above admin forms.
type Flash struct {
	Error bool
	Text  string
}

type DashboardView struct {
	Projects      []ProjectView
	Categories    []CategoryView
	About         AboutView
	Social        []SocialLinkView
	Contact       ContactView
	UploadEnabled bool
	Flash         *Flash
}
