package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"portfolio/internal/kv"
)

// Repo owns all editable site content. Every read returns a copy and every
// successful mutation is written to the store before it becomes visible.
type Repo struct {
	store kv.Store
	log   *slog.Logger

	mu         sync.RWMutex
	projects   []Project
	categories []string
	about      About
	social     []SocialLink
	contact    Contact
}

// NewRepo returns a repository holding the built-in defaults. Call Load to
// pick up persisted content.
func NewRepo(store kv.Store, log *slog.Logger) *Repo {
	r := &Repo{store: store, log: log}
	r.setDefaults()
	return r
}

func (r *Repo) setDefaults() {
	r.projects = DefaultProjects()
	r.categories = DefaultCategories()
	r.about = DefaultAbout()
	r.social = DefaultSocialLinks()
	r.contact = DefaultContact()
}

// Load reads every content type from the store. A type that is absent or
// malformed falls back to its default independently. A failed read leaves
// the current content untouched and is returned.
func (r *Repo) Load(ctx context.Context) error {
	projects, err := load(ctx, r, KeyProjects, decodeProjects, DefaultProjects)
	if err != nil {
		return err
	}
	categories, err := load(ctx, r, KeyCategories, decodeCategories, DefaultCategories)
	if err != nil {
		return err
	}
	about, err := load(ctx, r, KeyAbout, decodeAbout, DefaultAbout)
	if err != nil {
		return err
	}
	social, err := load(ctx, r, KeySocial, decodeSocialLinks, DefaultSocialLinks)
	if err != nil {
		return err
	}
	contact, err := load(ctx, r, KeyContact, decodeContact, DefaultContact)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = projects
	r.categories = categories
	r.about = about
	r.social = social
	r.contact = contact
	return nil
}

func load[T any](ctx context.Context, r *Repo, key string, decode func(string) decoded[T], def func() T) (T, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return def(), nil
	}
	d := decode(raw)
	if !d.ok {
		r.log.Warn("discarding malformed persisted content", "key", key)
		return def(), nil
	}
	return d.value, nil
}

// Reset deletes all persisted content and restores the defaults. If a
// delete fails, the types already deleted show their defaults and the rest
// keep their stored values.
func (r *Repo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range Keys {
		if err := r.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
		r.resetKey(key)
	}
	return nil
}

func (r *Repo) resetKey(key string) {
	switch key {
	case KeyProjects:
		r.projects = DefaultProjects()
	case KeyCategories:
		r.categories = DefaultCategories()
	case KeyAbout:
		r.about = DefaultAbout()
	case KeySocial:
		r.social = DefaultSocialLinks()
	case KeyContact:
		r.contact = DefaultContact()
	}
}

// save encodes and writes the given blobs together.
func (r *Repo) save(ctx context.Context, blobs map[string]any) error {
	entries := make(map[string]string, len(blobs))
	for key, v := range blobs {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		entries[key] = string(data)
	}

	var err error
	if len(entries) == 1 {
		for key, value := range entries {
			err = r.store.Set(ctx, key, value)
		}
	} else {
		err = r.store.SetMany(ctx, entries)
	}
	if err != nil {
		r.log.Error("failed to persist content", "error", err)
		return fmt.Errorf("persist content: %w", err)
	}
	return nil
}

// --- Reads ---

func (r *Repo) Projects() []Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneProjects(r.projects)
}

// ProjectByID returns the project with the given id, or false.
func (r *Repo) ProjectByID(id string) (Project, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.projectIndex(id)
	if i < 0 {
		return Project{}, false
	}
	return cloneProject(r.projects[i]), true
}

// ProjectsInCategory returns projects whose category equals name. An empty
// name returns all projects.
func (r *Repo) ProjectsInCategory(name string) []Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Project, 0, len(r.projects))
	for _, p := range r.projects {
		if name == "" || p.Category == name {
			out = append(out, cloneProject(p))
		}
	}
	return out
}

func (r *Repo) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.categories)
}

// CategoryUsage returns every category in display order with its project
// count.
func (r *Repo) CategoryUsage() []CategoryUsage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[string]int, len(r.categories))
	for _, p := range r.projects {
		counts[p.Category]++
	}
	out := make([]CategoryUsage, len(r.categories))
	for i, c := range r.categories {
		out[i] = CategoryUsage{Name: c, Projects: counts[c]}
	}
	return out
}

func (r *Repo) About() About {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAbout(r.about)
}

func (r *Repo) SocialLinks() []SocialLink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.social)
}

func (r *Repo) Contact() Contact {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneContact(r.contact)
}

func (r *Repo) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		Projects:    cloneProjects(r.projects),
		Categories:  slices.Clone(r.categories),
		About:       cloneAbout(r.about),
		SocialLinks: slices.Clone(r.social),
		Contact:     cloneContact(r.contact),
	}
}

// --- Projects ---

// AddProject appends a project whose id is the slug of its title, suffixed
// with -1, -2, ... when that id is taken.
func (r *Repo) AddProject(ctx context.Context, in ProjectInput) (Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	taken := make(map[string]bool, len(r.projects))
	for _, p := range r.projects {
		taken[p.ID] = true
	}
	p := Project{
		ID:                uniqueID(in.Title, taken),
		Title:             in.Title,
		Category:          in.Category,
		Description:       in.Description,
		Image:             in.Image,
		Link:              in.Link,
		DetailDescription: in.DetailDescription,
		Technologies:      slices.Clone(in.Technologies),
		Year:              in.Year,
	}

	next := append(cloneProjects(r.projects), p)
	if err := r.save(ctx, map[string]any{KeyProjects: next}); err != nil {
		return Project{}, err
	}
	r.projects = next
	return cloneProject(p), nil
}

// UpdateProject merges the non-nil fields of u into the project. The id
// never changes. It reports false, without writing, when id is unknown.
func (r *Repo) UpdateProject(ctx context.Context, id string, u ProjectUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.projectIndex(id)
	if i < 0 {
		return false, nil
	}

	next := cloneProjects(r.projects)
	p := &next[i]
	setIf(&p.Title, u.Title)
	setIf(&p.Category, u.Category)
	setIf(&p.Description, u.Description)
	setIf(&p.Image, u.Image)
	setIf(&p.Link, u.Link)
	setIf(&p.DetailDescription, u.DetailDescription)
	setIf(&p.Year, u.Year)
	if u.Technologies != nil {
		p.Technologies = slices.Clone(*u.Technologies)
	}

	if err := r.save(ctx, map[string]any{KeyProjects: next}); err != nil {
		return false, err
	}
	r.projects = next
	return true, nil
}

// DeleteProject removes the project with the given id. Unknown ids are a
// no-op.
func (r *Repo) DeleteProject(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.projectIndex(id)
	if i < 0 {
		return nil
	}
	next := slices.Delete(cloneProjects(r.projects), i, i+1)
	if err := r.save(ctx, map[string]any{KeyProjects: next}); err != nil {
		return err
	}
	r.projects = next
	return nil
}

func (r *Repo) projectIndex(id string) int {
	return slices.IndexFunc(r.projects, func(p Project) bool { return p.ID == id })
}

// --- Categories ---

// AddCategory appends name after trimming. It reports false when the name
// is blank or already present.
func (r *Repo) AddCategory(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(r.categories, name) {
		return false, nil
	}
	next := append(slices.Clone(r.categories), name)
	if err := r.save(ctx, map[string]any{KeyCategories: next}); err != nil {
		return false, err
	}
	r.categories = next
	return true, nil
}

// UpdateCategory renames oldName in place and moves every project filed
// under it to the new name. Both lists are written in one store call. It
// reports false when the new name is blank, unchanged, already taken, or
// oldName does not exist.
func (r *Repo) UpdateCategory(ctx context.Context, oldName, newName string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newName = strings.TrimSpace(newName)
	if newName == "" || newName == oldName {
		return false, nil
	}
	i := slices.Index(r.categories, oldName)
	if i < 0 || slices.Contains(r.categories, newName) {
		return false, nil
	}

	categories := slices.Clone(r.categories)
	categories[i] = newName
	projects := cloneProjects(r.projects)
	for j := range projects {
		if projects[j].Category == oldName {
			projects[j].Category = newName
		}
	}

	if err := r.save(ctx, map[string]any{
		KeyCategories: categories,
		KeyProjects:   projects,
	}); err != nil {
		return false, err
	}
	r.categories = categories
	r.projects = projects
	return true, nil
}

// DeleteCategory removes name unless a project still uses it, in which
// case it reports false and changes nothing.
func (r *Repo) DeleteCategory(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.Category == name {
			return false, nil
		}
	}
	i := slices.Index(r.categories, name)
	if i < 0 {
		return true, nil
	}
	next := slices.Delete(slices.Clone(r.categories), i, i+1)
	if err := r.save(ctx, map[string]any{KeyCategories: next}); err != nil {
		return false, err
	}
	r.categories = next
	return true, nil
}

// --- About, social, contact ---

func (r *Repo) UpdateAbout(ctx context.Context, u AboutUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneAbout(r.about)
	setIf(&next.Label, u.Label)
	setIf(&next.Headline, u.Headline)
	setIf(&next.Body, u.Body)
	setIf(&next.ImageURL, u.ImageURL)
	if u.Stats != nil {
		next.Stats = fitStats(u.Stats, r.about.Stats)
	}

	if err := r.save(ctx, map[string]any{KeyAbout: next}); err != nil {
		return err
	}
	r.about = next
	return nil
}

// UpdateSocialLinks replaces the whole list.
func (r *Repo) UpdateSocialLinks(ctx context.Context, links []SocialLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.Clone(links)
	if next == nil {
		next = []SocialLink{}
	}
	if err := r.save(ctx, map[string]any{KeySocial: next}); err != nil {
		return err
	}
	r.social = next
	return nil
}

func (r *Repo) UpdateContact(ctx context.Context, u ContactUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneContact(r.contact)
	setIf(&next.Label, u.Label)
	setIf(&next.Headline, u.Headline)
	setIf(&next.Subheadline, u.Subheadline)
	if u.ContactInfo != nil {
		next.ContactInfo = slices.Clone(u.ContactInfo)
	}

	if err := r.save(ctx, map[string]any{KeyContact: next}); err != nil {
		return err
	}
	r.contact = next
	return nil
}

// --- Helpers ---

// fitStats returns exactly StatCount stats, taking missing entries from
// current.
func fitStats(stats, current []AboutStat) []AboutStat {
	out := make([]AboutStat, StatCount)
	for i := range out {
		switch {
		case i < len(stats):
			out[i] = stats[i]
		case i < len(current):
			out[i] = current[i]
		}
	}
	return out
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func cloneProject(p Project) Project {
	p.Technologies = slices.Clone(p.Technologies)
	return p
}

func cloneProjects(ps []Project) []Project {
	out := make([]Project, len(ps))
	for i, p := range ps {
		out[i] = cloneProject(p)
	}
	return out
}

func cloneAbout(a About) About {
	a.Stats = slices.Clone(a.Stats)
	return a
}

func cloneContact(c Contact) Contact {
	c.ContactInfo = slices.Clone(c.ContactInfo)
	return c
}
