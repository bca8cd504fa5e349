package content

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/kv"
)

func newTestRepo(t *testing.T) (*Repo, *kv.Memory) {
	t.Helper()
	store := kv.NewMemory()
	r := NewRepo(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, r.Load(context.Background()))
	return r, store
}

func storedJSON(t *testing.T, store *kv.Memory, key string, v any) {
	t.Helper()
	raw, ok, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok, "key %s not persisted", key)
	require.NoError(t, json.Unmarshal([]byte(raw), v))
}

func ptr[T any](v T) *T { return &v }

func TestLoad_EmptyStoreUsesDefaults(t *testing.T) {
	r, _ := newTestRepo(t)

	assert.Equal(t, DefaultProjects(), r.Projects())
	assert.Equal(t, DefaultCategories(), r.Categories())
	assert.Equal(t, DefaultAbout(), r.About())
	assert.Equal(t, DefaultSocialLinks(), r.SocialLinks())
	assert.Equal(t, DefaultContact(), r.Contact())
}

func TestAddProject_DeduplicatesSlug(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	first, err := r.AddProject(ctx, ProjectInput{Title: "My Project", Category: "Branding"})
	require.NoError(t, err)
	second, err := r.AddProject(ctx, ProjectInput{Title: "My Project!!", Category: "Branding"})
	require.NoError(t, err)
	third, err := r.AddProject(ctx, ProjectInput{Title: "  my   project ", Category: "Branding"})
	require.NoError(t, err)

	assert.Equal(t, "my-project", first.ID)
	assert.Equal(t, "my-project-1", second.ID)
	assert.Equal(t, "my-project-2", third.ID)

	var persisted []Project
	storedJSON(t, store, KeyProjects, &persisted)
	assert.Len(t, persisted, len(DefaultProjects())+3)
	assert.Equal(t, "my-project-1", persisted[len(persisted)-2].ID)
}

func TestAddProject_EmptyTitle(t *testing.T) {
	r, _ := newTestRepo(t)
	p, err := r.AddProject(context.Background(), ProjectInput{Title: "!!!"})
	require.NoError(t, err)
	assert.Equal(t, "project", p.ID)
}

func TestUpdateProject(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	p, err := r.AddProject(ctx, ProjectInput{Title: "Atlas", Category: "Branding", Year: "2021"})
	require.NoError(t, err)

	ok, err := r.UpdateProject(ctx, p.ID, ProjectUpdate{
		Title:        ptr("Atlas Rebrand"),
		Technologies: ptr([]string{"Figma"}),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got, found := r.ProjectByID(p.ID)
	require.True(t, found)
	assert.Equal(t, "atlas", got.ID, "id is never regenerated")
	assert.Equal(t, "Atlas Rebrand", got.Title)
	assert.Equal(t, "2021", got.Year, "omitted fields are kept")
	assert.Equal(t, []string{"Figma"}, got.Technologies)

	var persisted []Project
	storedJSON(t, store, KeyProjects, &persisted)
	assert.Equal(t, "Atlas Rebrand", persisted[len(persisted)-1].Title)
}

func TestUpdateProject_UnknownID(t *testing.T) {
	r, store := newTestRepo(t)
	ok, err := r.UpdateProject(context.Background(), "nope", ProjectUpdate{Title: ptr("x")})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.Keys())
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	require.NoError(t, r.DeleteProject(ctx, "trailhead"))
	_, found := r.ProjectByID("trailhead")
	assert.False(t, found)

	// Absent ids are not an error.
	require.NoError(t, r.DeleteProject(ctx, "trailhead"))
}

func TestReadsReturnCopies(t *testing.T) {
	r, _ := newTestRepo(t)

	ps := r.Projects()
	ps[0].Title = "mutated"
	ps[0].Technologies[0] = "mutated"
	about := r.About()
	about.Stats[0].Value = 999

	fresh := r.Projects()
	assert.NotEqual(t, "mutated", fresh[0].Title)
	assert.NotEqual(t, "mutated", fresh[0].Technologies[0])
	assert.NotEqual(t, 999, r.About().Stats[0].Value)
}

func TestAddCategory(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	ok, err := r.AddCategory(ctx, "  Motion  ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Motion", r.Categories()[len(r.Categories())-1])

	ok, err = r.AddCategory(ctx, "Motion")
	require.NoError(t, err)
	assert.False(t, ok, "duplicate")

	ok, err = r.AddCategory(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, ok, "blank")

	var persisted []string
	storedJSON(t, store, KeyCategories, &persisted)
	assert.Equal(t, append(DefaultCategories(), "Motion"), persisted)
}

func TestDeleteCategory_InUse(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	before := r.Snapshot()
	ok, err := r.DeleteCategory(ctx, "Branding")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, r.Snapshot())
	assert.Empty(t, store.Keys())
}

func TestDeleteCategory_Unused(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	_, err := r.AddCategory(ctx, "Motion")
	require.NoError(t, err)

	ok, err := r.DeleteCategory(ctx, "Motion")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotContains(t, r.Categories(), "Motion")

	ok, err = r.DeleteCategory(ctx, "Never Existed")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateCategory_Cascades(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	_, err := r.AddCategory(ctx, "Design")
	require.NoError(t, err)
	_, err = r.AddProject(ctx, ProjectInput{Title: "One", Category: "Design"})
	require.NoError(t, err)
	_, err = r.AddProject(ctx, ProjectInput{Title: "Two", Category: "Design"})
	require.NoError(t, err)
	pos := len(r.Categories()) - 1

	ok, err := r.UpdateCategory(ctx, "Design", "Branding 2")
	require.NoError(t, err)
	require.True(t, ok)

	cats := r.Categories()
	assert.Equal(t, "Branding 2", cats[pos], "renamed in place")
	assert.NotContains(t, cats, "Design")
	assert.Len(t, r.ProjectsInCategory("Branding 2"), 2)
	assert.Empty(t, r.ProjectsInCategory("Design"))

	var persistedCats []string
	var persistedProjects []Project
	storedJSON(t, store, KeyCategories, &persistedCats)
	storedJSON(t, store, KeyProjects, &persistedProjects)
	assert.Equal(t, cats, persistedCats)
	for _, p := range persistedProjects {
		assert.NotEqual(t, "Design", p.Category)
	}
}

func TestUpdateCategory_NoOps(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	cases := []struct{ old, new string }{
		{"Branding", "   "},
		{"Branding", "Branding"},
		{"Missing", "Other"},
		{"Branding", "Web Design"},
	}
	for _, c := range cases {
		ok, err := r.UpdateCategory(ctx, c.old, c.new)
		require.NoError(t, err)
		assert.False(t, ok, "%q -> %q", c.old, c.new)
	}
	assert.Equal(t, DefaultCategories(), r.Categories())
	assert.Empty(t, store.Keys())
}

func TestUpdateCategory_WriteFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)
	store.FailWrites = errors.New("quota exceeded")

	before := r.Snapshot()
	ok, err := r.UpdateCategory(ctx, "Branding", "Identity")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, r.Snapshot())
}

func TestAddProject_WriteFailure(t *testing.T) {
	r, store := newTestRepo(t)
	store.FailWrites = errors.New("storage disabled")

	_, err := r.AddProject(context.Background(), ProjectInput{Title: "X"})
	require.Error(t, err)
	assert.Len(t, r.Projects(), len(DefaultProjects()))
}

func TestUpdateAbout_PreservesStatsWhenOmitted(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	require.NoError(t, r.UpdateAbout(ctx, AboutUpdate{Headline: ptr("New headline")}))
	about := r.About()
	assert.Equal(t, "New headline", about.Headline)
	assert.Equal(t, DefaultAbout().Stats, about.Stats)

	stats := []AboutStat{{Value: 1, Label: "a"}, {Value: 2, Label: "b"}, {Value: 3, Label: "c"}}
	require.NoError(t, r.UpdateAbout(ctx, AboutUpdate{Stats: stats}))
	assert.Equal(t, stats, r.About().Stats)

	var persisted About
	storedJSON(t, store, KeyAbout, &persisted)
	assert.Equal(t, "New headline", persisted.Headline)
	assert.Equal(t, stats, persisted.Stats)

	require.NoError(t, r.UpdateAbout(ctx, AboutUpdate{Stats: []AboutStat{{Value: 9, Label: "only"}}}))
	assert.Equal(t, []AboutStat{{Value: 9, Label: "only"}, stats[1], stats[2]}, r.About().Stats)
}

func TestUpdateContact_PreservesInfoWhenOmitted(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	require.NoError(t, r.UpdateContact(ctx, ContactUpdate{Subheadline: ptr("Say hi")}))
	c := r.Contact()
	assert.Equal(t, "Say hi", c.Subheadline)
	assert.Equal(t, DefaultContact().ContactInfo, c.ContactInfo)

	info := []ContactInfoItem{{Label: "Email", Value: "a@b.c", Href: "mailto:a@b.c"}}
	require.NoError(t, r.UpdateContact(ctx, ContactUpdate{ContactInfo: info}))
	assert.Equal(t, info, r.Contact().ContactInfo)
}

func TestUpdateSocialLinks(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	links := []SocialLink{{Name: "GitHub", Href: "https://github.com/x"}, {Name: "GitHub", Href: "https://github.com/y"}}
	require.NoError(t, r.UpdateSocialLinks(ctx, links))
	assert.Equal(t, links, r.SocialLinks())

	var persisted []SocialLink
	storedJSON(t, store, KeySocial, &persisted)
	assert.Equal(t, links, persisted)
}

func TestCategoryUsage(t *testing.T) {
	r, _ := newTestRepo(t)
	usage := r.CategoryUsage()
	require.Len(t, usage, len(DefaultCategories()))
	for _, u := range usage {
		assert.Equal(t, 1, u.Projects, u.Name)
	}
}

func TestPersistedStateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	_, err := r.AddCategory(ctx, "Motion")
	require.NoError(t, err)
	_, err = r.AddProject(ctx, ProjectInput{Title: "Reel", Category: "Motion"})
	require.NoError(t, err)

	reloaded := NewRepo(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, r.Snapshot(), reloaded.Snapshot())
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	_, err := r.AddCategory(ctx, "Motion")
	require.NoError(t, err)
	require.NotEmpty(t, store.Keys())

	require.NoError(t, r.Reset(ctx))
	assert.Empty(t, store.Keys())
	assert.Equal(t, DefaultCategories(), r.Categories())
}

// failAfter lets the first n deletes through and fails the rest.
type failAfter struct {
	*kv.Memory
	n   int
	err error
}

func (s *failAfter) Delete(ctx context.Context, key string) error {
	if s.n == 0 {
		return s.err
	}
	s.n--
	return s.Memory.Delete(ctx, key)
}

func TestReset_PartialFailureMatchesStore(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	mem := kv.NewMemory()
	store := &failAfter{Memory: mem, n: 1, err: errors.New("disk gone")}
	r := NewRepo(store, log)
	require.NoError(t, r.Load(ctx))

	// Persist a change to both the first and the second key in Keys.
	_, err := r.AddProject(ctx, ProjectInput{Title: "Reel", Category: "Branding"})
	require.NoError(t, err)
	_, err = r.AddCategory(ctx, "Motion")
	require.NoError(t, err)

	err = r.Reset(ctx)
	require.ErrorContains(t, err, "disk gone")

	reloaded := NewRepo(mem, log)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, reloaded.Snapshot(), r.Snapshot())
	assert.Equal(t, DefaultProjects(), r.Projects())
	assert.Contains(t, r.Categories(), "Motion")
}

func TestLoad_ReadErrorKeepsCurrentContent(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)
	_, err := r.AddCategory(ctx, "Motion")
	require.NoError(t, err)

	offline := errors.New("offline")
	store.FailReads = offline
	err = r.Load(ctx)
	require.ErrorIs(t, err, offline)
	assert.Contains(t, r.Categories(), "Motion")

	store.FailReads = nil
	require.NoError(t, r.Load(ctx))
	assert.Contains(t, r.Categories(), "Motion")
}

func TestLoad_ReadErrorOnFreshRepoKeepsDefaults(t *testing.T) {
	store := kv.NewMemory()
	store.FailReads = errors.New("offline")
	r := NewRepo(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, r.Load(context.Background()))
	assert.Equal(t, DefaultCategories(), r.Categories())
}
