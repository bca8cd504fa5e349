package content

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/kv"
)

func loadFrom(t *testing.T, blobs map[string]string) *Repo {
	t.Helper()
	store := kv.NewMemory()
	require.NoError(t, store.SetMany(context.Background(), blobs))
	r := NewRepo(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, r.Load(context.Background()))
	return r
}

func TestLoad_CorruptAboutIsIndependent(t *testing.T) {
	r := loadFrom(t, map[string]string{
		KeyAbout:    `{"label":"Hi","stats":[{"value":"12","suffix":"k","label":"Followers"}]}`,
		KeyProjects: `{not json`,
	})

	about := r.About()
	require.Len(t, about.Stats, StatCount)
	assert.Equal(t, "Hi", about.Label)
	assert.Equal(t, AboutStat{Value: 12, Suffix: "k", Label: "Followers"}, about.Stats[0])
	assert.Equal(t, DefaultAbout().Stats[1:], about.Stats[1:])
	assert.Equal(t, DefaultAbout().Headline, about.Headline, "missing fields use defaults")

	assert.Equal(t, DefaultProjects(), r.Projects())
}

func TestLoad_AboutStatsTruncated(t *testing.T) {
	r := loadFrom(t, map[string]string{
		KeyAbout: `{"label":"A","stats":[{"value":1},{"value":2},{"value":3},{"value":4}]}`,
	})
	stats := r.About().Stats
	require.Len(t, stats, StatCount)
	assert.Equal(t, 3, stats[2].Value)
}

func TestLoad_AboutStatsCoerced(t *testing.T) {
	r := loadFrom(t, map[string]string{
		KeyAbout: `{"stats":[{"value":-4,"suffix":5,"label":true},"junk",{"value":"abc"}]}`,
	})
	stats := r.About().Stats
	require.Len(t, stats, StatCount)
	assert.Equal(t, AboutStat{Value: 0, Suffix: "5", Label: "true"}, stats[0])
	assert.Equal(t, DefaultAbout().Stats[1], stats[1], "non-object entry falls back")
	assert.Equal(t, 0, stats[2].Value)
}

func TestLoad_AboutNotAnObject(t *testing.T) {
	r := loadFrom(t, map[string]string{KeyAbout: `[1,2,3]`})
	assert.Equal(t, DefaultAbout(), r.About())
}

func TestLoad_Projects(t *testing.T) {
	r := loadFrom(t, map[string]string{
		KeyProjects: `[
			{"id":"a","title":"A","category":"Web Design","year":2020,"technologies":["Go",3]},
			{"title":"Second Thing","category":"Branding"},
			{"id":"a","title":"Dup"},
			42
		]`,
	})

	ps := r.Projects()
	require.Len(t, ps, 3)
	assert.Equal(t, "a", ps[0].ID)
	assert.Equal(t, "2020", ps[0].Year)
	assert.Equal(t, []string{"Go", "3"}, ps[0].Technologies)
	assert.Equal(t, "second-thing", ps[1].ID)
	assert.Equal(t, "a-1", ps[2].ID)
}

func TestLoad_EmptyListsAreKept(t *testing.T) {
	r := loadFrom(t, map[string]string{
		KeyProjects: `[]`,
		KeySocial:   `[]`,
	})
	assert.Empty(t, r.Projects())
	assert.Empty(t, r.SocialLinks())
}

func TestLoad_ListsWithNoUsableEntries(t *testing.T) {
	r := loadFrom(t, map[string]string{
		KeyProjects:   `[1, "x", null]`,
		KeyCategories: `["", "  ", {}]`,
		KeySocial:     `[{"href":"#"}]`,
	})
	assert.Equal(t, DefaultProjects(), r.Projects())
	assert.Equal(t, DefaultCategories(), r.Categories())
	assert.Equal(t, DefaultSocialLinks(), r.SocialLinks())
}

func TestLoad_Categories(t *testing.T) {
	r := loadFrom(t, map[string]string{
		KeyCategories: `[" Motion ", "Motion", 3, "Print"]`,
	})
	assert.Equal(t, []string{"Motion", "3", "Print"}, r.Categories())
}

func TestLoad_Contact(t *testing.T) {
	r := loadFrom(t, map[string]string{
		KeyContact: `{"label":"Reach out","contactInfo":[{"label":"Email","value":"x@y.z"}]}`,
	})
	c := r.Contact()
	assert.Equal(t, "Reach out", c.Label)
	assert.Equal(t, DefaultContact().Headline, c.Headline)
	assert.Equal(t, []ContactInfoItem{{Label: "Email", Value: "x@y.z", Href: "#"}}, c.ContactInfo)

	r = loadFrom(t, map[string]string{KeyContact: `{"label":"L","contactInfo":[]}`})
	assert.Equal(t, DefaultContact().ContactInfo, r.Contact().ContactInfo)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"My Project":        "my-project",
		"My Project!!":      "my-project",
		"--Hello, World--":  "hello-world",
		"Café Crème":        "caf-cr-me",
		"already-a-slug-42": "already-a-slug-42",
		"":                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestIconForSocial(t *testing.T) {
	assert.Equal(t, IconGitHub, IconForSocial("GitHub"))
	assert.Equal(t, IconGitHub, IconForSocial("Github"))
	assert.Equal(t, IconLinkedIn, IconForSocial("Linkedin"))
	assert.Equal(t, IconLink, IconForSocial("Mastodon"))
	assert.Equal(t, IconLocation, IconForContact("Location"))
	assert.Equal(t, IconInfo, IconForContact("Fax"))
}
