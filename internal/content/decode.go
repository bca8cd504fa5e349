package content

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// decoded is the result of validating a persisted blob or one of its
// fields: either a usable value or a signal to use the default.
type decoded[T any] struct {
	value T
	ok    bool
}

func valid[T any](v T) decoded[T] { return decoded[T]{value: v, ok: true} }

func invalid[T any]() decoded[T] { return decoded[T]{} }

func (d decoded[T]) or(def T) T {
	if d.ok {
		return d.value
	}
	return def
}

// Field coercion is lenient: a number where a string is expected becomes
// its decimal form, a numeric string where a number is expected is parsed.

func asString(v any) decoded[string] {
	switch x := v.(type) {
	case string:
		return valid(x)
	case float64:
		return valid(strconv.FormatFloat(x, 'f', -1, 64))
	case bool:
		return valid(strconv.FormatBool(x))
	default:
		return invalid[string]()
	}
}

// asCount coerces to a non-negative integer.
func asCount(v any) decoded[int] {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return invalid[int]()
		}
		f = parsed
	case bool:
		if x {
			f = 1
		}
	default:
		return invalid[int]()
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return valid(0)
	}
	return valid(int(math.Trunc(f)))
}

func asStrings(v any) decoded[[]string] {
	items, ok := v.([]any)
	if !ok {
		return invalid[[]string]()
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := asString(it); s.ok {
			out = append(out, s.value)
		}
	}
	return valid(out)
}

func parseArray(raw string) ([]any, bool) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false
	}
	arr, ok := v.([]any)
	return arr, ok
}

func parseObject(raw string) (map[string]any, bool) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}

// str reads an optional string field, falling back to def.
func str(obj map[string]any, key, def string) string {
	return asString(obj[key]).or(def)
}

// decodeProjects accepts a JSON array of project objects. Entries that are
// not objects are dropped; entries without an id get one from their title,
// and duplicate ids are suffixed. A non-empty array with no usable entry
// is rejected.
func decodeProjects(raw string) decoded[[]Project] {
	items, ok := parseArray(raw)
	if !ok {
		return invalid[[]Project]()
	}

	ids := make(map[string]bool, len(items))
	out := make([]Project, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		p := Project{
			Title:             str(obj, "title", ""),
			Category:          str(obj, "category", ""),
			Description:       str(obj, "description", ""),
			Image:             str(obj, "image", ""),
			Link:              str(obj, "link", ""),
			DetailDescription: str(obj, "detailDescription", ""),
			Technologies:      asStrings(obj["technologies"]).or(nil),
			Year:              str(obj, "year", ""),
		}
		id := strings.TrimSpace(str(obj, "id", ""))
		if id == "" {
			id = uniqueID(p.Title, ids)
		} else if ids[id] {
			id = uniqueID(id, ids)
		}
		p.ID = id
		ids[id] = true
		out = append(out, p)
	}

	if len(items) > 0 && len(out) == 0 {
		return invalid[[]Project]()
	}
	return valid(out)
}

// decodeCategories accepts a JSON array of names. Blank and repeated names
// are dropped.
func decodeCategories(raw string) decoded[[]string] {
	items, ok := parseArray(raw)
	if !ok {
		return invalid[[]string]()
	}

	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		s := asString(it)
		if !s.ok {
			continue
		}
		name := strings.TrimSpace(s.value)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}

	if len(items) > 0 && len(out) == 0 {
		return invalid[[]string]()
	}
	return valid(out)
}

// decodeAbout accepts a JSON object. Each field falls back to its default
// on its own, and stats always come out as exactly StatCount entries.
func decodeAbout(raw string) decoded[About] {
	obj, ok := parseObject(raw)
	if !ok {
		return invalid[About]()
	}
	def := DefaultAbout()
	return valid(About{
		Label:    str(obj, "label", def.Label),
		Headline: str(obj, "headline", def.Headline),
		Body:     str(obj, "body", def.Body),
		ImageURL: str(obj, "imageUrl", def.ImageURL),
		Stats:    decodeStats(obj["stats"], def.Stats),
	})
}

func decodeStats(v any, defaults []AboutStat) []AboutStat {
	items, _ := v.([]any)
	out := make([]AboutStat, StatCount)
	for i := range out {
		out[i] = defaults[i]
		if i >= len(items) {
			continue
		}
		obj, ok := items[i].(map[string]any)
		if !ok {
			continue
		}
		out[i] = AboutStat{
			Value:  asCount(obj["value"]).or(0),
			Suffix: str(obj, "suffix", ""),
			Label:  str(obj, "label", ""),
		}
	}
	return out
}

// decodeSocialLinks accepts a JSON array of {name, href} objects. Entries
// without a name are dropped.
func decodeSocialLinks(raw string) decoded[[]SocialLink] {
	items, ok := parseArray(raw)
	if !ok {
		return invalid[[]SocialLink]()
	}

	out := make([]SocialLink, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		name := str(obj, "name", "")
		if strings.TrimSpace(name) == "" {
			continue
		}
		out = append(out, SocialLink{Name: name, Href: str(obj, "href", "#")})
	}

	if len(items) > 0 && len(out) == 0 {
		return invalid[[]SocialLink]()
	}
	return valid(out)
}

// decodeContact accepts a JSON object with per-field fallback. An empty or
// unusable contactInfo list is replaced by the default list.
func decodeContact(raw string) decoded[Contact] {
	obj, ok := parseObject(raw)
	if !ok {
		return invalid[Contact]()
	}
	def := DefaultContact()

	items, _ := obj["contactInfo"].([]any)
	info := make([]ContactInfoItem, 0, len(items))
	for _, it := range items {
		o, ok := it.(map[string]any)
		if !ok {
			continue
		}
		info = append(info, ContactInfoItem{
			Label: str(o, "label", ""),
			Value: str(o, "value", ""),
			Href:  str(o, "href", "#"),
		})
	}
	if len(info) == 0 {
		info = def.ContactInfo
	}

	return valid(Contact{
		Label:       str(obj, "label", def.Label),
		Headline:    str(obj, "headline", def.Headline),
		Subheadline: str(obj, "subheadline", def.Subheadline),
		ContactInfo: info,
	})
}
