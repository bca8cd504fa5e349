package content

import "strings"

// SocialIcon is the glyph shown next to a social link.
type SocialIcon string

const (
	IconTwitter  SocialIcon = "twitter"
	IconLinkedIn SocialIcon = "linkedin"
	IconDribbble SocialIcon = "dribbble"
	IconGitHub   SocialIcon = "github"
	// IconLink is used for any name not listed below.
	IconLink SocialIcon = "link"
)

// IconForSocial maps a link's display name to its icon. Matching ignores
// case and surrounding space, so "GitHub" and "Github" share a glyph.
func IconForSocial(name string) SocialIcon {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "twitter", "x":
		return IconTwitter
	case "linkedin":
		return IconLinkedIn
	case "dribbble":
		return IconDribbble
	case "github":
		return IconGitHub
	default:
		return IconLink
	}
}

// ContactIcon is the glyph shown next to a contact info row.
type ContactIcon string

const (
	IconMail     ContactIcon = "mail"
	IconPhone    ContactIcon = "phone"
	IconLocation ContactIcon = "map-pin"
	// IconInfo is used for any label not listed below.
	IconInfo ContactIcon = "info"
)

func IconForContact(label string) ContactIcon {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "email", "e-mail":
		return IconMail
	case "phone":
		return IconPhone
	case "location":
		return IconLocation
	default:
		return IconInfo
	}
}
