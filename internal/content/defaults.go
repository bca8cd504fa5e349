package content

// Storage keys, one blob per content type.
const (
	KeyProjects   = "portfolio_projects"
	KeyCategories = "portfolio_categories"
	KeyAbout      = "portfolio_about"
	KeySocial     = "portfolio_social"
	KeyContact    = "portfolio_contact"
)

// Keys lists every key the repository owns.
var Keys = []string{KeyProjects, KeyCategories, KeyAbout, KeySocial, KeyContact}

func DefaultCategories() []string {
	return []string{"Web Design", "Branding", "Mobile App", "Illustration"}
}

func DefaultProjects() []Project {
	return []Project{
		{
			ID:           "lumen-finance-dashboard",
			Title:        "Lumen Finance Dashboard",
			Category:     "Web Design",
			Description:  "A calm, data-dense dashboard for tracking personal investments.",
			Image:        "/images/project-lumen.jpg",
			Technologies: []string{"Figma", "React", "D3"},
			Year:         "2024",
		},
		{
			ID:           "northwind-coffee",
			Title:        "Northwind Coffee",
			Category:     "Branding",
			Description:  "Identity system and packaging for a specialty roaster.",
			Image:        "/images/project-northwind.jpg",
			Technologies: []string{"Illustrator", "InDesign"},
			Year:         "2023",
		},
		{
			ID:           "trailhead",
			Title:        "Trailhead",
			Category:     "Mobile App",
			Description:  "Offline-first hiking companion with route planning.",
			Image:        "/images/project-trailhead.jpg",
			Link:         "https://example.com/trailhead",
			Technologies: []string{"Swift", "MapKit"},
			Year:         "2023",
		},
		{
			ID:          "city-of-glass",
			Title:       "City of Glass",
			Category:    "Illustration",
			Description: "Editorial illustration series for an architecture quarterly.",
			Image:       "/images/project-city-of-glass.jpg",
			Year:        "2022",
		},
	}
}

func DefaultAbout() About {
	return About{
		Label:    "About Me",
		Headline: "Crafting Digital Experiences with Passion & Precision",
		Body: "I'm a creative designer and developer with over 8 years of experience building beautiful, functional digital products. " +
			"My approach combines aesthetic sensibility with technical expertise to create experiences that delight users and drive results.\n\n" +
			"When I'm not designing, you'll find me exploring new technologies, contributing to open-source projects, or sharing knowledge with the design community.",
		ImageURL: "/images/about-portrait.jpg",
		Stats: []AboutStat{
			{Value: 8, Suffix: "+", Label: "Years Experience"},
			{Value: 150, Suffix: "+", Label: "Projects Completed"},
			{Value: 50, Suffix: "+", Label: "Happy Clients"},
		},
	}
}

func DefaultSocialLinks() []SocialLink {
	return []SocialLink{
		{Name: "Twitter", Href: "#"},
		{Name: "LinkedIn", Href: "#"},
		{Name: "Dribbble", Href: "#"},
		{Name: "GitHub", Href: "#"},
	}
}

func DefaultContact() Contact {
	return Contact{
		Label:       "Get In Touch",
		Headline:    "Let's Create Something Amazing Together",
		Subheadline: "Have a project in mind? I'd love to hear about it. Send me a message and let's discuss how we can work together.",
		ContactInfo: []ContactInfoItem{
			{Label: "Email", Value: "hello@monogram.com", Href: "mailto:hello@monogram.com"},
			{Label: "Phone", Value: "+1 (555) 123-4567", Href: "tel:+15551234567"},
			{Label: "Location", Value: "San Francisco, CA", Href: "#"},
		},
	}
}
