package document

// Sample returns the starter document used for first runs and tests.
func Sample() Document {
	return Document{
		Settings: Settings{
			Name:  "Ada Lively",
			Theme: "slate",
		},
		Navigation: Navigation{
			Items: []NavItem{
				{Name: "About", URL: "#about"},
				{Name: "Projects", URL: "#projects"},
				{Name: "Contact", URL: "#contact"},
			},
		},
		Sections: []Section{
			{
				Kind:    KindHero,
				Enabled: true,
				Hero: &HeroSection{
					Headline: "Ada Lively",
					Tagline:  "Systems engineer who ships small, sharp tools.",
					CTALabel: "See my work",
					CTAURL:   "#projects",
				},
			},
			{
				Kind:    KindAbout,
				Enabled: true,
				About: &AboutSection{
					Title: "About",
					Body: "I build infrastructure tooling and the occasional game.\n\n" +
						"Currently interested in **deterministic builds** and content pipelines.",
				},
			},
			{
				Kind:    KindProjects,
				Enabled: true,
				Projects: &ProjectsSection{
					Title: "Projects",
					Items: []Project{
						{
							Title:       "driftwatch",
							Description: "Detects configuration drift across fleets before it pages you.",
							Tags:        []string{"go", "cli", "observability"},
							PreviewURL:  "https://example.com/driftwatch",
						},
						{
							Title:       "tidemark",
							Description: "Static notebook publisher with zero client-side script.",
							Tags:        []string{"go", "ssg"},
							PreviewURL:  "https://example.com/tidemark",
						},
					},
				},
			},
			{
				Kind:    KindSkills,
				Enabled: true,
				Skills: &SkillsSection{
					Title: "Skills",
					Items: []Skill{
						{Name: "Go", Level: 5},
						{Name: "Distributed systems", Level: 4},
						{Name: "SQL", Level: 3},
					},
				},
			},
			{
				Kind:    KindContact,
				Enabled: true,
				Contact: &ContactSection{
					Title: "Get in touch",
					Email: "ada@example.com",
					Socials: []SocialLink{
						{Label: "GitHub", URL: "https://github.com/adalively"},
						{Label: "Mastodon", URL: "https://hachyderm.io/@adalively"},
					},
				},
			},
		},
		Footer: Footer{
			Enabled:   true,
			Copyright: "© Ada Lively",
		},
	}
}
