// Package content holds the display data of the portfolio: who the page is
// about, the rotating role titles, skills, résumé entries, projects and
// social links.
package content

import "strings"

// Profile is everything the page shows.
type Profile struct {
	Name        string       `yaml:"name" validate:"required,max=80"`
	Headline    string       `yaml:"headline"`
	Roles       []string     `yaml:"roles" validate:"required,min=1"`
	Bio         string       `yaml:"bio"`
	Skills      []Skill      `yaml:"skills" validate:"dive"`
	Education   []Education  `yaml:"education" validate:"dive"`
	Experience  []Experience `yaml:"experience" validate:"dive"`
	Projects    []Project    `yaml:"projects" validate:"required,min=1,dive"`
	Socials     []Social     `yaml:"socials" validate:"dive"`
	ContactNote string       `yaml:"contact_note"`
}

// Skill is a badge in the hero section.
type Skill struct {
	Name  string `yaml:"name" validate:"required"`
	Icon  string `yaml:"icon"`
	Level int    `yaml:"level" validate:"min=1,max=5"`
}

type Education struct {
	Degree      string `yaml:"degree" validate:"required"`
	Institution string `yaml:"institution"`
	Detail      string `yaml:"detail"`
}

type Experience struct {
	Role    string `yaml:"role" validate:"required"`
	Company string `yaml:"company"`
	Summary string `yaml:"summary"`
}

// Project is a card in the project gallery.
type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	Tools       []string `yaml:"tools"`
	Link        string   `yaml:"link" validate:"omitempty,link"`
}

// HasLink reports whether the project points anywhere real.
func (p Project) HasLink() bool {
	return p.Link != "" && p.Link != "#"
}

type Social struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required,link"`
}

// Slug turns the profile name into a file-name friendly token.
func (p Profile) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(p.Name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('_')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
