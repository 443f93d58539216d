// Package content holds the static data shown on the portfolio page.
//
// The data is decoded from an embedded YAML document once, at startup, and
// is identical for every theme and every render.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var embedded []byte

// ErrInvalidContent is returned when a document is missing required data.
var ErrInvalidContent = errors.New("invalid portfolio content")

// Anchor is an in-page navigation target.
type Anchor string

const (
	AnchorAbout    Anchor = "sobre"
	AnchorSkills   Anchor = "skills"
	AnchorProjects Anchor = "projetos"
	AnchorContact  Anchor = "contato"
)

var anchors = [...]Anchor{AnchorAbout, AnchorSkills, AnchorProjects, AnchorContact}

// Anchors returns the navigation targets in page order.
func Anchors() []Anchor {
	out := make([]Anchor, len(anchors))
	copy(out, anchors[:])
	return out
}

type Owner struct {
	Logo  string `yaml:"logo"`
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Email string `yaml:"email"`
	Bio   string `yaml:"bio"`
}

type NavLink struct {
	Anchor Anchor `yaml:"anchor"`
	Label  string `yaml:"label"`
}

// SectionTitles are the headings of the titled sections.
type SectionTitles struct {
	Skills   string `yaml:"skills"`
	Projects string `yaml:"projects"`
	Contact  string `yaml:"contact"`
}

type Skill struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

// Image references a static asset by opaque id.
type Image struct {
	Asset string `yaml:"asset"`
	Alt   string `yaml:"alt"`
}

type Project struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	URL         string  `yaml:"url"`
	LinkLabel   string  `yaml:"link_label"`
	Split       bool    `yaml:"split"`
	Images      []Image `yaml:"images"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Portfolio is everything the page renders apart from styling.
type Portfolio struct {
	Owner    Owner         `yaml:"owner"`
	Nav      []NavLink     `yaml:"nav"`
	CTA      NavLink       `yaml:"cta"`
	Sections SectionTitles `yaml:"sections"`
	Skills   []Skill       `yaml:"skills"`
	Projects []Project     `yaml:"projects"`
	Contacts []Link        `yaml:"contacts"`
	Footer   string        `yaml:"footer"`
}

// Default decodes the embedded portfolio.
func Default() (Portfolio, error) {
	return Parse(embedded)
}

// Load decodes the portfolio at path, or the embedded one when path is empty.
func Load(path string) (Portfolio, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("read portfolio %s: %w", path, err)
	}
	p, err := Parse(raw)
	if err != nil {
		return Portfolio{}, fmt.Errorf("portfolio %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML portfolio document.
func Parse(raw []byte) (Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Portfolio{}, fmt.Errorf("decode portfolio: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

// Validate reports every missing or inconsistent field at once.
func (p Portfolio) Validate() error {
	var problems []string
	require := func(value, field string) {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, field+" is required")
		}
	}

	require(p.Owner.Logo, "owner.logo")
	require(p.Owner.Name, "owner.name")
	require(p.Owner.Title, "owner.title")
	require(p.Owner.Bio, "owner.bio")
	require(p.Owner.Email, "owner.email")
	require(p.Sections.Skills, "sections.skills")
	require(p.Sections.Projects, "sections.projects")
	require(p.Sections.Contact, "sections.contact")
	require(p.Footer, "footer")
	require(p.CTA.Label, "cta.label")

	if !knownAnchor(p.CTA.Anchor) {
		problems = append(problems, fmt.Sprintf("cta.anchor %q is not a page anchor", p.CTA.Anchor))
	}

	seen := make(map[Anchor]bool, len(p.Nav))
	for i, link := range p.Nav {
		require(link.Label, fmt.Sprintf("nav[%d].label", i))
		if !knownAnchor(link.Anchor) {
			problems = append(problems, fmt.Sprintf("nav[%d].anchor %q is not a page anchor", i, link.Anchor))
		}
		if seen[link.Anchor] {
			problems = append(problems, fmt.Sprintf("nav[%d].anchor %q is duplicated", i, link.Anchor))
		}
		seen[link.Anchor] = true
	}

	for i, s := range p.Skills {
		require(s.Label, fmt.Sprintf("skills[%d].label", i))
	}

	for i, proj := range p.Projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		require(proj.Name, prefix+".name")
		require(proj.URL, prefix+".url")
		require(proj.LinkLabel, prefix+".link_label")
		if len(proj.Images) == 0 {
			problems = append(problems, prefix+".images must not be empty")
		}
		if proj.Split && len(proj.Images) != 2 {
			problems = append(problems, prefix+".images must hold a before/after pair when split")
		}
		for j, img := range proj.Images {
			require(img.Asset, fmt.Sprintf("%s.images[%d].asset", prefix, j))
			require(img.Alt, fmt.Sprintf("%s.images[%d].alt", prefix, j))
		}
	}

	for i, c := range p.Contacts {
		require(c.Label, fmt.Sprintf("contacts[%d].label", i))
		require(c.URL, fmt.Sprintf("contacts[%d].url", i))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(problems, "; "))
	}
	return nil
}

// FooterText fills the {year} placeholder of the footer.
func (p Portfolio) FooterText(year int) string {
	return strings.ReplaceAll(p.Footer, "{year}", strconv.Itoa(year))
}

// Assets lists every image asset id in page order.
func (p Portfolio) Assets() []string {
	var out []string
	for _, proj := range p.Projects {
		for _, img := range proj.Images {
			out = append(out, img.Asset)
		}
	}
	return out
}

func knownAnchor(a Anchor) bool {
	for _, known := range anchors {
		if a == known {
			return true
		}
	}
	return false
}
