package theme

// Component identifies a presentational element that reads theme tokens.
type Component int

const (
	ComponentPage Component = iota
	ComponentLogo
	ComponentNavLink
	ComponentToggle
	ComponentHeroName
	ComponentHeroTitle
	ComponentBio
	ComponentCTA
	ComponentSectionTitle
	ComponentSkill
	ComponentProjectCard
	ComponentProjectLink
	ComponentContactText
	ComponentContactLink
	ComponentFooter
)

var components = [...]Component{
	ComponentPage,
	ComponentLogo,
	ComponentNavLink,
	ComponentToggle,
	ComponentHeroName,
	ComponentHeroTitle,
	ComponentBio,
	ComponentCTA,
	ComponentSectionTitle,
	ComponentSkill,
	ComponentProjectCard,
	ComponentProjectLink,
	ComponentContactText,
	ComponentContactLink,
	ComponentFooter,
}

// Components returns every component in declaration order.
func Components() []Component {
	out := make([]Component, len(components))
	copy(out, components[:])
	return out
}

var componentNames = map[Component]string{
	ComponentPage:         "page",
	ComponentLogo:         "logo",
	ComponentNavLink:      "nav-link",
	ComponentToggle:       "toggle",
	ComponentHeroName:     "hero-name",
	ComponentHeroTitle:    "hero-title",
	ComponentBio:          "bio",
	ComponentCTA:          "cta",
	ComponentSectionTitle: "section-title",
	ComponentSkill:        "skill",
	ComponentProjectCard:  "project-card",
	ComponentProjectLink:  "project-link",
	ComponentContactText:  "contact-text",
	ComponentContactLink:  "contact-link",
	ComponentFooter:       "footer",
}

func (c Component) String() string {
	if name, ok := componentNames[c]; ok {
		return name
	}
	return "unknown"
}

// Fixed colors that do not vary with the theme.
const (
	cardBorder  Color = "#30363d"
	footerMuted Color = "#8b949e"
	ctaOnDark   Color = "#0d1117"
	ctaOnLight  Color = "#fff"
)

// Style describes presentational attributes for a component.
// A zero Background or Border means the component inherits its parent's.
type Style struct {
	Foreground Color
	Background Paint
	Border     Color
	Bold       bool
	Underline  bool
}

// StyleFor is the style of component c under theme t.
func StyleFor(t Theme, c Component) Style {
	switch c {
	case ComponentPage:
		return Style{Foreground: t.Text, Background: t.Background}
	case ComponentLogo, ComponentHeroTitle, ComponentSectionTitle:
		return Style{Foreground: t.Primary, Bold: true}
	case ComponentHeroName:
		return Style{Foreground: t.Text, Bold: true}
	case ComponentCTA:
		return Style{Foreground: ctaForeground(t), Background: Solid(t.Primary), Bold: true}
	case ComponentSkill:
		return Style{Foreground: t.Text, Background: Solid(t.CardBackground), Bold: true}
	case ComponentProjectCard:
		return Style{Foreground: t.Text, Background: Solid(t.CardBackground), Border: cardBorder}
	case ComponentProjectLink:
		return Style{Foreground: t.Primary, Bold: true}
	case ComponentContactLink:
		return Style{Foreground: t.Primary}
	case ComponentFooter:
		return Style{Foreground: footerMuted}
	default:
		return Style{Foreground: t.Text}
	}
}

// The call-to-action sits on a primary fill, so its text takes the page's
// darkest color on the dark theme and white on the light theme.
func ctaForeground(t Theme) Color {
	if t.Text == dark.Text {
		return ctaOnDark
	}
	return ctaOnLight
}
