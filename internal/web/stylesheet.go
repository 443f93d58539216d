package web

import (
	"fmt"
	"html/template"
	"strings"

	"folio/internal/theme"
)

// Stylesheet renders mode's tokens as custom properties and one class per
// component, named c-<component>. Every rule is scoped to
// [data-mode="<mode>"], so both modes can share one document.
func Stylesheet(m theme.Mode) template.CSS {
	t := theme.Resolve(m.IsDark())
	scope := fmt.Sprintf("[data-mode=%q]", m)
	var b strings.Builder

	fmt.Fprintf(&b, ":root%s {\n", scope)
	for _, tok := range theme.Tokens(t) {
		fmt.Fprintf(&b, "  --%s: %s;\n", tok.Name, tok.Value)
	}
	b.WriteString("}\n")

	for _, c := range theme.Components() {
		writeRule(&b, scope, c, theme.StyleFor(t, c))
	}
	fmt.Fprintf(&b, "%s .c-%s:hover { color: %s; }\n", scope, theme.ComponentNavLink, t.Primary)
	return template.CSS(b.String())
}

// Stylesheets is every mode's stylesheet in one block.
func Stylesheets() template.CSS {
	var b strings.Builder
	for _, m := range []theme.Mode{theme.ModeLight, theme.ModeDark} {
		b.WriteString(string(Stylesheet(m)))
	}
	return template.CSS(b.String())
}

func writeRule(b *strings.Builder, scope string, c theme.Component, s theme.Style) {
	fmt.Fprintf(b, "%s .c-%s {\n", scope, c)
	if s.Foreground != "" {
		fmt.Fprintf(b, "  color: %s;\n", s.Foreground)
	}
	if !s.Background.IsZero() {
		fmt.Fprintf(b, "  background: %s;\n", s.Background.CSS())
	}
	if s.Border != "" {
		fmt.Fprintf(b, "  border: 1px solid %s;\n", s.Border)
	}
	if s.Bold {
		b.WriteString("  font-weight: bold;\n")
	}
	if s.Underline {
		b.WriteString("  text-decoration: underline;\n")
	} else {
		b.WriteString("  text-decoration: none;\n")
	}
	b.WriteString("}\n")
}
