package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"path"

	"folio/internal/content"
	"folio/internal/page"
	"folio/internal/theme"
	"folio/internal/view"
)

const assetPrefix = "/assets/"

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html.tmpl").
		Funcs(template.FuncMap{"asset": assetURL}).
		ParseFS(templateFS, "templates/page.html.tmpl"),
)

type toggleLabel struct {
	Target theme.Mode
	Symbol string
	Label  string
}

type pageData struct {
	Mode        theme.Mode
	Portfolio   content.Portfolio
	Stylesheets template.CSS
	Toggle      []toggleLabel
	Footer      string
}

// Render writes pg as an HTML document mounted in the theme of state. The
// document carries both themes and the toggle flips data-mode in place.
func Render(w io.Writer, pg page.Page, state view.State) error {
	data := pageData{
		Mode:        state.Mode(),
		Portfolio:   pg.Portfolio(),
		Stylesheets: Stylesheets(),
		Footer:      pg.Portfolio().FooterText(pg.Year()),
	}
	for _, m := range []theme.Mode{theme.ModeDark, theme.ModeLight} {
		g := view.StateFor(m).ToggleGlyph()
		data.Toggle = append(data.Toggle, toggleLabel{Target: g.Target, Symbol: g.Symbol, Label: g.Label})
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func assetURL(id string) string {
	return path.Join(assetPrefix, url.PathEscape(id))
}
