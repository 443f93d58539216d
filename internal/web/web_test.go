package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
	"folio/internal/page"
	"folio/internal/theme"
	"folio/internal/view"
)

func newTestRouter(t *testing.T, assetDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p, err := content.Default()
	require.NoError(t, err)
	return NewHandler(page.New(p, 2024), assetDir, log.New(io.Discard)).Router()
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func mainSection(t *testing.T, body string) string {
	t.Helper()
	start := strings.Index(body, "<main>")
	end := strings.Index(body, "</main>")
	require.True(t, start >= 0 && end > start, "page has a main element")
	return body[start:end]
}

func renderMode(t *testing.T, m theme.Mode) string {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, page.New(p, 2024), view.StateFor(m)))
	return buf.String()
}

func TestIndexMountsDark(t *testing.T) {
	rr := get(t, newTestRouter(t, ""), "/")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	assert.Contains(t, body, `<html lang="pt-BR" data-mode="dark">`)
	assert.Contains(t, body, `<span class="to-light" title="tema claro">`)
	assert.Contains(t, body, `<span class="to-dark" title="tema escuro">`)
	assert.Contains(t, body, "--text: #fff;")
	assert.Contains(t, body, "--text: #0d1117;")
}

func TestReloadAlwaysMountsDark(t *testing.T) {
	r := newTestRouter(t, "")
	for _, target := range []string{"/", "/?mode=light", "/?mode=LIGHT", "/#contato"} {
		body := get(t, r, target).Body.String()
		assert.Containsf(t, body, `data-mode="dark">`, "target %s", target)
		assert.NotContainsf(t, body, `data-mode="light">`, "target %s", target)
	}
}

func TestToggleFlipsModeInPlace(t *testing.T) {
	body := get(t, newTestRouter(t, ""), "/").Body.String()

	assert.Contains(t, body, `<button type="button" class="c-toggle toggle" id="theme-toggle">`)
	assert.Contains(t, body, `root.dataset.mode = root.dataset.mode === "dark" ? "light" : "dark";`)
	assert.NotContains(t, body, "?mode=")
	for _, store := range []string{"localStorage", "sessionStorage", "document.cookie"} {
		assert.NotContains(t, body, store)
	}
}

func TestStaticDataIdenticalAcrossModes(t *testing.T) {
	dark := mainSection(t, renderMode(t, theme.ModeDark))
	light := mainSection(t, renderMode(t, theme.ModeLight))
	assert.Equal(t, dark, light)

	p, err := content.Default()
	require.NoError(t, err)
	assert.Equal(t, len(p.Skills), strings.Count(dark, `class="c-skill`))
	assert.Equal(t, len(p.Projects), strings.Count(dark, `class="c-project-card`))
	assert.Equal(t, len(p.Contacts), strings.Count(dark, `class="c-contact-link`))
	assert.Equal(t, len(p.Assets()), strings.Count(dark, "<img "))
	for _, a := range content.Anchors() {
		assert.Contains(t, dark, `id="`+string(a)+`"`)
	}
	assert.Contains(t, dark, `<div class="images split">`)
}

func TestFooterCarriesYear(t *testing.T) {
	body := get(t, newTestRouter(t, ""), "/").Body.String()
	assert.Contains(t, body, "© 2024 Diego Leffa. Todos os direitos reservados.")
}

func TestHealthz(t *testing.T) {
	rr := get(t, newTestRouter(t, ""), "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestAssetsServedFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pixelcraft.png"), []byte("png"), 0o600))
	r := newTestRouter(t, dir)

	rr := get(t, r, "/assets/pixelcraft.png")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png", rr.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, r, "/assets/glowbottle.png").Code)
}

func TestStylesheetCoversEveryComponent(t *testing.T) {
	for _, m := range []theme.Mode{theme.ModeLight, theme.ModeDark} {
		css := string(Stylesheet(m))
		scope := `[data-mode="` + string(m) + `"]`
		assert.Contains(t, css, ":root"+scope+" {")
		for _, c := range theme.Components() {
			assert.Contains(t, css, scope+" .c-"+c.String()+" {", "%s missing %s", m, c)
		}
		for _, tok := range theme.Tokens(view.StateFor(m).Theme()) {
			assert.Contains(t, css, "--"+tok.Name+": "+tok.Value+";")
		}
	}
}

func TestStylesheetsCarryBothModes(t *testing.T) {
	css := string(Stylesheets())
	assert.Contains(t, css, string(Stylesheet(theme.ModeLight)))
	assert.Contains(t, css, string(Stylesheet(theme.ModeDark)))
}

func TestStylesheetDarkBackgroundIsGradient(t *testing.T) {
	css := string(Stylesheet(theme.ModeDark))
	assert.Contains(t, css, "background: linear-gradient(145deg, #0d1117, #161b22);")
}

func TestLinksHoverAndCarryNoUnderline(t *testing.T) {
	assert.Contains(t, string(Stylesheet(theme.ModeDark)), `[data-mode="dark"] .c-nav-link:hover { color: #58a6ff; }`)
	assert.Contains(t, string(Stylesheet(theme.ModeLight)), `[data-mode="light"] .c-nav-link:hover { color: #1f6feb; }`)
	assert.NotContains(t, string(Stylesheets()), "text-decoration: underline;")

	body := renderMode(t, theme.ModeDark)
	assert.Contains(t, body, ".contacts a:hover { color: #1f6feb; }")
	assert.Contains(t, body, "transition: all 0.3s;")
}

func TestRenderWritesDocument(t *testing.T) {
	out := renderMode(t, theme.ModeLight)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `data-mode="light">`)
	assert.Contains(t, out, `src="/assets/cheffacil-claro.png"`)
}

func TestServerStopsOnCancel(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)
	gin.SetMode(gin.TestMode)
	srv := NewServer("127.0.0.1:0", NewHandler(page.New(p, 2024), "", log.New(io.Discard)), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestRequestIDIsEchoedOrGenerated(t *testing.T) {
	r := newTestRouter(t, "")

	req, err := http.NewRequest(http.MethodGet, "/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "probe-1")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, "probe-1", rr.Header().Get("X-Request-Id"))

	generated := get(t, r, "/").Header().Get("X-Request-Id")
	assert.Len(t, generated, 36)
}

func TestHealthzAllowsAnyOrigin(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://status.example.com")

	rr := httptest.NewRecorder()
	newTestRouter(t, "").ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
