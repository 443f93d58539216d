package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPortfolio(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Diego Leffa", p.Owner.Logo)
	assert.Equal(t, "Programador Full Stack", p.Owner.Title)
	assert.Len(t, p.Skills, 4)
	assert.Len(t, p.Projects, 3)
	assert.Len(t, p.Contacts, 2)
	assert.Equal(t, AnchorProjects, p.CTA.Anchor)

	navAnchors := make([]Anchor, 0, len(p.Nav))
	for _, link := range p.Nav {
		navAnchors = append(navAnchors, link.Anchor)
	}
	assert.Equal(t, Anchors(), navAnchors)
}

func TestDefaultAssets(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"pixelcraft.png", "glowbottle.png", "cheffacil-escuro.png", "cheffacil-claro.png"}, p.Assets())
	assert.True(t, p.Projects[2].Split)
	assert.False(t, p.Projects[0].Split)
}

func TestFooterText(t *testing.T) {
	p := Portfolio{Footer: "© {year} Diego Leffa."}
	assert.Equal(t, "© 2026 Diego Leffa.", p.FooterText(2026))
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("owner: [unterminated"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidContent))
}

func TestValidateAggregatesProblems(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	p.Owner.Name = ""
	p.CTA.Anchor = "nowhere"
	p.Nav = append(p.Nav, NavLink{Anchor: AnchorSkills, Label: "Again"})
	p.Projects[2].Images = p.Projects[2].Images[:1]
	p.Contacts[0].URL = " "

	err = p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidContent))

	msg := err.Error()
	for _, want := range []string{
		"owner.name is required",
		`cta.anchor "nowhere"`,
		`nav[4].anchor "skills" is duplicated`,
		"projects[2].images must hold a before/after pair",
		"contacts[0].url is required",
	} {
		assert.Truef(t, strings.Contains(msg, want), "missing %q in %q", want, msg)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, embedded, 0o600))

	fromFile, err := Load(path)
	require.NoError(t, err)
	fromEmbed, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, fromEmbed, fromFile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
