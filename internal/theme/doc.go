// Package theme defines the two portfolio themes and the pure style functions
// derived from them.
//
// Integration example:
//
//	t := theme.Resolve(isDarkMode)
//	card := theme.StyleFor(t, theme.ComponentProjectCard)
//	css := t.Background.CSS()
//
// Themes are values. Light and Dark return copies, so nothing a caller does
// with a Theme can leak into the next render.
package theme
