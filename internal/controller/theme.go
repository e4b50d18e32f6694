// Package controller holds the page's interactive state: the theme flag and
// the mobile menu flag. Each controller is owned by a single page and is not
// safe for concurrent use; callers serialise access.
package controller

// DocumentRoot is the document-level element the palette marker lives on.
// SetDark must be idempotent and reports whether anything changed.
type DocumentRoot interface {
	SetDark(dark bool) (changed bool)
}

// Theme owns the dark mode flag and projects it onto a DocumentRoot.
type Theme struct {
	isDark bool
	root   DocumentRoot
}

// NewTheme returns a light theme bound to root. root may be nil, in which
// case the flag is tracked without a side effect.
func NewTheme(root DocumentRoot) *Theme {
	t := &Theme{root: root}
	t.Apply()
	return t
}

// IsDark reports whether dark mode is on.
func (t *Theme) IsDark() bool {
	return t.isDark
}

// Toggle flips dark mode and applies the result to the document root.
func (t *Theme) Toggle() {
	t.isDark = !t.isDark
	t.Apply()
}

// Apply pushes the current flag to the document root. It reports whether
// the root changed.
func (t *Theme) Apply() bool {
	if t.root == nil {
		return false
	}
	return t.root.SetDark(t.isDark)
}
