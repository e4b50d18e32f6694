package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/domain"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestButton_VariantAndSizeTable(t *testing.T) {
	for variant, variantClass := range buttonVariants {
		for size, sizeClass := range buttonSizes {
			html := render(t, Button(ButtonProps{Variant: variant, Size: size}, g.Text("Go")))

			assert.Contains(t, html, buttonBase)
			assert.Contains(t, html, variantClass, "variant %s", variant)
			assert.Contains(t, html, sizeClass, "size %s", size)
			assert.Contains(t, html, ">Go</button>")
		}
	}
}

func TestButton_Defaults(t *testing.T) {
	html := render(t, Button(ButtonProps{}, g.Text("Go")))

	assert.Contains(t, html, buttonVariants[ButtonDefault])
	assert.Contains(t, html, buttonSizes[SizeDefault])
	assert.Contains(t, html, `type="button"`)
}

func TestButton_UnknownValuesFallBackToDefault(t *testing.T) {
	html := render(t, Button(ButtonProps{Variant: "neon", Size: "huge"}))

	assert.Contains(t, html, buttonVariants[ButtonDefault])
	assert.Contains(t, html, buttonSizes[SizeDefault])
	assert.NotContains(t, html, "neon")
}

func TestButton_ForwardsClickAndAttrs(t *testing.T) {
	html := render(t, Button(ButtonProps{
		Variant: ButtonGhost,
		Size:    SizeIcon,
		Class:   "md:hidden",
		OnClick: g.Group{hx.Post("/pages/abc/menu"), hx.Swap("outerHTML")},
		Attrs:   []g.Node{g.Attr("aria-label", "Menu")},
	}, Icon(IconMenu, "h-5 w-5")))

	assert.Contains(t, html, `hx-post="/pages/abc/menu"`)
	assert.Contains(t, html, `hx-swap="outerHTML"`)
	assert.Contains(t, html, `aria-label="Menu"`)
	assert.Contains(t, html, "md:hidden")
	assert.Contains(t, html, `data-icon="lucide:menu"`)
}

func TestBadge(t *testing.T) {
	for variant, class := range badgeVariants {
		html := render(t, Badge(variant, g.Text("AI")))
		assert.True(t, strings.HasPrefix(html, "<div"), "badge is a plain label")
		assert.Contains(t, html, badgeBase)
		assert.Contains(t, html, class)
		assert.Contains(t, html, ">AI</div>")
	}

	assert.Contains(t, render(t, Badge("")), badgeVariants[BadgeDefault])
	assert.Contains(t, render(t, Badge("glitter")), badgeVariants[BadgeDefault])
}

func TestCard(t *testing.T) {
	html := render(t, Card("overflow-hidden",
		CardHeader("", h.H3(g.Text("Title"))),
		CardContent("", h.P(g.Text("Body"))),
	))

	assert.Equal(t,
		`<div class="rounded-lg border bg-card text-card-foreground shadow-sm overflow-hidden">`+
			`<div class="flex flex-col space-y-1.5 p-6"><h3>Title</h3></div>`+
			`<div class="p-6 pt-0"><p>Body</p></div>`+
			`</div>`,
		html)
}

func TestParseVariants(t *testing.T) {
	v, err := ParseButtonVariant("outline")
	require.NoError(t, err)
	assert.Equal(t, ButtonOutline, v)

	v, err = ParseButtonVariant("")
	require.NoError(t, err)
	assert.Equal(t, ButtonDefault, v)

	_, err = ParseButtonVariant("neon")
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)

	s, err := ParseButtonSize("icon")
	require.NoError(t, err)
	assert.Equal(t, SizeIcon, s)

	_, err = ParseButtonSize("xl")
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)

	b, err := ParseBadgeVariant("secondary")
	require.NoError(t, err)
	assert.Equal(t, BadgeSecondary, b)

	_, err = ParseBadgeVariant("ghost")
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)
}

func TestIcon(t *testing.T) {
	assert.Equal(t,
		`<span class="iconify h-5 w-5" data-icon="lucide:sun" aria-hidden="true"></span>`,
		render(t, Icon(IconSun, "h-5 w-5")))
}

func TestJoinClasses(t *testing.T) {
	assert.Equal(t, "a b c", joinClasses("a", " ", "b ", "", "c"))
	assert.Empty(t, joinClasses())
}
