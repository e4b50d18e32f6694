package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/domain"
)

// BadgeVariant selects the visual style of a badge.
type BadgeVariant string

const (
	BadgeDefault   BadgeVariant = "default"
	BadgeSecondary BadgeVariant = "secondary"
	BadgeOutline   BadgeVariant = "outline"
)

const badgeBase = "inline-flex items-center rounded-full px-2.5 py-0.5 text-xs font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2"

var badgeVariants = map[BadgeVariant]string{
	BadgeDefault:   "bg-primary text-primary-foreground hover:bg-primary/80",
	BadgeSecondary: "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	BadgeOutline:   "text-foreground border border-input bg-background hover:bg-accent hover:text-accent-foreground",
}

// ParseBadgeVariant validates s. The empty string selects the default.
func ParseBadgeVariant(s string) (BadgeVariant, error) {
	v := BadgeVariant(s)
	if s == "" {
		return BadgeDefault, nil
	}
	if _, ok := badgeVariants[v]; !ok {
		return "", fmt.Errorf("%w: badge variant %q", domain.ErrUnknownVariant, s)
	}
	return v, nil
}

// Badge renders a small styled label.
func Badge(variant BadgeVariant, children ...g.Node) g.Node {
	return h.Div(
		h.Class(joinClasses(badgeBase, lookup(badgeVariants, variant, BadgeDefault))),
		g.Group(children),
	)
}
