package components

import (
	"fmt"
	"log/slog"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/domain"
)

// ButtonVariant selects the visual style of a button.
type ButtonVariant string

const (
	ButtonDefault   ButtonVariant = "default"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
	ButtonSecondary ButtonVariant = "secondary"
)

// ButtonSize selects the dimensions of a button.
type ButtonSize string

const (
	SizeDefault ButtonSize = "default"
	SizeSm      ButtonSize = "sm"
	SizeLg      ButtonSize = "lg"
	SizeIcon    ButtonSize = "icon"
)

const buttonBase = "inline-flex items-center justify-center rounded-md font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50"

var buttonVariants = map[ButtonVariant]string{
	ButtonDefault:   "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonOutline:   "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	ButtonGhost:     "hover:bg-accent hover:text-accent-foreground",
	ButtonSecondary: "bg-secondary text-secondary-foreground hover:bg-secondary/80",
}

var buttonSizes = map[ButtonSize]string{
	SizeDefault: "h-10 px-4 py-2",
	SizeSm:      "h-9 rounded-md px-3",
	SizeLg:      "h-11 rounded-md px-8",
	SizeIcon:    "h-10 w-10",
}

// ParseButtonVariant validates s. The empty string selects the default.
func ParseButtonVariant(s string) (ButtonVariant, error) {
	v := ButtonVariant(s)
	if s == "" {
		return ButtonDefault, nil
	}
	if _, ok := buttonVariants[v]; !ok {
		return "", fmt.Errorf("%w: button variant %q", domain.ErrUnknownVariant, s)
	}
	return v, nil
}

// ParseButtonSize validates s. The empty string selects the default.
func ParseButtonSize(s string) (ButtonSize, error) {
	v := ButtonSize(s)
	if s == "" {
		return SizeDefault, nil
	}
	if _, ok := buttonSizes[v]; !ok {
		return "", fmt.Errorf("%w: button size %q", domain.ErrUnknownVariant, s)
	}
	return v, nil
}

// ButtonProps configures a Button.
type ButtonProps struct {
	Variant ButtonVariant
	Size    ButtonSize
	Class   string
	// OnClick wires the click, typically htmx attributes. It is rendered
	// as given.
	OnClick g.Node
	// Attrs are extra attributes, e.g. aria-label.
	Attrs []g.Node
}

// ButtonClass returns the class list for a (variant, size) pair, for
// elements that must look like a button but are not one, such as links.
func ButtonClass(variant ButtonVariant, size ButtonSize, extra string) string {
	return joinClasses(buttonBase, lookup(buttonVariants, variant, ButtonDefault), lookup(buttonSizes, size, SizeDefault), extra)
}

// Button renders a <button> styled by its (variant, size) pair.
func Button(props ButtonProps, children ...g.Node) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class(ButtonClass(props.Variant, props.Size, props.Class)),
		props.OnClick,
		g.Group(props.Attrs),
		g.Group(children),
	)
}

// lookup resolves key in table. The zero value selects def; an unknown key
// is logged and also falls back to def.
func lookup[K ~string](table map[K]string, key, def K) string {
	if key == "" {
		return table[def]
	}
	if c, ok := table[key]; ok {
		return c
	}
	slog.Warn("Unknown component variant, using default", "value", string(key), "default", string(def))
	return table[def]
}
