package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// IconName names a glyph of the lucide icon set.
type IconName string

const (
	IconSun          IconName = "sun"
	IconMoon         IconName = "moon"
	IconMenu         IconName = "menu"
	IconClose        IconName = "x"
	IconStar         IconName = "star"
	IconDownload     IconName = "download"
	IconExternalLink IconName = "external-link"
	IconClock        IconName = "clock"
	IconTag          IconName = "tag"
	IconGithub       IconName = "github"
	IconLinkedin     IconName = "linkedin"
	IconTwitter      IconName = "twitter"
	IconMail         IconName = "mail"
)

// Icon renders a placeholder that the Iconify script swaps for the SVG.
func Icon(name IconName, class string) g.Node {
	return h.Span(
		h.Class(joinClasses("iconify", class)),
		g.Attr("data-icon", "lucide:"+string(name)),
		g.Attr("aria-hidden", "true"),
	)
}
