package content

import (
	"fmt"

	"github.com/nfrund/techhub/internal/domain"
)

// SectionID identifies a scrollable region of the page. It doubles as the
// element id of the section's anchor.
type SectionID string

const (
	SectionHome     SectionID = "home"
	SectionNews     SectionID = "news"
	SectionSoftware SectionID = "software"
	SectionTips     SectionID = "tips"
	SectionAbout    SectionID = "about"
)

// Sections lists every known section in page order.
var Sections = []SectionID{SectionHome, SectionNews, SectionSoftware, SectionTips, SectionAbout}

// Known reports whether id is one of the defined sections.
func (id SectionID) Known() bool {
	for _, s := range Sections {
		if s == id {
			return true
		}
	}
	return false
}

// ParseSectionID returns the section named by s or a wrapped
// domain.ErrUnknownSection.
func ParseSectionID(s string) (SectionID, error) {
	id := SectionID(s)
	if !id.Known() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSection, s)
	}
	return id, nil
}
