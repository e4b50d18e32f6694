// Package content holds the fixed copy shown on the TechHub page.
//
// The catalog is loaded once from an embedded YAML file and is never mutated
// afterwards; a reload produces a new *Catalog that replaces the old one.
package content

// Item is the common shape of every card on the page.
type Item struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Tags        []string `yaml:"tags" validate:"min=1,dive,required"`
	Meta        string   `yaml:"meta" validate:"required"`
}

// Article is a news card. It shows either an image or a gradient with a
// short glyph.
type Article struct {
	Item         `yaml:",inline"`
	Image        string `yaml:"image" validate:"required_without=Glyph"`
	ImageAlt     string `yaml:"image_alt" validate:"required_with=Image"`
	Glyph        string `yaml:"glyph"`
	GlyphCaption string `yaml:"glyph_caption"`
	Gradient     string `yaml:"gradient" validate:"required_with=Glyph"`
}

// Action is a call-to-action button on a card.
type Action struct {
	Label   string `yaml:"label" validate:"required"`
	Icon    string `yaml:"icon"`
	Variant string `yaml:"variant" validate:"omitempty,oneof=default outline ghost secondary"`
}

// Software is a software/tool card. Meta carries the licence badge and Tags
// the supported platforms.
type Software struct {
	Item   `yaml:",inline"`
	Rating int    `yaml:"rating" validate:"min=0,max=5"`
	Action Action `yaml:"action"`
}

// Tip is a tips-and-tricks card. Meta carries the effort estimate and Tags
// the categories.
type Tip struct {
	Item  `yaml:",inline"`
	Level string `yaml:"level" validate:"required"`
}

// NavLink is one entry of the header navigation.
type NavLink struct {
	Section SectionID `yaml:"section" validate:"required,section"`
	Label   string    `yaml:"label" validate:"required"`
}

// SectionIntro is the heading block shared by the grid sections.
type SectionIntro struct {
	Heading string `yaml:"heading" validate:"required"`
	Intro   string `yaml:"intro" validate:"required"`
}

// Site holds the brand copy used by the header and footer.
type Site struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Tagline     string `yaml:"tagline" validate:"required"`
	Copyright   string `yaml:"copyright" validate:"required"`
}

// Hero is the banner at the top of the page.
type Hero struct {
	Title     string  `yaml:"title" validate:"required"`
	Subtitle  string  `yaml:"subtitle" validate:"required"`
	Image     string  `yaml:"image" validate:"required"`
	ImageAlt  string  `yaml:"image_alt" validate:"required"`
	Primary   NavLink `yaml:"primary"`
	Secondary NavLink `yaml:"secondary"`
}

// News is the news grid.
type News struct {
	SectionIntro `yaml:",inline"`
	ReadMore     string    `yaml:"read_more" validate:"required"`
	Articles     []Article `yaml:"articles" validate:"min=1,dive"`
}

// SoftwareGrid is the software grid.
type SoftwareGrid struct {
	SectionIntro `yaml:",inline"`
	Items        []Software `yaml:"items" validate:"min=1,dive"`
}

// Tips is the tips grid.
type Tips struct {
	SectionIntro `yaml:",inline"`
	Action       Action `yaml:"action"`
	Items        []Tip  `yaml:"items" validate:"min=1,dive"`
}

// Stat is a headline number in the about card.
type Stat struct {
	Value string `yaml:"value" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// Social is a link to a social network profile.
type Social struct {
	Icon  string `yaml:"icon" validate:"required"`
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

// About is the author card.
type About struct {
	SectionIntro `yaml:",inline"`
	Name         string `yaml:"name" validate:"required"`
	Role         string `yaml:"role" validate:"required"`
	// Bio is Markdown. BioHTML is its sanitised rendering, filled in by Load.
	Bio         string   `yaml:"bio" validate:"required"`
	BioHTML     string   `yaml:"-"`
	Avatar      string   `yaml:"avatar" validate:"required"`
	Stats       []Stat   `yaml:"stats" validate:"dive"`
	SkillsLabel string   `yaml:"skills_label" validate:"required"`
	Skills      []string `yaml:"skills" validate:"min=1,dive,required"`
}

// Catalog is the full content of the page.
type Catalog struct {
	Site     Site         `yaml:"site"`
	Nav      []NavLink    `yaml:"nav" validate:"min=1,dive"`
	Hero     Hero         `yaml:"hero"`
	News     News         `yaml:"news"`
	Software SoftwareGrid `yaml:"software"`
	Tips     Tips         `yaml:"tips"`
	About    About        `yaml:"about"`
	Socials  []Social     `yaml:"socials" validate:"dive"`
}
