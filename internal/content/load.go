package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/nfrund/techhub/internal/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Section ids are checked against the same list the page renders from.
	if err := v.RegisterValidation("section", func(fl validator.FieldLevel) bool {
		_, err := ParseSectionID(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Embedded returns the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}

// MustEmbedded is like Embedded but panics on error. The embedded catalog is
// covered by tests, so a failure here is a build defect.
func MustEmbedded() *Catalog {
	cat, err := Embedded()
	if err != nil {
		panic(err)
	}
	return cat
}

// LoadFile reads and validates a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a YAML catalog, normalises its text to NFC and validates it.
// Vietnamese copy is often saved in decomposed form by editors; normalising
// keeps rendered output byte-stable regardless of the source encoding.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(norm.NFC.Bytes(raw)))
	dec.KnownFields(true)

	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrInvalidCatalog, err)
	}
	if err := validate.Struct(&cat); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	bio, err := renderMarkdown(cat.About.Bio)
	if err != nil {
		return nil, fmt.Errorf("%w: about bio: %v", domain.ErrInvalidCatalog, err)
	}
	cat.About.BioHTML = bio
	return &cat, nil
}
