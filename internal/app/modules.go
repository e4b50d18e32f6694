package app

import (
	"github.com/nfrund/techhub/internal/module"
	"github.com/nfrund/techhub/internal/modules/landing"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules() []module.Module {
	return []module.Module{
		landing.New(),
	}
}
