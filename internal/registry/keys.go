package registry

import (
	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/rendering"
)

// Keys for the core services every module can resolve. Module-owned services
// declare their keys next to the module.
var (
	KeyContent  = Key[*content.Source]("core.Content")
	KeyRenderer = Key[rendering.Renderer]("core.Renderer")
)
