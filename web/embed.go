package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Static is the static asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
