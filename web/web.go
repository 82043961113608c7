// Package web bundles the dual-camera page served by the embedded source.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed site
var site embed.FS

// FS returns the bundled page as a serving root.
func FS() http.FileSystem {
	sub, err := fs.Sub(site, "site")
	if err != nil {
		// "site" is embedded above, Sub cannot fail.
		panic(err)
	}
	return http.FS(sub)
}
