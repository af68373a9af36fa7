// Package web embeds the two-page admin client served by the backend.
package web

import "embed"

//go:embed login.html admin.html
var Files embed.FS
