// Package frontend ships the landing page template and its static assets inside
// the binary.
package frontend

import "embed"

//go:embed templates/* static/*
var Files embed.FS
