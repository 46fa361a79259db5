// ABOUTME: Embedded filesystem for site templates and static assets.
// ABOUTME: Exports ContentFS so the server needs no runtime filesystem paths.
package web

import "embed"

//go:embed templates/* static/*
var ContentFS embed.FS
