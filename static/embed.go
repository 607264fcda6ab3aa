// Package static holds the browser script that binds the catalog page.
package static

import "embed"

// ScriptName is the file name of the interaction script.
const ScriptName = "catalog.js"

//go:embed catalog.js
var FS embed.FS
