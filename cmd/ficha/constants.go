package main

// Limits for inline images.
const (
	MaxImageBytes = 2 << 20
)

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown"}

// Valid import formats.
var validImportFormats = []string{"auto", "json", "links"}
