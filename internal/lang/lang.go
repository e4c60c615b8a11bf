package lang

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported source language.
type Language string

const (
	Rust       Language = "rust"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	Python     Language = "python"
	Unknown    Language = "unknown"

	// Generic is not a real language; it tags rules that apply to every
	// file regardless of classification.
	Generic Language = "generic"
)

// extensions maps lowercase file extensions to languages.
var extensions = map[string]Language{
	".rs":  Rust,
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".ts":  TypeScript,
	".tsx": TypeScript,
	".py":  Python,
	".pyw": Python,
}

// Classify returns the language for a file path based on its extension.
// Matching is case-insensitive. Paths with no extension or an
// unrecognized extension return Unknown, never an error.
func Classify(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if l, ok := extensions[ext]; ok {
		return l
	}
	return Unknown
}

// Supported reports whether language-specific rules exist for l.
func Supported(l Language) bool {
	return l != Unknown && l != Generic
}
