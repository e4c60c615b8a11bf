// Package redact masks secret material in report snippets.
//
// Rules that flag hardcoded credentials would otherwise copy the
// credential itself into every report format, including files uploaded
// to CI systems. Redaction replaces the secret value while leaving
// enough of the line to locate the problem.
package redact
