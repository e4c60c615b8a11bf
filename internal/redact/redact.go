package redact

import "regexp"

const placeholder = "[REDACTED]"

// secretPatterns are regex heuristics for secret material that must not
// be copied verbatim into reports.
var secretPatterns = []*regexp.Regexp{
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// JWTs (three base64 segments separated by dots)
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// Private key blocks
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	// Slack tokens
	regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`),
	// Vendor API keys (sk-... style)
	regexp.MustCompile(`sk-[A-Za-z0-9_-]{16,}`),
	// Quoted values assigned to secret-looking names
	regexp.MustCompile(`(?i)(secret|token|password|passwd|api[_-]?key|credential)(\s*[:=]\s*)["'][^"']{8,}["']`),
}

// assignment is the one pattern where the name and operator survive and
// only the quoted value is masked.
var assignment = secretPatterns[len(secretPatterns)-1]

// Snippet masks secret material in a single report snippet line.
func Snippet(line string) string {
	result := assignment.ReplaceAllString(line, `$1$2`+placeholder)
	for _, pat := range secretPatterns[:len(secretPatterns)-1] {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}
