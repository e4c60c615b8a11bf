package catalog

import (
	"regexp"
	"strings"

	"github.com/tmorelli/nitpick/internal/lang"
)

// builtinRules returns the full built-in rule set in catalog order.
// Order within a language is significant: it is the presentation
// tie-break for multiple matches on one line, so the highest-signal
// rules come first.
func builtinRules() []Rule {
	var rules []Rule
	rules = append(rules, rustRules()...)
	rules = append(rules, javascriptRules()...)
	rules = append(rules, typescriptRules()...)
	rules = append(rules, pythonRules()...)
	rules = append(rules, genericRules()...)
	return rules
}

func rustRules() []Rule {
	return []Rule{
		{
			ID:          "rust-sql-format",
			Language:    lang.Rust,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`(?i)format!\s*\(\s*".*\b(select|insert|update|delete)\b`),
			Description: "SQL statement built with format! interpolation (SQL injection)",
			Suggestion:  "Use parameterized queries instead of string formatting",
		},
		{
			ID:          "rust-unsafe-block",
			Language:    lang.Rust,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			Pattern:     regexp.MustCompile(`\bunsafe\s*\{|\bunsafe\s+fn\b`),
			Description: "Unsafe block bypasses Rust's memory safety guarantees",
			Suggestion:  "Isolate the unsafe code and document the invariants it relies on",
		},
		{
			ID:          "rust-transmute",
			Language:    lang.Rust,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			Pattern:     regexp.MustCompile(`\bmem::transmute\b|\bstd::mem::transmute\b`),
			Description: "mem::transmute reinterprets memory and is easy to get wrong",
			Suggestion:  "Prefer safe conversions (From/Into, as casts, byte methods)",
		},
		{
			ID:          "rust-command-exec",
			Language:    lang.Rust,
			Category:    CategorySecurity,
			Severity:    SeverityMedium,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`\bCommand::new\s*\(`),
			Description: "Subprocess execution; verify arguments are not attacker-controlled",
			Suggestion:  "Pass arguments via .arg() and never build shell strings from input",
		},
		{
			ID:          "rust-unwrap",
			Language:    lang.Rust,
			Category:    CategoryMaintainability,
			Severity:    SeverityMedium,
			Pattern:     regexp.MustCompile(`\.unwrap\(\)`),
			Description: "unwrap() panics on None/Err",
			Suggestion:  "Propagate the error with ? or handle it with match",
		},
		{
			ID:          "rust-expect",
			Language:    lang.Rust,
			Category:    CategoryMaintainability,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`\.expect\s*\(`),
			Description: "expect() panics on None/Err",
			Suggestion:  "Propagate the error with ? where the caller can recover",
		},
		{
			ID:          "rust-panic",
			Language:    lang.Rust,
			Category:    CategoryMaintainability,
			Severity:    SeverityMedium,
			Pattern:     regexp.MustCompile(`\bpanic!\s*\(`),
			Description: "Explicit panic aborts the thread",
			Suggestion:  "Return an error instead of panicking in library code",
		},
		{
			ID:          "rust-todo-macro",
			Language:    lang.Rust,
			Category:    CategoryMaintainability,
			Severity:    SeverityMedium,
			Pattern:     regexp.MustCompile(`\b(todo|unimplemented)!\s*\(`),
			Description: "Unimplemented code path panics at runtime",
			Suggestion:  "Implement the path or return a NotImplemented error",
		},
		{
			ID:          "rust-nested-loop",
			Language:    lang.Rust,
			Category:    CategoryPerformance,
			Severity:    SeverityMedium,
			Match:       nestedLoopMatcher(regexp.MustCompile(`^\s*(for|while|loop)\b`)),
			WindowSize:  nestedLoopWindow,
			Description: "Loop nested inside another loop in close proximity",
			Suggestion:  "Check the combined complexity; consider a map lookup or iterator adapter",
		},
		{
			ID:          "rust-clone",
			Language:    lang.Rust,
			Category:    CategoryPerformance,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`\.clone\(\)`),
			Description: "clone() allocates a full copy",
			Suggestion:  "Borrow with a reference when the copy is not needed",
		},
		{
			ID:          "rust-missing-doc",
			Language:    lang.Rust,
			Category:    CategoryDocumentation,
			Severity:    SeverityLow,
			Match:       missingRustDoc,
			WindowSize:  2,
			Description: "Public function without a doc comment",
			Suggestion:  "Add a /// comment describing the function's contract",
		},
		{
			ID:          "rust-println",
			Language:    lang.Rust,
			Category:    CategoryStyle,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`\bprintln!\s*\(`),
			Description: "println! in library code",
			Suggestion:  "Use a logging facade so output can be controlled by the caller",
		},
	}
}

func javascriptRules() []Rule {
	return []Rule{
		{
			ID:          "js-sql-template",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`(?i)\b(select|insert|update|delete)\b.*\$\{`),
			Description: "SQL statement built with template interpolation (SQL injection)",
			Suggestion:  "Use parameterized queries or a query builder with placeholders",
		},
		{
			ID:          "js-sql-concat",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`(?i)\b(select|insert|update|delete)\b.*["']\s*\+`),
			Description: "SQL statement built by string concatenation (SQL injection)",
			Suggestion:  "Use parameterized queries instead of concatenating user input",
		},
		{
			ID:          "js-eval",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`\beval\s*\(`),
			Description: "eval() executes arbitrary code",
			Suggestion:  "Replace eval with JSON.parse or explicit dispatch",
		},
		{
			ID:          "js-new-function",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`\bnew\s+Function\s*\(`),
			Description: "new Function() compiles strings into code",
			Suggestion:  "Use a regular function or explicit dispatch table",
		},
		{
			ID:          "js-child-process",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`\b(child_process|execSync|spawnSync)\b`),
			Description: "Subprocess execution; shell strings built from input are injectable",
			Suggestion:  "Use execFile/spawn with an argument array, never a shell string",
		},
		{
			ID:          "js-innerhtml",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`\.innerHTML\s*=`),
			Description: "Assigning to innerHTML renders unsanitized markup (XSS)",
			Suggestion:  "Use textContent, or sanitize the markup before insertion",
		},
		{
			ID:          "js-settimeout-string",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityMedium,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`\bsetTimeout\s*\(\s*["']|\bsetInterval\s*\(\s*["']`),
			Description: "Timer with a string argument is implicit eval",
			Suggestion:  "Pass a function reference to setTimeout/setInterval",
		},
		{
			ID:          "js-document-write",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityMedium,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`\bdocument\.write\s*\(`),
			Description: "document.write can inject unsanitized content",
			Suggestion:  "Build DOM nodes explicitly instead",
		},
		{
			ID:          "js-tls-reject-disabled",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			OWASP:       "A02",
			Pattern:     regexp.MustCompile(`NODE_TLS_REJECT_UNAUTHORIZED`),
			Description: "Disabling TLS certificate verification",
			Suggestion:  "Trust the proper CA bundle instead of disabling verification",
		},
		{
			ID:          "js-weak-random-token",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityMedium,
			OWASP:       "A02",
			Pattern:     regexp.MustCompile(`(?i)(token|secret|nonce|password).{0,40}math\.random\s*\(`),
			Description: "Math.random is not cryptographically secure",
			Suggestion:  "Use crypto.randomBytes or crypto.getRandomValues for secrets",
		},
		{
			ID:          "js-cookie-assign",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityMedium,
			OWASP:       "A05",
			Pattern:     regexp.MustCompile(`\bdocument\.cookie\s*=`),
			Description: "Cookie set from script cannot carry the HttpOnly flag",
			Suggestion:  "Set session cookies server-side with Secure and HttpOnly",
		},
		{
			ID:          "js-localstorage-token",
			Language:    lang.JavaScript,
			Category:    CategorySecurity,
			Severity:    SeverityMedium,
			OWASP:       "A07",
			Pattern:     regexp.MustCompile(`(?i)localStorage\.setItem\s*\(\s*["'](token|jwt|auth)`),
			Description: "Auth token stored in localStorage is readable by any injected script",
			Suggestion:  "Keep session material in an HttpOnly cookie",
		},
		{
			ID:          "js-nested-loop",
			Language:    lang.JavaScript,
			Category:    CategoryPerformance,
			Severity:    SeverityMedium,
			Match:       nestedLoopMatcher(regexp.MustCompile(`^\s*(for|while)\b`)),
			WindowSize:  nestedLoopWindow,
			Description: "Loop nested inside another loop in close proximity",
			Suggestion:  "Check the combined complexity; a map lookup may avoid the inner scan",
		},
		{
			ID:          "js-sync-fs",
			Language:    lang.JavaScript,
			Category:    CategoryPerformance,
			Severity:    SeverityMedium,
			Pattern:     regexp.MustCompile(`\b(readFileSync|writeFileSync|existsSync)\s*\(`),
			Description: "Synchronous filesystem call blocks the event loop",
			Suggestion:  "Use the promise-based fs API",
		},
		{
			ID:          "js-loose-equality",
			Language:    lang.JavaScript,
			Category:    CategoryStyle,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`[^=!<>]==[^=]|[^=!<>]!=[^=]`),
			Description: "Loose equality coerces types",
			Suggestion:  "Use === / !== for predictable comparison",
		},
		{
			ID:          "js-var-decl",
			Language:    lang.JavaScript,
			Category:    CategoryStyle,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`^\s*var\s+\w`),
			Description: "var is function-scoped and hoisted",
			Suggestion:  "Use const or let",
		},
		{
			ID:          "js-console-log",
			Language:    lang.JavaScript,
			Category:    CategoryStyle,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`\bconsole\.log\s*\(`),
			Description: "console.log left in code",
			Suggestion:  "Remove it or route through the project's logger",
		},
	}
}

func typescriptRules() []Rule {
	return []Rule{
		{
			ID:          "ts-ignore-directive",
			Language:    lang.TypeScript,
			Category:    CategoryMaintainability,
			Severity:    SeverityMedium,
			Pattern:     regexp.MustCompile(`@ts-ignore|@ts-nocheck|@ts-expect-error`),
			Description: "Compiler checks suppressed for this location",
			Suggestion:  "Fix the underlying type error instead of suppressing it",
		},
		{
			ID:          "ts-as-any",
			Language:    lang.TypeScript,
			Category:    CategoryMaintainability,
			Severity:    SeverityMedium,
			Pattern:     regexp.MustCompile(`\bas\s+any\b`),
			Description: "Cast to any defeats type checking",
			Suggestion:  "Cast to a precise type or narrow with a type guard",
		},
		{
			ID:          "ts-any-annotation",
			Language:    lang.TypeScript,
			Category:    CategoryMaintainability,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`:\s*any\b`),
			Description: "Explicit any annotation",
			Suggestion:  "Use unknown plus narrowing, or a concrete type",
		},
		{
			ID:          "ts-non-null-assertion",
			Language:    lang.TypeScript,
			Category:    CategoryMaintainability,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`\w!\.|\w!\)`),
			Description: "Non-null assertion hides a possible undefined",
			Suggestion:  "Handle the undefined case explicitly",
		},
	}
}

func pythonRules() []Rule {
	return []Rule{
		{
			ID:          "py-sql-fstring",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`(?i)f["'].*\b(select|insert|update|delete)\b.*\{`),
			Description: "SQL statement built with f-string interpolation (SQL injection)",
			Suggestion:  "Use parameterized queries (cursor.execute with placeholders)",
		},
		{
			ID:          "py-sql-format",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`(?i)\b(select|insert|update|delete)\b.*["']\s*(%|\.format\s*\(|\+)`),
			Description: "SQL statement built with % / format / concatenation (SQL injection)",
			Suggestion:  "Use parameterized queries instead of string building",
		},
		{
			ID:          "py-eval",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`\beval\s*\(`),
			Description: "eval() executes arbitrary code",
			Suggestion:  "Use ast.literal_eval or explicit parsing",
		},
		{
			ID:          "py-exec",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`\bexec\s*\(`),
			Description: "exec() executes arbitrary code",
			Suggestion:  "Restructure to avoid dynamic code execution",
		},
		{
			ID:          "py-os-system",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`\bos\.system\s*\(`),
			Description: "os.system runs a shell command (command injection)",
			Suggestion:  "Use subprocess.run with an argument list",
		},
		{
			ID:          "py-subprocess-shell",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			OWASP:       "A03",
			Pattern:     regexp.MustCompile(`subprocess\.\w+\s*\(.*shell\s*=\s*True`),
			Description: "subprocess with shell=True is injectable",
			Suggestion:  "Pass an argument list and drop shell=True",
		},
		{
			ID:          "py-pickle-load",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			OWASP:       "A08",
			Pattern:     regexp.MustCompile(`\bpickle\.loads?\s*\(`),
			Description: "Unpickling untrusted data executes arbitrary code",
			Suggestion:  "Use JSON or another data-only format for untrusted input",
		},
		{
			ID:          "py-yaml-load",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			OWASP:       "A08",
			Match:       unsafeYamlLoad,
			Description: "yaml.load without an explicit safe loader can construct objects",
			Suggestion:  "Use yaml.safe_load or pass Loader=yaml.SafeLoader",
		},
		{
			ID:          "py-mktemp",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			OWASP:       "A01",
			Pattern:     regexp.MustCompile(`\btempfile\.mktemp\s*\(`),
			Description: "tempfile.mktemp is racy between name creation and open",
			Suggestion:  "Use tempfile.NamedTemporaryFile or mkstemp",
		},
		{
			ID:          "py-requests-noverify",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			OWASP:       "A05",
			Pattern:     regexp.MustCompile(`verify\s*=\s*False`),
			Description: "TLS certificate verification disabled",
			Suggestion:  "Keep verify=True and install the proper CA bundle",
		},
		{
			ID:          "py-weak-hash",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityMedium,
			OWASP:       "A02",
			Pattern:     regexp.MustCompile(`\bhashlib\.(md5|sha1)\s*\(`),
			Description: "MD5/SHA-1 are broken for security purposes",
			Suggestion:  "Use SHA-256 or better; for passwords use bcrypt/argon2",
		},
		{
			ID:          "py-weak-random-token",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityMedium,
			OWASP:       "A02",
			Pattern:     regexp.MustCompile(`(?i)(token|secret|nonce|password).{0,40}random\.(random|randint|choice)\s*\(`),
			Description: "random module is not cryptographically secure",
			Suggestion:  "Use the secrets module for security-sensitive values",
		},
		{
			ID:          "py-flask-debug",
			Language:    lang.Python,
			Category:    CategorySecurity,
			Severity:    SeverityMedium,
			OWASP:       "A05",
			Pattern:     regexp.MustCompile(`\bdebug\s*=\s*True`),
			Description: "Debug mode exposes an interactive debugger",
			Suggestion:  "Disable debug mode outside local development",
		},
		{
			ID:          "py-nested-loop",
			Language:    lang.Python,
			Category:    CategoryPerformance,
			Severity:    SeverityMedium,
			Match:       nestedLoopMatcher(regexp.MustCompile(`^\s*(for|while)\b`)),
			WindowSize:  nestedLoopWindow,
			Description: "Loop nested inside another loop in close proximity",
			Suggestion:  "Check the combined complexity; a set or dict may avoid the inner scan",
		},
		{
			ID:          "py-bare-except",
			Language:    lang.Python,
			Category:    CategoryMaintainability,
			Severity:    SeverityMedium,
			Pattern:     regexp.MustCompile(`^\s*except\s*:`),
			Description: "Bare except swallows every exception including KeyboardInterrupt",
			Suggestion:  "Catch the specific exception types you can handle",
		},
		{
			ID:          "py-assert",
			Language:    lang.Python,
			Category:    CategoryMaintainability,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`^\s*assert\b`),
			Description: "Asserts are stripped under python -O",
			Suggestion:  "Raise an explicit exception for runtime validation",
		},
		{
			ID:          "py-print",
			Language:    lang.Python,
			Category:    CategoryStyle,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`^\s*print\s*\(`),
			Description: "print() in library code",
			Suggestion:  "Use the logging module",
		},
	}
}

func genericRules() []Rule {
	return []Rule{
		{
			ID:          "gen-api-key-literal",
			Language:    lang.Generic,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A07",
			Pattern:     regexp.MustCompile(`["']sk-[A-Za-z0-9_-]{5,}["']`),
			Description: "Hardcoded credentials: API key literal in source",
			Suggestion:  "Load the key from the environment or a secrets manager and rotate it",
		},
		{
			ID:          "gen-hardcoded-secret",
			Language:    lang.Generic,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A07",
			Pattern:     regexp.MustCompile(`(?i)(password|passwd|secret|api[_-]?key|apikey|auth[_-]?token)\s*[:=]\s*["'][^"']{4,}["']`),
			Description: "Hardcoded credentials assigned to a variable",
			Suggestion:  "Load secrets from the environment or a secrets manager and rotate them",
		},
		{
			ID:          "gen-aws-access-key",
			Language:    lang.Generic,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A02",
			Pattern:     regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
			Description: "AWS access key ID committed to source",
			Suggestion:  "Revoke the key and use instance roles or environment credentials",
		},
		{
			ID:          "gen-private-key",
			Language:    lang.Generic,
			Category:    CategorySecurity,
			Severity:    SeverityCritical,
			OWASP:       "A02",
			Pattern:     regexp.MustCompile(`-----BEGIN (RSA |EC |OPENSSH |PGP )?PRIVATE KEY`),
			Description: "Private key material committed to source",
			Suggestion:  "Remove the key from history and rotate it",
		},
		{
			ID:          "gen-jwt-literal",
			Language:    lang.Generic,
			Category:    CategorySecurity,
			Severity:    SeverityHigh,
			OWASP:       "A02",
			Pattern:     regexp.MustCompile(`\beyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{5,}\.`),
			Description: "JWT literal in source",
			Suggestion:  "Remove the token and rotate the signing secret",
		},
		{
			ID:          "gen-insecure-url",
			Language:    lang.Generic,
			Category:    CategorySecurity,
			Severity:    SeverityMedium,
			OWASP:       "A02",
			Match:       insecureURL,
			Description: "Unencrypted http:// URL",
			Suggestion:  "Use https:// for anything beyond loopback",
		},
		{
			ID:          "gen-merge-conflict",
			Language:    lang.Generic,
			Category:    CategoryMaintainability,
			Severity:    SeverityHigh,
			Pattern:     regexp.MustCompile(`^(<{7} |>{7} )`),
			Description: "Unresolved merge conflict marker",
			Suggestion:  "Resolve the conflict and remove the markers",
		},
		{
			ID:          "gen-deep-nesting",
			Language:    lang.Generic,
			Category:    CategoryMaintainability,
			Severity:    SeverityMedium,
			Match:       deeplyNested,
			Description: "Deeply nested code (more than six indentation levels)",
			Suggestion:  "Extract the nested logic into separate functions",
		},
		{
			ID:          "gen-todo-marker",
			Language:    lang.Generic,
			Category:    CategoryMaintainability,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`\b(TODO|FIXME|XXX|HACK)\b`),
			Description: "Leftover TODO/FIXME marker",
			Suggestion:  "Track the work in an issue or address it before merging",
		},
		{
			ID:          "gen-skipped-test",
			Language:    lang.Generic,
			Category:    CategoryTesting,
			Severity:    SeverityLow,
			Pattern:     regexp.MustCompile(`\b(it|test|describe)\.skip\b|\bxit\s*\(|#\[ignore\]|pytest\.mark\.skip`),
			Description: "Skipped or ignored test",
			Suggestion:  "Re-enable the test or delete it with a reason",
		},
		{
			ID:          "gen-long-line",
			Language:    lang.Generic,
			Category:    CategoryStyle,
			Severity:    SeverityInfo,
			Match:       longLine,
			Description: "Line exceeds 120 characters",
			Suggestion:  "Wrap or restructure the line",
		},
		{
			ID:          "gen-trailing-whitespace",
			Language:    lang.Generic,
			Category:    CategoryStyle,
			Severity:    SeverityInfo,
			Pattern:     regexp.MustCompile(`\S[ \t]+$`),
			Description: "Trailing whitespace",
			Suggestion:  "Strip trailing whitespace",
		},
	}
}

// nestedLoopWindow bounds how far back the nested-loop heuristic looks.
const nestedLoopWindow = 8

// nestedLoopMatcher builds a bounded-window predicate that fires when the
// current line opens a loop and a preceding line within the window opens
// an enclosing loop at a smaller indent depth.
func nestedLoopMatcher(loopStart *regexp.Regexp) MatchFunc {
	return func(line string, w Window) bool {
		if !loopStart.MatchString(line) {
			return false
		}
		depth := indentWidth(line)
		for _, prev := range w.Before {
			if loopStart.MatchString(prev) && indentWidth(prev) < depth {
				return true
			}
		}
		return false
	}
}

// indentWidth measures leading whitespace with tabs counted as four
// columns.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}

func deeplyNested(line string, _ Window) bool {
	return strings.TrimSpace(line) != "" && indentWidth(line) > 24
}

func longLine(line string, _ Window) bool {
	return len([]rune(line)) > 120
}

var httpURL = regexp.MustCompile(`(?i)\bhttp://[a-z0-9]`)

func insecureURL(line string, _ Window) bool {
	if !httpURL.MatchString(line) {
		return false
	}
	lower := strings.ToLower(line)
	return !strings.Contains(lower, "http://localhost") &&
		!strings.Contains(lower, "http://127.0.0.1") &&
		!strings.Contains(lower, "http://0.0.0.0")
}

var yamlLoad = regexp.MustCompile(`\byaml\.load\s*\(`)

func unsafeYamlLoad(line string, _ Window) bool {
	return yamlLoad.MatchString(line) && !strings.Contains(line, "Loader=")
}

var rustDocComment = regexp.MustCompile(`^\s*(///|//!|#\[)`)
var rustPubFn = regexp.MustCompile(`^\s*pub\s+(async\s+)?fn\s+\w`)

// missingRustDoc flags a pub fn whose nearest preceding non-attribute
// line is not a doc comment.
func missingRustDoc(line string, w Window) bool {
	if !rustPubFn.MatchString(line) {
		return false
	}
	for i := len(w.Before) - 1; i >= 0; i-- {
		prev := w.Before[i]
		if strings.HasPrefix(strings.TrimSpace(prev), "#[") {
			continue
		}
		return !rustDocComment.MatchString(prev)
	}
	return true
}
