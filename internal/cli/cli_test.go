package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tmorelli/nitpick/internal/config"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagSource = ""
	flagTarget = ""
	flagPaths = ""
	flagExclude = ""
	flagFormat = ""
	flagOut = ""
	flagFailOn = ""
	flagRules = ""
	flagJobs = 0
	flagVerbose = false
	flagRulesLang = ""
	flagRulesFile = ""
}

// --- splitComma tests ---

func TestSplitComma(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", nil},
		{"single value", "foo", []string{"foo"}},
		{"multiple values", "a,b,c", []string{"a", "b", "c"}},
		{"whitespace trimmed", " a , b , c ", []string{"a", "b", "c"}},
		{"empty parts skipped", "a,,b", []string{"a", "b"}},
		{"all empty", ",,,", nil},
		{"trailing comma", "a,b,", []string{"a", "b"}},
		{"glob patterns", "*.rs,src/**/*.ts", []string{"*.rs", "src/**/*.ts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitComma(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitComma(%q) = %v (len %d), want %v (len %d)",
					tt.input, got, len(got), tt.want, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitComma(%q)[%d] = %q, want %q",
						tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// --- buildOverrides tests ---

func TestBuildOverrides_NoFlags(t *testing.T) {
	resetFlags()
	m := buildOverrides()
	if len(m) != 0 {
		t.Errorf("buildOverrides() with no flags = %v, want empty map", m)
	}
}

func TestBuildOverrides_AllFlags(t *testing.T) {
	resetFlags()
	flagSource = "main"
	flagTarget = "feature"
	flagFormat = "json"
	flagFailOn = "high"
	flagRules = "rules.yaml"
	flagJobs = 4

	m := buildOverrides()

	expected := map[string]string{
		"source":    "main",
		"target":    "feature",
		"format":    "json",
		"failOn":    "high",
		"rulesFile": "rules.yaml",
		"workers":   "4",
	}

	if len(m) != len(expected) {
		t.Fatalf("buildOverrides() returned %d entries, want %d", len(m), len(expected))
	}
	for k, v := range expected {
		if m[k] != v {
			t.Errorf("buildOverrides()[%q] = %q, want %q", k, m[k], v)
		}
	}
}

func TestBuildOverrides_ZeroJobsExcluded(t *testing.T) {
	resetFlags()
	flagSource = "main"
	flagJobs = 0

	m := buildOverrides()
	if _, ok := m["workers"]; ok {
		t.Error("jobs=0 should not be in overrides")
	}
}

// --- buildLocateOpts tests ---

func TestBuildLocateOpts_FromConfig(t *testing.T) {
	resetFlags()
	cfg := config.Config{
		SourceRef: "main",
		TargetRef: "HEAD",
		Include:   []string{"*.rs"},
		Exclude:   []string{"vendor/**"},
	}

	opts := buildLocateOpts(cfg)

	if opts.SourceRef != "main" {
		t.Errorf("SourceRef = %q, want %q", opts.SourceRef, "main")
	}
	if opts.TargetRef != "HEAD" {
		t.Errorf("TargetRef = %q, want %q", opts.TargetRef, "HEAD")
	}
	if len(opts.Include) != 1 || opts.Include[0] != "*.rs" {
		t.Errorf("Include = %v, want [*.rs]", opts.Include)
	}
	if len(opts.Exclude) != 1 || opts.Exclude[0] != "vendor/**" {
		t.Errorf("Exclude = %v, want [vendor/**]", opts.Exclude)
	}
}

func TestBuildLocateOpts_PathsFlagOverridesInclude(t *testing.T) {
	resetFlags()
	flagPaths = "src/**/*.py,lib/**/*.py"

	cfg := config.Config{
		Include: []string{"**/*"},
		Exclude: []string{"vendor/**"},
	}

	opts := buildLocateOpts(cfg)

	if len(opts.Include) != 2 {
		t.Fatalf("Include has %d entries, want 2", len(opts.Include))
	}
	if opts.Include[0] != "src/**/*.py" || opts.Include[1] != "lib/**/*.py" {
		t.Errorf("Include = %v, want [src/**/*.py lib/**/*.py]", opts.Include)
	}
}

func TestBuildLocateOpts_ExcludeFlagAppends(t *testing.T) {
	resetFlags()
	flagExclude = "test/**,docs/**"

	cfg := config.Config{
		Exclude: []string{"vendor/**"},
	}

	opts := buildLocateOpts(cfg)

	if len(opts.Exclude) != 3 {
		t.Fatalf("Exclude has %d entries, want 3", len(opts.Exclude))
	}
	if opts.Exclude[0] != "vendor/**" {
		t.Errorf("Exclude[0] = %q, want %q", opts.Exclude[0], "vendor/**")
	}
	if opts.Exclude[1] != "test/**" {
		t.Errorf("Exclude[1] = %q, want %q", opts.Exclude[1], "test/**")
	}
}

// --- buildCatalog tests ---

func TestBuildCatalog_Builtins(t *testing.T) {
	resetFlags()
	cat, err := buildCatalog(config.Config{})
	if err != nil {
		t.Fatalf("buildCatalog error: %v", err)
	}
	if cat.Len() == 0 {
		t.Error("catalog should contain builtin rules")
	}
}

func TestBuildCatalog_MissingRulesFile(t *testing.T) {
	resetFlags()
	_, err := buildCatalog(config.Config{RulesFile: "/nonexistent/rules.yaml"})
	if err == nil {
		t.Error("Expected error for missing rules file")
	}
}

func TestBuildCatalog_CustomRules(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rules.yaml")
	content := `rules:
  - id: team-no-fixme
    language: generic
    category: maintainability
    severity: low
    pattern: 'FIXME'
    description: FIXME marker left in code
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := buildCatalog(config.Config{RulesFile: path})
	if err != nil {
		t.Fatalf("buildCatalog error: %v", err)
	}

	found := false
	for _, r := range cat.All() {
		if r.ID == "team-no-fixme" {
			found = true
		}
	}
	if !found {
		t.Error("custom rule team-no-fixme not in catalog")
	}
}

// --- version command tests ---

func TestVersionCmd_Execute(t *testing.T) {
	if err := versionCmd.Execute(); err != nil {
		t.Errorf("version command returned error: %v", err)
	}
}

// --- rules command tests ---

func TestRulesCmd_Execute(t *testing.T) {
	resetFlags()
	rulesCmd.SetArgs([]string{})
	if err := rulesCmd.Execute(); err != nil {
		t.Errorf("rules command returned error: %v", err)
	}
}

// --- config command tests ---

func TestConfigInit_CreatesFile(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configCmd.SetArgs([]string{"init"})
	if err := configCmd.Execute(); err != nil {
		t.Fatalf("config init returned error: %v", err)
	}

	configPath := filepath.Join(tmpDir, "nitpick", "config.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config init did not create config.json")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("cannot read config file: %v", err)
	}
	var cfg config.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("config file is not valid JSON: %v", err)
	}
	if cfg.Format == "" {
		t.Error("config file has empty format")
	}
}

func TestConfigInit_AlreadyExists(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfgDir := filepath.Join(tmpDir, "nitpick")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(`{"format":"json"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	configCmd.SetArgs([]string{"init"})
	if err := configCmd.Execute(); err != nil {
		t.Fatalf("config init with existing file returned error: %v", err)
	}

	// Verify original content is preserved (not overwritten)
	data, err := os.ReadFile(filepath.Join(cfgDir, "config.json"))
	if err != nil {
		t.Fatalf("cannot read config file: %v", err)
	}
	var cfg config.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "json" {
		t.Errorf("config init overwrote existing file: format = %q, want %q", cfg.Format, "json")
	}
}

func TestConfigSet_UpdatesFile(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configCmd.SetArgs([]string{"set", "format", "markdown"})
	if err := configCmd.Execute(); err != nil {
		t.Fatalf("config set returned error: %v", err)
	}

	configPath := filepath.Join(tmpDir, "nitpick", "config.json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("cannot read config file: %v", err)
	}
	var cfg config.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("config file is not valid JSON: %v", err)
	}
	if cfg.Format != "markdown" {
		t.Errorf("format = %q, want %q", cfg.Format, "markdown")
	}
}

func TestConfigSet_InvalidKey(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configCmd.SetArgs([]string{"set", "unknownKey", "value"})
	if err := configCmd.Execute(); err == nil {
		t.Error("config set with invalid key should return error")
	}
}

func TestConfigSet_MissingArgs(t *testing.T) {
	resetFlags()

	configCmd.SetArgs([]string{"set", "format"})
	if err := configCmd.Execute(); err == nil {
		t.Error("config set with 1 arg should return error (requires 2)")
	}
}

func TestConfigShow_Execute(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configCmd.SetArgs([]string{"show"})
	if err := configCmd.Execute(); err != nil {
		t.Errorf("config show returned error: %v", err)
	}
}

// --- exit code constants tests ---

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitFindings", ExitFindings, 1},
		{"ExitUsageError", ExitUsageError, 2},
		{"ExitRuntimeError", ExitRuntimeError, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.want)
			}
		})
	}
}

func TestVersionConstant(t *testing.T) {
	if version == "" {
		t.Error("version constant is empty")
	}
}
