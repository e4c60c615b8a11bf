package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tmorelli/nitpick/internal/catalog"
	"github.com/tmorelli/nitpick/internal/review"
)

// SARIFWriter outputs findings in SARIF v2.1.0 format.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, report *review.Report) error {
	sarif := buildSARIF(report)
	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling SARIF: %w", err)
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// SARIF schema types (v2.1.0)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	ShortDescription sarifMessage        `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig  `json:"defaultConfiguration"`
	Properties       sarifRuleProperties `json:"properties,omitempty"`
}

type sarifDefaultConfig struct {
	Level string `json:"level"`
}

type sarifRuleProperties struct {
	Tags []string `json:"tags,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

func buildSARIF(report *review.Report) sarifLog {
	rulesSeen := make(map[string]bool)
	var rules []sarifRule
	var results []sarifResult

	for _, f := range report.Findings {
		if !rulesSeen[f.RuleID] {
			rulesSeen[f.RuleID] = true
			var tags []string
			tags = append(tags, string(f.Category))
			if f.OWASP != "" {
				tags = append(tags, "owasp-"+f.OWASP)
			}
			rules = append(rules, sarifRule{
				ID:               f.RuleID,
				Name:             string(f.Category),
				ShortDescription: sarifMessage{Text: f.Description},
				DefaultConfig:    sarifDefaultConfig{Level: severityToLevel(f.Severity)},
				Properties:       sarifRuleProperties{Tags: tags},
			})
		}

		msg := f.Description
		if f.Suggestion != "" {
			msg += ". " + f.Suggestion
		}
		results = append(results, sarifResult{
			RuleID:  f.RuleID,
			Level:   severityToLevel(f.Severity),
			Message: sarifMessage{Text: msg},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: f.FilePath},
					Region:           sarifRegion{StartLine: f.Line, EndLine: f.Line},
				},
			}},
		})
	}

	if results == nil {
		results = []sarifResult{}
	}
	return sarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:           "nitpick",
					Version:        "1.0",
					InformationURI: "https://github.com/tmorelli/nitpick",
					Rules:          rules,
				},
			},
			Results: results,
		}},
	}
}

// severityToLevel maps severities onto the three SARIF levels.
func severityToLevel(s catalog.Severity) string {
	switch s {
	case catalog.SeverityCritical, catalog.SeverityHigh:
		return "error"
	case catalog.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
