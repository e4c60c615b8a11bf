package output

import (
	"fmt"
	"io"
	"os"

	"github.com/tmorelli/nitpick/internal/catalog"
	"github.com/tmorelli/nitpick/internal/review"
)

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *review.Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "summary":
		return &SummaryWriter{}, nil
	case "detailed", "text":
		return &DetailedWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	case "sarif":
		return &SARIFWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the given file path, or stdout when
// the path is empty.
func WriteReport(report *review.Report, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, report)
}

// severityOrder lists severities from most to least severe for grouped
// presentation.
var severityOrder = []catalog.Severity{
	catalog.SeverityCritical,
	catalog.SeverityHigh,
	catalog.SeverityMedium,
	catalog.SeverityLow,
	catalog.SeverityInfo,
}

// categoryOrder fixes the category listing order in summaries.
var categoryOrder = []catalog.Category{
	catalog.CategorySecurity,
	catalog.CategoryPerformance,
	catalog.CategoryMaintainability,
	catalog.CategoryStyle,
	catalog.CategoryTesting,
	catalog.CategoryDocumentation,
}

func severityIcon(s catalog.Severity) string {
	switch s {
	case catalog.SeverityCritical:
		return "✖"
	case catalog.SeverityHigh:
		return "▲"
	case catalog.SeverityMedium:
		return "●"
	case catalog.SeverityLow:
		return "○"
	default:
		return "·"
	}
}
