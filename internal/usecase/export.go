package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"veritas-core/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
	ExportText ExportFormat = "text"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(s)); f {
	case "":
		return ExportJSON, nil
	case ExportJSON, ExportYAML, ExportText:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", entity.ErrUnsupportedFormat, s)
}

// Export encodes session and returns the bytes with their content type.
func Export(session *entity.AnalysisSession, format ExportFormat) ([]byte, string, error) {
	switch format {
	case ExportJSON:
		b, err := json.MarshalIndent(session, "", "  ")
		return b, "application/json", err
	case ExportYAML:
		b, err := yaml.Marshal(session)
		return b, "application/yaml", err
	case ExportText:
		return []byte(exportText(session)), "text/plain; charset=utf-8", nil
	}
	return nil, "", fmt.Errorf("%w: %q", entity.ErrUnsupportedFormat, format)
}

func exportText(s *entity.AnalysisSession) string {
	var b strings.Builder
	fmt.Fprintf(&b, "AI Engine Chat Analysis\n\n")
	fmt.Fprintf(&b, "Message: %s\n", s.OriginalText)
	fmt.Fprintf(&b, "Analyzed: %s\n", s.CreatedAt.Format("Jan 2, 2006 15:04"))
	fmt.Fprintf(&b, "Overall: %s (%d%%)\n", s.OverallVerdict, s.OverallConfidence)
	fmt.Fprintf(&b, "Processing time: %dms\n", s.ProcessingTimeMs)
	for _, r := range s.Results {
		fmt.Fprintf(&b, "\n%s: %s (%d%%)\n", r.EngineName, r.Verdict, r.Confidence)
		fmt.Fprintf(&b, "  %s\n", r.Analysis)
		fmt.Fprintf(&b, "  Response time: %dms, tokens: %d, cost: $%.4f\n", r.LatencyMs, r.TokenCount, r.EstimatedCost)
	}
	return b.String()
}
