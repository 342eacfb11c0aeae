package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/grantlint/grantlint/internal/rules"
)

// NoErrorsSentinel is printed when a report contains zero failing
// findings. Existing consumers key on this exact line.
const NoErrorsSentinel = "No errors found"

// Summary renders the human-readable report: one line per warning and
// failing finding, then the sentinel when nothing failed.
func Summary(r *Report) string {
	var b strings.Builder

	for _, f := range r.Findings {
		switch f.Severity {
		case rules.SeverityWarn:
			fmt.Fprintf(&b, "warning: [%s] %s: %s\n", f.Section, f.Rule, f.Message)
		case rules.SeverityFail:
			fmt.Fprintf(&b, "[%s] %s: %s\n", f.Section, f.Rule, f.Message)
		}
	}

	if !r.HasFailures() {
		b.WriteString(NoErrorsSentinel + "\n")
	}
	return b.String()
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
