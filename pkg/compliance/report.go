// Package compliance evaluates a completed panel design against the DS/HD
// 60364 low-voltage wiring rules. Findings are data, never errors: the
// calling layer decides whether to reject a non-compliant design.
package compliance

import "fmt"

// Severity indicates how critical an issue is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue codes. Stable identifiers for the calling layer.
const (
	CodeRCDSocket            = "RCD_SOCKET"
	CodeRCDWetRoom           = "RCD_WET_ROOM"
	CodeEVRCDType            = "EV_RCD_TYPE"
	CodeCableBreakerMismatch = "CABLE_BREAKER_MISMATCH"
	CodeVoltageDrop          = "VOLTAGE_DROP"
	CodePhaseImbalance       = "PHASE_IMBALANCE"
	CodeSpareCapacity        = "SPARE_CAPACITY"
	CodeSurgeProtection      = "SURGE_PROTECTION"
)

// Issue is a single compliance finding.
type Issue struct {
	Code           string   `json:"code"`
	Severity       Severity `json:"severity"`
	StandardRef    string   `json:"standard_ref"`
	Description    string   `json:"description"`
	Area           string   `json:"area,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// Report is the complete compliance output. Compliant is true iff no
// error-severity issue was raised.
type Report struct {
	Compliant        bool     `json:"compliant"`
	Issues           []Issue  `json:"issues"`
	ErrorCount       int      `json:"error_count"`
	WarningCount     int      `json:"warning_count"`
	InfoCount        int      `json:"info_count"`
	CheckedStandards []string `json:"checked_standards"`
	Summary          string   `json:"summary"`
}

// checkedStandards is static metadata: the clauses the rule set covers,
// independent of which rules actually fired.
var checkedStandards = []string{
	"DS/HD 60364-4-41 411.3.3 (additional protection, socket outlets)",
	"DS/HD 60364-7-701 (locations containing a bath or shower)",
	"DS/HD 60364-7-722 (supplies for electric vehicles)",
	"DS/HD 60364-4-43 433.1 (overload coordination)",
	"DS/HD 60364-5-52 525 (voltage drop)",
	"DS/HD 60364-5-53 534 (surge protective devices)",
	"DS/HD 60364-8-1 (load balancing and efficiency)",
}

// NewReport creates an empty compliant report.
func NewReport() *Report {
	return &Report{
		Compliant:        true,
		Issues:           []Issue{},
		CheckedStandards: append([]string(nil), checkedStandards...),
	}
}

// AddError records an error-severity issue and marks the report non-compliant.
func (r *Report) AddError(issue Issue) {
	issue.Severity = SeverityError
	r.Issues = append(r.Issues, issue)
	r.ErrorCount++
	r.Compliant = false
	r.updateSummary()
}

// AddWarning records a warning-severity issue.
func (r *Report) AddWarning(issue Issue) {
	issue.Severity = SeverityWarning
	r.Issues = append(r.Issues, issue)
	r.WarningCount++
	r.updateSummary()
}

// AddInfo records an informational issue.
func (r *Report) AddInfo(issue Issue) {
	issue.Severity = SeverityInfo
	r.Issues = append(r.Issues, issue)
	r.InfoCount++
	r.updateSummary()
}

// ByCode returns the issues carrying the given code.
func (r *Report) ByCode(code string) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Code == code {
			out = append(out, i)
		}
	}
	return out
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		r.ErrorCount, r.WarningCount, r.InfoCount)
}
