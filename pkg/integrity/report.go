package integrity

import "fmt"

// Report is the ordered, non-throwing result of validating a dataset.
// Findings appear in deterministic order (nations in document order, then
// zones in document order) so reports over identical input are identical
// and diffable in dataset review.
type Report struct {
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Add appends a finding to the report.
func (r *Report) Add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// Len returns the total number of findings.
func (r *Report) Len() int {
	return len(r.Findings)
}

// Errors returns the error-severity findings, in report order.
func (r *Report) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity findings, in report order.
func (r *Report) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

// HasErrors reports whether the dataset carries any error-severity finding.
func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// IsClean reports whether the report carries no findings at all.
func (r *Report) IsClean() bool {
	return len(r.Findings) == 0
}

// Summary returns a one-line count of findings by severity.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d error(s), %d warning(s)", len(r.Errors()), len(r.Warnings()))
}

func (r *Report) filter(severity Severity) []Finding {
	out := make([]Finding, 0, len(r.Findings))
	for _, f := range r.Findings {
		if f.Severity == severity {
			out = append(out, f)
		}
	}
	return out
}
