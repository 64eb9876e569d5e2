package doctor

import (
	"fmt"
	"time"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// Check is one diagnostic. Run must not modify anything on disk; repairs
// go through Fixer.
type Check interface {
	Name() string
	Category() string
	Run() *CheckResult
}

// Runner runs checks in registration order. A check that panics or
// returns nil is reported as an error result; the remaining checks still run.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner returns an empty Runner.
func NewRunner() *Runner {
	return &Runner{now: time.Now}
}

// AddCheck registers c.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Checks returns the registered checks in run order.
func (r *Runner) Checks() []Check {
	return r.checks
}

// Run executes every check and tallies the results.
func (r *Runner) Run() *Report {
	report := &Report{
		Timestamp: r.now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}
	for _, c := range r.checks {
		result := runIsolated(c)
		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}
	return report
}

func runIsolated(c Check) (result *CheckResult) {
	defer func() {
		if p := recover(); p != nil {
			result = &CheckResult{
				Status:  SeverityError,
				Message: fmt.Sprintf("check panicked: %v", p),
			}
		}
		if result == nil {
			result = &CheckResult{Status: SeverityError, Message: "check returned no result"}
		}
		if result.Name == "" {
			result.Name = c.Name()
		}
		if result.Category == "" {
			result.Category = c.Category()
		}
	}()
	return c.Run()
}

// Fix runs every Fixer among the checks that has pending work. Run must
// have been called first. Failed repairs are returned alongside successful
// ones.
func (r *Runner) Fix() []FixResult {
	var results []FixResult
	for _, c := range r.checks {
		if f, ok := c.(Fixer); ok && f.CanFix() {
			results = append(results, f.Fix()...)
		}
	}
	return results
}

// Report is the outcome of one Runner.Run.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// HasErrors reports whether any check failed.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check warned.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// Worst is the highest severity in the report, SeverityPass when empty.
func (r *Report) Worst() Severity {
	worst := SeverityPass
	for _, res := range r.Results {
		worst = max(worst, res.Status)
	}
	return worst
}

// ExitCode maps the report to the binary's exit codes: 0 when clean or
// informational, ExitUser for warnings, ExitSystem for errors.
func (r *Report) ExitCode() int {
	switch r.Worst() {
	case SeverityError:
		return errors.ExitSystem
	case SeverityWarning:
		return errors.ExitUser
	default:
		return errors.ExitSuccess
	}
}
