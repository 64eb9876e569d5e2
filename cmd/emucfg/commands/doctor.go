package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/backup"
	"github.com/thoreinstein/emucfg/internal/doctor"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
	"github.com/thoreinstein/emucfg/internal/paths"
)

var (
	doctorJSON bool
	doctorAll  bool
	doctorFix  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check, including passed ones")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"repair permission problems")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose settings problems",
	Long: `Check the settings file, the options file and the backups without
changing anything (unless --fix is given).

Reports sections that startup would silently replace with defaults,
obsolete settings, unsafe permissions and backups that fail verification.

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDoctor(cmd, cmd.OutOrStdout())
	},
}

// errDoctorWarnings is a sentinel error for exit code 1.
var errDoctorWarnings = errors.New("warnings found")

// errDoctorErrors is a sentinel error for exit code 2.
var errDoctorErrors = errors.New("errors found")

// optionsPath returns the options file doctor validates.
func optionsPath() string {
	if optionsFile != "" {
		return optionsFile
	}
	return filepath.Join(paths.AppConfigDir(), paths.AppName+".yaml")
}

func newDoctorRunner(cmd *cobra.Command) *doctor.Runner {
	o := flags.Options()
	mgr := backup.NewManager(backup.WithLogger(logging.FromContext(cmd.Context())))

	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewPathPermissionCheck(o.SettingsFile, mgr.Dir()))
	runner.AddCheck(doctor.NewSyntaxCheck(o.SettingsFile, optionsPath()))
	runner.AddCheck(doctor.NewSettingsCheck(o.SettingsFile, nil))
	runner.AddCheck(doctor.NewBackupCheck(mgr))
	return runner
}

func runDoctor(cmd *cobra.Command, w io.Writer) error {
	runner := newDoctorRunner(cmd)
	report := runner.Run()

	if doctorFix {
		if applyFixes(runner, w) > 0 {
			report = runner.Run()
		}
	}

	if err := outputDoctorReport(report, w); err != nil {
		return err
	}

	switch code := report.ExitCode(); code {
	case errors.ExitSystem:
		return errors.NewExitError(errDoctorErrors, code)
	case errors.ExitUser:
		return errors.NewExitError(errDoctorWarnings, code)
	}
	return nil
}

// applyFixes runs the pending repairs and returns how many paths were
// repaired.
func applyFixes(runner *doctor.Runner, w io.Writer) int {
	fixed := 0
	for _, r := range runner.Fix() {
		if r.Fixed {
			fixed++
		}
		if doctorJSON || quiet {
			continue
		}
		if r.Fixed {
			fmt.Fprintf(w, "%s fixed %s (%s)\n", okMark, r.Path, r.Description)
		} else {
			fmt.Fprintf(w, "%s could not fix %s: %s\n", failMark, r.Path, r.Description)
		}
	}
	return fixed
}

func outputDoctorReport(report *doctor.Report, w io.Writer) error {
	if quiet {
		return nil
	}
	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON")
	}
	outputDoctorText(report, w)
	return nil
}

func outputDoctorText(report *doctor.Report, w io.Writer) {
	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !doctorAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return okMark
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return warn("⚠")
	case doctor.SeverityError:
		return failMark
	default:
		return "?"
	}
}
