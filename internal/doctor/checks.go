package doctor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/emucfg/internal/backup"
	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/store"
)

// PathPermissionCheck validates the settings file, its directory and the
// backup directory.
type PathPermissionCheck struct {
	PermissionFixer

	settingsFile string
	backupDir    string
}

var (
	_ Check = (*PathPermissionCheck)(nil)
	_ Fixer = (*PathPermissionCheck)(nil)
)

// NewPathPermissionCheck creates a new path permission check.
func NewPathPermissionCheck(settingsFile, backupDir string) *PathPermissionCheck {
	return &PathPermissionCheck{settingsFile: settingsFile, backupDir: backupDir}
}

// Name returns the unique identifier for this check.
func (c *PathPermissionCheck) Name() string {
	return "path-permissions"
}

// Category returns the grouping for this check.
func (c *PathPermissionCheck) Category() string {
	return "filesystem"
}

// Run executes the path and permission diagnostic check.
func (c *PathPermissionCheck) Run() *CheckResult {
	var issues []pathIssue
	issues = append(issues, c.checkDirectory(filepath.Dir(c.settingsFile), "settings directory")...)
	issues = append(issues, c.checkFile(c.settingsFile, "settings file")...)
	issues = append(issues, c.checkDirectory(c.backupDir, "backup directory")...)

	c.setIssues(issues)
	return c.buildResult(issues, 3)
}

// pathIssue represents a single path or permission problem.
type pathIssue struct {
	Path        string
	Role        string
	Type        string // "file" or "directory"
	Problem     string
	Severity    Severity
	Permissions string
	Fixable     bool
	FixHint     string
}

// checkFile validates a file path and permissions. A missing file is fine;
// it is created on the first save.
func (c *PathPermissionCheck) checkFile(path, role string) []pathIssue {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return []pathIssue{{
			Path:     path,
			Role:     role,
			Type:     "file",
			Problem:  fmt.Sprintf("cannot stat file: %v", err),
			Severity: SeverityError,
		}}
	}
	if info.IsDir() {
		return []pathIssue{{
			Path:     path,
			Role:     role,
			Type:     "file",
			Problem:  "expected file but found directory",
			Severity: SeverityError,
		}}
	}

	f, err := os.Open(path)
	if err != nil {
		return []pathIssue{{
			Path:        path,
			Role:        role,
			Type:        "file",
			Problem:     "file is not readable",
			Severity:    SeverityError,
			Permissions: formatPermissions(info.Mode()),
			FixHint:     "chmod 600 " + path,
		}}
	}
	f.Close()

	if runtime.GOOS == "windows" {
		return nil
	}
	if info.Mode().Perm()&0o002 != 0 {
		return []pathIssue{{
			Path:        path,
			Role:        role,
			Type:        "file",
			Problem:     "file is world-writable",
			Severity:    SeverityWarning,
			Permissions: formatPermissions(info.Mode()),
			Fixable:     true,
			FixHint:     "chmod 600 " + path,
		}}
	}
	return nil
}

// checkDirectory validates a directory path and permissions. A missing
// directory is fine; it is created on demand.
func (c *PathPermissionCheck) checkDirectory(path, role string) []pathIssue {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return []pathIssue{{
			Path:     path,
			Role:     role,
			Type:     "directory",
			Problem:  fmt.Sprintf("cannot stat directory: %v", err),
			Severity: SeverityError,
		}}
	}
	if !info.IsDir() {
		return []pathIssue{{
			Path:     path,
			Role:     role,
			Type:     "directory",
			Problem:  "expected directory but found file",
			Severity: SeverityError,
		}}
	}

	var issues []pathIssue
	if !isDirectoryWritable(path) {
		issues = append(issues, pathIssue{
			Path:        path,
			Role:        role,
			Type:        "directory",
			Problem:     "directory is not writable",
			Severity:    SeverityWarning,
			Permissions: formatPermissions(info.Mode()),
			FixHint:     "chmod u+w " + path,
		})
	}

	if runtime.GOOS != "windows" && info.Mode().Perm()&0o002 != 0 {
		issues = append(issues, pathIssue{
			Path:        path,
			Role:        role,
			Type:        "directory",
			Problem:     "directory is world-writable",
			Severity:    SeverityWarning,
			Permissions: formatPermissions(info.Mode()),
			Fixable:     true,
			FixHint:     "chmod 700 " + path,
		})
	}
	return issues
}

// isDirectoryWritable tests if a directory is writable by creating a temp file.
func isDirectoryWritable(path string) bool {
	tmpFile, err := os.CreateTemp(path, ".emucfg-doctor-*")
	if err != nil {
		return false
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	os.Remove(tmpPath)
	return true
}

// buildResult constructs the final CheckResult from accumulated issues.
func (c *PathPermissionCheck) buildResult(issues []pathIssue, checked int) *CheckResult {
	if len(issues) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  fmt.Sprintf("all %d paths have valid permissions", checked),
		}
	}

	status := SeverityPass
	issueDetails := make([]map[string]any, 0, len(issues))
	var fixHints []string
	fixable := false
	for _, issue := range issues {
		status = max(status, issue.Severity)

		issueMap := map[string]any{
			"path":     issue.Path,
			"role":     issue.Role,
			"type":     issue.Type,
			"problem":  issue.Problem,
			"severity": issue.Severity.String(),
		}
		if issue.Permissions != "" {
			issueMap["permissions"] = issue.Permissions
		}
		if issue.FixHint != "" {
			issueMap["fix_hint"] = issue.FixHint
			fixHints = append(fixHints, issue.FixHint)
		}
		if issue.Fixable {
			fixable = true
		}
		issueDetails = append(issueDetails, issueMap)
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   status,
		Message:  fmt.Sprintf("found %d permission issue(s) across %d paths", len(issues), checked),
		Details: map[string]any{
			"checked_paths": checked,
			"issue_count":   len(issues),
			"issues":        issueDetails,
		},
		Fixable: fixable,
		FixHint: strings.Join(fixHints, "; "),
	}
}

// formatPermissions returns a human-readable permission string (e.g., "0644").
func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}

// SyntaxCheck validates that the settings file is JSON and the options
// file is YAML.
type SyntaxCheck struct {
	settingsFile string
	optionsFile  string
}

var _ Check = (*SyntaxCheck)(nil)

// NewSyntaxCheck creates a new SyntaxCheck.
func NewSyntaxCheck(settingsFile, optionsFile string) *SyntaxCheck {
	return &SyntaxCheck{settingsFile: settingsFile, optionsFile: optionsFile}
}

// Name returns the unique identifier for this check.
func (c *SyntaxCheck) Name() string {
	return "file-syntax"
}

// Category returns the grouping for this check.
func (c *SyntaxCheck) Category() string {
	return "settings"
}

// syntaxFileResult represents the validation result for a single file.
type syntaxFileResult struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Run executes the syntax validation check.
func (c *SyntaxCheck) Run() *CheckResult {
	files := []syntaxFileResult{
		validateFile(c.settingsFile, validateJSON),
		validateFile(c.optionsFile, validateYAML),
	}

	var errorCount, passCount int
	for _, fr := range files {
		switch fr.Status {
		case "pass":
			passCount++
		case "error":
			errorCount++
		}
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details: map[string]any{
			"files":  files,
			"passed": passCount,
			"errors": errorCount,
		},
	}

	switch {
	case errorCount > 0:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d file(s) have syntax errors", errorCount)
		result.FixHint = "fix the syntax, or run: emucfg reset"
	case passCount > 0:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d file(s) parsed successfully", passCount)
	default:
		result.Status = SeverityInfo
		result.Message = "no settings or options file yet"
	}
	return result
}

// validateFile reads path and runs validate on non-empty contents.
func validateFile(path string, validate func(data []byte) string) syntaxFileResult {
	fr := syntaxFileResult{Path: path}
	if path == "" {
		fr.Status = "info"
		fr.Message = "not configured"
		return fr
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fr.Status = "info"
			fr.Message = "file does not exist"
			return fr
		}
		fr.Status = "error"
		fr.Message = fmt.Sprintf("read error: %v", err)
		return fr
	}

	if len(data) == 0 {
		fr.Status = "info"
		fr.Message = "empty file"
		return fr
	}

	if msg := validate(data); msg != "" {
		fr.Status = "error"
		fr.Message = msg
		return fr
	}
	fr.Status = "pass"
	return fr
}

// validateJSON returns a positioned error message, or "" when data parses.
func validateJSON(data []byte) string {
	var v any
	err := json.Unmarshal(data, &v)
	if err == nil {
		return ""
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(data, int(syntaxErr.Offset))
		return fmt.Sprintf("JSON syntax error at line %d, column %d: %s", line, col, syntaxErr.Error())
	}
	return fmt.Sprintf("JSON error: %v", err)
}

// validateYAML returns the parser's message, or "" when data parses.
// yaml.v3 messages already carry the line number.
func validateYAML(data []byte) string {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return fmt.Sprintf("YAML error: %v", err)
	}
	return ""
}

// offsetToLineCol converts a byte offset to line and column numbers.
// Lines and columns are 1-indexed.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	offset = min(max(offset, 0), len(data))

	line = 1
	lineStart := 0
	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	col = offset - lineStart + 1
	return line, col
}

// SettingsCheck decodes the settings file the way startup does and
// reports what startup would discard or repair.
type SettingsCheck struct {
	path  string
	store store.Store
}

var _ Check = (*SettingsCheck)(nil)

// NewSettingsCheck creates a settings content check reading through s.
// A nil s reads from the file system.
func NewSettingsCheck(path string, s store.Store) *SettingsCheck {
	if s == nil {
		s = store.NewFileStore()
	}
	return &SettingsCheck{path: path, store: s}
}

// Name returns the unique identifier for this check.
func (c *SettingsCheck) Name() string {
	return "settings-content"
}

// Category returns the grouping for this check.
func (c *SettingsCheck) Category() string {
	return "settings"
}

// Run executes the settings content check.
func (c *SettingsCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	data, err := c.store.ReadAll(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.Status = SeverityInfo
			result.Message = "no settings file; defaults are used and written on first save"
			return result
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read settings: %v", err)
		return result
	}

	cfg, issues, err := config.Inspect(data)
	if err != nil {
		result.Status = SeverityError
		result.Message = "settings file is ignored entirely: " + err.Error()
		result.FixHint = "emucfg reset"
		return result
	}

	result.Status = SeverityPass
	result.Message = "settings decode cleanly"
	result.Details["version"] = cfg.Version
	if cfg.Version != config.Version {
		result.Details["current_version"] = config.Version
	}
	if cfg.FirstRun {
		result.Details["first_run_pending"] = true
	}

	var hints []string
	if len(issues) > 0 {
		fields := make([]string, 0, len(issues))
		reasons := make(map[string]string, len(issues))
		for _, issue := range issues {
			fields = append(fields, issue.Field)
			reasons[issue.Field] = issue.Err.Error()
		}
		result.Details["ignored_fields"] = reasons
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d field(s) fall back to defaults: %s",
			len(issues), strings.Join(fields, ", "))
		hints = append(hints, "compare with: emucfg show")
	}

	if n := cfg.RemoveObsoleteConfig(); n > 0 {
		result.Details["obsolete_settings"] = n
		if result.Status == SeverityPass {
			result.Message = fmt.Sprintf("%d obsolete setting(s)", n)
		}
		result.Status = max(result.Status, SeverityWarning)
		hints = append(hints, "emucfg cleanup")
	}

	result.FixHint = strings.Join(hints, "; ")
	return result
}

// BackupCheck verifies every stored backup against its recorded hash.
type BackupCheck struct {
	mgr *backup.Manager
}

var _ Check = (*BackupCheck)(nil)

// NewBackupCheck creates a backup integrity check.
func NewBackupCheck(mgr *backup.Manager) *BackupCheck {
	return &BackupCheck{mgr: mgr}
}

// Name returns the unique identifier for this check.
func (c *BackupCheck) Name() string {
	return "backups"
}

// Category returns the grouping for this check.
func (c *BackupCheck) Category() string {
	return "backup"
}

// Run executes the backup integrity check.
func (c *BackupCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"dir": c.mgr.Dir()},
	}

	manifests, err := c.mgr.List()
	if err != nil {
		if errors.Is(err, backup.ErrNoBackupsFound) {
			result.Status = SeverityInfo
			result.Message = "no backups yet"
			return result
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot list backups: %v", err)
		return result
	}

	var corrupted []string
	for _, m := range manifests {
		if _, err := c.mgr.Verify(m.ID); err != nil {
			corrupted = append(corrupted, m.ID)
		}
	}

	result.Details["count"] = len(manifests)
	result.Details["newest"] = manifests[0].ID
	if len(corrupted) > 0 {
		result.Details["corrupted"] = corrupted
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d of %d backup(s) fail verification", len(corrupted), len(manifests))
		result.FixHint = "remove the listed backups from " + c.mgr.Dir()
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d backup(s) verified", len(manifests))
	return result
}
