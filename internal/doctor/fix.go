package doctor

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/paths"
	"github.com/thoreinstein/emucfg/pkg/fileutil"
)

// Fixer is implemented by checks that can repair what Run found.
type Fixer interface {
	// CanFix reports pending repairs from the last Run.
	CanFix() bool
	Fix() []FixResult
}

// FixResult is one attempted repair.
type FixResult struct {
	Path        string
	Before      fs.FileMode
	After       fs.FileMode
	Fixed       bool
	Description string
	Err         error
}

// PermissionFixer resets world-writable paths to the modes emucfg creates
// them with: DefaultFilePerm for files, DefaultDirPerm for directories.
type PermissionFixer struct {
	issues []pathIssue
}

func (f *PermissionFixer) CanFix() bool {
	return f.CountFixable() > 0
}

// Fix repairs every fixable issue and forgets them, so a second Fix
// without a new Run does nothing.
func (f *PermissionFixer) Fix() []FixResult {
	var results []FixResult
	for _, issue := range f.issues {
		if issue.Fixable {
			results = append(results, fixPermissions(issue))
		}
	}
	f.issues = nil
	return results
}

func fixPermissions(issue pathIssue) FixResult {
	res := FixResult{Path: issue.Path}

	var target fs.FileMode
	switch issue.Type {
	case "file":
		target = fileutil.DefaultFilePerm
	case "directory":
		target = paths.DefaultDirPerm
	default:
		res.Err = errors.Newf("cannot fix %s of type %q", issue.Path, issue.Type)
		res.Description = res.Err.Error()
		return res
	}

	// Lstat so a path swapped for a symlink since Run is never chmodded
	// through to its target.
	info, err := os.Lstat(issue.Path)
	if err != nil {
		res.Err = errors.Wrapf(err, "stat %s", issue.Path)
		res.Description = "path is gone"
		return res
	}
	res.Before = info.Mode().Perm()
	if info.Mode()&fs.ModeSymlink != 0 {
		res.Err = errors.Newf("%s is a symlink", issue.Path)
		res.Description = "refusing to follow a symlink"
		return res
	}

	if err := os.Chmod(issue.Path, target); err != nil {
		res.Err = errors.Wrapf(err, "chmod %04o %s", target, issue.Path)
		res.Description = fmt.Sprintf("chmod %04o failed", target)
		return res
	}
	res.After = target
	res.Fixed = true
	res.Description = fmt.Sprintf("%04o -> %04o", res.Before, target)
	return res
}

func (f *PermissionFixer) setIssues(issues []pathIssue) {
	f.issues = issues
}

// CountFixable returns the number of repairs Fix would attempt.
func (f *PermissionFixer) CountFixable() int {
	n := 0
	for _, issue := range f.issues {
		if issue.Fixable {
			n++
		}
	}
	return n
}
