package commands

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/emucfg/cmd"
	"github.com/thoreinstein/emucfg/internal/config"
)

func TestVersionCmd(t *testing.T) {
	origVersion, origCommit := cmd.Version, cmd.Commit
	defer func() { cmd.Version, cmd.Commit = origVersion, origCommit }()
	cmd.Version = "1.2.3"
	cmd.Commit = "abc1234"

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)
	versionCmd.Run(versionCmd, nil)

	out := buf.String()
	for _, want := range []string{"emucfg version 1.2.3", "abc1234", runtime.Version(), config.Version} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}
