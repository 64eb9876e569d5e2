package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is backed by a terminal. Anything exposing Fd,
// such as *os.File, is checked; other writers never are.
func IsTTY(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorEnabled decides whether the text handler colorizes output written
// to w. NO_COLOR (https://no-color.org) and TERM=dumb always disable it.
func colorEnabled(w io.Writer) bool {
	return colorAllowed(os.LookupEnv, IsTTY(w))
}

func colorAllowed(lookup func(string) (string, bool), tty bool) bool {
	if _, set := lookup("NO_COLOR"); set {
		return false
	}
	if v, _ := lookup("TERM"); v == "dumb" {
		return false
	}
	return tty
}
