//go:build windows

package ttyprobe

import "github.com/mattn/go-isatty"

// Windows consoles have no POSIX canonical-mode bit to query, so
// canonicalLineMode always reports false and callers fall back to
// generic mode. StreamReader's generic mode already treats input as
// arriving in arbitrary chunks, which is a safe (if not maximally
// informative) description of a Windows console too.
func canonicalLineMode(fd uintptr) bool {
	return false
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
