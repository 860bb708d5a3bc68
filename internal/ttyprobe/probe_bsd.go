//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package ttyprobe

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// canonicalLineMode is the BSD-family (including macOS) counterpart of
// probe_linux.go: the ioctl request to fetch terminal attributes is
// TIOCGETA rather than TCGETS, but the ICANON bit means the same thing.
func canonicalLineMode(fd uintptr) bool {
	termios, err := unix.IoctlGetTermios(int(fd), unix.TIOCGETA)
	if err != nil {
		return false
	}
	return termios.Lflag&unix.ICANON == unix.ICANON
}

func isTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
