//go:build linux

package ttyprobe

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// canonicalLineMode reads the terminal attributes via the TCGETS ioctl
// request and checks the ICANON bit.
func canonicalLineMode(fd uintptr) bool {
	termios, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	if err != nil {
		// tcgetattr fails when fd isn't a terminal at all.
		return false
	}
	return termios.Lflag&unix.ICANON == unix.ICANON
}

func isTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
