//go:build !windows

// Package stderr captures output that libmpv writes directly to file
// descriptor 2, bypassing Go's os.Stderr. Without this, engine log spam
// interleaves with the process's own output.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Capture redirects fd 2 into a pipe and feeds each captured line to
// onLine. Must run before the playback engine initializes. The process can
// continue without capture on error; engine output just stays on the
// original stderr.
func Capture(onLine func(string)) error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go func() {
		scanner := bufio.NewScanner(pipeRead)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				onLine(line)
			}
		}
	}()

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Used for fatal errors that must reach the terminal.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
	}
}

// Restore puts the original stderr back. Called on program exit.
func Restore() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	pipeRead.Close()
	started = false
}
