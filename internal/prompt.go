package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// ErrMasterMismatch is returned when the two prompted entries of the master
// password disagree, or when an entry does not match a remembered hash.
var ErrMasterMismatch = errors.New("master password entries do not match")

// PromptMaster securely prompts for the master password twice and verifies
// both entries match. If mask is true, input is read in raw mode with '*'
// echo; otherwise the terminal's hidden input (no echo) is used.
// Errors are concise and never echo password content.
func PromptMaster(mask bool) (string, error) {
	first, err := promptSecret("Enter master password: ", mask)
	if err != nil {
		return "", err
	}
	second, err := promptSecret("Re-enter master password: ", mask)
	if err != nil {
		return "", err
	}
	if first != second {
		return "", ErrMasterMismatch
	}
	return first, nil
}

// PromptMasterOnce prompts for the master password a single time. Used when
// the caller will verify the entry against a remembered master-password hash
// instead of a second entry.
func PromptMasterOnce(mask bool) (string, error) {
	return promptSecret("Enter master password: ", mask)
}

// ReadMasterLine reads the master password as the first line of r, for
// non-interactive use (stdin is a pipe). A trailing newline is stripped; no
// confirmation pass is performed.
func ReadMasterLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read master password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptSecret reads one secret line from the terminal. With mask=false it
// uses term.ReadPassword (no echo); with mask=true it switches the terminal
// to raw mode, echoes '*' per rune, and restores the terminal state even when
// interrupted by a signal.
func promptSecret(prompt string, mask bool) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("prompt requires an interactive terminal")
	}

	if !mask {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read master password")
		}
		s := string(b)
		Wipe(b)
		return s, nil
	}

	fmt.Fprint(os.Stderr, prompt)

	oldState, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("terminal not ready")
	}
	restore := func() { _ = term.Restore(fd, oldState) }

	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			restore()
			os.Exit(130)
		case <-done:
		}
	}()

	if _, err := term.MakeRaw(fd); err != nil {
		signal.Stop(sigc)
		close(done)
		return "", fmt.Errorf("terminal not ready")
	}
	defer func() { restore(); signal.Stop(sigc); close(done) }()

	var buf []rune
	for {
		var b [1]byte
		n, er := os.Stdin.Read(b[:])
		if er != nil || n == 0 {
			break
		}
		ch := rune(b[0])
		if ch == '\r' || ch == '\n' {
			fmt.Fprintln(os.Stderr)
			break
		}
		if ch == 0x7f || ch == '\b' { // backspace/delete
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				// Erase last '*'
				fmt.Fprint(os.Stderr, "\b \b")
			}
			continue
		}
		// Ignore non-printable control characters
		if ch < 0x20 || ch == 0x7f {
			continue
		}
		buf = append(buf, ch)
		fmt.Fprint(os.Stderr, "*")
	}
	return string(buf), nil
}
