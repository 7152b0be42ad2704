package common

import (
	"bufio"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// AskYesNo writes question to out and reads answers from in until one starts
// with y or n. Any other answer repeats the question.
func AskYesNo(in io.Reader, out io.Writer, question string) (bool, error) {
	reader := bufio.NewReader(in)
	fmt.Fprintf(out, "%s [y,n]: ", question)
	for {
		line, err := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if strings.HasPrefix(answer, "y") {
			return true, nil
		}
		if strings.HasPrefix(answer, "n") {
			return false, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, fmt.Errorf("no answer to %q: %w", question, io.ErrUnexpectedEOF)
			}
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
		fmt.Fprintf(out, "Invalid input: %s [y,n]: ", question)
	}
}
