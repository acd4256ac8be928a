package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// readPassword and copyToClipboard are replaced in tests.
var (
	readPassword    = term.ReadPassword
	copyToClipboard = clipboard.WriteAll
)

var errPINConfirmation = errors.New("pins do not match")

// promptPIN prints prompt to w and reads a PIN from the terminal without
// echo.
func promptPIN(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pin, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("error reading pin: %w", err)
	}
	return strings.TrimSpace(string(pin)), nil
}
