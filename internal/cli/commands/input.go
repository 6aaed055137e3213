package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readPassword — точка подмены term.ReadPassword в тестах.
var readPassword = term.ReadPassword

// Prompt — куда печатаются приглашения ввода; stdout остаётся только под JSON.
var Prompt io.Writer = os.Stderr

// promptPassword печатает приглашение и читает пароль без эха.
func promptPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

// printJSON выводит тело ответа с отступами; невалидный JSON печатается как есть.
func printJSON(w io.Writer, raw json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Fprintln(w, string(raw))
		return
	}
	fmt.Fprintln(w, buf.String())
}
