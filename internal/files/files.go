// Package files reads and writes whole text files as UTF-8.
package files

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

var ErrNotUTF8 = errors.New("file is not valid UTF-8 text")

// Read returns the content of path with CRLF and lone CR line breaks
// converted to LF.
func Read(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, bufio.NewReader(file)); err != nil {
		return "", err
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", fmt.Errorf("%s: %w", path, ErrNotUTF8)
	}

	text := strings.ReplaceAll(buf.String(), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}

// Write replaces the content of path with text, creating the file if needed.
func Write(path string, text string) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(file, strings.NewReader(text))
	return err
}
