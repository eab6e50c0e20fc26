// SPDX-License-Identifier: MIT

// Package source reads input texts in a declared character encoding and
// returns them as UTF-8 strings.
package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrNotUTF8 is returned when a file declared as UTF-8 is not valid UTF-8.
var ErrNotUTF8 = errors.New("source: text is not valid UTF-8")

// Read loads path and decodes it from enc (a WHATWG label such as
// "windows-1251"); enc "" means UTF-8. A leading UTF-8 BOM is dropped.
func Read(path, enc string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("source: %w", err)
	}

	return Decode(data, enc)
}

// Decode converts data from enc to a UTF-8 string.
//
// UTF-8 input is validated first: the x/text decoder would replace bad
// bytes with U+FFFD instead of failing.
func Decode(data []byte, enc string) (string, error) {
	if enc == "" || strings.EqualFold(enc, "utf-8") || strings.EqualFold(enc, "utf8") {
		if !utf8.Valid(data) {
			return "", ErrNotUTF8
		}

		return stripBOM(data)
	}

	e, err := htmlindex.Get(enc)
	if err != nil {
		return "", fmt.Errorf("source: encoding %q: %w", enc, err)
	}
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("source: decode %s: %w", enc, err)
	}

	return stripBOM(out)
}

// stripBOM drops a leading U+FEFF from UTF-8 text.
func stripBOM(data []byte) (string, error) {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("source: %w", err)
	}

	return string(out), nil
}
