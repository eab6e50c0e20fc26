// SPDX-License-Identifier: MIT

package frequency

import "golang.org/x/text/unicode/norm"

// Option customizes AnalyzeText.
type Option func(*textConfig)

type textConfig struct {
	normalize bool
	form      norm.Form
}

// WithNormalization applies the Unicode normalization form f to the text
// before counting, so that precomposed and decomposed spellings of the same
// letter ("ё" vs "е"+U+0308) are counted as one symbol.
func WithNormalization(f norm.Form) Option {
	return func(c *textConfig) {
		c.normalize = true
		c.form = f
	}
}

// ParseForm maps the names "NFC", "NFD", "NFKC" and "NFKD" to a norm.Form.
func ParseForm(name string) (norm.Form, bool) {
	switch name {
	case "NFC", "nfc":
		return norm.NFC, true
	case "NFD", "nfd":
		return norm.NFD, true
	case "NFKC", "nfkc":
		return norm.NFKC, true
	case "NFKD", "nfkd":
		return norm.NFKD, true
	}

	return 0, false
}
