package source

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeLines resolves the byte payload to text lines. PokerCraft
// exports are usually UTF-8, but Russian-locale clients historically
// produced cp1251 logs; anything that is not valid UTF-8 is decoded
// as cp1251 with replacement, which also covers cp1252 punctuation
// well enough for the line patterns to match.
func decodeLines(data []byte) []string {
	text := decodeText(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
	if err != nil {
		// charmap decoding is total; this is unreachable in practice
		// but a raw fallback keeps the batch alive regardless.
		return string(data)
	}
	return string(decoded)
}
