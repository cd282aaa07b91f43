package export

import (
	"os"

	"github.com/hhtools/hhparse/internal/handhistory"
	"github.com/hhtools/hhparse/internal/phh"
)

// WritePHH writes the parsed hands as a PHH TOML session file.
func WritePHH(path string, hands []*handhistory.ParsedHand) error {
	converted := make([]*phh.HandHistory, 0, len(hands))
	for _, h := range hands {
		converted = append(converted, phh.FromParsedHand(h))
	}
	return writeAtomic(path, func(f *os.File) error {
		return phh.EncodeSession(f, converted)
	})
}
