// Package phh renders parsed hands in the Poker Hand History (PHH)
// TOML format, one [hand_N] section per hand. Monetary amounts are
// integer cents, per the PHH convention.
package phh

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// HandHistory is a single hand in PHH form.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Table             string   `toml:"table,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Seats             []int    `toml:"seats,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	Winnings          []int    `toml:"winnings,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
	Currency          string   `toml:"currency,omitempty"`
}

// Encode writes one hand as TOML.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeSession writes hands as a sectioned session file, sections
// named hand_1, hand_2, ... in the order given.
func EncodeSession(w io.Writer, hands []*HandHistory) error {
	for i, hand := range hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[hand_%d]\n", i+1); err != nil {
			return err
		}
		if err := Encode(w, hand); err != nil {
			return fmt.Errorf("phh: encode hand %d: %w", i+1, err)
		}
	}
	return nil
}
