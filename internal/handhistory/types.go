// Package handhistory parses PokerCraft / GGNetwork hand history
// exports into structured hand and action records. The parser is
// deliberately forgiving: a field that fails to match stays empty, and
// only a hand with no identifiable hand id is rejected outright.
package handhistory

import "encoding/json"

// Site is the fixed origin tag stamped on every parsed hand.
const Site = "pokerok"

// Street names in dealing order.
const (
	StreetPreflop = "preflop"
	StreetFlop    = "flop"
	StreetTurn    = "turn"
	StreetRiver   = "river"
)

// HandRecord is one parsed hand. Nullable numerics are pointers: nil
// means the field was absent from the source text, never zero.
type HandRecord struct {
	HandID    string
	Site      string
	Game      string
	LimitType string
	StakesSB  *float64
	StakesBB  *float64
	Currency  string
	Players   *int
	TableName string
	TableSize *int
	BtnSeat   *int
	Board     string
	PotTotal  *float64
	Rake      *float64
	Winners   []Winner

	// ParseWarnings is only populated on assembly failure, and failed
	// hands are never emitted. It exists so the serialized schema
	// matches the table contract.
	ParseWarnings string
}

// Winner is one pot collection entry from the summary section.
type Winner struct {
	Player string   `json:"player"`
	Amount *float64 `json:"amount"`
}

// WinnerJSON serializes the winners list as a JSON array, "[]" when
// no collection lines matched.
func (h *HandRecord) WinnerJSON() string {
	if len(h.Winners) == 0 {
		return "[]"
	}
	data, err := json.Marshal(h.Winners)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// ActionRecord is one player action within a hand. Amount is negative
// for uncalled bets returned to their bettor.
type ActionRecord struct {
	HandID string
	Street string
	Player string
	Action string
	Amount *float64
}

// Seat is one seating line: seat number, display name, starting stack.
type Seat struct {
	Number int
	Name   string
	Stack  *float64
}

// ParsedHand pairs a hand with its ordered actions. Actions preserve
// source line order. Seats carries the raw seating list for exports
// that need names and stacks; the HandRecord itself only keeps the
// count.
type ParsedHand struct {
	Hand    *HandRecord
	Actions []ActionRecord
	Seats   []Seat
}
