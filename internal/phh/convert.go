package phh

import (
	"fmt"
	"math"
	"strings"

	"github.com/hhtools/hhparse/internal/handhistory"
)

// variantCodes maps (game, limit) to PHH variant codes.
var variantCodes = map[string]string{
	"holdem/NL":    "NT",
	"holdem/PL":    "PT",
	"holdem/FL":    "FT",
	"omaha/PL":     "PO",
	"omaha/NL":     "NO",
	"omaha/FL":     "FO",
	"shortdeck/NL": "NS",
}

// FromParsedHand converts one parsed hand into PHH form. The source
// tables carry dollar floats; PHH wants integer cents, so amounts are
// rounded. Actions with no seated player and bookkeeping actions
// (posts, straddles, returned bets) have no PHH representation and
// are dropped.
func FromParsedHand(p *handhistory.ParsedHand) *HandHistory {
	hand := p.Hand

	out := &HandHistory{
		Variant:  variantCode(hand.Game, hand.LimitType),
		Table:    hand.TableName,
		HandID:   hand.HandID,
		Currency: hand.Currency,
		MinBet:   cents(hand.StakesBB),
		Antes:    make([]int, len(p.Seats)),
	}

	seatIndex := make(map[string]int, len(p.Seats))
	for i, seat := range p.Seats {
		seatIndex[seat.Name] = i
		out.Seats = append(out.Seats, seat.Number)
		out.Players = append(out.Players, seat.Name)
		out.StartingStacks = append(out.StartingStacks, cents(seat.Stack))
	}
	out.SeatCount = len(p.Seats)

	if hand.StakesSB != nil || hand.StakesBB != nil {
		out.BlindsOrStraddles = []int{cents(hand.StakesSB), cents(hand.StakesBB)}
	}

	out.Actions = convertActions(p, seatIndex)

	if len(hand.Winners) > 0 {
		out.Winnings = make([]int, len(p.Seats))
		for _, w := range hand.Winners {
			if i, ok := seatIndex[w.Player]; ok {
				out.Winnings[i] = cents(w.Amount)
			}
		}
	}
	return out
}

// convertActions renders the action stream, inserting "d db" board
// deals at street transitions using the hand's recorded board groups.
func convertActions(p *handhistory.ParsedHand, seatIndex map[string]int) []string {
	deals := boardDeals(p.Hand.Board)
	street := handhistory.StreetPreflop
	var actions []string

	for _, act := range p.Actions {
		if act.Street != street {
			actions = append(actions, dealsBetween(street, act.Street, deals)...)
			street = act.Street
		}
		idx, ok := seatIndex[act.Player]
		if !ok {
			continue
		}
		player := fmt.Sprintf("p%d", idx+1)

		switch act.Action {
		case "folds":
			actions = append(actions, player+" f")
		case "checks", "calls":
			actions = append(actions, player+" cc")
		case "bets", "raises to", "all-in", "allin":
			if act.Amount == nil {
				continue
			}
			actions = append(actions, fmt.Sprintf("%s cbr %d", player, cents(act.Amount)))
		default:
			// posts, straddles and returned bets are bookkeeping lines
			// with no PHH action code.
		}
	}
	return actions
}

var streetOrder = []string{
	handhistory.StreetPreflop,
	handhistory.StreetFlop,
	handhistory.StreetTurn,
	handhistory.StreetRiver,
}

// boardDeals splits the rendered board ("Ah Kd 7s|5c|2d") into one
// card run per post-flop street.
func boardDeals(board string) map[string]string {
	deals := make(map[string]string)
	if board == "" {
		return deals
	}
	groups := strings.Split(board, "|")
	for i, group := range groups {
		run := strings.ReplaceAll(group, " ", "")
		if i+1 < len(streetOrder) {
			deals[streetOrder[i+1]] = run
		}
	}
	return deals
}

// dealsBetween emits the board deals for every street crossed between
// from and to, so a flop with no betting still gets its deal line.
func dealsBetween(from, to string, deals map[string]string) []string {
	var out []string
	crossing := false
	for _, street := range streetOrder {
		if street == from {
			crossing = true
			continue
		}
		if !crossing {
			continue
		}
		if run, ok := deals[street]; ok {
			out = append(out, "d db "+run)
		}
		if street == to {
			break
		}
	}
	return out
}

// variantCode returns the PHH variant for a game/limit pair, falling
// back to NT for anything unrecognized.
func variantCode(game, limit string) string {
	game = strings.ReplaceAll(game, " ", "")
	if code, ok := variantCodes[game+"/"+limit]; ok {
		return code
	}
	return "NT"
}

// cents converts a dollar amount to integer cents, nil meaning zero.
func cents(v *float64) int {
	if v == nil {
		return 0
	}
	return int(math.Round(*v * 100))
}
