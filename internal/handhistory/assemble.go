package handhistory

import (
	"errors"
	"fmt"
)

// ErrMissingHandID marks a block that contained no identifiable
// header line. The whole block is discarded.
var ErrMissingHandID = errors.New("no hand id found in block")

// ParseHand assembles one hand block into a HandRecord plus its
// ordered actions. The contract is all-or-nothing: on any failure the
// hand and every one of its actions are dropped and an error carrying
// the diagnostic is returned. A fault while parsing one block never
// affects sibling blocks, so even a panic inside extraction is
// converted into a per-hand failure.
func ParseHand(lines []string) (parsed *ParsedHand, err error) {
	defer func() {
		if r := recover(); r != nil {
			parsed = nil
			err = fmt.Errorf("hand assembly fault: %v", r)
		}
	}()

	handID := extractIdentity(lines)
	if handID == "" {
		return nil, ErrMissingHandID
	}

	stakes := extractStakes(lines)
	seats := extractSeats(lines)

	hand := &HandRecord{
		HandID:    handID,
		Site:      Site,
		Game:      stakes.game,
		LimitType: stakes.limitType,
		StakesSB:  stakes.sb,
		StakesBB:  stakes.bb,
		Currency:  stakes.currency,
		TableName: extractTableName(lines),
		BtnSeat:   extractButton(lines),
		Board:     extractBoard(lines).render(),
	}

	// No seat lines means unknown, not an empty table.
	if n := len(seats); n > 0 {
		count := n
		hand.Players = &count
		size := n
		hand.TableSize = &size
	}

	hand.PotTotal, hand.Rake, hand.Winners = extractSummary(lines)

	return &ParsedHand{
		Hand:    hand,
		Actions: extractActions(lines, handID),
		Seats:   seats,
	}, nil
}
