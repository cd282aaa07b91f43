package handhistory

import (
	"strconv"
	"strings"
)

// parseAmount converts a captured numeric token to a float, accepting
// comma or dot as the decimal separator. Unparsable tokens become nil;
// a bad number never fails the hand.
func parseAmount(token string) *float64 {
	token = strings.TrimSpace(strings.ReplaceAll(token, ",", "."))
	if token == "" {
		return nil
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil
	}
	return &v
}

// normalizeCurrency maps a currency token to a 3-letter code.
func normalizeCurrency(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if code, ok := currencySymbols[token]; ok {
		return code
	}
	return strings.ToUpper(token)
}

// extractIdentity returns the hand id from the first header line, or
// "" when no line matches.
func extractIdentity(lines []string) string {
	for _, line := range lines {
		if m := patterns.header.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

// stakesInfo is the decoded game/limit/stakes descriptor.
type stakesInfo struct {
	limitType string
	game      string
	sb        *float64
	bb        *float64
	currency  string
}

// extractStakes decodes the first limit descriptor line, e.g.
// "NL Hold'em ($0.01/$0.02 USD)". Absence leaves every field empty.
func extractStakes(lines []string) stakesInfo {
	for _, line := range lines {
		m := patterns.limit.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		info := stakesInfo{
			limitType: strings.ToUpper(m[1]),
			game:      strings.ReplaceAll(strings.ToLower(m[2]), "'", ""),
			sb:        parseAmount(m[4]),
			bb:        parseAmount(m[5]),
		}
		// A trailing currency token wins over a leading symbol.
		switch {
		case m[6] != "":
			info.currency = normalizeCurrency(m[6])
		case m[3] != "":
			info.currency = normalizeCurrency(m[3])
		}
		return info
	}
	return stakesInfo{}
}

// extractSeats collects every "Seat n: name (stack)" line in order.
func extractSeats(lines []string) []Seat {
	var seats []Seat
	for _, line := range lines {
		m := patterns.seat.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		seats = append(seats, Seat{
			Number: num,
			Name:   strings.TrimSpace(m[2]),
			Stack:  parseAmount(m[3]),
		})
	}
	return seats
}

// extractButton returns the dealer-button seat from the first
// button/dealer marker line, or nil.
func extractButton(lines []string) *int {
	for _, line := range lines {
		m := patterns.button.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n
		}
	}
	return nil
}

// extractTableName returns the quoted table name, e.g. from
// "Table 'GoldRush7' 6-max", or "" when absent.
func extractTableName(lines []string) string {
	for _, line := range lines {
		if m := patterns.tableName.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractActions makes a single forward pass over the block, tracking
// the current street and collecting player actions in line order.
// Street-marker detection and action detection both run on every line;
// a line contributes at most one action.
func extractActions(lines []string, handID string) []ActionRecord {
	street := StreetPreflop
	var actions []ActionRecord

	for _, line := range lines {
		upper := strings.ToUpper(line)
		for _, marker := range streetMarkers {
			if strings.Contains(upper, marker.literal) {
				street = marker.street
				break
			}
		}

		if m := patterns.action.FindStringSubmatch(line); m != nil {
			actions = append(actions, ActionRecord{
				HandID: handID,
				Street: street,
				Player: strings.TrimSpace(m[1]),
				Action: normalizeVerb(m[2]),
				Amount: parseAmount(m[3]),
			})
			continue
		}
		if m := patterns.returned.FindStringSubmatch(line); m != nil {
			actions = append(actions, ActionRecord{
				HandID: handID,
				Street: street,
				Player: strings.TrimSpace(m[2]),
				Action: "return_uncalled",
				Amount: negate(parseAmount(m[1])),
			})
		}
	}
	return actions
}

// normalizeVerb lowercases an action verb and collapses internal
// whitespace ("raises  to" -> "raises to").
func normalizeVerb(verb string) string {
	return strings.Join(strings.Fields(strings.ToLower(verb)), " ")
}

func negate(v *float64) *float64 {
	if v == nil {
		return nil
	}
	n := -*v
	return &n
}

// boardInfo holds the last-seen card group per street. A block should
// contain one of each at most, but duplicates are tolerated by keeping
// the final occurrence.
type boardInfo struct {
	flop  string
	turn  string
	river string
}

// extractBoard scans for flop/turn/river card groups independently of
// the action pass.
func extractBoard(lines []string) boardInfo {
	var b boardInfo
	for _, line := range lines {
		if m := patterns.flop.FindStringSubmatch(line); m != nil {
			b.flop = m[1]
		}
		if m := patterns.turn.FindStringSubmatch(line); m != nil {
			b.turn = m[1]
		}
		if m := patterns.river.FindStringSubmatch(line); m != nil {
			b.river = m[1]
		}
	}
	return b
}

// render joins the revealed streets with "|", flop cards keeping their
// space separation. Out-of-sequence groups are dropped so the board is
// always 0, 3, 4, or 5 cards: a turn without a flop cannot happen in a
// well-formed hand and would otherwise produce an impossible board.
func (b boardInfo) render() string {
	if b.flop == "" {
		return ""
	}
	parts := []string{b.flop}
	if b.turn != "" {
		parts = append(parts, b.turn)
		if b.river != "" {
			parts = append(parts, b.river)
		}
	}
	return strings.Join(parts, "|")
}

// extractSummary captures the pot/rake totals and every collection
// line, preserving encounter order of winners.
func extractSummary(lines []string) (pot, rake *float64, winners []Winner) {
	for _, line := range lines {
		if m := patterns.pot.FindStringSubmatch(line); m != nil {
			pot = parseAmount(m[1])
			rake = parseAmount(m[2])
		}
		if m := patterns.collected.FindStringSubmatch(line); m != nil {
			winners = append(winners, Winner{
				Player: strings.TrimSpace(m[1]),
				Amount: parseAmount(m[2]),
			})
		}
	}
	return pot, rake, winners
}
