package handhistory

import "regexp"

// patternTable holds every compiled expression the extractors use.
// It is built once at init and never mutated.
type patternTable struct {
	header    *regexp.Regexp
	limit     *regexp.Regexp
	seat      *regexp.Regexp
	button    *regexp.Regexp
	tableName *regexp.Regexp
	action    *regexp.Regexp
	returned  *regexp.Regexp
	flop      *regexp.Regexp
	turn      *regexp.Regexp
	river     *regexp.Regexp
	pot       *regexp.Regexp
	collected *regexp.Regexp
}

var patterns = patternTable{
	header: regexp.MustCompile(`(?i)^\s*Hand\s*#\s*([\w-]+)`),

	// Stakes line, e.g. "NL Hold'em ($0.01/$0.02 USD)". A currency
	// symbol may precede the amounts, a currency token may follow.
	limit: regexp.MustCompile(`(?i)(NL|PL|FL)\s*(Hold'?em|Omaha|Short\s*Deck).*\(\s*([€$₽]?)\s*([\d.,]+)\s*/\s*[€$₽]?\s*([\d.,]+)\s*(USD|EUR|RUB|CNY|€|\$|₽)?\s*\)`),

	seat:      regexp.MustCompile(`(?i)^Seat\s+(\d+):\s+(.+?)\s+\(([\d.,]+)\)`),
	button:    regexp.MustCompile(`(?i)(?:Button|Dealer).*(?:seat|at)\s+(\d+)`),
	tableName: regexp.MustCompile(`(?i)^Table\s+'([^']+)'`),

	// Player action, e.g. "Hero: raises to 0.06". The posts wildcard
	// swallows the rest of the line, so blind posts come through as one
	// coarse verb with no separate amount.
	action:   regexp.MustCompile(`(?i)^(.+?):\s+(bets|checks|calls|folds|raises\s+to|all-?in|posts.*|straddle)\s*([\d.,]+)?`),
	returned: regexp.MustCompile(`(?i)^Uncalled\s+bet\s+of\s+([\d.,]+)\s+returned\s+to\s+(.+)`),

	flop:  regexp.MustCompile(`(?i)^\*+\s*FLOP\s*\*+\s*\[([2-9TJQKA][cdhs]\s+[2-9TJQKA][cdhs]\s+[2-9TJQKA][cdhs])\]`),
	turn:  regexp.MustCompile(`(?i)^\*+\s*TURN\s*\*+.*\[([2-9TJQKA][cdhs])\]`),
	river: regexp.MustCompile(`(?i)^\*+\s*RIVER\s*\*+.*\[([2-9TJQKA][cdhs])\]`),

	pot:       regexp.MustCompile(`(?i)Total\s+pot\s+\(?([\d.,]+)\)?\s*\|\s*Rake\s+([\d.,]+)`),
	collected: regexp.MustCompile(`(?i)^(.+?)\s+collected\s+([\d.,]+)`),
}

// streetMarker is a literal substring that switches the current
// betting round during the action pass. Order is fixed: preflop,
// flop, turn, river.
type streetMarker struct {
	literal string
	street  string
}

var streetMarkers = []streetMarker{
	{"*** HOLE CARDS ***", StreetPreflop},
	{"*** FLOP ***", StreetFlop},
	{"*** TURN ***", StreetTurn},
	{"*** RIVER ***", StreetRiver},
}

// currencySymbols normalizes currency tokens to 3-letter codes.
// Unknown tokens are upper-cased verbatim.
var currencySymbols = map[string]string{
	"€": "EUR",
	"$": "USD",
	"₽": "RUB",
}
