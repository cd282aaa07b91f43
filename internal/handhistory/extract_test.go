package handhistory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  *float64
	}{
		{"dot decimal", "0.05", floatPtr(0.05)},
		{"comma decimal", "0,05", floatPtr(0.05)},
		{"integer", "100", floatPtr(100)},
		{"empty", "", nil},
		{"garbage", "1.2.3", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAmount(tt.token)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "EUR", normalizeCurrency("€"))
	assert.Equal(t, "USD", normalizeCurrency("$"))
	assert.Equal(t, "RUB", normalizeCurrency("₽"))
	assert.Equal(t, "CNY", normalizeCurrency("cny"))
	assert.Equal(t, "USD", normalizeCurrency("usd"))
	assert.Equal(t, "", normalizeCurrency(""))
}

func TestExtractStakes(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		limit    string
		game     string
		sb, bb   float64
		currency string
	}{
		{
			name: "NL holdem dollar amounts",
			line: "Table: NL Hold'em ($0.01/$0.02 USD)",
			limit: "NL", game: "holdem", sb: 0.01, bb: 0.02, currency: "USD",
		},
		{
			name: "PL omaha comma decimals euro symbol",
			line: "PL Omaha (0,5/1 €)",
			limit: "PL", game: "omaha", sb: 0.5, bb: 1, currency: "EUR",
		},
		{
			name: "FL short deck",
			line: "FL Short Deck (5/10 CNY)",
			limit: "FL", game: "short deck", sb: 5, bb: 10, currency: "CNY",
		},
		{
			name: "leading symbol only",
			line: "NL Hold'em (₽25/₽50)",
			limit: "NL", game: "holdem", sb: 25, bb: 50, currency: "RUB",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := extractStakes([]string{tt.line})
			assert.Equal(t, tt.limit, info.limitType)
			assert.Equal(t, tt.game, info.game)
			require.NotNil(t, info.sb)
			require.NotNil(t, info.bb)
			assert.InDelta(t, tt.sb, *info.sb, 1e-9)
			assert.InDelta(t, tt.bb, *info.bb, 1e-9)
			assert.Equal(t, tt.currency, info.currency)
		})
	}
}

func TestExtractStakesAbsent(t *testing.T) {
	info := extractStakes([]string{"Hand #1", "Seat 1: Hero (2.00)"})
	assert.Empty(t, info.limitType)
	assert.Empty(t, info.game)
	assert.Nil(t, info.sb)
	assert.Nil(t, info.bb)
	assert.Empty(t, info.currency)
}

func TestExtractSeats(t *testing.T) {
	seats := extractSeats([]string{
		"Seat 1: Hero (2.00)",
		"Seat 3: Villain with spaces (10,50)",
		"not a seat line",
	})
	require.Len(t, seats, 2)

	assert.Equal(t, 1, seats[0].Number)
	assert.Equal(t, "Hero", seats[0].Name)
	require.NotNil(t, seats[0].Stack)
	assert.InDelta(t, 2.0, *seats[0].Stack, 1e-9)

	assert.Equal(t, 3, seats[1].Number)
	assert.Equal(t, "Villain with spaces", seats[1].Name)
	require.NotNil(t, seats[1].Stack)
	assert.InDelta(t, 10.5, *seats[1].Stack, 1e-9)
}

func TestExtractButton(t *testing.T) {
	btn := extractButton([]string{"Dealer at 5"})
	require.NotNil(t, btn)
	assert.Equal(t, 5, *btn)

	btn = extractButton([]string{"Button is seat 2"})
	require.NotNil(t, btn)
	assert.Equal(t, 2, *btn)

	assert.Nil(t, extractButton([]string{"no marker here"}))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "GoldRush7", extractTableName([]string{"Table 'GoldRush7' 6-max"}))
	assert.Empty(t, extractTableName([]string{"Table: NL Hold'em ($1/$2)"}))
}

func TestExtractBoard(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "no board",
			lines: []string{"Hero: folds"},
			want:  "",
		},
		{
			name:  "flop only",
			lines: []string{"*** FLOP *** [Ah Kd 7s]"},
			want:  "Ah Kd 7s",
		},
		{
			name: "full board",
			lines: []string{
				"*** FLOP *** [Ah Kd 7s]",
				"*** TURN *** [Ah Kd 7s] [5c]",
				"*** RIVER *** [Ah Kd 7s 5c] [2d]",
			},
			want: "Ah Kd 7s|5c|2d",
		},
		{
			name:  "turn without flop is dropped",
			lines: []string{"*** TURN *** [Ah Kd 7s] [5c]"},
			want:  "",
		},
		{
			name: "river without turn is dropped",
			lines: []string{
				"*** FLOP *** [Ah Kd 7s]",
				"*** RIVER *** [Ah Kd 7s 5c] [2d]",
			},
			want: "Ah Kd 7s",
		},
		{
			name: "duplicate flop keeps last",
			lines: []string{
				"*** FLOP *** [Ah Kd 7s]",
				"*** FLOP *** [2c 3c 4c]",
			},
			want: "2c 3c 4c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBoard(tt.lines).render())
		})
	}
}

func TestBoardCardinality(t *testing.T) {
	// The rendered board is always 0, 3, 4, or 5 cards.
	boards := []boardInfo{
		{},
		{flop: "Ah Kd 7s"},
		{flop: "Ah Kd 7s", turn: "5c"},
		{flop: "Ah Kd 7s", turn: "5c", river: "2d"},
		{turn: "5c"},
		{river: "2d"},
		{turn: "5c", river: "2d"},
		{flop: "Ah Kd 7s", river: "2d"},
	}
	for _, b := range boards {
		count := cardCount(b.render())
		assert.Contains(t, []int{0, 3, 4, 5}, count, "board %q", b.render())
	}
}

func TestExtractActions(t *testing.T) {
	lines := []string{
		"Hand #77",
		"Hero: posts small blind 0.01",
		"Villain: posts big blind 0.02",
		"*** HOLE CARDS ***",
		"Hero: raises to 0.06",
		"Villain: calls 0.04",
		"*** FLOP *** [Ah Kd 7s]",
		"Hero: bets 0.10",
		"Villain: folds",
		"Uncalled bet of 0.10 returned to Hero",
	}
	actions := extractActions(lines, "77")
	require.Len(t, actions, 7)

	// Blind posts come through as one coarse verb with no amount.
	assert.Equal(t, "posts small blind 0.01", actions[0].Action)
	assert.Nil(t, actions[0].Amount)
	assert.Equal(t, StreetPreflop, actions[0].Street)

	assert.Equal(t, "raises to", actions[2].Action)
	require.NotNil(t, actions[2].Amount)
	assert.InDelta(t, 0.06, *actions[2].Amount, 1e-9)
	assert.Equal(t, StreetPreflop, actions[2].Street)

	assert.Equal(t, "bets", actions[4].Action)
	assert.Equal(t, StreetFlop, actions[4].Street)

	assert.Equal(t, "folds", actions[5].Action)
	assert.Nil(t, actions[5].Amount)

	last := actions[6]
	assert.Equal(t, "return_uncalled", last.Action)
	assert.Equal(t, "Hero", last.Player)
	require.NotNil(t, last.Amount)
	assert.InDelta(t, -0.10, *last.Amount, 1e-9)
	assert.Equal(t, StreetFlop, last.Street)
}

func TestExtractSummary(t *testing.T) {
	pot, rake, winners := extractSummary([]string{
		"Hero collected 0.12 from pot",
		"*** SUMMARY ***",
		"Total pot 0.12 | Rake 0.00",
	})
	require.NotNil(t, pot)
	assert.InDelta(t, 0.12, *pot, 1e-9)
	require.NotNil(t, rake)
	assert.InDelta(t, 0.0, *rake, 1e-9)
	require.Len(t, winners, 1)
	assert.Equal(t, "Hero", winners[0].Player)
}

func TestExtractSummaryParenthesizedPot(t *testing.T) {
	pot, rake, _ := extractSummary([]string{"Total pot (1,50) | Rake 0,07"})
	require.NotNil(t, pot)
	assert.InDelta(t, 1.5, *pot, 1e-9)
	require.NotNil(t, rake)
	assert.InDelta(t, 0.07, *rake, 1e-9)
}

func floatPtr(v float64) *float64 { return &v }

func cardCount(board string) int {
	if board == "" {
		return 0
	}
	n := 0
	for _, group := range strings.Split(board, "|") {
		n += len(strings.Fields(group))
	}
	return n
}
