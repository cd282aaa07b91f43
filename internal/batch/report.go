package batch

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/coder/quartz"
)

// Report is the run summary serialized alongside the output tables.
type Report struct {
	TotalHands   int       `json:"total_hands"`
	TotalActions int       `json:"total_actions"`
	FailedHands  int       `json:"failed_hands"`
	Games        []string  `json:"games"`
	AvgPlayers   float64   `json:"avg_players"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// BuildReport derives the summary statistics from a result. The clock
// is injected so tests can pin generated_at.
func BuildReport(res *Result, clock quartz.Clock) *Report {
	report := &Report{
		TotalHands:   len(res.Hands),
		TotalActions: res.TotalActions(),
		FailedHands:  len(res.Failures),
		Games:        []string{},
		GeneratedAt:  clock.Now().UTC(),
	}

	seen := make(map[string]bool)
	totalPlayers := 0
	for _, h := range res.Hands {
		if g := h.Hand.Game; g != "" && !seen[g] {
			seen[g] = true
			report.Games = append(report.Games, g)
		}
		if h.Hand.Players != nil {
			totalPlayers += *h.Hand.Players
		}
	}
	sort.Strings(report.Games)

	divisor := len(res.Hands)
	if divisor < 1 {
		divisor = 1
	}
	report.AvgPlayers = float64(totalPlayers) / float64(divisor)
	return report
}

// MarshalIndent renders the report as indented JSON.
func (r *Report) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
