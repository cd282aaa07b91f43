package handhistory

// Filter holds the optional post-parse inclusion predicates. A nil or
// empty predicate is vacuously true; configured predicates are
// conjunctive. A hand with an unknown player count is treated as zero
// players for the min/max bounds.
type Filter struct {
	Games      []string
	MinPlayers *int
	MaxPlayers *int
}

// Match reports whether the hand satisfies every configured predicate.
func (f Filter) Match(h *HandRecord) bool {
	if len(f.Games) > 0 {
		found := false
		for _, g := range f.Games {
			if h.Game == g {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	players := 0
	if h.Players != nil {
		players = *h.Players
	}
	if f.MinPlayers != nil && players < *f.MinPlayers {
		return false
	}
	if f.MaxPlayers != nil && players > *f.MaxPlayers {
		return false
	}
	return true
}

// Apply retains only the hands matching the filter. Excluding a hand
// excludes its actions with it, since actions travel inside the
// ParsedHand.
func (f Filter) Apply(hands []*ParsedHand) []*ParsedHand {
	out := make([]*ParsedHand, 0, len(hands))
	for _, h := range hands {
		if f.Match(h.Hand) {
			out = append(out, h)
		}
	}
	return out
}
