package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/hhtools/hhparse/internal/handhistory"
)

// handColumns is the hands table header, in data-model order.
var handColumns = []string{
	"hand_id", "site", "game", "limit_type",
	"stakes_sb", "stakes_bb", "currency",
	"players", "table_name", "table_size", "btn_seat",
	"board", "pot_total", "rake", "winner_json", "parse_warnings",
}

// actionColumns is the actions table header.
var actionColumns = []string{"hand_id", "street", "player", "action", "amount"}

// WriteHandsCSV writes the hands table.
func WriteHandsCSV(path string, hands []*handhistory.ParsedHand) error {
	return writeAtomic(path, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(handColumns); err != nil {
			return err
		}
		for _, h := range hands {
			if err := w.Write(handRow(h.Hand)); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
}

// WriteActionsCSV writes the actions table, hand by hand in hand
// order, each hand's actions in source-line order.
func WriteActionsCSV(path string, hands []*handhistory.ParsedHand) error {
	return writeAtomic(path, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(actionColumns); err != nil {
			return err
		}
		for _, h := range hands {
			for _, act := range h.Actions {
				row := []string{act.HandID, act.Street, act.Player, act.Action, formatFloat(act.Amount)}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		w.Flush()
		return w.Error()
	})
}

func handRow(h *handhistory.HandRecord) []string {
	return []string{
		h.HandID,
		h.Site,
		h.Game,
		h.LimitType,
		formatFloat(h.StakesSB),
		formatFloat(h.StakesBB),
		h.Currency,
		formatInt(h.Players),
		h.TableName,
		formatInt(h.TableSize),
		formatInt(h.BtnSeat),
		h.Board,
		formatFloat(h.PotTotal),
		formatFloat(h.Rake),
		h.WinnerJSON(),
		h.ParseWarnings,
	}
}

// formatFloat renders a nullable amount, empty for nil.
func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
