package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/hhtools/hhparse/internal/handhistory"
)

// HandRow is the parquet schema for the hands table. Optional columns
// are pointers, matching the nullable-field contract of HandRecord.
type HandRow struct {
	HandID        string   `parquet:"hand_id"`
	Site          string   `parquet:"site"`
	Game          string   `parquet:"game"`
	LimitType     string   `parquet:"limit_type"`
	StakesSB      *float64 `parquet:"stakes_sb,optional"`
	StakesBB      *float64 `parquet:"stakes_bb,optional"`
	Currency      string   `parquet:"currency"`
	Players       *int32   `parquet:"players,optional"`
	TableName     string   `parquet:"table_name"`
	TableSize     *int32   `parquet:"table_size,optional"`
	BtnSeat       *int32   `parquet:"btn_seat,optional"`
	Board         string   `parquet:"board"`
	PotTotal      *float64 `parquet:"pot_total,optional"`
	Rake          *float64 `parquet:"rake,optional"`
	WinnerJSON    string   `parquet:"winner_json"`
	ParseWarnings string   `parquet:"parse_warnings"`
}

// ActionRow is the parquet schema for the actions table.
type ActionRow struct {
	HandID string   `parquet:"hand_id"`
	Street string   `parquet:"street"`
	Player string   `parquet:"player"`
	Action string   `parquet:"action"`
	Amount *float64 `parquet:"amount,optional"`
}

// WriteHandsParquet writes the hands table as snappy-compressed
// parquet.
func WriteHandsParquet(path string, hands []*handhistory.ParsedHand) error {
	rows := make([]HandRow, 0, len(hands))
	for _, h := range hands {
		rows = append(rows, toHandRow(h.Hand))
	}
	return writeParquet(path, rows)
}

// WriteActionsParquet writes the actions table as snappy-compressed
// parquet.
func WriteActionsParquet(path string, hands []*handhistory.ParsedHand) error {
	var rows []ActionRow
	for _, h := range hands {
		for _, act := range h.Actions {
			rows = append(rows, ActionRow{
				HandID: act.HandID,
				Street: act.Street,
				Player: act.Player,
				Action: act.Action,
				Amount: act.Amount,
			})
		}
	}
	return writeParquet(path, rows)
}

func writeParquet[T any](path string, rows []T) error {
	return writeAtomic(path, func(f *os.File) error {
		w := parquet.NewGenericWriter[T](f, parquet.Compression(&parquet.Snappy))
		if _, err := w.Write(rows); err != nil {
			return fmt.Errorf("write parquet rows: %w", err)
		}
		return w.Close()
	})
}

func toHandRow(h *handhistory.HandRecord) HandRow {
	return HandRow{
		HandID:        h.HandID,
		Site:          h.Site,
		Game:          h.Game,
		LimitType:     h.LimitType,
		StakesSB:      h.StakesSB,
		StakesBB:      h.StakesBB,
		Currency:      h.Currency,
		Players:       toInt32(h.Players),
		TableName:     h.TableName,
		TableSize:     toInt32(h.TableSize),
		BtnSeat:       toInt32(h.BtnSeat),
		Board:         h.Board,
		PotTotal:      h.PotTotal,
		Rake:          h.Rake,
		WinnerJSON:    h.WinnerJSON(),
		ParseWarnings: h.ParseWarnings,
	}
}

func toInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
