package ask

import (
	"reflect"
	"testing"
)

func TestLocalizeRows(t *testing.T) {
	t.Run("UTCInstantToSaoPauloCivilTime", func(t *testing.T) {
		rows := []Row{{"occurrence_date": "2025-01-26T12:15:00Z"}}
		got := LocalizeRows(rows)
		if got[0]["occurrence_date"] != "26/01/2025 09:15" {
			t.Errorf("Expected 26/01/2025 09:15, got %v", got[0]["occurrence_date"])
		}
	})

	t.Run("ZonelessTimestampTreatedAsUTC", func(t *testing.T) {
		rows := []Row{{"created_at": "2025-06-10T18:00:00"}}
		got := LocalizeRows(rows)
		if got[0]["created_at"] != "10/06/2025 15:00" {
			t.Errorf("Expected 10/06/2025 15:00, got %v", got[0]["created_at"])
		}
	})

	t.Run("NonTimestampStringUnchanged", func(t *testing.T) {
		rows := []Row{{"occurrence_type": "Atraso"}}
		got := LocalizeRows(rows)
		if got[0]["occurrence_type"] != "Atraso" {
			t.Errorf("Expected Atraso unchanged, got %v", got[0]["occurrence_type"])
		}
	})

	t.Run("NonStringValuesUnchanged", func(t *testing.T) {
		rows := []Row{{"total": int64(7), "ratio": 3.5, "active": true, "note": nil}}
		got := LocalizeRows(rows)
		if !reflect.DeepEqual(got, rows) {
			t.Errorf("Expected values unchanged, got %v", got)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		rows := []Row{{
			"occurrence_date": "2025-01-26T12:15:00Z",
			"occurrence_type": "Atraso",
			"total":           int64(3),
		}}
		once := LocalizeRows(rows)
		twice := LocalizeRows(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Expected idempotence, got %v then %v", once, twice)
		}
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		rows := []Row{{"occurrence_date": "2025-01-26T12:15:00Z"}}
		_ = LocalizeRows(rows)
		if rows[0]["occurrence_date"] != "2025-01-26T12:15:00Z" {
			t.Errorf("Input row was mutated: %v", rows[0]["occurrence_date"])
		}
	})

	t.Run("UnparseableShapeLeftAsIs", func(t *testing.T) {
		// Matches the ISO shape but is not a real instant.
		rows := []Row{{"weird": "2025-13-45T99:99:99Z"}}
		got := LocalizeRows(rows)
		if got[0]["weird"] != "2025-13-45T99:99:99Z" {
			t.Errorf("Expected unparseable value untouched, got %v", got[0]["weird"])
		}
	})

	t.Run("NilRows", func(t *testing.T) {
		if got := LocalizeRows(nil); got != nil {
			t.Errorf("Expected nil, got %v", got)
		}
	})
}
