package ask

import (
	"regexp"
	"time"
)

// Row is one record of a query result: column name to scalar value.
type Row = map[string]any

// civilTimeLayout is the locale-appropriate presentation for the domain's
// home timezone (dd/mm/yyyy hh:mm, Brazilian convention).
const civilTimeLayout = "02/01/2006 15:04"

// isoTimestampRe recognizes ISO-8601 date-time shaped strings. A value
// already rendered in civil time does not match, which makes LocalizeRows
// idempotent.
var isoTimestampRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

// homeLocation is the domain's fixed civil timezone. When the tzdata lookup
// fails, timestamps pass through unconverted rather than erroring.
var homeLocation *time.Location

func init() {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err == nil {
		homeLocation = loc
	}
}

// LocalizeRows returns a new row sequence with every ISO-8601 timestamp
// string rewritten to civil time in the home timezone. All other values pass
// through unchanged; input rows are never mutated; values that fail to parse
// are left as-is.
func LocalizeRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	out := make([]Row, len(rows))
	for i, row := range rows {
		rec := make(Row, len(row))
		for col, v := range row {
			rec[col] = localizeValue(v)
		}
		out[i] = rec
	}
	return out
}

func localizeValue(v any) any {
	s, ok := v.(string)
	if !ok || !isoTimestampRe.MatchString(s) {
		return v
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Zone-less timestamps from the executor are UTC instants.
		t, err = time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
		if err != nil {
			return v
		}
	}

	if homeLocation == nil {
		return v
	}
	return t.In(homeLocation).Format(civilTimeLayout)
}
