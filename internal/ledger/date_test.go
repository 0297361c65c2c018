package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.February, 29), d)
	assert.Equal(t, "2024-02-29", d.String())

	for _, bad := range []string{"", "2025-02-30", "2025/01/01", "01-02-2025", "2025-1-1"} {
		_, err := ParseDate(bad)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, bad)
	}
}

func TestDate_MonthBounds(t *testing.T) {
	d := NewDate(2024, time.February, 17)

	assert.Equal(t, NewDate(2024, time.February, 1), d.StartOfMonth())
	assert.Equal(t, NewDate(2024, time.February, 29), d.EndOfMonth())
	assert.Equal(t, NewDate(2025, time.January, 31), NewDate(2025, time.January, 1).EndOfMonth())
	assert.Equal(t, NewDate(2024, time.March, 1), d.EndOfMonth().AddDays(1))
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2025, time.June, 1)
	b := NewDate(2025, time.June, 2)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
	assert.True(t, a.Equal(DateOf(time.Date(2025, time.June, 1, 23, 59, 0, 0, time.UTC))))
}

func TestDateOf_KeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2025, time.June, 1, 2, 0, 0, 0, loc)

	assert.Equal(t, "2025-06-01", DateOf(late).String())
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2025-03-04"))
	assert.Equal(t, NewDate(2025, time.March, 4), d)

	require.NoError(t, d.Scan([]byte("2025-03-05")))
	assert.Equal(t, NewDate(2025, time.March, 5), d)

	require.NoError(t, d.Scan(time.Date(2025, time.March, 6, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2025, time.March, 6), d)

	assert.Error(t, d.Scan(42))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-06", v)
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	raw, err := json.Marshal(payload{Date: NewDate(2025, time.December, 31)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-12-31"}`, string(raw))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-01-01"}`), &p))
	assert.Equal(t, NewDate(2026, time.January, 1), p.Date)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"tomorrow"}`), &p))
}
