package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateAddDays(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from Date
		days int
		want Date
	}{
		{Date{2025, time.April, 20}, 40, Date{2025, time.May, 30}},
		{Date{2025, time.April, 20}, -2, Date{2025, time.April, 18}},
		{Date{2024, time.February, 28}, 1, Date{2024, time.February, 29}},
		{Date{2025, time.February, 28}, 1, Date{2025, time.March, 1}},
		{Date{2024, time.December, 30}, 5, Date{2025, time.January, 4}},
		{Date{2025, time.January, 1}, -1, Date{2024, time.December, 31}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.from.AddDays(test.days), "%s%+d", test.from, test.days)
	}
}

func TestNextMonday(t *testing.T) {
	t.Parallel()
	// 2025-01-06 is a Monday
	monday := Date{2025, time.January, 6}
	assert.Equal(t, monday, nextMonday(monday))

	for i := 1; i <= 6; i++ {
		d := monday.AddDays(i)
		got := nextMonday(d)
		assert.Equal(t, time.Monday, got.Weekday())
		assert.Equal(t, monday.AddDays(7), got, "from %s", d)
	}
	// across a leap day
	assert.Equal(t, Date{2024, time.March, 4}, nextMonday(Date{2024, time.February, 29}))
}

func TestParseDate(t *testing.T) {
	t.Parallel()
	d, err := ParseDate("2025-06-02")
	require.Nil(t, err)
	assert.Equal(t, Date{2025, time.June, 2}, d)
	assert.Equal(t, "2025-06-02", d.String())

	_, err = ParseDate("2025-13-01")
	assert.NotNil(t, err)
	_, err = ParseDate("02/06/2025")
	assert.NotNil(t, err)
}

func TestDateOf(t *testing.T) {
	t.Parallel()
	bogota := time.FixedZone("COT", -5*60*60)
	// 23:30 in Bogota is already the next day in UTC
	at := time.Date(2025, time.December, 31, 23, 30, 0, 0, bogota)
	assert.Equal(t, Date{2025, time.December, 31}, DateOf(at))
	assert.Equal(t, Date{2026, time.January, 1}, DateOf(at.UTC()))
}

func TestDateCompare(t *testing.T) {
	t.Parallel()
	a := Date{2025, time.January, 31}
	b := Date{2025, time.February, 1}
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.True(t, a.Equal(NewDate(2025, time.January, 31)))
	assert.Equal(t, b, NewDate(2025, time.January, 32))
	assert.True(t, Date{}.IsZero())
}

func TestDateJSON(t *testing.T) {
	t.Parallel()
	buf, err := json.Marshal(struct{ D Date }{Date{2025, time.January, 1}})
	require.Nil(t, err)
	assert.Equal(t, `{"D":"2025-01-01"}`, string(buf))

	var v struct{ D Date }
	require.Nil(t, json.Unmarshal(buf, &v))
	assert.Equal(t, Date{2025, time.January, 1}, v.D)
	assert.NotNil(t, json.Unmarshal([]byte(`{"D":"nope"}`), &v))
}
