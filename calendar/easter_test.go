package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasterSunday(t *testing.T) {
	t.Parallel()
	tests := []struct {
		year int
		want Date
	}{
		{1583, Date{1583, time.April, 10}},
		{1818, Date{1818, time.March, 22}},
		{2000, Date{2000, time.April, 23}},
		{2008, Date{2008, time.March, 23}},
		{2011, Date{2011, time.April, 24}},
		{2016, Date{2016, time.March, 27}},
		{2017, Date{2017, time.April, 16}},
		{2018, Date{2018, time.April, 1}},
		{2019, Date{2019, time.April, 21}},
		{2020, Date{2020, time.April, 12}},
		{2021, Date{2021, time.April, 4}},
		{2024, Date{2024, time.March, 31}},
		{2025, Date{2025, time.April, 20}},
		{2026, Date{2026, time.April, 5}},
		{2038, Date{2038, time.April, 25}},
		{2285, Date{2285, time.March, 22}},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, EasterSunday(test.year), "year %d", test.year)
	}
}

func TestEasterSundayIsSundayInWindow(t *testing.T) {
	t.Parallel()
	for year := 1583; year <= 4099; year++ {
		easter := EasterSunday(year)
		earliest := Date{year, time.March, 22}
		latest := Date{year, time.April, 25}

		if easter.Weekday() != time.Sunday {
			t.Fatalf("%s is a %s", easter, easter.Weekday())
		}
		if easter.Before(earliest) || easter.After(latest) {
			t.Fatalf("%s is outside %s..%s", easter, earliest, latest)
		}
	}
}
