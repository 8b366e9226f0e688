package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleType(t *testing.T) {
	t.Parallel()
	tests := map[string]RuleType{
		"1":                               Fixed,
		"2":                               FixedMovedToMonday,
		" 3 ":                             EasterRelative,
		"4":                               EasterRelativeMovedToMonday,
		"fixed":                           Fixed,
		"FIXED_MOVED_TO_MONDAY":           FixedMovedToMonday,
		"easter_relative":                 EasterRelative,
		"easter_relative_moved_to_monday": EasterRelativeMovedToMonday,
	}
	for in, want := range tests {
		got, err := ParseRuleType(in)
		require.Nil(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "0", "5", "weekly"} {
		_, err := ParseRuleType(in)
		var invalid InvalidRule
		assert.True(t, errors.As(err, &invalid), in)
	}
}

func TestRuleTypeText(t *testing.T) {
	t.Parallel()
	buf, err := EasterRelative.MarshalText()
	require.Nil(t, err)
	assert.Equal(t, "easter_relative", string(buf))

	var rt RuleType
	require.Nil(t, rt.UnmarshalText([]byte("2")))
	assert.Equal(t, FixedMovedToMonday, rt)

	_, err = RuleType(9).MarshalText()
	assert.NotNil(t, err)
	assert.Equal(t, "RuleType(9)", RuleType(9).String())
}

func TestValidate(t *testing.T) {
	t.Parallel()
	valid := []HolidayRule{
		{ID: 1, Name: "Año nuevo", Type: Fixed, Day: 1, Month: 1},
		{ID: 2, Name: "Leap", Type: FixedMovedToMonday, Day: 29, Month: 2},
		{ID: 3, Name: "Viernes Santo", Type: EasterRelative, EasterOffsetDays: -2},
		{ID: 4, Name: "Ascensión", Type: EasterRelativeMovedToMonday, EasterOffsetDays: 40},
	}
	for _, rule := range valid {
		assert.Nil(t, rule.Validate(), rule.Name)
	}

	invalid := []HolidayRule{
		{ID: 1, Name: " ", Type: Fixed, Day: 1, Month: 1},
		{ID: 2, Name: "no type", Day: 1, Month: 1},
		{ID: 3, Name: "month 13", Type: Fixed, Day: 1, Month: 13},
		{ID: 4, Name: "month 0", Type: FixedMovedToMonday, Day: 1, Month: 0},
		{ID: 5, Name: "april 31", Type: Fixed, Day: 31, Month: 4},
		{ID: 6, Name: "feb 30", Type: Fixed, Day: 30, Month: 2},
		{ID: 7, Name: "day 0", Type: Fixed, Day: 0, Month: 5},
	}
	for _, rule := range invalid {
		err := rule.Validate()
		var kind InvalidRule
		assert.True(t, errors.As(err, &kind), rule.Name)
	}
}

func TestObservedLeapDay(t *testing.T) {
	t.Parallel()
	leap := HolidayRule{ID: 1, Name: "Leap", Type: Fixed, Day: 29, Month: 2}

	assert.Equal(t, NewDate(2024, time.February, 29), leap.Observed(2024))
	assert.Equal(t, NewDate(2025, time.March, 1), leap.Observed(2025))

	rules := []HolidayRule{leap}
	assert.True(t, IsHoliday(rules, NewDate(2025, time.March, 1)))
	assert.False(t, IsHoliday(rules, NewDate(2024, time.March, 1)))

	// 2025-03-01 is a Saturday
	leap.Type = FixedMovedToMonday
	assert.Equal(t, NewDate(2025, time.March, 3), leap.Observed(2025))
}

func TestObservedUnknownTypePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		HolidayRule{ID: 1, Name: "bad", Type: RuleType(7)}.Observed(2025)
	})
}
