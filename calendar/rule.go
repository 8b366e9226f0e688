package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RuleType selects how a HolidayRule is placed on the calendar. The numeric
// values are the type ids used by rule catalogs.
type RuleType int

const (
	// Fixed occurs on Day/Month every year.
	Fixed RuleType = iota + 1
	// FixedMovedToMonday occurs on Day/Month, observed on the following Monday.
	FixedMovedToMonday
	// EasterRelative occurs EasterOffsetDays after Easter Sunday.
	EasterRelative
	// EasterRelativeMovedToMonday is EasterRelative observed on the following Monday.
	EasterRelativeMovedToMonday
)

var ruleTypeNames = map[RuleType]string{
	Fixed:                       "fixed",
	FixedMovedToMonday:          "fixed_moved_to_monday",
	EasterRelative:              "easter_relative",
	EasterRelativeMovedToMonday: "easter_relative_moved_to_monday",
}

// ParseRuleType accepts either the numeric type id ("2") or its name
// ("fixed_moved_to_monday").
func ParseRuleType(s string) (RuleType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		rt := RuleType(n)
		if !rt.Valid() {
			return 0, InvalidRule(fmt.Sprintf("unknown rule type %d", n))
		}
		return rt, nil
	}
	for rt, name := range ruleTypeNames {
		if name == s {
			return rt, nil
		}
	}
	return 0, InvalidRule(fmt.Sprintf("unknown rule type %q", s))
}

func (rt RuleType) Valid() bool {
	_, ok := ruleTypeNames[rt]
	return ok
}

// MovesToMonday reports whether holidays of this type are observed on the
// next Monday.
func (rt RuleType) MovesToMonday() bool {
	return rt == FixedMovedToMonday || rt == EasterRelativeMovedToMonday
}

// EasterBased reports whether the type is anchored on Easter Sunday.
func (rt RuleType) EasterBased() bool {
	return rt == EasterRelative || rt == EasterRelativeMovedToMonday
}

func (rt RuleType) String() string {
	if name, ok := ruleTypeNames[rt]; ok {
		return name
	}
	return "RuleType(" + strconv.Itoa(int(rt)) + ")"
}

func (rt RuleType) MarshalText() ([]byte, error) {
	if !rt.Valid() {
		return nil, InvalidRule(rt.String())
	}
	return []byte(rt.String()), nil
}

func (rt *RuleType) UnmarshalText(text []byte) error {
	parsed, err := ParseRuleType(string(text))
	if err != nil {
		return err
	}
	*rt = parsed
	return nil
}

// HolidayRule is a catalog entry describing a yearly holiday.
type HolidayRule struct {
	ID   int
	Name string
	Type RuleType
	// Day and Month are only used by the fixed types.
	Day   int
	Month int
	// EasterOffsetDays is only used by the Easter based types. Good Friday is -2.
	EasterOffsetDays int
}

// Validate checks the rule can be resolved for any year.
func (r HolidayRule) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return InvalidRule(fmt.Sprintf("rule %d: empty name", r.ID))
	}
	if !r.Type.Valid() {
		return InvalidRule(fmt.Sprintf("rule %d (%s): unknown type %d", r.ID, r.Name, int(r.Type)))
	}
	if r.Type.EasterBased() {
		return nil
	}
	if r.Month < 1 || r.Month > 12 {
		return InvalidRule(fmt.Sprintf("rule %d (%s): month %d out of range", r.ID, r.Name, r.Month))
	}
	// a leap year, so February 29 passes
	lastDay := time.Date(2000, time.Month(r.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if r.Day < 1 || r.Day > lastDay {
		return InvalidRule(fmt.Sprintf("rule %d (%s): day %d out of range for month %d", r.ID, r.Name, r.Day, r.Month))
	}
	return nil
}

// Nominal returns the date the rule falls on in year, before any move to
// Monday.
func (r HolidayRule) Nominal(year int) Date {
	switch r.Type {
	case Fixed, FixedMovedToMonday:
		// February 29 falls on March 1 in common years
		return NewDate(year, time.Month(r.Month), r.Day)
	case EasterRelative, EasterRelativeMovedToMonday:
		return EasterSunday(year).AddDays(r.EasterOffsetDays)
	default:
		panic(InvalidRule(fmt.Sprintf("rule %d (%s): unknown type %d", r.ID, r.Name, int(r.Type))))
	}
}

// Observed returns the date the holiday is observed on in year.
func (r HolidayRule) Observed(year int) Date {
	d := r.Nominal(year)
	if r.Type.MovesToMonday() {
		return nextMonday(d)
	}
	return d
}

// ResolvedHoliday is a holiday placed on a concrete date.
type ResolvedHoliday struct {
	Date Date
	Name string
}
