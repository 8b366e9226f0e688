package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/alpacahq/holidaystore/calendar"
)

// csvRule is one catalog row. Numeric columns are read as strings so empty
// cells mean zero.
type csvRule struct {
	ID               string `csv:"id"`
	Name             string `csv:"name"`
	Type             string `csv:"type"`
	Day              string `csv:"day"`
	Month            string `csv:"month"`
	EasterOffsetDays string `csv:"easter_offset_days"`
}

func parseCSV(data []byte) ([]calendar.HolidayRule, error) {
	var rows []*csvRule
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal csv catalog: %w", err)
	}
	rules := make([]calendar.HolidayRule, 0, len(rows))
	for i, row := range rows {
		// header is line 1
		line := i + 2
		rule, err := row.toRule()
		if err != nil {
			return nil, &ErrMalformedRow{line: line, msg: err.Error()}
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (row *csvRule) toRule() (calendar.HolidayRule, error) {
	var (
		rule calendar.HolidayRule
		err  error
	)
	if rule.ID, err = atoi("id", row.ID); err != nil {
		return rule, err
	}
	rule.Name = strings.TrimSpace(row.Name)
	if rule.Type, err = calendar.ParseRuleType(row.Type); err != nil {
		return rule, err
	}
	if rule.Day, err = atoi("day", row.Day); err != nil {
		return rule, err
	}
	if rule.Month, err = atoi("month", row.Month); err != nil {
		return rule, err
	}
	if rule.EasterOffsetDays, err = atoi("easter_offset_days", row.EasterOffsetDays); err != nil {
		return rule, err
	}
	return rule, nil
}

func atoi(column, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", column, err)
	}
	return n, nil
}

func marshalCSV(rules []calendar.HolidayRule) ([]byte, error) {
	rows := make([]*csvRule, 0, len(rules))
	for _, r := range rules {
		row := &csvRule{
			ID:   strconv.Itoa(r.ID),
			Name: r.Name,
			Type: strconv.Itoa(int(r.Type)),
		}
		if r.Type.EasterBased() {
			row.EasterOffsetDays = strconv.Itoa(r.EasterOffsetDays)
		} else {
			row.Day = strconv.Itoa(r.Day)
			row.Month = strconv.Itoa(r.Month)
		}
		rows = append(rows, row)
	}
	return gocsv.MarshalBytes(&rows)
}
