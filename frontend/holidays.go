package frontend

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/alpacahq/holidaystore/calendar"
)

// HolidayResponse is the wire shape of a resolved holiday.
type HolidayResponse struct {
	Date    string `json:"date" yaml:"date" csv:"date" msgpack:"date"`
	Weekday string `json:"weekday" yaml:"weekday" csv:"weekday" msgpack:"weekday"`
	Name    string `json:"name" yaml:"name" csv:"name" msgpack:"name"`
}

// CheckResponse answers whether a single date is a holiday.
type CheckResponse struct {
	Date     string   `json:"date" yaml:"date" msgpack:"date"`
	Holiday  bool     `json:"holiday" yaml:"holiday" msgpack:"holiday"`
	Holidays []string `json:"holidays,omitempty" yaml:"holidays,omitempty" msgpack:"holidays,omitempty"`
}

func NewHolidayResponses(holidays []calendar.ResolvedHoliday) []HolidayResponse {
	resp := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		resp = append(resp, HolidayResponse{
			Date:    h.Date.String(),
			Weekday: h.Date.Weekday().String(),
			Name:    h.Name,
		})
	}
	return resp
}

func NewCheckResponse(d calendar.Date, holidays []calendar.ResolvedHoliday) CheckResponse {
	resp := CheckResponse{Date: d.String(), Holiday: len(holidays) > 0}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, h.Name)
	}
	return resp
}

// FilterByName keeps the holidays whose name matches the glob pattern,
// e.g. "San*" or "{Navidad,Año nuevo}". An empty pattern keeps everything.
func FilterByName(holidays []calendar.ResolvedHoliday, pattern string) ([]calendar.ResolvedHoliday, error) {
	if pattern == "" {
		return holidays, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid name pattern %q: %w", pattern, err)
	}
	filtered := make([]calendar.ResolvedHoliday, 0, len(holidays))
	for _, h := range holidays {
		if g.Match(h.Name) {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}
