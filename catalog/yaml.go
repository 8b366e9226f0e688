package catalog

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/alpacahq/holidaystore/calendar"
)

type yamlRule struct {
	ID               int    `yaml:"id"`
	Name             string `yaml:"name"`
	Type             string `yaml:"type"`
	Day              int    `yaml:"day,omitempty"`
	Month            int    `yaml:"month,omitempty"`
	EasterOffsetDays int    `yaml:"easter_offset_days,omitempty"`
}

type yamlCatalog struct {
	Holidays []yamlRule `yaml:"holidays"`
}

func parseYAML(data []byte) ([]calendar.HolidayRule, error) {
	var aux yamlCatalog
	if err := yaml.Unmarshal(data, &aux); err != nil {
		return nil, fmt.Errorf("unmarshal yaml catalog: %w", err)
	}
	rules := make([]calendar.HolidayRule, 0, len(aux.Holidays))
	for _, r := range aux.Holidays {
		rt, err := calendar.ParseRuleType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", r.ID, err)
		}
		rules = append(rules, calendar.HolidayRule{
			ID:               r.ID,
			Name:             r.Name,
			Type:             rt,
			Day:              r.Day,
			Month:            r.Month,
			EasterOffsetDays: r.EasterOffsetDays,
		})
	}
	return rules, nil
}

func marshalYAML(rules []calendar.HolidayRule) ([]byte, error) {
	aux := yamlCatalog{Holidays: make([]yamlRule, 0, len(rules))}
	for _, r := range rules {
		aux.Holidays = append(aux.Holidays, yamlRule{
			ID:               r.ID,
			Name:             r.Name,
			Type:             r.Type.String(),
			Day:              r.Day,
			Month:            r.Month,
			EasterOffsetDays: r.EasterOffsetDays,
		})
	}
	return yaml.Marshal(aux)
}
