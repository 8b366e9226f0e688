package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/holidaystore/metrics"
	"github.com/alpacahq/holidaystore/utils/log"
)

// ResolveYear places every rule on the calendar of year. The result keeps
// the order of rules and is not deduplicated.
func ResolveYear(rules []HolidayRule, year int) []ResolvedHoliday {
	holidays := make([]ResolvedHoliday, 0, len(rules))
	for _, rule := range rules {
		holidays = append(holidays, ResolvedHoliday{
			Date: rule.Observed(year),
			Name: rule.Name,
		})
	}
	return holidays
}

// ResolveRange resolves every year from fromYear to toYear inclusive.
func ResolveRange(rules []HolidayRule, fromYear, toYear int) []ResolvedHoliday {
	if toYear < fromYear {
		return []ResolvedHoliday{}
	}
	holidays := make([]ResolvedHoliday, 0, len(rules)*(toYear-fromYear+1))
	for year := fromYear; year <= toYear; year++ {
		holidays = append(holidays, ResolveYear(rules, year)...)
	}
	return holidays
}

// HolidaysOn returns the holidays observed on d.
func HolidaysOn(rules []HolidayRule, d Date) []ResolvedHoliday {
	var matches []ResolvedHoliday
	for _, h := range ResolveYear(rules, d.Year) {
		if h.Date == d {
			matches = append(matches, h)
		}
	}
	return matches
}

// IsHoliday reports whether any rule is observed on d.
func IsHoliday(rules []HolidayRule, d Date) bool {
	for _, h := range ResolveYear(rules, d.Year) {
		if h.Date == d {
			return true
		}
	}
	return false
}

// RuleSource supplies the rule catalog. Implementations must return a
// snapshot the caller is free to read without locking.
type RuleSource interface {
	Rules(ctx context.Context) ([]HolidayRule, error)
}

// Resolver answers holiday queries against a RuleSource. The catalog is
// fetched on every call and never cached.
type Resolver struct {
	source RuleSource
}

func NewResolver(source RuleSource) *Resolver {
	return &Resolver{source: source}
}

func (r *Resolver) rules(ctx context.Context) ([]HolidayRule, error) {
	rules, err := r.source.Rules(ctx)
	if err != nil {
		return nil, fmt.Errorf("load holiday rules: %w", err)
	}
	metrics.CatalogRules.Set(float64(len(rules)))
	return rules, nil
}

// Year returns the holidays of year in catalog order.
func (r *Resolver) Year(ctx context.Context, year int) ([]ResolvedHoliday, error) {
	start := time.Now()
	rules, err := r.rules(ctx)
	if err != nil {
		return nil, err
	}
	holidays := ResolveYear(rules, year)
	metrics.ResolutionsTotal.Inc()
	metrics.ResolveDuration.Observe(time.Since(start).Seconds())
	log.Debug("resolved %d holidays for %d", len(holidays), year)
	return holidays, nil
}

// IsHoliday reports whether d is a holiday.
func (r *Resolver) IsHoliday(ctx context.Context, d Date) (bool, error) {
	rules, err := r.rules(ctx)
	if err != nil {
		return false, err
	}
	ok := IsHoliday(rules, d)
	metrics.HolidayChecksTotal.WithLabelValues(fmt.Sprint(ok)).Inc()
	return ok, nil
}

// HolidaysOn returns the holidays observed on d.
func (r *Resolver) HolidaysOn(ctx context.Context, d Date) ([]ResolvedHoliday, error) {
	rules, err := r.rules(ctx)
	if err != nil {
		return nil, err
	}
	holidays := HolidaysOn(rules, d)
	metrics.HolidayChecksTotal.WithLabelValues(fmt.Sprint(len(holidays) > 0)).Inc()
	return holidays, nil
}
