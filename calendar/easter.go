package calendar

import "time"

// EasterSunday returns the date of Easter Sunday in the Gregorian calendar
// for the given year. The result is valid from 1583 onward.
func EasterSunday(year int) Date {
	// Meeus/Jones/Butcher; every division truncates.
	golden := year % 19
	century, yearOfCentury := year/100, year%100

	skippedLeaps := century / 4
	centuryRem := century % 4
	moonLag := (century + 8) / 25
	moonCorrection := (century - moonLag + 1) / 3
	epact := (19*golden + century - skippedLeaps - moonCorrection + 15) % 30

	leaps := yearOfCentury / 4
	yearRem := yearOfCentury % 4
	toSunday := (32 + 2*centuryRem + 2*leaps - epact - yearRem) % 7
	shift := (golden + 11*epact + 22*toSunday) / 451

	n := epact + toSunday - 7*shift + 114
	return Date{Year: year, Month: time.Month(n / 31), Day: n%31 + 1}
}
