// Package dates implements the DD/MM/YYYY arithmetic the booking file and the
// billing engine are built on. The leap-year rule is the legacy one (every
// fourth year, no century correction); it is kept on purpose so that ages and
// elapsed stays match the data already on disk.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const Layout = "02/01/2006"

const adultAgeYears = 18

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var (
	ErrBadDate    = errors.New("date must match DD/MM/YYYY")
	ErrFutureDate = errors.New("date must not be in the future")
	ErrUnderage   = errors.New("you must be over 18 to book a room")
)

// Parse splits a DD/MM/YYYY string into its components. Only the fixed
// character positions are read; text that does not parse as an integer
// degrades to 0, matching the legacy store.
func Parse(s string) (day, month, year int) {
	if len(s) < 10 {
		return 0, 0, 0
	}

	return atoi(s[0:2]), atoi(s[3:5]), atoi(s[6:10])
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

func isLeap(year int) bool {
	return year%4 == 0
}

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}

	return 365
}

func dayOfYear(day, month, year int) int {
	doy := day

	for i := 0; i < month-1; i++ {
		if i == 1 && isLeap(year) {
			doy += 29

			continue
		}

		doy += daysPerMonth[i]
	}

	return doy
}

// ElapsedDays computes whole days between two DD/MM/YYYY dates using a
// day-of-year calculation. Within one year it is a plain day-of-year
// difference, so a reversed same-year pair yields a negative result. Known
// weakness: the simplified leap rule makes century years leap years.
func ElapsedDays(start, end string) int {
	d1, m1, y1 := Parse(start)
	d2, m2, y2 := Parse(end)

	doy1 := dayOfYear(d1, m1, y1)
	doy2 := dayOfYear(d2, m2, y2)

	if y1 == y2 {
		return doy2 - doy1
	}

	days := daysInYear(y1) - doy1 + doy2

	if y1 < y2 {
		for year := y1 + 1; year < y2; year++ {
			days += daysInYear(year)
		}

		return days
	}

	for year := y2; year <= y1; year++ {
		days -= daysInYear(year)
	}

	return days
}

// Today returns the current date as DD/MM/YYYY.
func Today() string {
	return time.Now().Format(Layout)
}

// IsAdult reports whether a guest born on dob is at least 18 on the given day.
func IsAdult(dob, today string) bool {
	return float64(ElapsedDays(dob, today))/365.25 >= adultAgeYears
}

// ValidateDOB checks a date-of-birth string the way the front desk does:
// shape, calendar plausibility and the adult-age requirement. The returned
// error message is suitable for re-prompting the guest.
func ValidateDOB(s, today string) error {
	if len(s) != 10 {
		return ErrBadDate
	}

	for i := 0; i < 10; i++ {
		if i == 2 || i == 5 {
			if s[i] != '/' {
				return ErrBadDate
			}

			continue
		}

		if s[i] < '0' || s[i] > '9' {
			return ErrBadDate
		}
	}

	age := float64(ElapsedDays(s, today)) / 365.25
	if age < 0 {
		return ErrFutureDate
	}

	if age < adultAgeYears {
		return ErrUnderage
	}

	day, month, year := Parse(s)

	if year < 1900 {
		return fmt.Errorf("%w: year must be 1900 or later", ErrBadDate)
	}

	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrBadDate)
	}

	maxDay := daysPerMonth[month-1]
	if month == 2 && isLeap(year) {
		maxDay = 29
	}

	if day < 1 || day > maxDay {
		return fmt.Errorf("%w: day must be between 1 and %d", ErrBadDate, maxDay)
	}

	return nil
}
