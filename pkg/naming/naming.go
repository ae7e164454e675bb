// Package naming derives dates, filenames and destination paths for posts.
package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a publish date does not start with a
// valid YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid publish date")

// invalidFilenameChars matches everything but letters, digits, underscore,
// space and hyphen.
var invalidFilenameChars = regexp.MustCompile(`[^-\p{L}\p{N}_ ]`)

// suffixes is keyed on the last digit of the day, so 11, 12 and 13 come out
// as 11st, 12nd and 13rd.
var suffixes = map[byte]string{
	'1': "st",
	'2': "nd",
	'3': "rd",
}

// Date is the calendar part of a publish date.
type Date struct {
	Year  string
	Month string
	Day   string
	t     time.Time
}

// ParseDate reads the leading YYYY-MM-DD of a publish date. Anything after
// the tenth character (time of day, zone) is ignored.
func ParseDate(date string) (Date, error) {
	if len(date) < 10 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	d := Date{
		Year:  date[0:4],
		Month: date[5:7],
		Day:   date[8:10],
	}
	t, err := time.Parse("2006-01-02", d.Year+"-"+d.Month+"-"+d.Day)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	d.t = t
	return d, nil
}

// Suffix returns the ordinal suffix for a two-digit day.
func Suffix(day string) string {
	if day == "" {
		return "th"
	}
	if s, ok := suffixes[day[len(day)-1]]; ok {
		return s
	}
	return "th"
}

// Display formats the date as e.g. "Monday 8th July 2019".
func (d Date) Display() string {
	return d.t.Format("Monday") + " " +
		strings.TrimLeft(d.Day, "0") + Suffix(d.Day) + " " +
		d.t.Format("January") + " " + d.Year
}

// SanitizeFilename trims s and strips every character that is not a
// letter, digit, underscore, space or hyphen. Path separators never survive.
func SanitizeFilename(s string) string {
	return invalidFilenameChars.ReplaceAllString(strings.TrimSpace(s), "")
}

// Name is where a post ends up in the archive.
type Name struct {
	Date
	Stem string
}

// New derives the archive name for a post title and publish date.
func New(title, date string) (Name, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Name{}, err
	}
	return Name{
		Date: d,
		Stem: SanitizeFilename(d.Year + "-" + d.Month + "-" + d.Day + " " + title),
	}, nil
}

// YearDir returns root/YYYY.
func (n Name) YearDir(root string) string {
	return filepath.Join(root, n.Year)
}

// MonthDir returns root/YYYY/YYYY-MM.
func (n Name) MonthDir(root string) string {
	return filepath.Join(root, n.Year, n.Year+"-"+n.Month)
}

// Path returns root/YYYY/YYYY-MM/<stem>.md.
func (n Name) Path(root string) string {
	return filepath.Join(n.MonthDir(root), n.Stem+".md")
}
