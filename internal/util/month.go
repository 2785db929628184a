package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/luci18530/GastX/internal/domain"
)

// DateFormat identifies which of the supported statement date layouts a string uses
type DateFormat int

const (
	DateFormatUnknown DateFormat = iota
	// DateFormatISO is YYYY-MM-DD
	DateFormatISO
	// DateFormatBR is DD/MM/YYYY
	DateFormatBR
)

func (f DateFormat) String() string {
	switch f {
	case DateFormatISO:
		return "YYYY-MM-DD"
	case DateFormatBR:
		return "DD/MM/YYYY"
	}
	return "unknown"
}

// MonthNames is a locale table used to label month buckets
type MonthNames struct {
	Short [12]string
	Long  [12]string
}

// PortugueseMonthNames is the default table
var PortugueseMonthNames = MonthNames{
	Short: [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"},
	Long: [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	},
}

// EnglishMonthNames is offered for non pt-BR deployments
var EnglishMonthNames = MonthNames{
	Short: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Long: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

// MonthNamesForLocale returns the table for a locale code ("pt" or "en")
func MonthNamesForLocale(locale string) (MonthNames, bool) {
	switch strings.ToLower(locale) {
	case "", "pt", "pt-br", "pt_br":
		return PortugueseMonthNames, true
	case "en", "en-us", "en_us":
		return EnglishMonthNames, true
	}
	return MonthNames{}, false
}

// ShortLabel returns e.g. "Jan/24"
func (n MonthNames) ShortLabel(b domain.MonthBucket) string {
	return fmt.Sprintf("%s/%02d", n.Short[b.Month], b.Year%100)
}

// LongLabel returns e.g. "Janeiro 2024"
func (n MonthNames) LongLabel(b domain.MonthBucket) string {
	return fmt.Sprintf("%s %d", n.Long[b.Month], b.Year)
}

// DetectDateFormat picks the layout by separator: '-' means ISO, '/' means DD/MM/YYYY
func DetectDateFormat(s string) (DateFormat, error) {
	switch {
	case strings.Contains(s, "-"):
		return DateFormatISO, nil
	case strings.Contains(s, "/"):
		return DateFormatBR, nil
	}
	return DateFormatUnknown, fmt.Errorf("%w: %q has no recognised separator", domain.ErrInvalidDate, s)
}

// ParseDate parses a statement date at local midnight.
// Days past the end of a month roll over into the next one (31/02/2024 is 2 March).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	format, err := DetectDateFormat(s)
	if err != nil {
		return time.Time{}, err
	}

	var year, month, day int
	switch format {
	case DateFormatISO:
		parts := strings.Split(s, "-")
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("%w: %q is not %s", domain.ErrInvalidDate, s, format)
		}
		year, month, day, err = atoiParts(parts[0], parts[1], parts[2])
	case DateFormatBR:
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("%w: %q is not %s", domain.ErrInvalidDate, s, format)
		}
		year, month, day, err = atoiParts(parts[2], parts[1], parts[0])
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", domain.ErrInvalidDate, s, err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %q is out of range", domain.ErrInvalidDate, s)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

func atoiParts(y, m, d string) (int, int, int, error) {
	year, err := strconv.Atoi(y)
	if err != nil {
		return 0, 0, 0, err
	}
	month, err := strconv.Atoi(m)
	if err != nil {
		return 0, 0, 0, err
	}
	day, err := strconv.Atoi(d)
	if err != nil {
		return 0, 0, 0, err
	}
	return year, month, day, nil
}

// BucketOf returns the month bucket a statement date falls in
func BucketOf(s string) (domain.MonthBucket, error) {
	t, err := ParseDate(s)
	if err != nil {
		return domain.MonthBucket{}, err
	}
	return domain.MonthBucket{Year: t.Year(), Month: int(t.Month()) - 1}, nil
}

// NormalizeDate rewrites a statement date as YYYY-MM-DD so that plain string
// comparison orders dates chronologically
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
