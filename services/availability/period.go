package availability

import "time"

const dateLayout = "2006-01-02"

// ResolvePeriod turns the caller-supplied period into an explicit [from, to)
// date pair. Explicit bounds win over the month shorthand; the month fills
// whichever bound is missing.
func ResolvePeriod(month, dateFrom, dateTo string) (string, string, error) {
	from := dateFrom
	to := dateTo

	if month != "" {
		m, err := time.Parse("2006-01", month)
		if err != nil {
			return "", "", NewInputError("invalid month, expected YYYY-MM")
		}
		if from == "" {
			from = m.Format(dateLayout)
		}
		if to == "" {
			to = m.AddDate(0, 1, 0).Format(dateLayout)
		}
	}

	if from == "" || to == "" {
		return "", "", NewInputError("period required (month or date_from/date_to)")
	}
	for _, d := range []string{from, to} {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return "", "", NewInputError("invalid date, expected YYYY-MM-DD")
		}
	}
	return from, to, nil
}
