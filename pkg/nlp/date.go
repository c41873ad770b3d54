package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	daysAgoRe  = regexp.MustCompile(`(?i)hace\s+(` + dateNumberAlternatives + `)\s+días?`)
	weeksAgoRe = regexp.MustCompile(`(?i)hace\s+(` + dateNumberAlternatives + `)\s+semanas?`)

	yesterdayRe        = regexp.MustCompile(`(?i)\bayer\b`)
	dayBeforeRe        = regexp.MustCompile(`(?i)\bantier\b|\banteayer\b|\bantiér\b`)
	trailingConnector  = regexp.MustCompile(`\s+y\s+$`)
	leadingConnectorRe = regexp.MustCompile(`^y\s+`)
)

type weekdayName struct {
	name string
	day  time.Weekday
	re   *regexp.Regexp
}

// Accented and plain spellings resolve to the same weekday.
var weekdayNames = func() []weekdayName {
	names := []weekdayName{
		{name: "domingo", day: time.Sunday},
		{name: "lunes", day: time.Monday},
		{name: "martes", day: time.Tuesday},
		{name: "miércoles", day: time.Wednesday},
		{name: "miercoles", day: time.Wednesday},
		{name: "jueves", day: time.Thursday},
		{name: "viernes", day: time.Friday},
		{name: "sábado", day: time.Saturday},
		{name: "sabado", day: time.Saturday},
	}
	for i := range names {
		names[i].re = regexp.MustCompile(`(?i)el ` + names[i].name + `(?: pasado)?`)
	}
	return names
}()

// ResolveDate scans the utterance for relative-date expressions, applies
// every matching rule to the anchor instant, and returns the date together
// with the utterance stripped of the matched phrases. Rules match against a
// single lower-cased copy of the input; only the residual text accumulates
// removals. When several rules fire, their offsets compose additively.
func ResolveDate(text string, now time.Time) (time.Time, string) {
	date := now
	lower := strings.ToLower(text)
	clean := text

	if m := daysAgoRe.FindStringSubmatch(lower); m != nil {
		date = date.AddDate(0, 0, -parseDateNumber(m[1]))
		clean = removeFirstMatch(clean, daysAgoRe)
	}

	if m := weeksAgoRe.FindStringSubmatch(lower); m != nil {
		date = date.AddDate(0, 0, -parseDateNumber(m[1])*7)
		clean = removeFirstMatch(clean, weeksAgoRe)
	}

	if strings.Contains(lower, "ayer") {
		date = date.AddDate(0, 0, -1)
		clean = yesterdayRe.ReplaceAllString(clean, "")
	}

	if strings.Contains(lower, "antier") || strings.Contains(lower, "anteayer") || strings.Contains(lower, "antiér") {
		date = date.AddDate(0, 0, -2)
		clean = dayBeforeRe.ReplaceAllString(clean, "")
	}

	for _, wd := range weekdayNames {
		if !strings.Contains(lower, "el "+wd.name) {
			continue
		}

		daysBack := int(date.Weekday()) - int(wd.day)
		if daysBack <= 0 {
			daysBack += 7
		}

		// Assume the past unless the phrase is explicitly about the future.
		if strings.Contains(lower, "pasado") || !strings.Contains(lower, "próximo") {
			date = date.AddDate(0, 0, -daysBack)
		}
		clean = wd.re.ReplaceAllString(clean, "")
	}

	clean = strings.TrimSpace(trailingConnector.ReplaceAllString(clean, ""))
	clean = strings.TrimSpace(leadingConnectorRe.ReplaceAllString(clean, ""))

	return date, strings.TrimSpace(clean)
}

func parseDateNumber(word string) int {
	if n, err := strconv.Atoi(word); err == nil {
		return n
	}
	return dateNumberWords[word]
}

func removeFirstMatch(text string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + text[loc[1]:]
}
