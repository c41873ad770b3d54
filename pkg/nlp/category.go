package nlp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackDescription is emitted when no usable description word survives.
const FallbackDescription = "Transacción"

var leadingArticleRe = regexp.MustCompile(`(?i)^(?:un|una|el|la|los|las)\s+`)

// descriptionFillerWords never qualify as a derived description.
var descriptionFillerWords = map[string]bool{
	"gasté": true, "gané": true, "pesos": true,
	"dólares": true, "compré": true, "pagué": true,
}

// ClassifyCategory scores the text against every keyword of every registry
// entry and returns the best match plus a cleaned description. Score is the
// keyword's rune length times the category's priority multiplier; only a
// strictly greater score replaces the current winner, so ties keep the
// first-registered category.
func ClassifyCategory(text string, registry []Category) (*Category, string) {
	lower := strings.ToLower(text)

	var detected *Category
	detectedKeyword := ""
	maxScore := 0.0

	for i := range registry {
		category := &registry[i]
		priority := category.Priority
		if priority <= 0 {
			priority = 1
		}

		for _, keyword := range category.Keywords {
			if !containsFold(lower, keyword) {
				continue
			}

			score := float64(utf8.RuneCountInString(keyword)) * priority
			if score > maxScore {
				detected = category
				detectedKeyword = keyword
				maxScore = score
			}
		}
	}

	stripped := strings.TrimSpace(leadingArticleRe.ReplaceAllString(text, ""))

	var description string
	if detected != nil {
		// A longer remainder carries user detail ("Bolso Versace"); a bare
		// keyword match normalizes spelling instead.
		if utf8.RuneCountInString(stripped) > utf8.RuneCountInString(detectedKeyword) {
			description = capitalizeFirst(stripped)
		} else {
			description = capitalizeFirst(detectedKeyword)
		}
		return detected, description
	}

	description = capitalizeFirst(stripped)

	detected = fallbackCategory(registry)
	if description == "" || utf8.RuneCountInString(description) < 3 {
		description = deriveDescriptionWord(text)
	}

	return detected, description
}

func fallbackCategory(registry []Category) *Category {
	for i := range registry {
		if registry[i].Selected {
			return &registry[i]
		}
	}
	if len(registry) > 0 {
		return &registry[0]
	}
	return nil
}

// deriveDescriptionWord picks the longest non-filler word over three runes,
// ties going to the earliest.
func deriveDescriptionWord(text string) string {
	best := ""
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) <= 3 || descriptionFillerWords[strings.ToLower(word)] {
			continue
		}
		if utf8.RuneCountInString(word) > utf8.RuneCountInString(best) {
			best = word
		}
	}

	if best == "" {
		return FallbackDescription
	}
	return capitalizeFirst(best)
}

// containsFold reports substring containment ignoring diacritics, so
// "miercoles" and "miércoles" match the same keyword.
func containsFold(text, keyword string) bool {
	return strings.Contains(FoldAccents(text), FoldAccents(strings.ToLower(keyword)))
}

// FoldAccents strips combining marks so accented and plain spellings compare
// equal.
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
