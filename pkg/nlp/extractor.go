package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type segmentPattern struct {
	re        *regexp.Regexp
	amountIdx int
	descIdx   int
}

// segmentPatterns is the lexical cascade for one segment, most specific
// first. Each entry captures the amount expression and the description in
// whichever order the phrase puts them.
var segmentPatterns = []segmentPattern{
	// "Gasté 50 en un mcflurry"
	{regexp.MustCompile(`(?i)(?:gasté|pagué|compré|di)?\s*\$?\s*(\d+(?:[.,]\d+)?)\s*(?:pesos|dólares)?\s+(?:en|por|de|para)\s+(?:un|una|unos|unas|el|la|los|las)?\s*(.+)`), 1, 2},
	// "50 pesos en Pizza"
	{regexp.MustCompile(`(?i)\$?\s*(\d+(?:[.,]\d+)?)\s*(?:pesos|dólares)?\s+(?:en|de|para|por)\s+(.+)`), 1, 2},
	// "Pizza en 200"
	{regexp.MustCompile(`(?i)(.+?)\s+(?:en|por|de|a)?\s*\$?\s*(\d+(?:[.,]\d+)?)\s*(?:pesos|dólares|usd|dlls|mxn)?$`), 2, 1},
	// "Pizza 200 pesos"
	{regexp.MustCompile(`(?i)(.+?)\s+(\d+(?:[.,]\d+)?)\s+(?:pesos|dólares|usd|dlls|mxn)`), 2, 1},
	// "Pizza 200"
	{regexp.MustCompile(`(?i)(.+?)\s+(\d+(?:[.,]\d+)?)\s*$`), 2, 1},
}

var (
	currencyWordsRe  = regexp.MustCompile(`(?i)pesos|dólares|usd|dlls|mxn`)
	connectorWordsRe = regexp.MustCompile(`(?i)en|por|de|a|compré|gasté|pagué|di`)
	multiSpaceRe     = regexp.MustCompile(`\s+`)
)

// ExtractSegment turns one segment into a transaction draft, or nil when no
// positive amount can be found. Polarity comes from the whole utterance, the
// date from the resolver; the registry decides the category.
func ExtractSegment(segment, wholeUtteranceLower string, date time.Time, registry []Category) *Draft {
	polarity := ClassifyPolarity(wholeUtteranceLower)

	amount := 0.0
	description := ""
	matched := false

	for _, pattern := range segmentPatterns {
		m := pattern.re.FindStringSubmatch(segment)
		if m == nil {
			continue
		}

		amount = parseAmountCapture(m[pattern.amountIdx])
		description = strings.TrimSpace(m[pattern.descIdx])
		matched = true
		break
	}

	if !matched {
		amount = ExtractAmount(segment)
		description = cleanFallbackDescription(segment, amount)
	}

	// The optional verb group can leave "gasté" glued to the description.
	if strings.HasPrefix(strings.ToLower(description), "gasté ") {
		description = strings.TrimSpace(description[len("gasté "):])
	}

	if amount <= 0 {
		return nil
	}

	category, cleanDesc := ClassifyCategory(description, registry)
	if cleanDesc != "" && cleanDesc != FallbackDescription && cleanDesc != "Compra" {
		description = cleanDesc
	}
	description = capitalizeFirst(description)

	draft := &Draft{
		Type:        polarity,
		Amount:      amount,
		Description: description,
		Date:        date,
		Method:      MethodVoice,
	}
	if category != nil {
		draft.CategoryID = category.ID
	}

	return draft
}

func parseAmountCapture(capture string) float64 {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(capture, ",", "."), 64)
	if err != nil {
		return 0
	}
	return amount
}

// cleanFallbackDescription strips the amount digits, currency and connector
// tokens and a leading article, then collapses whitespace. It intentionally
// keeps whatever product name survives.
func cleanFallbackDescription(segment string, amount float64) string {
	description := strings.Replace(segment, strconv.FormatFloat(amount, 'f', -1, 64), "", 1)
	description = currencyWordsRe.ReplaceAllString(description, "")
	description = connectorWordsRe.ReplaceAllString(description, "")
	description = leadingArticleRe.ReplaceAllString(description, "")
	description = multiSpaceRe.ReplaceAllString(description, " ")
	return strings.TrimSpace(description)
}
