package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// compoundNumberRe matches two-part spoken amounts like "dos mil quinientos"
// or "tres mil doscientos y cinco".
var compoundNumberRe = regexp.MustCompile(
	`((?:dos|tres|cuatro|cinco|seis|siete|ocho|nueve)\s+mil)\s+` +
		`((?:cien|ciento|doscientos|trescientos|cuatrocientos|quinientos|seiscientos|setecientos|ochocientos|novecientos)` +
		`(?:\s+(?:y\s+)?(?:uno|dos|tres|cuatro|cinco|seis|siete|ocho|nueve|diez|veinte|treinta|cuarenta|cincuenta|sesenta|setenta|ochenta|noventa))?)`)

// amountPatterns is the numeric cascade, tried in order, first match wins.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*(\d+(?:[.,]\d+)?)`),
	regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:pesos|dólares|usd|dlls|mxn|mx)`),
	regexp.MustCompile(`(\d+(?:[.,]\d+)?)`),
	regexp.MustCompile(`(\d+)\s+de\s+`),
}

// ExtractAmount pulls a single numeric amount from a text fragment. It
// resolves digit forms, spoken-number words and compound thousand phrases,
// and returns 0 when no amount is found.
func ExtractAmount(text string) float64 {
	lower := strings.ToLower(text)

	if m := compoundNumberRe.FindString(lower); m != "" {
		if total := parseCompoundNumber(m); total > 0 {
			return total
		}
	}

	lower = substituteNumberWords(lower)

	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			continue
		}

		// "mil" survived substitution: the phrase was malformed, so treat
		// the small number as thousands. The guard avoids double-multiplying
		// amounts that already absorbed the multiplier.
		if strings.Contains(lower, "mil") && amount < 100 {
			amount *= 1000
		}

		return amount
	}

	return 0
}

func parseCompoundNumber(phrase string) float64 {
	parts := strings.Fields(phrase)
	total := 0.0

	for i, word := range parts {
		if word == "mil" {
			multiplier := 1.0
			if i > 0 {
				if v := lexiconValue(parts[i-1]); v > 0 {
					multiplier = v
				}
			}
			total = multiplier * 1000
		} else if v := lexiconValue(word); v > 0 {
			total += v
		}
	}

	return total
}
