package nlp

import (
	"regexp"
	"strconv"
)

type lexiconEntry struct {
	word  string
	value float64
}

// numberLexicon maps spoken Spanish numbers to values. Order matters for word
// substitution: multiword entries come first so "tres mil" becomes "3000"
// instead of "3 1000"; single words are protected by \b either way.
var numberLexicon = []lexiconEntry{
	{"cinco mil", 5000},
	{"cuatro mil", 4000},
	{"tres mil", 3000},
	{"dos mil", 2000},
	{"mil", 1000},
	{"cero", 0}, {"uno", 1}, {"una", 1}, {"dos", 2}, {"tres", 3},
	{"cuatro", 4}, {"cinco", 5}, {"seis", 6}, {"siete", 7}, {"ocho", 8},
	{"nueve", 9}, {"diez", 10}, {"once", 11}, {"doce", 12}, {"trece", 13},
	{"catorce", 14}, {"quince", 15},
	{"dieciséis", 16}, {"dieciseis", 16}, {"diecisiete", 17},
	{"dieciocho", 18}, {"diecinueve", 19}, {"veinte", 20},
	{"veintiuno", 21}, {"veintidós", 22}, {"veintidos", 22},
	{"veintitrés", 23}, {"veintitres", 23}, {"veinticuatro", 24},
	{"veinticinco", 25}, {"veintiséis", 26}, {"veintiseis", 26},
	{"veintisiete", 27}, {"veintiocho", 28}, {"veintinueve", 29},
	{"treinta", 30}, {"cuarenta", 40}, {"cincuenta", 50},
	{"sesenta", 60}, {"setenta", 70}, {"ochenta", 80}, {"noventa", 90},
	{"cien", 100}, {"ciento", 100},
	{"doscientos", 200}, {"doscientas", 200},
	{"trescientos", 300}, {"trescientas", 300},
	{"cuatrocientos", 400}, {"cuatrocientas", 400},
	{"quinientos", 500}, {"quinientas", 500},
	{"seiscientos", 600}, {"seiscientas", 600},
	{"setecientos", 700}, {"setecientas", 700},
	{"ochocientos", 800}, {"ochocientas", 800},
	{"novecientos", 900}, {"novecientas", 900},
}

var numberWordValues = func() map[string]float64 {
	m := make(map[string]float64, len(numberLexicon))
	for _, e := range numberLexicon {
		m[e.word] = e.value
	}
	return m
}()

type lexiconSubstitution struct {
	re    *regexp.Regexp
	digit string
}

var lexiconSubstitutions = func() []lexiconSubstitution {
	subs := make([]lexiconSubstitution, 0, len(numberLexicon))
	for _, e := range numberLexicon {
		subs = append(subs, lexiconSubstitution{
			re:    regexp.MustCompile(`\b` + e.word + `\b`),
			digit: strconv.Itoa(int(e.value)),
		})
	}
	return subs
}()

// substituteNumberWords rewrites every whole-word lexicon entry in the
// lower-cased text as its digit string.
func substituteNumberWords(lower string) string {
	for _, sub := range lexiconSubstitutions {
		lower = sub.re.ReplaceAllString(lower, sub.digit)
	}
	return lower
}

// lexiconValue returns 0 for unknown words; compound parsing treats an
// unknown multiplier as 1.
func lexiconValue(word string) float64 {
	return numberWordValues[word]
}

// dateNumberWords is the small vocabulary accepted by relative-date
// expressions ("hace dos días").
var dateNumberWords = map[string]int{
	"un": 1, "una": 1, "uno": 1,
	"dos": 2, "tres": 3, "cuatro": 4, "cinco": 5,
	"seis": 6, "siete": 7,
}

const dateNumberAlternatives = `\d+|un|una|uno|dos|tres|cuatro|cinco|seis|siete`
