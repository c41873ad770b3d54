package nlp

import "strings"

var incomeKeywords = []string{
	// verbs
	"gané", "ganancia", "ingreso", "cobré", "recibí",
	"me pagaron", "me depositaron", "me transfirieron", "me dieron",
	"me regalaron", "me encontré", "me devolvieron", "me cayó",
	"ingresó", "entró", "llegó",

	// income nouns
	"deposito", "salario", "sueldo", "bono", "comisión",
	"premio", "apuesta", "venta", "vendí", "pago recibido",
	"transferencia recibida", "nómina", "quincena", "aguinaldo",
	"propina", "reembolso", "devolución", "regalo", "préstamo recibido",
	"utilidades", "finiquito", "liquidación", "beca", "apoyo",
	"renta", "alquiler", "dividendo", "intereses",
	"tanda", "ahorro", "alcancía", "lotería", "rifa",
	"dinero extra", "lanita extra", "domingo",
}

var expenseKeywords = []string{
	"gasté", "compré", "pagué", "di", "perdí", "costó", "pagar", "comprar",
}

// ClassifyPolarity decides income vs expense for the whole utterance. The
// result is shared by every segment derived from it; polarity is never
// re-evaluated per segment.
func ClassifyPolarity(text string) string {
	lower := strings.ToLower(text)

	// Unambiguous receiving phrases win outright.
	if strings.Contains(lower, "me regalaron") || strings.Contains(lower, "me dieron") || strings.Contains(lower, "gané") {
		return TypeIncome
	}

	hasIncome := containsAny(lower, incomeKeywords)
	hasExpense := containsAny(lower, expenseKeywords)

	if hasExpense && !hasIncome {
		return TypeExpense
	}

	// "regalo" is ambiguous: buying a gift is an expense, receiving one is
	// income. "compré" or "para" tips it to a purchase.
	if strings.Contains(lower, "regalo") && !strings.Contains(lower, "me regalaron") {
		if strings.Contains(lower, "compré") || strings.Contains(lower, "para") {
			return TypeExpense
		}
	}

	if hasIncome {
		return TypeIncome
	}
	return TypeExpense
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
