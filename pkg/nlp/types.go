package nlp

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// MethodVoice tags drafts produced by the transcript pipeline.
const MethodVoice = "voice"

// Category is the pipeline's read-only view of one registry entry. The
// registry is an ordered slice; iteration order decides keyword ties.
type Category struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
	Selected bool     `json:"selected"`
	Priority float64  `json:"priority"`
	Keywords []string `json:"keywords"`
}

// Draft is one extracted, not-yet-persisted transaction. Amount is always
// positive; polarity is carried in Type.
type Draft struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category_id"`
	Date        time.Time `json:"date"`
	Method      string    `json:"method"`
}

type IExtractor interface {
	ExtractTransactions(transcript string) []Draft
}
