package nlp

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestPipeline_MultipleExpenses(t *testing.T) {
	p := NewPipeline(testRegistry(), fixedNow)

	drafts := p.ExtractTransactions("gasté 50 en un mcflurry y 200 en gasolina")
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2: %+v", len(drafts), drafts)
	}

	first, second := drafts[0], drafts[1]

	if first.Amount != 50 || first.Description != "Mcflurry" || first.CategoryID != "comida" {
		t.Errorf("first draft = %+v", first)
	}
	if second.Amount != 200 || second.Description != "Gasolina" || second.CategoryID != "transporte" {
		t.Errorf("second draft = %+v", second)
	}

	for _, draft := range drafts {
		if draft.Type != TypeExpense {
			t.Errorf("draft type = %q, want %q", draft.Type, TypeExpense)
		}
		if draft.Method != MethodVoice {
			t.Errorf("draft method = %q, want %q", draft.Method, MethodVoice)
		}
		if !draft.Date.Equal(fixedNow()) {
			t.Errorf("draft date = %v, want %v", draft.Date, fixedNow())
		}
	}
}

func TestPipeline_IncomeWithSpokenAmount(t *testing.T) {
	p := NewPipeline(testRegistry(), fixedNow)

	drafts := p.ExtractTransactions("me pagaron tres mil de salario")
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts, want 1: %+v", len(drafts), drafts)
	}
	if drafts[0].Type != TypeIncome {
		t.Errorf("type = %q, want %q", drafts[0].Type, TypeIncome)
	}
	if drafts[0].Amount != 3000 {
		t.Errorf("amount = %v, want 3000", drafts[0].Amount)
	}
}

func TestPipeline_RelativeDateAppliesToAllDrafts(t *testing.T) {
	p := NewPipeline(testRegistry(), fixedNow)

	drafts := p.ExtractTransactions("ayer gasté 100 en pizza y 80 en taxi")
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2: %+v", len(drafts), drafts)
	}

	want := fixedNow().AddDate(0, 0, -1)
	for _, draft := range drafts {
		if !draft.Date.Equal(want) {
			t.Errorf("draft date = %v, want %v", draft.Date, want)
		}
	}
}

func TestPipeline_NoTransactions(t *testing.T) {
	p := NewPipeline(testRegistry(), fixedNow)

	if drafts := p.ExtractTransactions("hola buenos días"); len(drafts) != 0 {
		t.Fatalf("got %d drafts, want 0: %+v", len(drafts), drafts)
	}
}

func TestPipeline_ShortSegmentsDropped(t *testing.T) {
	p := NewPipeline(testRegistry(), fixedNow)

	drafts := p.ExtractTransactions("taxi 50, ok")
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts, want 1: %+v", len(drafts), drafts)
	}
	if drafts[0].Amount != 50 {
		t.Errorf("amount = %v, want 50", drafts[0].Amount)
	}
}

func TestPipeline_AmountsAlwaysPositive(t *testing.T) {
	p := NewPipeline(testRegistry(), fixedNow)

	transcripts := []string{
		"gasté 50 en un mcflurry y 200 en gasolina",
		"me pagaron tres mil de salario",
		"compré pan, leche y huevos por 120",
		"ayer gasté 100 en pizza",
	}

	for _, transcript := range transcripts {
		for _, draft := range p.ExtractTransactions(transcript) {
			if draft.Amount <= 0 {
				t.Errorf("ExtractTransactions(%q) produced non-positive amount: %+v", transcript, draft)
			}
		}
	}
}
