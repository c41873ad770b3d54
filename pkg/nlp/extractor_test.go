package nlp

import (
	"strings"
	"testing"
	"time"
)

var testDate = time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

func extract(t *testing.T, segment string) *Draft {
	t.Helper()
	return ExtractSegment(segment, strings.ToLower(segment), testDate, testRegistry())
}

func TestExtractSegment_PhraseShapes(t *testing.T) {
	tests := []struct {
		name       string
		segment    string
		wantAmount float64
		wantDesc   string
		wantCatID  string
	}{
		{
			name:       "verb amount connector description",
			segment:    "gasté 50 en un mcflurry",
			wantAmount: 50,
			wantDesc:   "Mcflurry",
			wantCatID:  "comida",
		},
		{
			name:       "amount connector description",
			segment:    "200 en gasolina",
			wantAmount: 200,
			wantDesc:   "Gasolina",
			wantCatID:  "transporte",
		},
		{
			name:       "description connector amount",
			segment:    "pizza en 200",
			wantAmount: 200,
			wantDesc:   "Pizza",
			wantCatID:  "comida",
		},
		{
			name:       "description amount currency",
			segment:    "taxi 80 pesos",
			wantAmount: 80,
			wantDesc:   "Taxi",
			wantCatID:  "transporte",
		},
		{
			name:       "bare description amount",
			segment:    "uber 120",
			wantAmount: 120,
			wantDesc:   "Uber",
			wantCatID:  "transporte",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft := extract(t, tc.segment)
			if draft == nil {
				t.Fatalf("ExtractSegment(%q) = nil", tc.segment)
			}
			if draft.Amount != tc.wantAmount {
				t.Errorf("amount = %v, want %v", draft.Amount, tc.wantAmount)
			}
			if draft.Description != tc.wantDesc {
				t.Errorf("description = %q, want %q", draft.Description, tc.wantDesc)
			}
			if draft.CategoryID != tc.wantCatID {
				t.Errorf("category = %q, want %q", draft.CategoryID, tc.wantCatID)
			}
			if draft.Method != MethodVoice {
				t.Errorf("method = %q, want %q", draft.Method, MethodVoice)
			}
			if !draft.Date.Equal(testDate) {
				t.Errorf("date = %v, want %v", draft.Date, testDate)
			}
		})
	}
}

func TestExtractSegment_SpokenAmountFallback(t *testing.T) {
	draft := extract(t, "gasté quinientos en tacos")
	if draft == nil {
		t.Fatal("expected a draft for a spoken amount")
	}
	if draft.Amount != 500 {
		t.Errorf("amount = %v, want 500", draft.Amount)
	}
}

func TestExtractSegment_NoAmount(t *testing.T) {
	if draft := extract(t, "hola buenos días"); draft != nil {
		t.Fatalf("expected nil draft, got %+v", draft)
	}
}

func TestExtractSegment_PolarityComesFromWholeUtterance(t *testing.T) {
	// The segment itself has no polarity cue; the whole utterance does.
	draft := ExtractSegment("200 en gasolina", "me pagaron 3000 y 200 en gasolina", testDate, testRegistry())
	if draft == nil {
		t.Fatal("expected a draft")
	}
	if draft.Type != TypeIncome {
		t.Errorf("type = %q, want %q", draft.Type, TypeIncome)
	}
}
