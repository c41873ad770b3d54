package nlp

import "testing"

func testRegistry() []Category {
	return []Category{
		{
			ID: "comida", Name: "Comida", Selected: true, Priority: 1.2,
			Keywords: []string{"pizza", "tacos", "mcflurry"},
		},
		{
			ID: "transporte", Name: "Transporte", Selected: true, Priority: 1.0,
			Keywords: []string{"gasolina", "uber", "taxi"},
		},
		{
			ID: "otros", Name: "Otros", Selected: true, Priority: 1.0,
			Keywords: nil,
		},
	}
}

func TestClassifyCategory_KeywordMatch(t *testing.T) {
	registry := testRegistry()

	category, description := ClassifyCategory("gasolina", registry)
	if category == nil || category.ID != "transporte" {
		t.Fatalf("expected transporte, got %+v", category)
	}
	if description != "Gasolina" {
		t.Errorf("description = %q, want %q", description, "Gasolina")
	}
}

func TestClassifyCategory_AccentFolding(t *testing.T) {
	registry := []Category{
		{ID: "salud", Name: "Salud", Selected: true, Priority: 1.0, Keywords: []string{"médico"}},
	}

	category, _ := ClassifyCategory("cita con el medico", registry)
	if category == nil || category.ID != "salud" {
		t.Fatalf("plain spelling did not match accented keyword, got %+v", category)
	}
}

func TestClassifyCategory_PriorityBreaksLengthTie(t *testing.T) {
	registry := []Category{
		{ID: "a", Name: "A", Selected: true, Priority: 1.0, Keywords: []string{"cafe"}},
		{ID: "b", Name: "B", Selected: true, Priority: 1.5, Keywords: []string{"taza"}},
	}

	category, _ := ClassifyCategory("cafe y taza", registry)
	if category == nil || category.ID != "b" {
		t.Fatalf("expected boosted category b, got %+v", category)
	}
}

func TestClassifyCategory_TieKeepsFirstRegistered(t *testing.T) {
	registry := []Category{
		{ID: "first", Name: "First", Selected: true, Priority: 1.0, Keywords: []string{"cine"}},
		{ID: "second", Name: "Second", Selected: true, Priority: 1.0, Keywords: []string{"cine"}},
	}

	category, _ := ClassifyCategory("boletos de cine", registry)
	if category == nil || category.ID != "first" {
		t.Fatalf("expected first-registered category, got %+v", category)
	}
}

func TestClassifyCategory_LongerTextKeepsUserDetail(t *testing.T) {
	registry := testRegistry()

	_, description := ClassifyCategory("una pizza hawaiana grande", registry)
	if description != "Pizza hawaiana grande" {
		t.Errorf("description = %q, want %q", description, "Pizza hawaiana grande")
	}
}

func TestClassifyCategory_FallbackToFirstSelected(t *testing.T) {
	registry := testRegistry()

	category, description := ClassifyCategory("un mcbook", registry)
	if category == nil || category.ID != "comida" {
		t.Fatalf("expected first selected category as fallback, got %+v", category)
	}
	if description != "Mcbook" {
		t.Errorf("description = %q, want %q", description, "Mcbook")
	}
}

func TestClassifyCategory_EmptyText(t *testing.T) {
	registry := testRegistry()

	category, description := ClassifyCategory("", registry)
	if category == nil {
		t.Fatal("expected fallback category for empty text")
	}
	if description != FallbackDescription {
		t.Errorf("description = %q, want %q", description, FallbackDescription)
	}
}

func TestClassifyCategory_EmptyRegistry(t *testing.T) {
	category, description := ClassifyCategory("pizza", nil)
	if category != nil {
		t.Fatalf("expected nil category for empty registry, got %+v", category)
	}
	if description != "Pizza" {
		t.Errorf("description = %q, want %q", description, "Pizza")
	}
}
