package entity

import "testing"

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()

	if len(categories) != 9 {
		t.Fatalf("got %d default categories, want 9", len(categories))
	}

	seen := make(map[string]bool, len(categories))
	for i, cat := range categories {
		if cat.ID == "" || cat.Name == "" {
			t.Errorf("category %d is missing ID or name: %+v", i, cat)
		}
		if seen[cat.ID] {
			t.Errorf("duplicate category ID %q", cat.ID)
		}
		seen[cat.ID] = true

		if cat.Position != i+1 {
			t.Errorf("category %q position = %d, want %d", cat.ID, cat.Position, i+1)
		}
		if cat.Priority <= 0 {
			t.Errorf("category %q has non-positive priority %v", cat.ID, cat.Priority)
		}
	}

	boosts := map[string]float64{"lujo": 1.5, "comer_afuera": 1.2}
	for _, cat := range categories {
		if want, ok := boosts[cat.ID]; ok && cat.Priority != want {
			t.Errorf("category %q priority = %v, want %v", cat.ID, cat.Priority, want)
		}
	}
}

func TestSnapshotPreservesOrder(t *testing.T) {
	categories := DefaultCategories()
	snapshot := Snapshot(categories)

	if len(snapshot) != len(categories) {
		t.Fatalf("snapshot length = %d, want %d", len(snapshot), len(categories))
	}

	for i := range categories {
		if snapshot[i].ID != categories[i].ID {
			t.Errorf("snapshot[%d].ID = %q, want %q", i, snapshot[i].ID, categories[i].ID)
		}
		if len(snapshot[i].Keywords) != len(categories[i].Keywords) {
			t.Errorf("snapshot[%d] keyword count = %d, want %d",
				i, len(snapshot[i].Keywords), len(categories[i].Keywords))
		}
	}
}
