package nlp

import (
	"reflect"
	"testing"
)

func TestSegmentTranscript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single item",
			text: "gasté 50 en pizza",
			want: []string{"gasté 50 en pizza"},
		},
		{
			name: "two items joined by y",
			text: "gasté 50 en un mcflurry y 200 en gasolina",
			want: []string{"gasté 50 en un mcflurry", "200 en gasolina"},
		},
		{
			name: "también",
			text: "gasté 100 en el super también 50 en dulces",
			want: []string{"gasté 100 en el super", "50 en dulces"},
		},
		{
			name: "además",
			text: "pagué la luz además 200 de agua",
			want: []string{"pagué la luz", "200 de agua"},
		},
		{
			name: "comma list with final y",
			text: "compré pan, leche y huevos",
			want: []string{"compré pan", "leche", "huevos"},
		},
		{
			name: "mixed separators",
			text: "taxi 50, uber 80 y 30 de estacionamiento",
			want: []string{"taxi 50", "uber 80", "30 de estacionamiento"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SegmentTranscript(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SegmentTranscript(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
