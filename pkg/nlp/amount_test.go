package nlp

import "testing"

func TestExtractAmount_DigitForms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "dollar sign",
			text: "gasté $200 en el super",
			want: 200,
		},
		{
			name: "currency word",
			text: "200 pesos de gasolina",
			want: 200,
		},
		{
			name: "bare number",
			text: "gasté 350 en la cena",
			want: 350,
		},
		{
			name: "decimal comma",
			text: "pagué 350,50 pesos",
			want: 350.5,
		},
		{
			name: "decimal point",
			text: "pagué $99.90",
			want: 99.9,
		},
		{
			name: "no amount",
			text: "no encontré nada barato",
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractAmount(tc.text)
			if got != tc.want {
				t.Errorf("ExtractAmount(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractAmount_SpokenNumbers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "single word",
			text: "gasté quinientos pesos",
			want: 500,
		},
		{
			name: "tens",
			text: "veinticinco pesos de botana",
			want: 25,
		},
		{
			name: "multiword thousand",
			text: "me pagaron tres mil",
			want: 3000,
		},
		{
			name: "compound thousand with hundreds",
			text: "deposité dos mil quinientos",
			want: 2500,
		},
		{
			name: "compound thousand with hundreds and units",
			text: "cuatro mil doscientos",
			want: 4200,
		},
		{
			name: "bare mil",
			text: "gasté mil en el concierto",
			want: 1000,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractAmount(tc.text)
			if got != tc.want {
				t.Errorf("ExtractAmount(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
