package nlp

import "testing"

func TestClassifyPolarity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain expense verb",
			text: "gasté 50 en un mcflurry y 200 en gasolina",
			want: TypeExpense,
		},
		{
			name: "received gift wins outright",
			text: "me regalaron 500 pesos",
			want: TypeIncome,
		},
		{
			name: "salary with pagar substring stays income",
			text: "me pagaron 3000 de salario",
			want: TypeIncome,
		},
		{
			name: "buying a gift is an expense",
			text: "compré un regalo para mi mamá",
			want: TypeExpense,
		},
		{
			name: "sale is income",
			text: "vendí mi bici en 800",
			want: TypeIncome,
		},
		{
			name: "income noun",
			text: "me cayó el aguinaldo",
			want: TypeIncome,
		},
		{
			name: "no keyword defaults to expense",
			text: "50 en la tiendita",
			want: TypeExpense,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyPolarity(tc.text)
			if got != tc.want {
				t.Errorf("ClassifyPolarity(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
