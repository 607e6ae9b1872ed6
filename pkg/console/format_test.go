package console

import "testing"

func TestFormatterGerman(t *testing.T) {
	f := NewFormatter("de", "€")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"money", f.Money(12345.67), "12.345,67 €"},
		{"money pads decimals", f.Money(5), "5,00 €"},
		{"count", f.Count(1560), "1.560"},
		{"decimal", f.Decimal(0.9), "0,90"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestFormatterEnglish(t *testing.T) {
	f := NewFormatter("en", "EUR")
	if got := f.Money(12345.67); got != "12,345.67 EUR" {
		t.Errorf("Money() = %q, want %q", got, "12,345.67 EUR")
	}
}

func TestFormatterFallsBackToGerman(t *testing.T) {
	f := NewFormatter("not a locale!", "")
	if got := f.Money(1000); got != "1.000,00 €" {
		t.Errorf("Money() = %q, want %q", got, "1.000,00 €")
	}
}

func TestBarLength(t *testing.T) {
	if got := barLength(-50, 100); got != 20 {
		t.Errorf("barLength(-50, 100) = %d, want 20", got)
	}
	if got := barLength(100, 100); got != 40 {
		t.Errorf("barLength(100, 100) = %d, want 40", got)
	}
	if got := barLength(1, 0); got != 0 {
		t.Errorf("barLength(1, 0) = %d, want 0", got)
	}
}
