package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"green", ColorGreen, true},
		{"Bright_Red", ColorBrightRed, true},
		{" blue ", ColorBlue, true},
		{"grey", ColorGray, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		parsed, ok := ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = (%v, %v), expected %v", c.String(), parsed, ok, c)
		}
	}
}
