package loyalty

import (
	"strings"
	"testing"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normalized", in: "JOHN-1234", want: "JOHN-1234"},
		{name: "lower case", in: "john-1234", want: "JOHN-1234"},
		{name: "mixed case with spaces", in: "  JoHn-1234 ", want: "JOHN-1234"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCode(tt.in); got != tt.want {
				t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateCode(t *testing.T) {
	tests := []struct {
		name       string
		fullName   string
		wantPrefix string
	}{
		{name: "simple name", fullName: "John Doe", wantPrefix: "JOHN-"},
		{name: "lower case name", fullName: "priya sharma", wantPrefix: "PRIYA-"},
		{name: "long first name truncated", fullName: "Maximiliane K", wantPrefix: "MAXIMILI-"},
		{name: "empty name falls back", fullName: "", wantPrefix: "GUEST-"},
		{name: "digits only falls back", fullName: "12345", wantPrefix: "GUEST-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCode(tt.fullName)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("GenerateCode(%q) = %q, want prefix %q", tt.fullName, got, tt.wantPrefix)
			}
			suffix := strings.TrimPrefix(got, tt.wantPrefix)
			if len(suffix) != 4 {
				t.Errorf("GenerateCode(%q) = %q, want 4-digit suffix", tt.fullName, got)
			}
			if got != NormalizeCode(got) {
				t.Errorf("GenerateCode(%q) = %q, not normalized", tt.fullName, got)
			}
		})
	}
}

func TestCashbackFor(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   int
	}{
		{name: "round amount", amount: 450, rate: 0.10, want: 45},
		{name: "fraction floors down", amount: 449, rate: 0.10, want: 44},
		{name: "sub-ten amount", amount: 9, rate: 0.10, want: 0},
		{name: "zero amount", amount: 0, rate: 0.10, want: 0},
		{name: "negative amount", amount: -100, rate: 0.10, want: 0},
		{name: "zero rate", amount: 450, rate: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CashbackFor(tt.amount, tt.rate); got != tt.want {
				t.Errorf("CashbackFor(%v, %v) = %d, want %d", tt.amount, tt.rate, got, tt.want)
			}
		})
	}
}
