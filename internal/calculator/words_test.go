package calculator

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Zero Only"},
		{"0.001", "Zero Only"},
		{"1", "One Rupees Only"},
		{"15", "Fifteen Rupees Only"},
		{"20", "Twenty Rupees Only"},
		{"21", "Twenty One Rupees Only"},
		{"99", "Ninety Nine Rupees Only"},
		{"100", "One Hundred Rupees Only"},
		{"101", "One Hundred One Rupees Only"},
		{"999", "Nine Hundred Ninety Nine Rupees Only"},
		{"1000", "One Thousand Rupees Only"},
		{"1500.50", "One Thousand Five Hundred Rupees and Fifty Paise Only"},
		{"2500.05", "Two Thousand Five Hundred Rupees and Five Paise Only"},
		{"10010", "Ten Thousand Ten Rupees Only"},
		{"99999", "Ninety Nine Thousand Nine Hundred Ninety Nine Rupees Only"},
		{"100000", "One Lakh Rupees Only"},
		{"1234567.5", "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees and Fifty Paise Only"},
		{"9999999", "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Rupees Only"},
		{"10000000", "One Crore Rupees Only"},
		{"250000000", "Twenty Five Crore Rupees Only"},
		{"10000000000", "One Thousand Crore Rupees Only"},
		{"123456789012.34", "Twelve Thousand Three Hundred Forty Five Crore Sixty Seven Lakh Eighty Nine Thousand Twelve Rupees and Thirty Four Paise Only"},
		{"9223372036854775808", "Ninety Two Thousand Two Hundred Thirty Three Crore Seventy Two Lakh Three Thousand Six Hundred Eighty Five Crore Forty Seven Lakh Seventy Five Thousand Eight Hundred Eight Rupees Only"},
		{"18446744073709551620", "One Lakh Eighty Four Thousand Four Hundred Sixty Seven Crore Forty Four Lakh Seven Thousand Three Hundred Seventy Crore Ninety Five Lakh Fifty One Thousand Six Hundred Twenty Rupees Only"},
		{"100000000000000000000", "Ten Lakh Crore Crore Rupees Only"},
		{"0.75", "Rupees and Seventy Five Paise Only"},
		{"10.999", "Eleven Rupees Only"},
		{"-100", "Minus One Hundred Rupees Only"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := Words(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("Words(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestWordsAlwaysEndsWithOnly(t *testing.T) {
	for _, n := range []int64{0, 3, 17, 40, 118, 7005, 45678, 305000, 8765432, 123456789} {
		for _, cents := range []int64{0, 1, 50, 99} {
			amount := decimal.New(n*100+cents, -2)
			got := Words(amount)
			if got == "" {
				t.Fatalf("Words(%s) is empty", amount)
			}
			if !strings.HasSuffix(got, "Only") {
				t.Errorf("Words(%s) = %q, want suffix \"Only\"", amount, got)
			}
			if strings.Contains(got, "  ") || strings.TrimSpace(got) != got {
				t.Errorf("Words(%s) = %q has stray whitespace", amount, got)
			}
			if again := Words(amount); again != got {
				t.Errorf("Words(%s) not deterministic: %q then %q", amount, got, again)
			}
		}
	}
}
