package services

import "testing"

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only/-"},
		{5, "Five Rupees Only/-"},
		{42, "Forty Two Rupees Only/-"},
		{118, "One Hundred and Eighteen Rupees Only/-"},
		{1180, "One Thousand One Hundred and Eighty Rupees Only/-"},
		{913183, "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three Rupees Only/-"},
		{25000000, "Two Crores Fifty Lakhs Rupees Only/-"},
		{1180.4, "One Thousand One Hundred and Eighty Rupees Only/-"}, // rounded
	}
	for _, tt := range tests {
		if got := AmountInWords(tt.amount); got != tt.want {
			t.Errorf("AmountInWords(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
