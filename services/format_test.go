package services

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		expect string
	}{
		{0, "0.00"},
		{180, "180.00"},
		{1180, "1180.00"},
		{350.5, "350.50"},
		{99.999, "100.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.amount); got != tt.expect {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.amount, got, tt.expect)
		}
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		expect string
	}{
		{0, "₹0.00"},
		{123, "₹123.00"},
		{1234, "₹1,234.00"},
		{123456, "₹1,23,456.00"},
		{12345678.9, "₹1,23,45,678.90"},
		{-1234.5, "-₹1,234.50"},
	}
	for _, tt := range tests {
		if got := FormatINR(tt.amount); got != tt.expect {
			t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.expect)
		}
	}
}
