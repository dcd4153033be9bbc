package contract

import (
	"path/filepath"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := map[float64]string{
		445000:     "445,000.00",
		0:          "0.00",
		999.5:      "999.50",
		1234567.89: "1,234,567.89",
		-2500:      "-2,500.00",
	}
	for in, want := range tests {
		if got := FormatMoney(in); got != want {
			t.Errorf("FormatMoney(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatClosingDate(t *testing.T) {
	if got := FormatClosingDate("2025-03-01"); got != "03/01/2025" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := FormatClosingDate("ASAP"); got != "ASAP" {
		t.Fatalf("unparseable date should be kept, got %q", got)
	}
}

func TestTemplatePath(t *testing.T) {
	tests := []struct {
		state, propertyType, want string
	}{
		{"TX", "condo", filepath.Join("templates", "tx", "condo-resale.pdf")},
		{"TX", "Condominium", filepath.Join("templates", "tx", "condo-resale.pdf")},
		{"tx", "singlefamily", filepath.Join("templates", "tx", "singlefamily-resale.pdf")},
		{"CA", "", filepath.Join("templates", "ca", "singlefamily-resale.pdf")},
	}
	for _, tt := range tests {
		if got := TemplatePath("templates", tt.state, tt.propertyType); got != tt.want {
			t.Errorf("TemplatePath(%q, %q) = %q, want %q", tt.state, tt.propertyType, got, tt.want)
		}
	}
}
