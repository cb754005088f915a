package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestWholeTruncatesTowardZero(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"1999.99", "1999"},
		{"0.5", "0"},
		{"-12.7", "-12"},
		{"60000", "60000"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.Whole().Decimal.String(); got != c.out {
			t.Fatalf("whole(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestGrouping(t *testing.T) {
	cases := []struct {
		in      float64
		grouped string
	}{
		{0, "0"},
		{999.99, "999"},
		{1000, "1,000"},
		{60000, "60,000"},
		{1234567.891, "1,234,567"},
		{-45678.5, "-45,678"},
		{-0.5, "0"},
		{1e21, "1,000,000,000,000,000,000,000"},
	}
	for _, c := range cases {
		m := NewMoney(c.in)
		if got := m.Grouped(); got != c.grouped {
			t.Errorf("Grouped(%v) got %s want %s", c.in, got, c.grouped)
		}
	}
}

func TestFormat(t *testing.T) {
	m := NewMoney(1000000)
	if got := m.Format(""); got != "1,000,000 lei" {
		t.Fatalf("Format default got %s", got)
	}
	if got := m.Format("EUR"); got != "1,000,000 EUR" {
		t.Fatalf("Format EUR got %s", got)
	}
}
