package seatmap

import "testing"

// TestDecodeScaledPrice covers the mantissa/exponent price decoder
func TestDecodeScaledPrice(t *testing.T) {
	cases := []struct {
		amount        string
		decimalPlaces string
		want          float64
		wantErr       bool
	}{
		{amount: "4400", decimalPlaces: "2", want: 44.0},
		{amount: "25", decimalPlaces: "0", want: 25.0},
		{amount: "1999", decimalPlaces: "3", want: 1.999},
		{amount: "-500", decimalPlaces: "2", want: -5.0},
		{amount: "44.5", decimalPlaces: "2", wantErr: true},
		{amount: "", decimalPlaces: "2", wantErr: true},
		{amount: "4400", decimalPlaces: "two", wantErr: true},
		{amount: "4400", decimalPlaces: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := decodeScaledPrice(tc.amount, tc.decimalPlaces)
		if tc.wantErr {
			if err == nil {
				t.Errorf("decodeScaledPrice(%q, %q) should fail", tc.amount, tc.decimalPlaces)
			}
			continue
		}
		if err != nil {
			t.Errorf("decodeScaledPrice(%q, %q) failed: %v", tc.amount, tc.decimalPlaces, err)
			continue
		}
		if got != tc.want {
			t.Errorf("decodeScaledPrice(%q, %q) = %v, want %v", tc.amount, tc.decimalPlaces, got, tc.want)
		}
	}

	t.Log("✓ Scaled price decoding verified")
}

// TestDecodeAvailability verifies only the exact literal counts
func TestDecodeAvailability(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"TRUE":  false,
		"True":  false,
		"false": false,
		"1":     false,
		"":      false,
	}

	for ind, want := range cases {
		if got := decodeAvailability(ind); got != want {
			t.Errorf("decodeAvailability(%q) = %v, want %v", ind, got, want)
		}
	}

	t.Log("✓ Availability flag decoding verified")
}

// TestDecodePlainPrice verifies decimal parsing with surrounding whitespace
func TestDecodePlainPrice(t *testing.T) {
	if got, err := decodePlainPrice(" 25.50 \n"); err != nil || got != 25.5 {
		t.Errorf("decodePlainPrice should trim whitespace, got %v, %v", got, err)
	}
	if _, err := decodePlainPrice("lots"); err == nil {
		t.Error("Non-numeric price text should fail")
	}

	t.Log("✓ Plain price decoding verified")
}
