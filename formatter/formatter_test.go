package formatter

import (
	"strings"
	"testing"

	"github.com/thomasbreydo/seatmap-parser/seatmap"
)

// TestBuildJSON covers compact and pretty serialization
func TestBuildJSON(t *testing.T) {
	m := seatmap.NewSeatMap()
	m.SetRow("1", []seatmap.SeatRecord{{ID: "1A", CabinClass: "Economy"}})

	compact, err := BuildJSON(m, false)
	if err != nil {
		t.Fatalf("BuildJSON failed: %v", err)
	}
	if strings.Contains(string(compact), "\n") {
		t.Errorf("Compact output should have no newlines, got %s", compact)
	}

	pretty, err := BuildJSON(m, true)
	if err != nil {
		t.Fatalf("BuildJSON pretty failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n") {
		t.Errorf("Pretty output should be indented, got %s", pretty)
	}

	t.Log("✓ JSON serialization verified")
}

// TestOutputName covers artifact name derivation
func TestOutputName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "/Users/exampleperson/Documents/seatmap1.xml", want: "seatmap1_parsed.json"},
		{input: "seatmap1.xml", want: "seatmap1_parsed.json"},
		{input: "response.ota.xml", want: "responseota_parsed.json"},
		{input: "noextension", want: "noextension_parsed.json"},
		{input: "data/nested/input.XML", want: "input_parsed.json"},
	}

	for _, tc := range cases {
		if got := OutputName(tc.input); got != tc.want {
			t.Errorf("OutputName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}

	t.Log("✓ Output filename derivation verified")
}
