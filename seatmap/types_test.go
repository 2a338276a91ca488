package seatmap_test

import (
	"encoding/json"
	"testing"

	"github.com/thomasbreydo/seatmap-parser/seatmap"
)

// TestSeatMap_TraversalOrder verifies keys serialize in insertion order
func TestSeatMap_TraversalOrder(t *testing.T) {
	m := seatmap.NewSeatMap()
	m.SetRow("10", []seatmap.SeatRecord{})
	m.SetRow("2", []seatmap.SeatRecord{})
	m.SetRow("1", []seatmap.SeatRecord{})

	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `{"10":[],"2":[],"1":[]}` {
		t.Errorf("Keys should keep insertion order, not numeric order, got %s", b)
	}

	t.Log("✓ Seat map serializes in traversal order")
}

// TestSeatMap_ReplaceKeepsPosition verifies replacing a row leaves its key position
func TestSeatMap_ReplaceKeepsPosition(t *testing.T) {
	m := seatmap.NewSeatMap()
	m.SetRow("1", []seatmap.SeatRecord{{ID: "1A"}})
	m.SetRow("2", []seatmap.SeatRecord{{ID: "2A"}})
	m.SetRow("1", []seatmap.SeatRecord{{ID: "1B"}})

	if got := m.RowNumbers(); len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("Replacing a row should keep its original position, got %v", got)
	}
	seats, _ := m.Row("1")
	if len(seats) != 1 || seats[0].ID != "1B" {
		t.Errorf("Replacement should win entirely, got %+v", seats)
	}

	t.Log("✓ Row replacement preserves key position")
}

// TestSeatRecord_MarshalJSON covers the string-or-number price union
func TestSeatRecord_MarshalJSON(t *testing.T) {
	cases := []struct {
		name   string
		record seatmap.SeatRecord
		want   string
	}{
		{
			name: "priced seat",
			record: seatmap.SeatRecord{
				ID:         "1B",
				Available:  true,
				CabinClass: "Economy",
				Offer:      &seatmap.Offer{Price: 44.0, Currency: "USD"},
				SeatTypes:  []string{"Window"},
			},
			want: `{"id":"1B","available":true,"cabinClass":"Economy","price":44,"currency":"USD","seatType":["Window"]}`,
		},
		{
			name: "no offer",
			record: seatmap.SeatRecord{
				ID:         "1A",
				CabinClass: "Economy",
				SeatTypes:  []string{"Limited Recline", "Center"},
			},
			want: `{"id":"1A","available":false,"cabinClass":"Economy","price":"no offer","currency":"no offer","seatType":["Limited Recline","Center"]}`,
		},
		{
			name:   "nil seat types serialize as empty array",
			record: seatmap.SeatRecord{ID: "9F", CabinClass: seatmap.CabinUnspecified},
			want:   `{"id":"9F","available":false,"cabinClass":"unspecified","price":"no offer","currency":"no offer","seatType":[]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.record)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(b) != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, b)
			}
		})
	}

	t.Log("✓ Seat records serialize the price/currency union correctly")
}
