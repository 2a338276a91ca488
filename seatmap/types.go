package seatmap

import (
	"bytes"
	"encoding/json"
)

// NoOffer is the value serialized for price and currency when a seat
// carries no priced offer.
const NoOffer = "no offer"

// CabinUnspecified is the cabin class emitted for schemas that carry no
// cabin-class concept at the seat level.
const CabinUnspecified = "unspecified"

// Offer is a resolved price for a seat.
type Offer struct {
	Price    float64
	Currency string
}

// SeatRecord describes one physical seat in the normalized output schema.
// A nil Offer means the seat has no priced offer; both price and currency
// then serialize as the NoOffer sentinel, never one without the other.
type SeatRecord struct {
	ID         string
	Available  bool
	CabinClass string
	Offer      *Offer
	SeatTypes  []string
}

// seatRecordJSON is the wire shape of a SeatRecord. Price and Currency are
// a string-or-number union: a float and an ISO code when an offer exists,
// the NoOffer sentinel string otherwise.
type seatRecordJSON struct {
	ID         string   `json:"id"`
	Available  bool     `json:"available"`
	CabinClass string   `json:"cabinClass"`
	Price      any      `json:"price"`
	Currency   any      `json:"currency"`
	SeatType   []string `json:"seatType"`
}

// MarshalJSON serializes the record in the flat output schema.
func (s SeatRecord) MarshalJSON() ([]byte, error) {
	out := seatRecordJSON{
		ID:         s.ID,
		Available:  s.Available,
		CabinClass: s.CabinClass,
		Price:      NoOffer,
		Currency:   NoOffer,
		SeatType:   s.SeatTypes,
	}
	if s.Offer != nil {
		out.Price = s.Offer.Price
		out.Currency = s.Offer.Currency
	}
	if out.SeatType == nil {
		out.SeatType = []string{}
	}
	return json.Marshal(out)
}

// SeatMap maps row-number strings to the seats in that row, preserving
// document traversal order. Setting a row number that already exists
// replaces its seats but keeps the key's original position.
type SeatMap struct {
	order []string
	rows  map[string][]SeatRecord
}

// NewSeatMap creates an empty seat map.
func NewSeatMap() *SeatMap {
	return &SeatMap{rows: map[string][]SeatRecord{}}
}

// SetRow stores the seat list for a row, replacing any earlier list.
func (m *SeatMap) SetRow(number string, seats []SeatRecord) {
	if _, exists := m.rows[number]; !exists {
		m.order = append(m.order, number)
	}
	m.rows[number] = seats
}

// Row returns the seat list for a row number.
func (m *SeatMap) Row(number string) ([]SeatRecord, bool) {
	seats, ok := m.rows[number]
	return seats, ok
}

// RowNumbers returns the row numbers in traversal order.
func (m *SeatMap) RowNumbers() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of rows.
func (m *SeatMap) Len() int { return len(m.order) }

// MarshalJSON serializes the map as a JSON object whose keys appear in
// traversal order. Marshalling the same map twice yields identical bytes.
func (m *SeatMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, number := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(number)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		seats := m.rows[number]
		if seats == nil {
			seats = []SeatRecord{}
		}
		val, err := json.Marshal(seats)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
