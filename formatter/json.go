package formatter

import (
	"encoding/json"

	"github.com/thomasbreydo/seatmap-parser/seatmap"
)

// BuildJSON serializes a seat map to JSON, indented when pretty is set.
// The seat map's own marshaller preserves row traversal order.
func BuildJSON(m *seatmap.SeatMap, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(m, "", "  ")
	}
	return json.Marshal(m)
}
