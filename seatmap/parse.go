package seatmap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Decode reads one XML seat-map document and converts it to the normalized
// row-indexed seat map. The root element's tag selects the schema: a tag
// ending in "Envelope" is treated as a SOAP-wrapped OpenTravel response, a
// tag ending in "SeatAvailabilityRS" as an IATA EDIST response. Tag
// matching is a suffix check because namespace prefixes vary per producer.
//
// On any failure no partial seat map is returned.
func Decode(r io.Reader) (*SeatMap, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("read XML document: no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("read XML document: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case strings.HasSuffix(start.Name.Local, "Envelope"):
			var env otaEnvelope
			if err := dec.DecodeElement(&env, &start); err != nil {
				return nil, fmt.Errorf("decode OpenTravel envelope: %w", err)
			}
			return extractOpenTravel(&env)
		case strings.HasSuffix(start.Name.Local, "SeatAvailabilityRS"):
			var doc iataSeatAvailabilityRS
			if err := dec.DecodeElement(&doc, &start); err != nil {
				return nil, fmt.Errorf("decode IATA SeatAvailabilityRS: %w", err)
			}
			return extractIATA(&doc)
		default:
			return nil, &UnsupportedFormatError{Root: start.Name.Local}
		}
	}
}

// DecodeFile opens an XML seat-map file and decodes it.
func DecodeFile(path string) (*SeatMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}
