// Package seatmap converts airline seat-map XML documents into a single
// normalized row-indexed seat record structure.
//
// Two source schemas are supported: a SOAP-wrapped OpenTravel Alliance
// OTA_AirSeatMapRS response and an IATA EDIST SeatAvailabilityRS response.
// The root element's tag selects the extractor; both produce the same
// output shape, so consumers never branch on the source format.
//
// # Usage
//
//	m, err := seatmap.Decode(file)
//	if err != nil {
//	    // *seatmap.UnsupportedFormatError or *seatmap.MalformedDocumentError
//	}
//	b, _ := json.Marshal(m)
//
// # Output shape
//
// The seat map serializes as a JSON object keyed by row number, in document
// traversal order:
//
//	{
//	    "12": [
//	        {
//	            "id": "12A",
//	            "available": true,
//	            "cabinClass": "Economy",
//	            "price": 44.0,
//	            "currency": "USD",
//	            "seatType": ["Window"]
//	        }
//	    ]
//	}
//
// Seats with no priced offer carry the literal string "no offer" in both
// the price and currency fields, so those fields are a string-or-number
// union on the wire.
//
// # Error handling
//
// Extraction is all-or-nothing per document. A root element matching
// neither schema yields *UnsupportedFormatError; a missing required
// element or attribute, an undecodable number, or an unresolved offer or
// seat-definition reference yields *MalformedDocumentError. No partial
// seat map is ever returned alongside an error.
//
// # Concurrency
//
// Decode is a pure transform with no shared state; concurrent calls on
// distinct readers are safe. The offer and seat-definition indexes built
// for an IATA document are local to one Decode call.
package seatmap
