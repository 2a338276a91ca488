package seatmap

// Wire shapes for the IATA EDIST SeatAvailabilityRS schema. Unlike the
// OpenTravel format, seats do not carry prices and feature names inline:
// they reference document-wide offer and seat-definition lists that are
// indexed up front and resolved during the row walk.

type iataSeatAvailabilityRS struct {
	Offers      []iataALaCarteOffer  `xml:"ALaCarteOffer"`
	Definitions []iataSeatDefinition `xml:"DataLists>SeatDefinitionList>SeatDefinition"`
	Rows        []iataRow            `xml:"SeatMap>Cabin>Row"`
}

type iataALaCarteOffer struct {
	Items []iataOfferItem `xml:"ALaCarteOfferItem"`
}

type iataOfferItem struct {
	OfferItemID string             `xml:"OfferItemID,attr"`
	Price       *iataCurrencyPrice `xml:"UnitPriceDetail>TotalAmount>SimpleCurrencyPrice"`
}

type iataCurrencyPrice struct {
	Code  string `xml:"Code,attr"`
	Value string `xml:",chardata"`
}

type iataSeatDefinition struct {
	SeatDefinitionID string    `xml:"SeatDefinitionID,attr"`
	Name             *iataText `xml:"Description>Text"`
}

type iataRow struct {
	Number *iataText  `xml:"Number"`
	Seats  []iataSeat `xml:"Seat"`
}

type iataSeat struct {
	Column    *iataText  `xml:"Column"`
	OfferRefs *iataText  `xml:"OfferItemRefs"`
	DefRefs   []iataText `xml:"SeatDefinitionRef"`
}

// iataText distinguishes a missing element from one with empty text.
type iataText struct {
	Value string `xml:",chardata"`
}

// offerPricing is the value stored in the offer index. The extractor
// assigns each field to the record by name so the stored order can never
// leak into the output.
type offerPricing struct {
	currency string
	price    float64
}

// offerIndex maps offer-item identifiers to their pricing. Built once per
// document, read-only during the seat walk.
type offerIndex map[string]offerPricing

// seatDefinitionIndex maps seat-definition identifiers to display names.
type seatDefinitionIndex map[string]string

func buildOfferIndex(doc *iataSeatAvailabilityRS) (offerIndex, error) {
	idx := offerIndex{}
	for _, offer := range doc.Offers {
		for _, item := range offer.Items {
			if item.Price == nil {
				return nil, malformedf("offer item %q: missing SimpleCurrencyPrice", item.OfferItemID)
			}
			price, err := decodePlainPrice(item.Price.Value)
			if err != nil {
				return nil, &MalformedDocumentError{
					Context: "offer item " + item.OfferItemID,
					Err:     err,
				}
			}
			idx[item.OfferItemID] = offerPricing{currency: item.Price.Code, price: price}
		}
	}
	return idx, nil
}

func buildSeatDefinitionIndex(doc *iataSeatAvailabilityRS) (seatDefinitionIndex, error) {
	idx := seatDefinitionIndex{}
	for _, def := range doc.Definitions {
		if def.Name == nil {
			return nil, malformedf("seat definition %q: missing Description/Text", def.SeatDefinitionID)
		}
		idx[def.SeatDefinitionID] = def.Name.Value
	}
	return idx, nil
}

// extractIATA indexes offers and seat definitions, then walks the seat map
// resolving each seat's references against the two indexes.
func extractIATA(doc *iataSeatAvailabilityRS) (*SeatMap, error) {
	offers, err := buildOfferIndex(doc)
	if err != nil {
		return nil, err
	}
	defs, err := buildSeatDefinitionIndex(doc)
	if err != nil {
		return nil, err
	}

	out := NewSeatMap()
	agg := NewWarningAggregator()
	for _, row := range doc.Rows {
		if row.Number == nil {
			return nil, malformedf("Row without Number")
		}
		number := row.Number.Value
		seats := make([]SeatRecord, 0, len(row.Seats))
		for _, seat := range row.Seats {
			rec, err := buildIATASeat(number, seat, offers, defs)
			if err != nil {
				return nil, err
			}
			seats = append(seats, rec)
		}
		if len(seats) == 0 {
			agg.Add(WarningEmptyRow, number)
		}
		if _, dup := out.Row(number); dup {
			agg.Add(WarningDuplicateRow, number)
		}
		out.SetRow(number, seats)
	}
	agg.LogAll("IATA")
	return out, nil
}

func buildIATASeat(rowNumber string, seat iataSeat, offers offerIndex, defs seatDefinitionIndex) (SeatRecord, error) {
	if seat.Column == nil {
		return SeatRecord{}, malformedf("row %s: Seat without Column", rowNumber)
	}
	rec := SeatRecord{
		ID:         rowNumber + seat.Column.Value,
		CabinClass: CabinUnspecified,
	}
	for _, ref := range seat.DefRefs {
		name, ok := defs[ref.Value]
		if !ok {
			return SeatRecord{}, malformedf("seat %s: unknown seat definition %q", rec.ID, ref.Value)
		}
		if name == availableMarker {
			rec.Available = true
			continue
		}
		rec.SeatTypes = append(rec.SeatTypes, name)
	}
	if seat.OfferRefs != nil {
		pricing, ok := offers[seat.OfferRefs.Value]
		if !ok {
			return SeatRecord{}, malformedf("seat %s: unknown offer item %q", rec.ID, seat.OfferRefs.Value)
		}
		rec.Offer = &Offer{Price: pricing.price, Currency: pricing.currency}
	}
	return rec, nil
}
