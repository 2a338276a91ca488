package seatmap

import "strings"

// Wire shapes for the SOAP-wrapped OpenTravel OTA_AirSeatMapRS schema.
// Element names match on local name only, so the soapenv/ns prefixes used
// by producers are irrelevant here.

type otaEnvelope struct {
	Body otaBody `xml:"Body"`
}

type otaBody struct {
	SeatMapRS otaAirSeatMapRS `xml:"OTA_AirSeatMapRS"`
}

type otaAirSeatMapRS struct {
	Responses []otaSeatMapResponse `xml:"SeatMapResponses>SeatMapResponse"`
}

type otaSeatMapResponse struct {
	Cabins []otaCabin `xml:"SeatMapDetails>CabinClass"`
}

// otaCabin captures every child element of a CabinClass as a row. The row
// element's name differs between producers, so rows are matched by
// position, not by name.
type otaCabin struct {
	Rows []otaRow `xml:",any"`
}

type otaRow struct {
	RowNumber string        `xml:"RowNumber,attr"`
	CabinType string        `xml:"CabinType,attr"`
	Seats     []otaSeatInfo `xml:"SeatInfo"`
}

type otaSeatInfo struct {
	Summary  *otaSummary  `xml:"Summary"`
	Service  *otaService  `xml:"Service"`
	Features []otaFeature `xml:"Features"`
}

type otaSummary struct {
	SeatNumber   string `xml:"SeatNumber,attr"`
	AvailableInd string `xml:"AvailableInd,attr"`
}

type otaService struct {
	Fee *otaFee `xml:"Fee"`
}

type otaFee struct {
	Amount        string `xml:"Amount,attr"`
	DecimalPlaces string `xml:"DecimalPlaces,attr"`
	CurrencyCode  string `xml:"CurrencyCode,attr"`
}

type otaFeature struct {
	Text      string `xml:",chardata"`
	Extension string `xml:"extension,attr"`
}

// extractOpenTravel walks cabin, row and seat elements of a decoded
// envelope and produces the normalized seat map. The row's CabinType
// applies to every seat in that row.
func extractOpenTravel(env *otaEnvelope) (*SeatMap, error) {
	out := NewSeatMap()
	agg := NewWarningAggregator()
	for _, resp := range env.Body.SeatMapRS.Responses {
		for _, cabin := range resp.Cabins {
			for _, row := range cabin.Rows {
				seats := make([]SeatRecord, 0, len(row.Seats))
				for _, info := range row.Seats {
					rec, err := buildOpenTravelSeat(row, info)
					if err != nil {
						return nil, err
					}
					seats = append(seats, rec)
				}
				if len(seats) == 0 {
					agg.Add(WarningEmptyRow, row.RowNumber)
				}
				if _, dup := out.Row(row.RowNumber); dup {
					agg.Add(WarningDuplicateRow, row.RowNumber)
				}
				out.SetRow(row.RowNumber, seats)
			}
		}
	}
	agg.LogAll("OpenTravel")
	return out, nil
}

func buildOpenTravelSeat(row otaRow, info otaSeatInfo) (SeatRecord, error) {
	if info.Summary == nil {
		return SeatRecord{}, malformedf("row %s: SeatInfo without Summary", row.RowNumber)
	}
	rec := SeatRecord{
		ID:         info.Summary.SeatNumber,
		Available:  decodeAvailability(info.Summary.AvailableInd),
		CabinClass: row.CabinType,
	}
	// Presence of Service, not its content, signals a priced seat. An
	// empty Service element still requires a decodable Fee.
	if info.Service != nil {
		fee := info.Service.Fee
		if fee == nil {
			return SeatRecord{}, malformedf("seat %s: Service without Fee", rec.ID)
		}
		price, err := decodeScaledPrice(fee.Amount, fee.DecimalPlaces)
		if err != nil {
			return SeatRecord{}, &MalformedDocumentError{
				Context: "seat " + rec.ID + ": Fee",
				Err:     err,
			}
		}
		rec.Offer = &Offer{Price: price, Currency: fee.CurrencyCode}
	}
	for _, feat := range info.Features {
		rec.SeatTypes = append(rec.SeatTypes, featureName(feat))
	}
	return rec, nil
}

// featureName maps one Features element to a seat-type name. Text
// containing "Other" encodes an airline-specific sub-type carried in the
// extension attribute instead.
func featureName(f otaFeature) string {
	if strings.Contains(f.Text, "Other") {
		return f.Extension
	}
	return f.Text
}
