package seatmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// availableLiteral is the attribute value marking an available seat in the
// OpenTravel schema.
const availableLiteral = "true"

// availableMarker is the seat-definition name marking an available seat in
// the IATA schema. It is a status flag, not a seat feature, so it never
// appears in a record's seat types.
const availableMarker = "AVAILABLE"

// decodeScaledPrice decodes a scaled integer price: an integer mantissa
// divided by 10^decimalPlaces. Both fields must be valid integers.
func decodeScaledPrice(amount, decimalPlaces string) (float64, error) {
	mantissa, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not an integer", amount)
	}
	exponent, err := strconv.Atoi(decimalPlaces)
	if err != nil {
		return 0, fmt.Errorf("decimal places %q is not an integer", decimalPlaces)
	}
	return float64(mantissa) / math.Pow10(exponent), nil
}

// decodeAvailability reads the OpenTravel availability flag. Only the exact
// literal counts; any other value, including absence, means unavailable.
func decodeAvailability(ind string) bool {
	return ind == availableLiteral
}

// decodePlainPrice parses a plain decimal price, tolerating surrounding
// whitespace in element text.
func decodePlainPrice(text string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not a number", text)
	}
	return price, nil
}
