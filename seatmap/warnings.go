package seatmap

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningDuplicateRow = "duplicate_row"
	WarningEmptyRow     = "empty_row"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects non-fatal observations during extraction and
// outputs consolidated summaries. Warnings never affect the output map.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example row number
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(format string) {
	if len(w.warnings) == 0 {
		return
	}

	for warningType, info := range w.warnings {
		log.Printf("%s", w.formatWarningMessage(warningType, format, info))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, format string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningDuplicateRow:
		description = "row numbers that appear more than once"
		action = "Keeping only the last occurrence's seats"
	case WarningEmptyRow:
		description = "rows with no seats"
		action = "Emitting an empty seat list"
	default:
		description = "unknown issue"
		action = "Continuing with normal extraction"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("%s document has %s (%d occurrences). %s. Examples: %s",
		format, description, info.count, action, examplesStr)
}
