package formatter

import (
	"path/filepath"
	"strings"
)

// OutputName derives the JSON artifact name for an input XML path: the
// basename with all extension-separated segments joined and a
// "_parsed.json" suffix.
//
//	/data/seatmap1.xml -> seatmap1_parsed.json
//	response.ota.xml   -> responseota_parsed.json
//
// A name with no extension keeps its full basename.
func OutputName(inputPath string) string {
	base := filepath.Base(inputPath)
	parts := strings.Split(base, ".")
	stem := base
	if len(parts) > 1 {
		stem = strings.Join(parts[:len(parts)-1], "")
	}
	return stem + "_parsed.json"
}
