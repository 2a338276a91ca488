package internal

import (
	"log"
	"os"
)

// InitLogging configures the process-wide logger used by the CLI and the
// HTTP server.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
