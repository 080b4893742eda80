// Package hlog configures the process-wide logger.
package hlog

import (
	"os"

	"github.com/apex/log"
)

// Setup installs the line handler on the default logger and applies the
// given level. An unknown level string leaves the level at info.
func Setup(level string) {
	log.SetHandler(NewHandler(os.Stdout))

	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Warnf("Unknown log level %q, using info", level)
		return
	}

	log.SetLevel(parsed)
}
