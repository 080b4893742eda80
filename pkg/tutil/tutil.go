package tutil

import (
	"os"
	"strings"
)

func IsIntegrationTest() bool {
	testType := os.Getenv("HUDDLE_TEST")
	return strings.ToLower(testType) == "integration"
}
