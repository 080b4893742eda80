package config

import (
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/subosito/gotenv"
)

// DotenvConfig loads configuration from a dotenv file and resolves keys
// against the process environment.
type DotenvConfig struct {
	DotenvPath string
}

func NewDotenvConfig(path string) *DotenvConfig {
	return &DotenvConfig{DotenvPath: path}
}

func (c *DotenvConfig) Load() error {
	if c.DotenvPath == "" {
		// No dotenv file configured, environment variables still apply.
		return nil
	}
	return gotenv.Load(c.DotenvPath)
}

func (c *DotenvConfig) LoadFromPath(path string) error {
	c.DotenvPath = path
	return gotenv.Load(c.DotenvPath)
}

func (c *DotenvConfig) GetKey(key string) string {
	return os.Getenv(key)
}

func (c *DotenvConfig) MustGetKey(key string) string {
	val := c.GetKey(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func (c *DotenvConfig) GetKeyWithDefault(key, defaultValue string) string {
	val := c.GetKey(key)
	if val == "" {
		return defaultValue
	}

	return val
}

func (c *DotenvConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(c.GetKey(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}

func (c *DotenvConfig) GetBoolKeyWithDefault(key string, defaultValue bool) bool {
	boolVal, err := strconv.ParseBool(c.GetKey(key))
	if err != nil {
		return defaultValue
	}

	return boolVal
}
