package config

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/apex/log"
)

// MapConfig is an in-memory Configer used by tests.
type MapConfig struct {
	configValues sync.Map
}

func NewMapConfig(entries map[string]string) *MapConfig {
	c := &MapConfig{}

	for key, entry := range entries {
		c.configValues.Store(key, entry)
	}

	return c
}

func (c *MapConfig) Load() error {
	return nil
}

func (c *MapConfig) LoadFromPath(_ string) error {
	return fmt.Errorf("LoadFromPath not supported for MapConfig")
}

func (c *MapConfig) GetKey(key string) string {
	v, ok := c.configValues.Load(key)
	if !ok || v == nil {
		return ""
	}

	return v.(string)
}

func (c *MapConfig) MustGetKey(key string) string {
	val := c.GetKey(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func (c *MapConfig) GetKeyWithDefault(key, defaultValue string) string {
	val := c.GetKey(key)
	if val == "" {
		return defaultValue
	}

	return val
}

func (c *MapConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(c.GetKey(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}

func (c *MapConfig) GetBoolKeyWithDefault(key string, defaultValue bool) bool {
	boolVal, err := strconv.ParseBool(c.GetKey(key))
	if err != nil {
		return defaultValue
	}

	return boolVal
}
