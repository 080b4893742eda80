package config

// Configer is the configuration lookup contract. The server reads its
// configuration through this interface so tests can swap in a MapConfig.
type Configer interface {
	Load() error
	LoadFromPath(path string) error
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKeyWithDefault(key string, defaultValue int) int
	GetBoolKeyWithDefault(key string, defaultValue bool) bool
}
