package config

// Config file (global)
var Config JSONConfig

// JSONConfig structure based on config.json
type JSONConfig struct {
	Origin  string      `json:"origin"`
	Port    string      `json:"port"`
	Version string      `json:"version"`
	KV      KVConfig    `json:"kv"`
	Auth    AuthConfig  `json:"auth"`
	MinIO   MinIOConfig `json:"minIO"`
}

// KVConfig selects and configures the key-value backend
type KVConfig struct {
	Backend string       `json:"backend"` // "redis" or "scylla"
	Redis   RedisConfig  `json:"redis"`
	Scylla  ScyllaConfig `json:"scylla"`
}

// RedisConfig structure is the config for the redis connection
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// ScyllaConfig structure is the config for the scylla connection
type ScyllaConfig struct {
	Hosts    []string `json:"hosts"`
	Keyspace string   `json:"keyspace"`
}

// AuthConfig structure is the config for the managed identity provider
type AuthConfig struct {
	URL        string `json:"url"`
	ServiceKey string `json:"serviceKey"`
	JwtSecret  string `json:"jwtSecret"`
}

// MinIOConfig structure is the config for MinIO connection
type MinIOConfig struct {
	Endpoint string `json:"endpoint"`
	User     string `json:"user"`
	Password string `json:"password"`
}
