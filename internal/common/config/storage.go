package config

type (
	// StorageConfig selects and configures the persistence backend. The
	// choice is fixed for the process lifetime.
	StorageConfig struct {
		Type  string             `yaml:"type"`  // redis or file
		File  FileStorageConfig  `yaml:"file"`  // flat-file fallback configuration
		Redis RedisStorageConfig `yaml:"redis"` // remote document store configuration
	}

	// FileStorageConfig configures the single-instance flat-file fallback
	FileStorageConfig struct {
		Path string `yaml:"path"` // path to the JSON data file
	}

	// RedisStorageConfig configures the remote document store
	RedisStorageConfig struct {
		Addr     string `yaml:"addr"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"` // key prefix, defaults to "rentport"
	}
)
