// Package config loads the garage configuration from a TOML file, applying
// defaults for anything the file leaves out.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

const ConfigFile = "garage.toml"

// EnvMongoURI overrides the configured connection string when set.
const EnvMongoURI = "GARAGE_MONGO_URI"

// Config holds the garage configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Mongo  MongoConfig  `toml:"mongo"`
	Jokes  JokesConfig  `toml:"jokes"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

// MongoConfig defines the document store connection.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// JokesConfig defines the enrichment endpoint.
type JokesConfig struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "garage",
		},
		Jokes: JokesConfig{
			URL:            "https://official-joke-api.appspot.com/random_joke",
			TimeoutSeconds: 5,
		},
	}
}

// Load reads configuration from the given path. Returns the default config
// when the file doesn't exist. The GARAGE_MONGO_URI environment variable, when
// set, wins over both the file and the default.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Apply defaults for missing values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = Default().Mongo.URI
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = Default().Mongo.Database
	}
	if cfg.Jokes.URL == "" {
		cfg.Jokes.URL = Default().Jokes.URL
	}
	if cfg.Jokes.TimeoutSeconds == 0 {
		cfg.Jokes.TimeoutSeconds = 5
	}

	if uri := os.Getenv(EnvMongoURI); uri != "" {
		cfg.Mongo.URI = uri
	}

	return cfg, nil
}

// Save writes the configuration to the given path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
