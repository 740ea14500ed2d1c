// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for dotakb configuration.
	DefaultConfigDir = ".dotakb"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DotenvFile holds API keys kept out of config.yaml.
	DotenvFile = ".env"

	// DefaultNamespace is the IRI prefix of every ontology term.
	DefaultNamespace = "http://www.semanticweb.org/dota2-ontology#"
	// DefaultImageHost prefixes the relative image paths of the data exports.
	DefaultImageHost = "https://api.opendota.com"
	// DefaultCollection is the Qdrant collection holding indexed facts.
	DefaultCollection = "dota2_facts"
)

// Fixed input and output file names.
const (
	DefaultHeroesFile      = "heroes.json"
	DefaultHeroDetailsFile = "hero_abilities.json"
	DefaultItemsFile       = "items.json"
	DefaultAbilitiesFile   = "abilities.json"
	DefaultOntologyFile    = "dota2_ontology.owl"
	DefaultFactsFile       = "abox_dota2.pl"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static configuration (read-only after load).
type Config struct {
	Namespace string         `yaml:"namespace,omitempty"`
	ImageHost string         `yaml:"image_host,omitempty"`
	Paths     PathsConfig    `yaml:"paths,omitempty"`
	Log       LogConfig      `yaml:"log,omitempty"`
	Embedder  EmbedderConfig `yaml:"embedder,omitempty"`
	Qdrant    QdrantConfig   `yaml:"qdrant,omitempty"`
	SQLite    SQLiteConfig   `yaml:"sqlite,omitempty"`
}

// PathsConfig locates the pipeline inputs and outputs.
// Relative paths are resolved against the working directory.
type PathsConfig struct {
	Heroes      string `yaml:"heroes,omitempty"`
	HeroDetails string `yaml:"hero_details,omitempty"`
	Items       string `yaml:"items,omitempty"`
	Abilities   string `yaml:"abilities,omitempty"`
	Ontology    string `yaml:"ontology,omitempty"`
	Facts       string `yaml:"facts,omitempty"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// EmbedderConfig holds configuration for the embedding provider.
type EmbedderConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"` // OpenAI-compatible server
}

// QdrantConfig holds configuration for the Qdrant vector database.
type QdrantConfig struct {
	Host       string `yaml:"host,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	Collection string `yaml:"collection,omitempty"`
	APIKey     string `yaml:"api_key,omitempty"`
	UseTLS     bool   `yaml:"use_tls,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite catalog.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Namespace: DefaultNamespace,
		ImageHost: DefaultImageHost,
		Paths: PathsConfig{
			Heroes:      DefaultHeroesFile,
			HeroDetails: DefaultHeroDetailsFile,
			Items:       DefaultItemsFile,
			Abilities:   DefaultAbilitiesFile,
			Ontology:    DefaultOntologyFile,
			Facts:       DefaultFactsFile,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Embedder: EmbedderConfig{
			Provider: "openai",
			Model:    "text-embedding-3-small",
		},
		Qdrant: QdrantConfig{
			Host:       "localhost",
			Port:       6334,
			Collection: DefaultCollection,
		},
		SQLite: SQLiteConfig{
			Path: filepath.Join(DefaultConfigDir, "catalog.db"),
		},
	}
}

// Load loads configuration from the .dotakb directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	dotenv, err := readDotenv(basePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(ConfigFilePath(basePath))
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides(dotenv)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides(dotenv)

	return cfg, nil
}

// readDotenv reads .dotakb/.env without exporting it to the process.
// A missing file yields no values.
func readDotenv(basePath string) (map[string]string, error) {
	path := filepath.Join(ConfigDir(basePath), DotenvFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return env, nil
}

// applyEnvOverrides fills API keys that the config file leaves empty.
// The process environment wins over the .env file.
func (c *Config) applyEnvOverrides(dotenv map[string]string) {
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
	if key := lookup("OPENAI_API_KEY"); key != "" && c.Embedder.APIKey == "" {
		c.Embedder.APIKey = key
	}
	if key := lookup("QDRANT_API_KEY"); key != "" && c.Qdrant.APIKey == "" {
		c.Qdrant.APIKey = key
	}
}

// CollectionName returns the sanitized Qdrant collection name.
func (c *Config) CollectionName() string {
	if c.Qdrant.Collection == "" {
		return DefaultCollection
	}
	return SanitizeCollectionName(c.Qdrant.Collection)
}

// ConfigDir returns the path to the .dotakb config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a dotakb config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}

// SanitizeCollectionName converts a name to a valid collection name.
func SanitizeCollectionName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(name)

	// Replace spaces and hyphens with underscores
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	// Remove any characters that aren't alphanumeric or underscore
	name = reNonAlphanumeric.ReplaceAllString(name, "")

	// Remove consecutive underscores
	name = reMultipleUnderscores.ReplaceAllString(name, "_")

	// Trim leading/trailing underscores
	name = strings.Trim(name, "_")

	if name == "" {
		return DefaultCollection
	}

	return name
}
