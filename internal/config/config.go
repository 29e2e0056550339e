// Package config provides configuration for the pipeline binaries. Values
// come from an optional YAML file layered over built-in defaults; the
// extraction API key is read from the environment (and a .env file when one
// is present in the working directory).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for the pipeline. These can be overridden via the YAML
// config file or CLI flags.
const (
	// DefaultModelName is the default Gemini model used for extraction.
	DefaultModelName = "gemini-2.5-flash"

	// DefaultCSVDir holds the source exports and receives pipeline output.
	DefaultCSVDir = "csv"

	// DefaultMergedName is the basename of the canonical merged file.
	DefaultMergedName = "all_transactions.csv"

	// DefaultExtractedName is the basename of the pre-normalized CSV the
	// extraction stage writes into CSVDir.
	DefaultExtractedName = "statements_extracted.csv"

	// DefaultOriginPrefix prefixes statement folder suffixes to build
	// origin tags, e.g. "Chase" + "2040" -> "Chase-2040".
	DefaultOriginPrefix = "Chase"
)

// Config represents the pipeline configuration.
type Config struct {
	// GeminiAPIKey authenticates the extraction collaborator. Read from
	// GEMINI_API_KEY (falling back to GEMINI_API), never from YAML.
	GeminiAPIKey string `yaml:"-"`

	// ModelName selects the extraction model.
	ModelName string `yaml:"model_name"`

	// CSVDir is the directory scanned for source exports; merged output and
	// extraction output are written here too.
	CSVDir string `yaml:"csv_dir"`

	// MergedName is the basename of the merged canonical file in CSVDir.
	MergedName string `yaml:"merged_name"`

	// ExtractedName is the basename of the extraction output in CSVDir. It
	// must keep an "_extracted" infix so the merge scan picks it up.
	ExtractedName string `yaml:"extracted_name"`

	// StatementDirs maps an origin suffix (e.g. "2040") to a folder of
	// statement PDFs for the extraction stage.
	StatementDirs map[string]string `yaml:"statement_dirs"`

	// OriginPrefix is combined with each StatementDirs key to form the
	// origin tag of extracted records.
	OriginPrefix string `yaml:"origin_prefix"`

	// RulesFile optionally replaces the built-in classification table with
	// a YAML rule file.
	RulesFile string `yaml:"rules_file"`
}

// Load builds the configuration. yamlPath may be empty, in which case
// defaults plus environment values are used. A .env file in the working
// directory is loaded if present (missing files are not an error).
func Load(yamlPath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ModelName:     DefaultModelName,
		CSVDir:        DefaultCSVDir,
		MergedName:    DefaultMergedName,
		ExtractedName: DefaultExtractedName,
		OriginPrefix:  DefaultOriginPrefix,
	}

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", yamlPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse %s: %w", yamlPath, err)
		}
		cfg.applyDefaults()
	}

	cfg.GeminiAPIKey = getEnvOrDefault("GEMINI_API_KEY", os.Getenv("GEMINI_API"))

	return cfg, nil
}

// applyDefaults restores defaults for fields the YAML file left empty.
func (c *Config) applyDefaults() {
	if c.ModelName == "" {
		c.ModelName = DefaultModelName
	}
	if c.CSVDir == "" {
		c.CSVDir = DefaultCSVDir
	}
	if c.MergedName == "" {
		c.MergedName = DefaultMergedName
	}
	if c.ExtractedName == "" {
		c.ExtractedName = DefaultExtractedName
	}
	if c.OriginPrefix == "" {
		c.OriginPrefix = DefaultOriginPrefix
	}
}

// MergedPath is the full path of the canonical merged file.
func (c *Config) MergedPath() string {
	return filepath.Join(c.CSVDir, c.MergedName)
}

// ExtractedPath is the full path of the extraction stage output.
func (c *Config) ExtractedPath() string {
	return filepath.Join(c.CSVDir, c.ExtractedName)
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
