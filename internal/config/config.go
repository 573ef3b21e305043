package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// SourceDir is the root of the notes tree. Defaults to the current directory.
	SourceDir string `yaml:"source_dir"`
	// OutputDir is the documentation output directory, relative to SourceDir.
	OutputDir string `yaml:"output_dir"`
	// HashFile is the hash cache dotfile, relative to SourceDir.
	HashFile string `yaml:"hash_file"`
	// ExcludeDirs are directory names skipped at any nesting level.
	// The output directory name is always excluded.
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty"`
	// Ignore holds doublestar glob patterns matched against source-relative paths.
	Ignore []string `yaml:"ignore,omitempty"`
	// Sections maps top-level directory names to their display title and nav order.
	Sections map[string]Section `yaml:"sections,omitempty"`
	// Acronyms are directory-title words rendered upper-case instead of title-case.
	Acronyms []string `yaml:"acronyms,omitempty"`
	Index    Index    `yaml:"index"`
}

// Section pins the display title and navigation order of a top-level directory.
type Section struct {
	Title    string `yaml:"title"`
	NavOrder int    `yaml:"nav_order"`
}

// Index controls per-directory index page generation.
type Index struct {
	// ManualTOCDepth is the minimum directory depth at which a manual TOC is
	// injected into leaf content folders. 0 removes the depth threshold.
	ManualTOCDepth *int `yaml:"manual_toc_depth,omitempty"`
}

// ManualTOCMinDepth returns the configured manual TOC depth threshold.
func (c *Config) ManualTOCMinDepth() int {
	if c.Index.ManualTOCDepth == nil {
		return 2
	}
	return *c.Index.ManualTOCDepth
}

// SourcePath returns the absolute source root.
func (c *Config) SourcePath() (string, error) {
	return filepath.Abs(c.SourceDir)
}

// Load loads configuration from the specified file.
//
// A missing file is not an error: the tool is usable with zero configuration,
// so built-in defaults are returned instead.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists so ${VAR} expansion below can see it.
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	config := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.SourceDir == "" {
		c.SourceDir = "."
	}
	if c.OutputDir == "" {
		c.OutputDir = "docs"
	}
	if c.HashFile == "" {
		c.HashFile = ".sync_hashes.json"
	}
	if len(c.ExcludeDirs) == 0 {
		c.ExcludeDirs = []string{".git", ".obsidian", "node_modules"}
	}
	if len(c.Sections) == 0 {
		c.Sections = map[string]Section{
			"aws":           {Title: "AWS", NavOrder: 10},
			"terraform":     {Title: "Terraform", NavOrder: 20},
			"meta":          {Title: "Meta", NavOrder: 30},
			"reading_notes": {Title: "Reading Notes", NavOrder: 40},
			"docker":        {Title: "Docker", NavOrder: 50},
			"kubernetes":    {Title: "Kubernetes", NavOrder: 60},
		}
	}
	if len(c.Acronyms) == 0 {
		c.Acronyms = []string{
			"api", "aws", "cli", "dns", "ec2", "gcp", "http", "https",
			"iam", "ip", "json", "k8s", "s3", "sql", "ssh", "tcp",
			"tls", "vpc", "vpn", "yaml",
		}
	}
}

// Validate checks the configuration for values the pipeline cannot work with.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.SourceDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required, validation.By(singlePathSegment)),
		validation.Field(&c.HashFile, validation.Required),
		validation.Field(&c.Ignore, validation.Each(validation.By(validGlobPattern))),
	)
	if err != nil {
		return err
	}
	for name, section := range c.Sections {
		if err := validation.ValidateStruct(&section,
			validation.Field(&section.Title, validation.Required),
			validation.Field(&section.NavOrder, validation.Min(0)),
		); err != nil {
			return fmt.Errorf("section %q: %w", name, err)
		}
	}
	return nil
}

// singlePathSegment rejects output directories that would land outside the
// source root; the orphan cleaner must never walk an unrelated tree.
func singlePathSegment(value any) error {
	s, _ := value.(string)
	if s != filepath.Base(s) || s == "." || s == ".." {
		return fmt.Errorf("must be a plain directory name under the source root")
	}
	return nil
}

func validGlobPattern(value any) error {
	s, _ := value.(string)
	if !doublestar.ValidatePattern(s) {
		return fmt.Errorf("invalid glob pattern %q", s)
	}
	return nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
