package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/schema"
)

// WildcardService includes every process a server lists.
const WildcardService = "*"

// ToolConfig describes the tool to generate and the servers to read from.
type ToolConfig struct {
	ID          string         `json:"id" jsonschema:"required,minLength=1" jsonschema_description:"Galaxy tool id"`
	Title       string         `json:"title" jsonschema:"required,minLength=1" jsonschema_description:"Tool name shown in Galaxy"`
	Version     string         `json:"version" jsonschema:"required,minLength=1"`
	Description string         `json:"description,omitempty"`
	Help        string         `json:"help,omitempty" jsonschema_description:"Help text rendered below the tool form"`
	Executor    ExecutorConfig `json:"executor,omitzero"`
	Servers     []ServerConfig `json:"servers" jsonschema:"required"`
}

// ExecutorConfig names the program the generated command runs.
type ExecutorConfig struct {
	Interpreter string `json:"interpreter,omitempty" jsonschema_description:"Interpreter command, Rscript by default"`
	Script      string `json:"script,omitempty" jsonschema_description:"Script path passed to the interpreter"`
}

// ServerConfig selects processes from one OGC API Processes server.
type ServerConfig struct {
	ServerURL        string   `json:"server_url" jsonschema:"required,minLength=1" jsonschema_description:"Base URL of the OGC API Processes server"`
	// IncludedServices is nil when the key is absent and defaults to the
	// wildcard then. An explicit empty list selects nothing.
	IncludedServices []string `json:"included_services,omitempty" jsonschema_description:"Process ids to include, or [\"*\"] for all; defaults to [\"*\"] when omitted"`
	ExcludedServices []string `json:"excluded_services,omitempty" jsonschema_description:"Process ids to exclude; wins over included_services"`
	Filter           string   `json:"filter,omitempty" jsonschema_description:"Query string appended to the process listing request"`
}

// ValidationError lists the schema violations of a tool configuration.
type ValidationError struct {
	Path   string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid tool configuration %s: %s", e.Path, strings.Join(e.Errors, "; "))
}

var toolValidator = sync.OnceValues(func() (*schema.Validator, error) {
	return schema.NewValidatorFor(&ToolConfig{})
})

// ToolConfigSchema returns the JSON Schema tool configurations are validated
// against.
func ToolConfigSchema() (map[string]any, error) {
	return schema.Reflect(&ToolConfig{})
}

// LoadToolConfig reads a tool configuration file. The format follows the file
// extension: .toml is TOML; .json, .yaml, .yml and anything else are read as
// YAML, which accepts JSON too.
func LoadToolConfig(path string) (*ToolConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool configuration %s: %w", path, err)
	}
	cfg, err := ParseToolConfig(data, formatOf(path))
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = path
			return nil, verr
		}
		return nil, fmt.Errorf("failed to parse tool configuration %s: %w", path, err)
	}
	return cfg, nil
}

// Formats accepted by ParseToolConfig.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// ParseToolConfig decodes, validates and defaults a tool configuration.
func ParseToolConfig(data []byte, format string) (*ToolConfig, error) {
	var doc map[string]any
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}
	if doc == nil {
		return nil, &ValidationError{Errors: []string{"configuration is empty"}}
	}

	// Round-trip through JSON so both decoders yield the same value types.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	validator, err := toolValidator()
	if err != nil {
		return nil, fmt.Errorf("compiling configuration schema: %w", err)
	}
	if result := validator.Validate(normalized); !result.Valid {
		return nil, &ValidationError{Errors: result.Errors}
	}

	var cfg ToolConfig
	if err := json.Unmarshal(normalized, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *ToolConfig) applyDefaults() {
	for i := range c.Servers {
		if c.Servers[i].IncludedServices == nil {
			c.Servers[i].IncludedServices = []string{WildcardService}
		}
	}
}
