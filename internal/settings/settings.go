// Package settings resolves the CLI configuration from its layered sources:
// built-in defaults, the two config files under <home>/config, environment
// variables, and command-line overrides. Later layers win key by key.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

const (
	DefaultBaseURL = "https://api.plane.so"
	DefaultTimeout = 30
)

// Environment variables recognized by the resolver.
const (
	EnvHome      = "PLANE_CLI_HOME"
	EnvAPIKey    = "PLANE_CLI_API_KEY"
	EnvBaseURL   = "PLANE_CLI_BASE_URL"
	EnvWorkspace = "PLANE_CLI_WORKSPACE"
	EnvTimeout   = "PLANE_CLI_TIMEOUT"
)

// Settings is the resolved configuration. It is constructed once per
// invocation and read-only afterwards. BaseURL and Timeout always hold a
// concrete value; APIKey and Workspace stay nil when no source set them.
type Settings struct {
	APIKey    *string `json:"api_key"`
	BaseURL   string  `json:"base_url"`
	Workspace *string `json:"workspace"`
	Timeout   uint64  `json:"timeout"`
}

// Overrides carries values given on the command line. Nil fields were not
// set and leave the lower layers untouched.
type Overrides struct {
	APIKey    *string
	BaseURL   *string
	Workspace *string
	Timeout   *uint64
}

// Resolver produces Settings from the layered sources. Environment access
// goes through Env so tests can supply their own mapping; it defaults to
// os.LookupEnv. StoredAPIKey, when non-nil, supplies the API key saved by
// "plane auth login" as the weakest explicit api_key source.
type Resolver struct {
	Env          func(key string) (string, bool)
	StoredAPIKey func() (string, bool)
}

func (r *Resolver) env(key string) (string, bool) {
	if r.Env != nil {
		return r.Env(key)
	}
	return os.LookupEnv(key)
}

// HomeDir returns the directory holding the config subdirectory: the value
// of PLANE_CLI_HOME when set, otherwise the current working directory.
func (r *Resolver) HomeDir() string {
	if home, ok := r.env(EnvHome); ok && home != "" {
		return home
	}
	return "."
}

// Resolve layers all sources and decodes the merged document into Settings.
func (r *Resolver) Resolve(cli Overrides) (*Settings, error) {
	doc := Document{
		"api_key":   nil,
		"base_url":  DefaultBaseURL,
		"workspace": nil,
		"timeout":   float64(DefaultTimeout),
	}

	if r.StoredAPIKey != nil {
		if key, ok := r.StoredAPIKey(); ok && key != "" {
			doc["api_key"] = key
		}
	}

	configDir := filepath.Join(r.HomeDir(), "config")
	if err := mergeFile(doc, filepath.Join(configDir, "settings.json")); err != nil {
		return nil, err
	}
	if err := mergeFile(doc, filepath.Join(configDir, "settings.local.json")); err != nil {
		return nil, err
	}

	r.mergeEnv(doc)
	mergeOverrides(doc, cli)

	return decode(doc)
}

// mergeFile layers the JSON document at path onto doc. A missing file is
// not an error; any other read failure or invalid JSON content is, and the
// error names the path.
func mergeFile(doc Document, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var overlay Document
	if err := json.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	merge(doc, overlay)
	return nil
}

func (r *Resolver) mergeEnv(doc Document) {
	if v, ok := r.env(EnvAPIKey); ok {
		doc["api_key"] = v
	}
	if v, ok := r.env(EnvBaseURL); ok {
		doc["base_url"] = v
	}
	if v, ok := r.env(EnvWorkspace); ok {
		doc["workspace"] = v
	}
	if v, ok := r.env(EnvTimeout); ok {
		// A timeout that does not parse is ignored rather than fatal, so a
		// stray env var cannot break every invocation.
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			doc["timeout"] = float64(n)
		}
	}
}

func mergeOverrides(doc Document, cli Overrides) {
	if cli.APIKey != nil {
		doc["api_key"] = *cli.APIKey
	}
	if cli.BaseURL != nil {
		doc["base_url"] = *cli.BaseURL
	}
	if cli.Workspace != nil {
		doc["workspace"] = *cli.Workspace
	}
	if cli.Timeout != nil {
		doc["timeout"] = float64(*cli.Timeout)
	}
}

// decode converts the merged document into the typed Settings. Unknown keys
// are dropped; a wrong JSON type for a known field is a resolution error.
func decode(doc Document) (*Settings, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged settings: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse merged settings: %w", err)
	}
	return &s, nil
}
