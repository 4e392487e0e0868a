// Package config holds the flag-backed configuration structs for every
// command, all embedding a shared Root that carries the global flags and
// the runtime values derived from them.
package config

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/auth"
	"github.com/planehq/plane-cli/internal/logging"
	"github.com/planehq/plane-cli/internal/settings"
)

type Root struct {
	// Flags
	APIKey     string
	BaseURL    string
	Workspace  string
	Timeout    uint64
	JSONOutput bool
	Debug      bool

	// Runtime values
	Settings *settings.Settings
	Client   *api.Client
	Log      zerolog.Logger

	flags *pflag.FlagSet
}

func (c *Root) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&c.APIKey, "api-key", "", "Plane API key")
	cmd.PersistentFlags().StringVar(&c.BaseURL, "base-url", "", "Plane API base URL")
	cmd.PersistentFlags().StringVar(&c.Workspace, "workspace", "", "workspace slug")
	cmd.PersistentFlags().Uint64Var(&c.Timeout, "timeout", 0, "request timeout in seconds")
	cmd.PersistentFlags().BoolVar(&c.JSONOutput, "json", false, "print raw JSON responses instead of tables")
	cmd.PersistentFlags().BoolVar(&c.Debug, "debug", false, "enable debug logging on stderr")
	c.flags = cmd.PersistentFlags()
}

// overrides converts the global flags into resolver overrides. Only flags
// the user actually set on the command line participate, so an untouched
// flag never shadows a value from a lower layer.
func (c *Root) overrides() settings.Overrides {
	var o settings.Overrides
	if c.flags.Changed("api-key") {
		o.APIKey = &c.APIKey
	}
	if c.flags.Changed("base-url") {
		o.BaseURL = &c.BaseURL
	}
	if c.flags.Changed("workspace") {
		o.Workspace = &c.Workspace
	}
	if c.flags.Changed("timeout") {
		o.Timeout = &c.Timeout
	}
	return o
}

// InitSettings runs the settings resolution pipeline. It is enough for
// commands that never talk to the API (the auth group).
func (c *Root) InitSettings() error {
	c.Log = logging.New(os.Stderr, c.Debug)

	resolver := &settings.Resolver{}
	store := auth.NewStore(resolver.HomeDir())
	resolver.StoredAPIKey = func() (string, bool) {
		key, _, err := store.APIKey()
		return key, err == nil && key != ""
	}

	s, err := resolver.Resolve(c.overrides())
	if err != nil {
		return err
	}
	c.Settings = s

	c.Log.Debug().
		Str("home", resolver.HomeDir()).
		Str("base_url", s.BaseURL).
		Uint64("timeout", s.Timeout).
		Msg("settings resolved")
	return nil
}

// InitAPIConfig resolves settings and constructs the API client. It fails
// when no API key was resolved.
func (c *Root) InitAPIConfig() error {
	if err := c.InitSettings(); err != nil {
		return err
	}

	client, err := api.New(c.Settings, api.Options{
		ShowProgress: !c.JSONOutput,
		Debug:        c.Debug,
		Logger:       c.Log,
	})
	if err != nil {
		return err
	}
	c.Client = client
	return nil
}

// WorkspaceSlug returns the resolved workspace, required by every resource
// endpoint.
func (c *Root) WorkspaceSlug() (string, error) {
	if c.Settings == nil || c.Settings.Workspace == nil || *c.Settings.Workspace == "" {
		return "", errors.New("workspace is required: set it via --workspace, PLANE_CLI_WORKSPACE, or a config file")
	}
	return *c.Settings.Workspace, nil
}

// APIKeyFlag reports the --api-key flag value and whether it was set.
func (c *Root) APIKeyFlag() (string, bool) {
	return c.APIKey, c.flags.Changed("api-key")
}

// AuthStore returns the API key store rooted at the settings home.
func (c *Root) AuthStore() *auth.Store {
	return auth.NewStore((&settings.Resolver{}).HomeDir())
}
