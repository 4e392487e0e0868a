package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testResolver returns a Resolver whose environment is limited to the given
// mapping, with PLANE_CLI_HOME pointing at a fresh temp dir.
func testResolver(t *testing.T, env map[string]string) (*Resolver, string) {
	t.Helper()
	home := t.TempDir()
	if env == nil {
		env = map[string]string{}
	}
	if _, ok := env[EnvHome]; !ok {
		env[EnvHome] = home
	}
	r := &Resolver{
		Env: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}
	return r, env[EnvHome]
}

func writeConfig(t *testing.T, home, name, content string) {
	t.Helper()
	dir := filepath.Join(home, "config")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestResolve_Defaults(t *testing.T) {
	r, _ := testResolver(t, nil)

	s, err := r.Resolve(Overrides{})
	require.NoError(t, err)

	assert.Nil(t, s.APIKey)
	assert.Equal(t, DefaultBaseURL, s.BaseURL)
	assert.Nil(t, s.Workspace)
	assert.Equal(t, uint64(DefaultTimeout), s.Timeout)
}

func TestResolve_MissingConfigFilesAreNotAnError(t *testing.T) {
	r, _ := testResolver(t, nil)

	s, err := r.Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, uint64(DefaultTimeout), s.Timeout)
}

func TestResolve_LocalFileOverridesBaseFile(t *testing.T) {
	r, home := testResolver(t, nil)
	writeConfig(t, home, "settings.json", `{"timeout": 60, "workspace": "acme"}`)
	writeConfig(t, home, "settings.local.json", `{"timeout": 90}`)

	s, err := r.Resolve(Overrides{})
	require.NoError(t, err)

	assert.Equal(t, uint64(90), s.Timeout)
	require.NotNil(t, s.Workspace)
	assert.Equal(t, "acme", *s.Workspace)
}

func TestResolve_EnvOverridesFiles(t *testing.T) {
	r, home := testResolver(t, map[string]string{
		EnvAPIKey:    "env-key",
		EnvBaseURL:   "https://plane.example.com",
		EnvWorkspace: "env-ws",
		EnvTimeout:   "45",
	})
	writeConfig(t, home, "settings.json", `{"api_key": "file-key", "timeout": 60}`)

	s, err := r.Resolve(Overrides{})
	require.NoError(t, err)

	require.NotNil(t, s.APIKey)
	assert.Equal(t, "env-key", *s.APIKey)
	assert.Equal(t, "https://plane.example.com", s.BaseURL)
	require.NotNil(t, s.Workspace)
	assert.Equal(t, "env-ws", *s.Workspace)
	assert.Equal(t, uint64(45), s.Timeout)
}

func TestResolve_CLIOverridesEverything(t *testing.T) {
	r, home := testResolver(t, map[string]string{
		EnvAPIKey:  "env-key",
		EnvTimeout: "45",
	})
	writeConfig(t, home, "settings.json", `{"api_key": "file-key", "timeout": 60}`)
	writeConfig(t, home, "settings.local.json", `{"timeout": 90}`)

	key := "cli-key"
	timeout := uint64(120)
	s, err := r.Resolve(Overrides{APIKey: &key, Timeout: &timeout})
	require.NoError(t, err)

	require.NotNil(t, s.APIKey)
	assert.Equal(t, "cli-key", *s.APIKey)
	assert.Equal(t, uint64(120), s.Timeout)
}

func TestResolve_NonNumericTimeoutEnvIsIgnored(t *testing.T) {
	r, _ := testResolver(t, map[string]string{EnvTimeout: "abc"})

	s, err := r.Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, uint64(DefaultTimeout), s.Timeout)
}

func TestResolve_NegativeTimeoutEnvIsIgnored(t *testing.T) {
	r, home := testResolver(t, map[string]string{EnvTimeout: "-5"})
	writeConfig(t, home, "settings.json", `{"timeout": 60}`)

	s, err := r.Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, uint64(60), s.Timeout)
}

func TestResolve_MalformedFileErrorNamesPath(t *testing.T) {
	r, home := testResolver(t, nil)
	writeConfig(t, home, "settings.json", `{not json`)

	_, err := r.Resolve(Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join(home, "config", "settings.json"))
}

func TestResolve_MalformedLocalFileErrorNamesPath(t *testing.T) {
	r, home := testResolver(t, nil)
	writeConfig(t, home, "settings.json", `{"timeout": 60}`)
	writeConfig(t, home, "settings.local.json", `[1, 2`)

	_, err := r.Resolve(Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings.local.json")
}

func TestResolve_TypeMismatchIsAnError(t *testing.T) {
	r, home := testResolver(t, nil)
	writeConfig(t, home, "settings.json", `{"timeout": "soon"}`)

	_, err := r.Resolve(Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse merged settings")
}

func TestResolve_UnknownKeysAreDropped(t *testing.T) {
	r, home := testResolver(t, nil)
	writeConfig(t, home, "settings.json", `{"workspace": "acme", "theme": {"color": "dark"}}`)

	s, err := r.Resolve(Overrides{})
	require.NoError(t, err)
	require.NotNil(t, s.Workspace)
	assert.Equal(t, "acme", *s.Workspace)
}

func TestResolve_HomeDefaultsToCurrentDir(t *testing.T) {
	r := &Resolver{Env: func(string) (string, bool) { return "", false }}
	assert.Equal(t, ".", r.HomeDir())
}

func TestResolve_StoredAPIKeyIsWeakestSource(t *testing.T) {
	r, _ := testResolver(t, nil)
	r.StoredAPIKey = func() (string, bool) { return "keyring-key", true }

	s, err := r.Resolve(Overrides{})
	require.NoError(t, err)
	require.NotNil(t, s.APIKey)
	assert.Equal(t, "keyring-key", *s.APIKey)
}

func TestResolve_FileOverridesStoredAPIKey(t *testing.T) {
	r, home := testResolver(t, nil)
	r.StoredAPIKey = func() (string, bool) { return "keyring-key", true }
	writeConfig(t, home, "settings.json", `{"api_key": "file-key"}`)

	s, err := r.Resolve(Overrides{})
	require.NoError(t, err)
	require.NotNil(t, s.APIKey)
	assert.Equal(t, "file-key", *s.APIKey)
}
