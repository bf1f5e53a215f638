package skill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-evo-agents/evo-common/config"
	"github.com/ai-evo-agents/evo-common/skill"
)

func TestParseManifest(t *testing.T) {
	doc := `
name = "web-search"
version = "0.1.0"
description = "Search the web for information"
capabilities = ["search", "summarize"]
dependencies = ["http-client"]
has_code = true

[[inputs]]
name = "query"
type = "string"
required = true
description = "Search query"

[[inputs]]
name = "max_results"
type = "integer"

[[outputs]]
name = "results"
type = "array"
required = true
`
	m, err := skill.ParseManifest([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "web-search", m.Name)
	assert.Equal(t, "0.1.0", m.Version)
	assert.Equal(t, []string{"search", "summarize"}, m.Capabilities)
	assert.Equal(t, []string{"http-client"}, m.Dependencies)
	assert.True(t, m.HasCode)

	require.Len(t, m.Inputs, 2)
	assert.Equal(t, "query", m.Inputs[0].Name)
	assert.True(t, m.Inputs[0].Required)
	require.NotNil(t, m.Inputs[0].Description)
	assert.Equal(t, "Search query", *m.Inputs[0].Description)
	assert.False(t, m.Inputs[1].Required, "required defaults to false")
	assert.Nil(t, m.Inputs[1].Description)

	require.Len(t, m.Outputs, 1)
	assert.Equal(t, "array", m.Outputs[0].Type)
}

func TestParseManifestMinimal(t *testing.T) {
	doc := `
name = "noop"
version = "0.0.1"
description = "Does nothing"

[[inputs]]
name = "a"
type = "string"

[[inputs]]
name = "b"
type = "string"
`
	m, err := skill.ParseManifest([]byte(doc))
	require.NoError(t, err)
	assert.Len(t, m.Inputs, 2)
	assert.Len(t, m.Outputs, 0)
	assert.False(t, m.HasCode)
	assert.Empty(t, m.Capabilities)
	assert.Empty(t, m.Dependencies)
}

func TestParseManifestMissingVersion(t *testing.T) {
	_, err := skill.ParseManifest([]byte(`
name = "broken"
description = "No version"
`))
	require.True(t, config.IsConfigError(err))
	assert.Contains(t, err.Error(), `"version"`)
}

func TestParseManifestUnknownKeyRejected(t *testing.T) {
	_, err := skill.ParseManifest([]byte(`
name = "typo"
version = "1.0.0"
description = "d"
capabilties = ["oops"]
`))
	require.True(t, config.IsConfigError(err))
}

func TestParseManifestFreeFormIOType(t *testing.T) {
	doc := `
name = "render"
version = "1.0.0"
description = "d"

[[inputs]]
name = "page"
type = "text/html; charset=utf-8"
`
	m, err := skill.ParseManifest([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", m.Inputs[0].Type)
}

func TestParseConfig(t *testing.T) {
	doc := `
auth_ref = "SEARCH_API_KEY"

[[endpoints]]
name = "search"
url = "https://api.search.com/v1/search"
method = "GET"

[endpoints.headers]
Accept = "application/json"
`
	cfg, err := skill.ParseConfig([]byte(doc))
	require.NoError(t, err)

	require.NotNil(t, cfg.AuthRef)
	assert.Equal(t, "SEARCH_API_KEY", *cfg.AuthRef)
	require.Len(t, cfg.Endpoints, 1)
	assert.Equal(t, skill.MethodGet, cfg.Endpoints[0].Method)
	assert.Equal(t, "application/json", cfg.Endpoints[0].Headers["Accept"])
	assert.Empty(t, cfg.Extra)
}

func TestParseConfigEndpointsRequired(t *testing.T) {
	_, err := skill.ParseConfig([]byte(`auth_ref = "SEARCH_API_KEY"`))
	require.True(t, config.IsConfigError(err))
	assert.Contains(t, err.Error(), `"endpoints"`)

	// An explicitly empty list is fine; only the absent key is an error.
	cfg, err := skill.ParseConfig([]byte("endpoints = []"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Endpoints)
}

func TestParseConfigMethodIsUpperCaseOnly(t *testing.T) {
	doc := `
[[endpoints]]
name = "search"
url = "https://api.search.com"
method = "get"
`
	_, err := skill.ParseConfig([]byte(doc))
	require.True(t, config.IsConfigError(err))
	assert.Contains(t, err.Error(), `"get"`)
}

func TestParseConfigExtraIsPermissive(t *testing.T) {
	doc := `
[[endpoints]]
name = "run"
url = "http://localhost:5000"
method = "POST"

[extra]
timeout_s = 30
regions = ["eu-west", "us-east"]

[extra.retry]
attempts = 3
backoff = "exponential"
`
	cfg, err := skill.ParseConfig([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, int64(30), cfg.Extra["timeout_s"])
	assert.Equal(t, []any{"eu-west", "us-east"}, cfg.Extra["regions"], "array order survives")
	retry, ok := cfg.Extra["retry"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(3), retry["attempts"])

	// Extra survives the canonical JSON encoding, byte-stable.
	a, err := cfg.EncodeJSON()
	require.NoError(t, err)
	b, err := cfg.EncodeJSON()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseConfigUnknownTopLevelKeyRejected(t *testing.T) {
	_, err := skill.ParseConfig([]byte(`
auth_reff = "OOPS"
`))
	require.True(t, config.IsConfigError(err))
}

func TestHTTPMethodValid(t *testing.T) {
	assert.True(t, skill.MethodPatch.Valid())
	assert.False(t, skill.HTTPMethod("HEAD").Valid())
	assert.False(t, skill.HTTPMethod("post").Valid())
}
