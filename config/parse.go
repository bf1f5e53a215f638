package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Shadow documents with pointer fields stand between the raw document and
// the public types so that missing required keys are detectable (TOML has
// no "explicit false" — a *bool that stayed nil was never written) and
// defaults are applied in exactly one place.

type gatewayDoc struct {
	Server    *serverDoc    `toml:"server" json:"server"`
	Providers []providerDoc `toml:"providers" json:"providers"`
}

type serverDoc struct {
	Host *string `toml:"host" json:"host"`
	Port *uint16 `toml:"port" json:"port"`
}

type providerDoc struct {
	Name         *string           `toml:"name" json:"name"`
	BaseURL      *string           `toml:"base_url" json:"base_url"`
	APIKeyEnvs   []string          `toml:"api_key_envs" json:"api_key_envs"`
	Enabled      *bool             `toml:"enabled" json:"enabled"`
	ProviderType *string           `toml:"provider_type" json:"provider_type"`
	ExtraHeaders map[string]string `toml:"extra_headers" json:"extra_headers"`
	RateLimit    *rateLimitDoc     `toml:"rate_limit" json:"rate_limit"`
	Models       []string          `toml:"models" json:"models"`
}

type rateLimitDoc struct {
	RequestsPerMinute *uint32 `toml:"requests_per_minute" json:"requests_per_minute"`
	BurstSize         *uint32 `toml:"burst_size" json:"burst_size"`
}

type agentDoc struct {
	Role        *string  `toml:"role" json:"role"`
	Skills      []string `toml:"skills" json:"skills"`
	KingAddress *string  `toml:"king_address" json:"king_address"`
}

// ParseGateway parses a gateway TOML document. Unknown keys, values
// outside closed sets, and missing or mistyped required keys all fail with
// a ConfigError.
func ParseGateway(data []byte) (GatewayConfig, error) {
	var doc gatewayDoc
	if err := decodeTOML(data, &doc); err != nil {
		return GatewayConfig{}, err
	}
	return doc.toConfig()
}

// ParseGatewayJSON parses the JSON encoding of a gateway config, applying
// the same strict-unknown-key policy and defaults as the TOML form.
func ParseGatewayJSON(data []byte) (GatewayConfig, error) {
	var doc gatewayDoc
	if err := decodeJSON(data, &doc); err != nil {
		return GatewayConfig{}, err
	}
	return doc.toConfig()
}

// ParseAgent parses an agent TOML document.
func ParseAgent(data []byte) (AgentConfig, error) {
	var doc agentDoc
	if err := decodeTOML(data, &doc); err != nil {
		return AgentConfig{}, err
	}
	if doc.Role == nil {
		return AgentConfig{}, &ConfigError{Msg: `missing required key "role"`}
	}
	if doc.KingAddress == nil {
		return AgentConfig{}, &ConfigError{Msg: `missing required key "king_address"`}
	}
	return AgentConfig{
		Role:        *doc.Role,
		Skills:      orEmpty(doc.Skills),
		KingAddress: *doc.KingAddress,
	}, nil
}

// EncodeTOML serializes the config back to its document form.
// parse(EncodeTOML(c)) reproduces c under field-wise equality.
func (c GatewayConfig) EncodeTOML() ([]byte, error) {
	return toml.Marshal(c)
}

// EncodeJSON serializes the config to canonical JSON: equal configs always
// produce byte-identical output, so the result is safe to hash for change
// detection (see Hash).
func (c GatewayConfig) EncodeJSON() ([]byte, error) {
	return json.Marshal(c)
}

func (d gatewayDoc) toConfig() (GatewayConfig, error) {
	if d.Server == nil {
		return GatewayConfig{}, &ConfigError{Msg: `missing required table "server"`}
	}
	if d.Server.Host == nil {
		return GatewayConfig{}, &ConfigError{Msg: `server: missing required key "host"`}
	}
	if d.Server.Port == nil {
		return GatewayConfig{}, &ConfigError{Msg: `server: missing required key "port"`}
	}

	cfg := GatewayConfig{
		Server:    ServerConfig{Host: *d.Server.Host, Port: *d.Server.Port},
		Providers: make([]ProviderConfig, 0, len(d.Providers)),
	}
	for i, p := range d.Providers {
		provider, err := p.toConfig(i)
		if err != nil {
			return GatewayConfig{}, err
		}
		cfg.Providers = append(cfg.Providers, provider)
	}
	return cfg, nil
}

func (d providerDoc) toConfig(idx int) (ProviderConfig, error) {
	at := func(key string) *ConfigError {
		return &ConfigError{Msg: fmt.Sprintf("providers[%d]: missing required key %q", idx, key)}
	}
	if d.Name == nil {
		return ProviderConfig{}, at("name")
	}
	if d.BaseURL == nil {
		return ProviderConfig{}, at("base_url")
	}
	// enabled has no implicit default: an absent key is indistinguishable
	// from a typo'd one, and silently disabling a provider is the kind of
	// failure nobody notices until traffic drops.
	if d.Enabled == nil {
		return ProviderConfig{}, at("enabled")
	}

	providerType := ProviderOpenAICompatible
	if d.ProviderType != nil {
		providerType = ProviderType(*d.ProviderType)
		if !providerType.Valid() {
			return ProviderConfig{}, &ConfigError{
				Msg: fmt.Sprintf("providers[%d] (%s): unknown provider type %q", idx, *d.Name, *d.ProviderType),
			}
		}
	}

	var rateLimit *RateLimitConfig
	if d.RateLimit != nil {
		if d.RateLimit.RequestsPerMinute == nil {
			return ProviderConfig{}, at("rate_limit.requests_per_minute")
		}
		if d.RateLimit.BurstSize == nil {
			return ProviderConfig{}, at("rate_limit.burst_size")
		}
		rateLimit = &RateLimitConfig{
			RequestsPerMinute: *d.RateLimit.RequestsPerMinute,
			BurstSize:         *d.RateLimit.BurstSize,
		}
	}

	headers := d.ExtraHeaders
	if headers == nil {
		headers = map[string]string{}
	}

	return ProviderConfig{
		Name:         *d.Name,
		BaseURL:      *d.BaseURL,
		APIKeyEnvs:   orEmpty(d.APIKeyEnvs),
		Enabled:      *d.Enabled,
		ProviderType: providerType,
		ExtraHeaders: headers,
		RateLimit:    rateLimit,
		Models:       orEmpty(d.Models),
	}, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func decodeTOML(data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return TOMLError(err)
	}
	return nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ConfigError{Msg: fmt.Sprintf("field %q: expected %s", typeErr.Field, typeErr.Type)}
		}
		return &ConfigError{Msg: err.Error()}
	}
	if dec.More() {
		return &ConfigError{Msg: "unexpected content after document"}
	}
	return nil
}

// TOMLError maps a go-toml failure onto a ConfigError, keeping the source
// position when the parser provides one. Shared with package skill, which
// parses the same document format under the same strict policy.
func TOMLError(err error) error {
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) && len(strict.Errors) > 0 {
		de := strict.Errors[0]
		row, col := de.Position()
		key := strings.Join([]string(de.Key()), ".")
		return &ConfigError{Msg: fmt.Sprintf("unknown key %q", key), Line: row, Column: col}
	}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		row, col := de.Position()
		return &ConfigError{Msg: de.Error(), Line: row, Column: col}
	}
	return &ConfigError{Msg: err.Error()}
}
