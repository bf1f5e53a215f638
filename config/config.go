// Package config defines the on-disk configuration documents the EVO
// processes load at startup: the gateway's server and provider table, and
// each agent's role assignment.
//
// Documents are TOML. Parsing is strict — an unknown key is an operator
// typo and fails loudly with a ConfigError, the opposite tolerance policy
// from the wire payloads in package messages. A parsed config is an
// immutable snapshot; a change means parsing a new document and swapping it
// into a Handle, never mutating in place.
package config

import (
	"errors"
	"fmt"
)

// GatewayConfig is the LLM gateway's configuration document.
//
// Collections in a parsed config are always non-nil; constructed values
// should follow the same convention so that round-trip equality holds.
type GatewayConfig struct {
	Server    ServerConfig     `toml:"server" json:"server"`
	Providers []ProviderConfig `toml:"providers,omitempty" json:"providers"`
}

// ServerConfig is the gateway's listen binding.
type ServerConfig struct {
	Host string `toml:"host" json:"host"`
	Port uint16 `toml:"port" json:"port"`
}

// ProviderConfig describes one upstream LLM provider.
type ProviderConfig struct {
	Name    string `toml:"name" json:"name"`
	BaseURL string `toml:"base_url" json:"base_url"`
	// APIKeyEnvs names the environment variables holding API keys for this
	// provider. Multiple entries form a round-robin key pool; empty is
	// valid for unauthenticated providers.
	APIKeyEnvs   []string          `toml:"api_key_envs,omitempty" json:"api_key_envs"`
	Enabled      bool              `toml:"enabled" json:"enabled"`
	ProviderType ProviderType      `toml:"provider_type" json:"provider_type"`
	ExtraHeaders map[string]string `toml:"extra_headers,omitempty" json:"extra_headers"`
	RateLimit    *RateLimitConfig  `toml:"rate_limit,omitempty" json:"rate_limit"`
	Models       []string          `toml:"models,omitempty" json:"models"`
}

// ProviderType discriminates how a provider is invoked. The gateway owns
// the invocation mechanics; this layer only records the discriminant.
type ProviderType string

const (
	// ProviderOpenAICompatible is the default: an HTTP provider speaking
	// the OpenAI chat-completions dialect.
	ProviderOpenAICompatible ProviderType = "open_ai_compatible"
	ProviderAnthropic        ProviderType = "anthropic"

	// Subprocess-backed providers: the gateway shells out to a local CLI
	// instead of making HTTP calls.
	ProviderCursor     ProviderType = "cursor"
	ProviderClaudeCode ProviderType = "claude_code"
	ProviderCodexCLI   ProviderType = "codex_cli"
)

// Valid reports whether p is a member of the closed set.
func (p ProviderType) Valid() bool {
	switch p {
	case ProviderOpenAICompatible, ProviderAnthropic, ProviderCursor, ProviderClaudeCode, ProviderCodexCLI:
		return true
	}
	return false
}

// Subprocess reports whether the provider is realized as a subprocess
// invocation rather than an HTTP call.
func (p ProviderType) Subprocess() bool {
	switch p {
	case ProviderCursor, ProviderClaudeCode, ProviderCodexCLI:
		return true
	}
	return false
}

// RateLimitConfig caps a provider's request rate. Zero values are a valid
// "no traffic" configuration, not an error.
type RateLimitConfig struct {
	RequestsPerMinute uint32 `toml:"requests_per_minute" json:"requests_per_minute"`
	BurstSize         uint32 `toml:"burst_size" json:"burst_size"`
}

// AgentConfig is one agent process's startup document: which role it
// plays, which skills it loads, and where the king listens.
type AgentConfig struct {
	Role        string   `toml:"role" json:"role"`
	Skills      []string `toml:"skills,omitempty" json:"skills"`
	KingAddress string   `toml:"king_address" json:"king_address"`
}

// ConfigError reports a configuration document that could not be parsed:
// malformed syntax, an unknown key, a value outside a closed enumeration,
// or a wrong primitive type. Line and Column locate the offending input
// when the parser can tell; both are zero otherwise.
type ConfigError struct {
	Msg    string
	Line   int
	Column int
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config: line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return "config: " + e.Msg
}

// IsConfigError returns true if err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}
