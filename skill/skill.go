// Package skill defines the declarative descriptors for pluggable agent
// capabilities: the manifest that names a skill's typed inputs and outputs,
// and the runtime config that binds it to HTTP endpoints.
//
// Both documents are TOML and share the strict parsing policy of package
// config — unknown keys fail — with one deliberate exception: the config's
// free-form `extra` table, which is the escape hatch for skill-specific
// settings and accepts arbitrary nested data.
package skill

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/ai-evo-agents/evo-common/config"
)

// Manifest describes a skill: what it is, what it consumes and produces,
// and which other skills it needs. Dependencies reference skills by name
// only; cycle detection belongs to the loader, not here.
type Manifest struct {
	Name         string   `toml:"name" json:"name"`
	Version      string   `toml:"version" json:"version"`
	Description  string   `toml:"description" json:"description"`
	Capabilities []string `toml:"capabilities,omitempty" json:"capabilities"`
	Inputs       []IO     `toml:"inputs,omitempty" json:"inputs"`
	Outputs      []IO     `toml:"outputs,omitempty" json:"outputs"`
	Dependencies []string `toml:"dependencies,omitempty" json:"dependencies"`
	// HasCode marks skills that ship executable code alongside the
	// descriptor.
	HasCode bool `toml:"has_code" json:"has_code"`
}

// IO describes one input or output of a skill. Type is a free-form string
// tag ("string", "array", "image/png"); validating data against it is a
// downstream concern.
type IO struct {
	Name        string  `toml:"name" json:"name"`
	Type        string  `toml:"type" json:"type"`
	Required    bool    `toml:"required" json:"required"`
	Description *string `toml:"description,omitempty" json:"description"`
}

// Config binds a skill to its runtime endpoints.
type Config struct {
	Endpoints []Endpoint `toml:"endpoints,omitempty" json:"endpoints"`
	// AuthRef names the environment variable holding the skill's
	// credential, if it needs one.
	AuthRef *string `toml:"auth_ref,omitempty" json:"auth_ref"`
	// Extra is fully permissive: arbitrary skill-specific settings, passed
	// through untouched.
	Extra map[string]any `toml:"extra,omitempty" json:"extra"`
}

// Endpoint is one named HTTP binding.
type Endpoint struct {
	Name    string            `toml:"name" json:"name"`
	URL     string            `toml:"url" json:"url"`
	Method  HTTPMethod        `toml:"method" json:"method"`
	Headers map[string]string `toml:"headers,omitempty" json:"headers"`
}

// HTTPMethod is the closed set of methods an endpoint may use. Values
// serialize upper-case ("GET"), unlike every other enum in this contract.
type HTTPMethod string

const (
	MethodGet    HTTPMethod = "GET"
	MethodPost   HTTPMethod = "POST"
	MethodPut    HTTPMethod = "PUT"
	MethodDelete HTTPMethod = "DELETE"
	MethodPatch  HTTPMethod = "PATCH"
)

// Valid reports whether m is a member of the closed set.
func (m HTTPMethod) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch:
		return true
	}
	return false
}

// Shadow documents, as in package config: pointer fields detect missing
// required keys.

type manifestDoc struct {
	Name         *string  `toml:"name"`
	Version      *string  `toml:"version"`
	Description  *string  `toml:"description"`
	Capabilities []string `toml:"capabilities"`
	Inputs       []ioDoc  `toml:"inputs"`
	Outputs      []ioDoc  `toml:"outputs"`
	Dependencies []string `toml:"dependencies"`
	HasCode      *bool    `toml:"has_code"`
}

type ioDoc struct {
	Name        *string `toml:"name"`
	Type        *string `toml:"type"`
	Required    *bool   `toml:"required"`
	Description *string `toml:"description"`
}

type configDoc struct {
	Endpoints *[]endpointDoc `toml:"endpoints"`
	AuthRef   *string        `toml:"auth_ref"`
	Extra     map[string]any `toml:"extra"`
}

type endpointDoc struct {
	Name    *string           `toml:"name"`
	URL     *string           `toml:"url"`
	Method  *string           `toml:"method"`
	Headers map[string]string `toml:"headers"`
}

// ParseManifest parses a skill manifest TOML document.
func ParseManifest(data []byte) (Manifest, error) {
	var doc manifestDoc
	if err := decodeTOML(data, &doc); err != nil {
		return Manifest{}, err
	}
	if doc.Name == nil {
		return Manifest{}, &config.ConfigError{Msg: `missing required key "name"`}
	}
	if doc.Version == nil {
		return Manifest{}, &config.ConfigError{Msg: `missing required key "version"`}
	}
	if doc.Description == nil {
		return Manifest{}, &config.ConfigError{Msg: `missing required key "description"`}
	}

	m := Manifest{
		Name:         *doc.Name,
		Version:      *doc.Version,
		Description:  *doc.Description,
		Capabilities: orEmpty(doc.Capabilities),
		Inputs:       []IO{},
		Outputs:      []IO{},
		Dependencies: orEmpty(doc.Dependencies),
	}
	if doc.HasCode != nil {
		m.HasCode = *doc.HasCode
	}
	for i, d := range doc.Inputs {
		io, err := d.toIO("inputs", i)
		if err != nil {
			return Manifest{}, err
		}
		m.Inputs = append(m.Inputs, io)
	}
	for i, d := range doc.Outputs {
		io, err := d.toIO("outputs", i)
		if err != nil {
			return Manifest{}, err
		}
		m.Outputs = append(m.Outputs, io)
	}
	return m, nil
}

// ParseConfig parses a skill runtime config TOML document. The endpoints
// array must be present, even if empty.
func ParseConfig(data []byte) (Config, error) {
	var doc configDoc
	if err := decodeTOML(data, &doc); err != nil {
		return Config{}, err
	}
	if doc.Endpoints == nil {
		return Config{}, &config.ConfigError{Msg: `missing required key "endpoints"`}
	}

	cfg := Config{
		Endpoints: []Endpoint{},
		AuthRef:   doc.AuthRef,
		Extra:     doc.Extra,
	}
	if cfg.Extra == nil {
		cfg.Extra = map[string]any{}
	}
	for i, d := range *doc.Endpoints {
		ep, err := d.toEndpoint(i)
		if err != nil {
			return Config{}, err
		}
		cfg.Endpoints = append(cfg.Endpoints, ep)
	}
	return cfg, nil
}

func (d ioDoc) toIO(section string, idx int) (IO, error) {
	if d.Name == nil {
		return IO{}, &config.ConfigError{Msg: fmt.Sprintf("%s[%d]: missing required key %q", section, idx, "name")}
	}
	if d.Type == nil {
		return IO{}, &config.ConfigError{Msg: fmt.Sprintf("%s[%d]: missing required key %q", section, idx, "type")}
	}
	io := IO{Name: *d.Name, Type: *d.Type, Description: d.Description}
	if d.Required != nil {
		io.Required = *d.Required
	}
	return io, nil
}

func (d endpointDoc) toEndpoint(idx int) (Endpoint, error) {
	at := func(key string) *config.ConfigError {
		return &config.ConfigError{Msg: fmt.Sprintf("endpoints[%d]: missing required key %q", idx, key)}
	}
	if d.Name == nil {
		return Endpoint{}, at("name")
	}
	if d.URL == nil {
		return Endpoint{}, at("url")
	}
	if d.Method == nil {
		return Endpoint{}, at("method")
	}
	method := HTTPMethod(*d.Method)
	if !method.Valid() {
		return Endpoint{}, &config.ConfigError{
			Msg: fmt.Sprintf("endpoints[%d] (%s): unknown HTTP method %q", idx, *d.Name, *d.Method),
		}
	}
	headers := d.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	return Endpoint{Name: *d.Name, URL: *d.URL, Method: method, Headers: headers}, nil
}

// EncodeJSON serializes the config canonically, matching the behavior of
// config.GatewayConfig.EncodeJSON. Extra survives with arrays in order;
// object key order is not meaningful and is emitted sorted.
func (c Config) EncodeJSON() ([]byte, error) {
	return json.Marshal(c)
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
		return config.TOMLError(err)
	}
	return nil
}
