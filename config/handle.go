package config

import "sync/atomic"

// Handle is an atomically swappable configuration snapshot. The owning
// process parses a new document on update and swaps the whole value in;
// readers either see the old config or the new one, never a mix.
//
// The snapshot a reader loads stays valid for as long as the reader holds
// it, even across swaps.
type Handle struct {
	current atomic.Pointer[GatewayConfig]
}

// NewHandle returns a handle holding cfg as its initial snapshot.
func NewHandle(cfg GatewayConfig) *Handle {
	h := &Handle{}
	h.current.Store(&cfg)
	return h
}

// Load returns the current snapshot.
func (h *Handle) Load() *GatewayConfig {
	return h.current.Load()
}

// Swap replaces the current snapshot wholesale and returns the previous
// one.
func (h *Handle) Swap(cfg GatewayConfig) *GatewayConfig {
	return h.current.Swap(&cfg)
}
