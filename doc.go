// Package evocommon is the shared contract layer for the EVO agent network:
// the wire protocol spoken between the king (coordinator) and its agents,
// and the on-disk configuration and skill descriptor formats every process
// loads at startup.
//
// The module is consumed, not executed. It contains no server, no scheduler,
// and no orchestration logic — transports and runtimes import these packages
// and treat every type as an opaque, already-validated payload:
//
//   - messages: event names, room names, and typed message payloads with
//     strict JSON decoding (missing required fields fail, unknown extra
//     fields are ignored for forward compatibility).
//   - config: gateway and agent configuration, TOML in/out, canonical JSON
//     for change-hash comparison, and an atomically swappable snapshot
//     handle for hot reload.
//   - skill: declarative skill manifests and endpoint bindings.
//   - logging: one-time slog setup writing JSON to a per-component log file.
//   - telemetry: optional OTLP exporter setup and trace-context propagation
//     through event payload carriers.
//
// All types are immutable value data once constructed; parsing and
// serialization are pure and safe for concurrent use.
package evocommon

// Version is the contract version carried in registration payloads and
// release artifacts. Bump alongside any wire-visible change.
const Version = "0.4.0"
