// Package messages defines the wire protocol between the king coordinator
// and its agents: event names, room names, and the typed payloads carried
// on each event.
//
// Every payload supports exact two-way JSON conversion. Field names
// serialize verbatim as declared; enum values serialize in snake_case.
// Decoding enforces the typed schema as a required subset of the payload:
// missing or mistyped required fields fail with SchemaError, while unknown
// extra fields are ignored so independently-deployed participants can add
// fields without breaking old readers. Encoding is canonical — equal values
// always produce byte-identical output.
package messages

// AgentRegister announces a new agent to the king.
//
// Registration payloads may carry additional untyped fields (a skill list,
// build metadata); the fields below are the required subset.
type AgentRegister struct {
	AgentID      string    `json:"agent_id"`
	Role         AgentRole `json:"role"`
	Capabilities []string  `json:"capabilities"`
}

func (m *AgentRegister) UnmarshalJSON(data []byte) error {
	type alias AgentRegister
	return unmarshalStrict(data, (*alias)(m), "agent_id", "role", "capabilities")
}

// AgentStatus is an agent's periodic lifecycle heartbeat.
type AgentStatus struct {
	AgentID string         `json:"agent_id"`
	Status  RunnerStatus   `json:"status"`
	Metrics map[string]any `json:"metrics"`
}

func (m *AgentStatus) UnmarshalJSON(data []byte) error {
	type alias AgentStatus
	return unmarshalStrict(data, (*alias)(m), "agent_id", "status", "metrics")
}

// AgentSkillReport reports the outcome of one skill execution.
type AgentSkillReport struct {
	AgentID string      `json:"agent_id"`
	SkillID string      `json:"skill_id"`
	Result  SkillResult `json:"result"`
	Score   *float64    `json:"score"`
}

func (m *AgentSkillReport) UnmarshalJSON(data []byte) error {
	type alias AgentSkillReport
	return unmarshalStrict(data, (*alias)(m), "agent_id", "skill_id", "result")
}

// AgentHealth carries the results of an agent's self-checks.
type AgentHealth struct {
	AgentID      string        `json:"agent_id"`
	HealthChecks []HealthCheck `json:"health_checks"`
}

func (m *AgentHealth) UnmarshalJSON(data []byte) error {
	type alias AgentHealth
	return unmarshalStrict(data, (*alias)(m), "agent_id", "health_checks")
}

// HealthCheck is one probe result within an AgentHealth report.
type HealthCheck struct {
	Name      string  `json:"name"`
	Endpoint  string  `json:"endpoint"`
	Healthy   bool    `json:"healthy"`
	LatencyMS *uint64 `json:"latency_ms"`
	Error     *string `json:"error"`
}

func (m *HealthCheck) UnmarshalJSON(data []byte) error {
	type alias HealthCheck
	return unmarshalStrict(data, (*alias)(m), "name", "endpoint", "healthy")
}

// KingCommand is a directed instruction from the king to one agent.
type KingCommand struct {
	Command     string         `json:"command"`
	TargetAgent string         `json:"target_agent"`
	Params      map[string]any `json:"params"`
}

func (m *KingCommand) UnmarshalJSON(data []byte) error {
	type alias KingCommand
	return unmarshalStrict(data, (*alias)(m), "command", "target_agent", "params")
}

// KingConfigUpdate notifies agents that a configuration document changed.
// NewConfigHash is the canonical-JSON hash of the new document (see
// config.GatewayConfig.Hash); agents compare it against their loaded copy.
type KingConfigUpdate struct {
	ConfigType    string `json:"config_type"`
	NewConfigHash string `json:"new_config_hash"`
}

func (m *KingConfigUpdate) UnmarshalJSON(data []byte) error {
	type alias KingConfigUpdate
	return unmarshalStrict(data, (*alias)(m), "config_type", "new_config_hash")
}

// PipelineNext hands an artifact to the agent owning the next stage.
type PipelineNext struct {
	Stage      PipelineStage  `json:"stage"`
	ArtifactID string         `json:"artifact_id"`
	Metadata   map[string]any `json:"metadata"`
}

func (m *PipelineNext) UnmarshalJSON(data []byte) error {
	type alias PipelineNext
	return unmarshalStrict(data, (*alias)(m), "stage", "artifact_id", "metadata")
}

// PipelineStageResult reports completion of a pipeline stage back to the
// king.
type PipelineStageResult struct {
	RunID      string            `json:"run_id"`
	Stage      PipelineStage     `json:"stage"`
	AgentID    string            `json:"agent_id"`
	Status     PipelineRunStatus `json:"status"`
	ArtifactID string            `json:"artifact_id"`
	Output     any               `json:"output"`
	Error      *string           `json:"error"`
}

func (m *PipelineStageResult) UnmarshalJSON(data []byte) error {
	type alias PipelineStageResult
	return unmarshalRequired(data, (*alias)(m),
		[]string{"run_id", "stage", "agent_id", "status", "artifact_id"},
		[]string{"output"})
}
