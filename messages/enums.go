package messages

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AgentRole identifies what an agent does in the pipeline. The closed
// variants are the canonical pipeline roles; UserRole is the open escape
// hatch for operator-defined roles and preserves its name exactly as given.
//
// On the wire a closed role is a bare string ("learning"); a user role is a
// single-key object ({"user":"analyst"}).
type AgentRole struct {
	name string
	user bool
}

// Closed pipeline roles. Their wire names correspond one-to-one with
// PipelineStage — see TestRoleStageCorrespondence.
var (
	RoleSkillManage = AgentRole{name: "skill_manage"}
	RoleLearning    = AgentRole{name: "learning"}
	RolePreLoad     = AgentRole{name: "pre_load"}
	RoleBuilding    = AgentRole{name: "building"}
	RoleEvaluation  = AgentRole{name: "evaluation"}
)

// UserRole returns the open role variant carrying an arbitrary,
// case-sensitive name.
func UserRole(name string) AgentRole {
	return AgentRole{name: name, user: true}
}

// ClosedRoles returns the five canonical pipeline roles.
func ClosedRoles() []AgentRole {
	return []AgentRole{RoleSkillManage, RoleLearning, RolePreLoad, RoleBuilding, RoleEvaluation}
}

// Name returns the role's wire name (for closed roles) or the user-supplied
// name (for user roles).
func (r AgentRole) Name() string { return r.name }

// IsUser reports whether r is the open user variant.
func (r AgentRole) IsUser() bool { return r.user }

func isClosedRoleName(name string) bool {
	switch name {
	case "skill_manage", "learning", "pre_load", "building", "evaluation":
		return true
	}
	return false
}

func (r AgentRole) MarshalJSON() ([]byte, error) {
	if r.user {
		return json.Marshal(map[string]string{"user": r.name})
	}
	if !isClosedRoleName(r.name) {
		return nil, fmt.Errorf("messages: agent role %q is not a pipeline role; construct user roles with UserRole", r.name)
	}
	return json.Marshal(r.name)
}

func (r *AgentRole) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return asSchemaError(err)
		}
		if !isClosedRoleName(name) {
			return &SchemaError{Msg: fmt.Sprintf("unknown agent role %q", name)}
		}
		*r = AgentRole{name: name}
		return nil
	}
	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return asSchemaError(err)
	}
	name, ok := obj["user"]
	if !ok || len(obj) != 1 {
		return &SchemaError{Msg: "agent role object must have exactly one key, \"user\""}
	}
	*r = AgentRole{name: name, user: true}
	return nil
}

// SkillResult is the outcome of a skill execution. Success carries no
// payload; Failure and Partial carry a human-readable message.
//
// Wire form is externally tagged: "success", {"failure":"<msg>"}, or
// {"partial":"<msg>"}.
type SkillResult struct {
	status  string
	message string
}

// Success is the payload-free success result.
var Success = SkillResult{status: "success"}

// Failure returns a failed result carrying msg.
func Failure(msg string) SkillResult {
	return SkillResult{status: "failure", message: msg}
}

// Partial returns a partially-successful result carrying msg.
func Partial(msg string) SkillResult {
	return SkillResult{status: "partial", message: msg}
}

// Status returns "success", "failure", or "partial".
func (r SkillResult) Status() string { return r.status }

// Message returns the payload of a failure or partial result; empty for
// success.
func (r SkillResult) Message() string { return r.message }

// IsSuccess reports whether r is the success variant.
func (r SkillResult) IsSuccess() bool { return r.status == "success" }

func (r SkillResult) MarshalJSON() ([]byte, error) {
	switch r.status {
	case "success":
		return json.Marshal(r.status)
	case "failure", "partial":
		return json.Marshal(map[string]string{r.status: r.message})
	}
	return nil, fmt.Errorf("messages: skill result has no variant; use Success, Failure, or Partial")
}

func (r *SkillResult) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return asSchemaError(err)
		}
		if tag != "success" {
			return &SchemaError{Msg: fmt.Sprintf("unknown skill result %q", tag)}
		}
		*r = Success
		return nil
	}
	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return asSchemaError(err)
	}
	for _, tag := range []string{"failure", "partial"} {
		if msg, ok := obj[tag]; ok && len(obj) == 1 {
			*r = SkillResult{status: tag, message: msg}
			return nil
		}
	}
	return &SchemaError{Msg: "skill result object must have exactly one key, \"failure\" or \"partial\""}
}

// RunnerStatus is an agent's observable lifecycle phase. This layer does not
// enforce transitions — the king interprets them.
type RunnerStatus string

const (
	RunnerStarting RunnerStatus = "starting"
	RunnerReady    RunnerStatus = "ready"
	RunnerBusy     RunnerStatus = "busy"
	RunnerError    RunnerStatus = "error"
	RunnerShutting RunnerStatus = "shutting"
)

func (s RunnerStatus) valid() bool {
	switch s {
	case RunnerStarting, RunnerReady, RunnerBusy, RunnerError, RunnerShutting:
		return true
	}
	return false
}

func (s *RunnerStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, (*string)(s), "runner status", func(v string) bool { return RunnerStatus(v).valid() })
}

// PipelineStage is one phase of the cyclic evolution workflow:
// learning → building → pre_load → evaluation → skill_manage → …
type PipelineStage string

const (
	StageLearning    PipelineStage = "learning"
	StageBuilding    PipelineStage = "building"
	StagePreLoad     PipelineStage = "pre_load"
	StageEvaluation  PipelineStage = "evaluation"
	StageSkillManage PipelineStage = "skill_manage"
)

// Stages returns all pipeline stages in execution order.
func Stages() []PipelineStage {
	return []PipelineStage{StageLearning, StageBuilding, StagePreLoad, StageEvaluation, StageSkillManage}
}

// Role returns the agent role responsible for this stage.
func (s PipelineStage) Role() AgentRole {
	return AgentRole{name: string(s)}
}

func (s PipelineStage) valid() bool {
	switch s {
	case StageLearning, StageBuilding, StagePreLoad, StageEvaluation, StageSkillManage:
		return true
	}
	return false
}

func (s *PipelineStage) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, (*string)(s), "pipeline stage", func(v string) bool { return PipelineStage(v).valid() })
}

// PipelineRunStatus is the terminal or in-flight state of a pipeline run.
type PipelineRunStatus string

const (
	RunRunning   PipelineRunStatus = "running"
	RunCompleted PipelineRunStatus = "completed"
	RunFailed    PipelineRunStatus = "failed"
	RunTimedOut  PipelineRunStatus = "timed_out"
)

func (s PipelineRunStatus) valid() bool {
	switch s {
	case RunRunning, RunCompleted, RunFailed, RunTimedOut:
		return true
	}
	return false
}

func (s *PipelineRunStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, (*string)(s), "pipeline run status", func(v string) bool { return PipelineRunStatus(v).valid() })
}

// TaskStatus is the lifecycle state of a king-managed task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskFailed     TaskStatus = "failed"
	TaskCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskFailed, TaskCancelled:
		return true
	}
	return false
}

func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, (*string)(s), "task status", func(v string) bool { return TaskStatus(v).valid() })
}

// MemoryScope is the visibility boundary of a stored memory.
type MemoryScope string

const (
	ScopeSystem   MemoryScope = "system"
	ScopeAgent    MemoryScope = "agent"
	ScopePipeline MemoryScope = "pipeline"
	ScopeSkill    MemoryScope = "skill"
)

func (s MemoryScope) valid() bool {
	switch s {
	case ScopeSystem, ScopeAgent, ScopePipeline, ScopeSkill:
		return true
	}
	return false
}

func (s *MemoryScope) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, (*string)(s), "memory scope", func(v string) bool { return MemoryScope(v).valid() })
}

// MemoryCategory classifies what kind of knowledge a memory holds.
type MemoryCategory string

const (
	CategoryCase       MemoryCategory = "case"
	CategoryPattern    MemoryCategory = "pattern"
	CategoryFact       MemoryCategory = "fact"
	CategoryPreference MemoryCategory = "preference"
	CategoryResource   MemoryCategory = "resource"
	CategoryEvent      MemoryCategory = "event"
)

func (c MemoryCategory) valid() bool {
	switch c {
	case CategoryCase, CategoryPattern, CategoryFact, CategoryPreference, CategoryResource, CategoryEvent:
		return true
	}
	return false
}

func (c *MemoryCategory) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, (*string)(c), "memory category", func(v string) bool { return MemoryCategory(v).valid() })
}

func unmarshalEnum(data []byte, dst *string, what string, valid func(string) bool) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return asSchemaError(err)
	}
	if !valid(v) {
		return &SchemaError{Msg: fmt.Sprintf("unknown %s %q", what, v)}
	}
	*dst = v
	return nil
}
