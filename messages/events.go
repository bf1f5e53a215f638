package messages

import "github.com/google/uuid"

// Event names are the addressing scheme of the event channel shared by
// every participant. The strings below are wire contract: changing one
// requires a coordinated version bump across the whole network.
const (
	EventAgentRegister    = "agent:register"
	EventAgentStatus      = "agent:status"
	EventAgentSkillReport = "agent:skill_report"
	EventAgentHealth      = "agent:health"
	EventKingCommand      = "king:command"
	EventKingConfigUpdate = "king:config_update"
	EventPipelineNext     = "pipeline:next"

	// Pipeline coordination.
	EventPipelineStageResult = "pipeline:stage_result"

	// Task management.
	EventTaskCreate  = "task:create"
	EventTaskUpdate  = "task:update"
	EventTaskGet     = "task:get"
	EventTaskList    = "task:list"
	EventTaskDelete  = "task:delete"
	EventTaskChanged = "task:changed"

	// Task rooms.
	EventTaskInvite   = "task:invite"
	EventTaskJoin     = "task:join"
	EventTaskOutput   = "task:output"
	EventTaskEvaluate = "task:evaluate"
	EventTaskSummary  = "task:summary"
	EventTaskLog      = "task:log"

	// Memory system.
	EventMemoryStore   = "memory:store"
	EventMemoryQuery   = "memory:query"
	EventMemoryUpdate  = "memory:update"
	EventMemoryDelete  = "memory:delete"
	EventMemoryChanged = "memory:changed"

	// Debug taps.
	EventDebugPrompt   = "debug:prompt"
	EventDebugResponse = "debug:response"
	EventDebugStream   = "debug:stream"
)

// Room names and prefixes.
const (
	// RoomKernel is the default broadcast room every agent joins.
	RoomKernel = "kernel"

	RoomRolePrefix = "role:"
	RoomTaskPrefix = "task:"
)

// RoleRoom returns the room a role's agents listen on, e.g. "role:learning".
func RoleRoom(role AgentRole) string {
	return RoomRolePrefix + role.Name()
}

// TaskRoom returns the room for a task's participants, e.g. "task:abc-123".
func TaskRoom(taskID string) string {
	return RoomTaskPrefix + taskID
}

// NewRunID returns a fresh pipeline run identifier.
func NewRunID() string { return uuid.NewString() }

// NewTaskID returns a fresh task identifier.
func NewTaskID() string { return uuid.NewString() }

// NewMemoryID returns a fresh memory identifier.
func NewMemoryID() string { return uuid.NewString() }
