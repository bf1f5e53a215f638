package messages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ai-evo-agents/evo-common/messages"
)

// Event names are wire contract. If one of these assertions fails, every
// deployed participant needs a coordinated version bump.
func TestEventNamesAreStable(t *testing.T) {
	assert.Equal(t, "agent:register", messages.EventAgentRegister)
	assert.Equal(t, "agent:status", messages.EventAgentStatus)
	assert.Equal(t, "agent:skill_report", messages.EventAgentSkillReport)
	assert.Equal(t, "agent:health", messages.EventAgentHealth)
	assert.Equal(t, "king:command", messages.EventKingCommand)
	assert.Equal(t, "king:config_update", messages.EventKingConfigUpdate)
	assert.Equal(t, "pipeline:next", messages.EventPipelineNext)
	assert.Equal(t, "pipeline:stage_result", messages.EventPipelineStageResult)
	assert.Equal(t, "task:changed", messages.EventTaskChanged)
	assert.Equal(t, "memory:changed", messages.EventMemoryChanged)
}

func TestRoomNames(t *testing.T) {
	assert.Equal(t, "kernel", messages.RoomKernel)
	assert.Equal(t, "role:learning", messages.RoleRoom(messages.RoleLearning))
	assert.Equal(t, "role:triage", messages.RoleRoom(messages.UserRole("triage")))
	assert.Equal(t, "task:abc-123", messages.TaskRoom("abc-123"))
}

func TestIDHelpersReturnDistinctValues(t *testing.T) {
	assert.NotEqual(t, messages.NewRunID(), messages.NewRunID())
	assert.NotEmpty(t, messages.NewTaskID())
	assert.NotEmpty(t, messages.NewMemoryID())
}
