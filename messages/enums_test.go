package messages_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-evo-agents/evo-common/messages"
)

func TestAgentRoleClosedEncoding(t *testing.T) {
	data, err := json.Marshal(messages.RoleSkillManage)
	require.NoError(t, err)
	assert.Equal(t, `"skill_manage"`, string(data))

	var role messages.AgentRole
	require.NoError(t, json.Unmarshal(data, &role))
	assert.Equal(t, messages.RoleSkillManage, role)
	assert.False(t, role.IsUser())
}

func TestAgentRoleUserEncoding(t *testing.T) {
	role := messages.UserRole("Analyst-α")
	data, err := json.Marshal(role)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":"Analyst-α"}`, string(data))

	var decoded messages.AgentRole
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.IsUser())
	assert.Equal(t, "Analyst-α", decoded.Name())
	assert.Equal(t, role, decoded)
}

func TestAgentRoleRejectsUnknown(t *testing.T) {
	var role messages.AgentRole
	err := json.Unmarshal([]byte(`"janitor"`), &role)
	require.True(t, messages.IsSchemaError(err))
}

func TestAgentRoleZeroValueDoesNotEncode(t *testing.T) {
	// The zero value is not constructible through the public API; encoding
	// it is a logic error upstream, not a recoverable condition.
	var role messages.AgentRole
	_, err := json.Marshal(role)
	require.Error(t, err)
}

func TestSkillResultSuccess(t *testing.T) {
	data, err := json.Marshal(messages.Success)
	require.NoError(t, err)
	assert.Equal(t, `"success"`, string(data))

	var res messages.SkillResult
	require.NoError(t, json.Unmarshal(data, &res))
	assert.True(t, res.IsSuccess())
}

func TestSkillResultFailureCarriesMessage(t *testing.T) {
	var res messages.SkillResult
	require.NoError(t, json.Unmarshal([]byte(`{"failure":"timeout"}`), &res))
	assert.Equal(t, "failure", res.Status())
	assert.Equal(t, "timeout", res.Message())
	assert.False(t, res.IsSuccess())

	reencoded, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"failure":"timeout"}`, string(reencoded))
}

func TestSkillResultRejectsUnknownTag(t *testing.T) {
	var res messages.SkillResult
	require.True(t, messages.IsSchemaError(json.Unmarshal([]byte(`"flaky"`), &res)))
	require.True(t, messages.IsSchemaError(json.Unmarshal([]byte(`{"maybe":"x"}`), &res)))
}

func TestRunnerStatusRejectsUnknown(t *testing.T) {
	var s messages.RunnerStatus
	require.NoError(t, json.Unmarshal([]byte(`"shutting"`), &s))
	assert.Equal(t, messages.RunnerShutting, s)

	require.True(t, messages.IsSchemaError(json.Unmarshal([]byte(`"sleeping"`), &s)))
}

func TestPipelineRunStatusEncoding(t *testing.T) {
	data, err := json.Marshal(messages.RunTimedOut)
	require.NoError(t, err)
	assert.Equal(t, `"timed_out"`, string(data))
}

func TestTaskStatusEncoding(t *testing.T) {
	data, err := json.Marshal(messages.TaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, `"in_progress"`, string(data))

	var s messages.TaskStatus
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, messages.TaskInProgress, s)
}

// Every closed agent role must have a pipeline stage with the same wire
// name, and vice versa. Neither type can enforce this; this test is the
// guard.
func TestRoleStageCorrespondence(t *testing.T) {
	roleNames := map[string]bool{}
	for _, r := range messages.ClosedRoles() {
		roleNames[r.Name()] = true
	}
	stageNames := map[string]bool{}
	for _, s := range messages.Stages() {
		stageNames[string(s)] = true
	}
	assert.Equal(t, roleNames, stageNames)

	for _, s := range messages.Stages() {
		assert.Equal(t, string(s), s.Role().Name())
		assert.False(t, s.Role().IsUser())
	}
}
