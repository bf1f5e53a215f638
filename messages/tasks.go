package messages

// Default list limits applied when the caller omits them.
const (
	DefaultTaskListLimit    = 50
	DefaultMemoryQueryLimit = 20
)

// TaskCreate asks the king to create a task, optionally assigned to an
// agent and optionally nested under a parent task.
type TaskCreate struct {
	TaskType string  `json:"task_type"`
	AgentID  *string `json:"agent_id"`
	Payload  any     `json:"payload"`
	ParentID *string `json:"parent_id"`
}

func (m *TaskCreate) UnmarshalJSON(data []byte) error {
	type alias TaskCreate
	a := alias{Payload: map[string]any{}}
	if err := unmarshalStrict(data, &a, "task_type"); err != nil {
		return err
	}
	*m = TaskCreate(a)
	return nil
}

// TaskUpdate partially updates a task; nil fields are left unchanged.
type TaskUpdate struct {
	TaskID  string      `json:"task_id"`
	Status  *TaskStatus `json:"status"`
	AgentID *string     `json:"agent_id"`
	Payload any         `json:"payload"`
}

func (m *TaskUpdate) UnmarshalJSON(data []byte) error {
	type alias TaskUpdate
	return unmarshalStrict(data, (*alias)(m), "task_id")
}

// TaskGet fetches a single task by ID.
type TaskGet struct {
	TaskID string `json:"task_id"`
}

func (m *TaskGet) UnmarshalJSON(data []byte) error {
	type alias TaskGet
	return unmarshalStrict(data, (*alias)(m), "task_id")
}

// TaskList queries tasks, newest first. All filters are optional; Limit
// defaults to DefaultTaskListLimit.
type TaskList struct {
	Limit    uint32      `json:"limit"`
	Status   *TaskStatus `json:"status"`
	AgentID  *string     `json:"agent_id"`
	ParentID *string     `json:"parent_id"`
}

func (m *TaskList) UnmarshalJSON(data []byte) error {
	type alias TaskList
	a := alias{Limit: DefaultTaskListLimit}
	if err := unmarshalStrict(data, &a); err != nil {
		return err
	}
	*m = TaskList(a)
	return nil
}

// TaskDelete removes a task by ID.
type TaskDelete struct {
	TaskID string `json:"task_id"`
}

func (m *TaskDelete) UnmarshalJSON(data []byte) error {
	type alias TaskDelete
	return unmarshalStrict(data, (*alias)(m), "task_id")
}

// TaskRecord is a task as returned by the king. Timestamps are RFC 3339
// strings; ParentID is empty for top-level tasks.
type TaskRecord struct {
	ID        string `json:"id"`
	TaskType  string `json:"task_type"`
	Status    string `json:"status"`
	AgentID   string `json:"agent_id"`
	Payload   any    `json:"payload"`
	ParentID  string `json:"parent_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *TaskRecord) UnmarshalJSON(data []byte) error {
	type alias TaskRecord
	return unmarshalRequired(data, (*alias)(m),
		[]string{"id", "task_type", "status", "agent_id", "created_at", "updated_at"},
		[]string{"payload"})
}

// TaskInvite asks agents to join a task room.
type TaskInvite struct {
	TaskID   string `json:"task_id"`
	TaskType string `json:"task_type"`
	Payload  any    `json:"payload"`
}

func (m *TaskInvite) UnmarshalJSON(data []byte) error {
	type alias TaskInvite
	return unmarshalStrict(data, (*alias)(m), "task_id", "task_type")
}

// TaskOutput streams one chunk of task output into a task room.
// Source is "pty" or "llm".
type TaskOutput struct {
	TaskID     string `json:"task_id"`
	RequestID  string `json:"request_id"`
	Source     string `json:"source"`
	Delta      string `json:"delta"`
	ChunkIndex uint32 `json:"chunk_index"`
	IsFinal    bool   `json:"is_final"`
}

func (m *TaskOutput) UnmarshalJSON(data []byte) error {
	type alias TaskOutput
	return unmarshalStrict(data, (*alias)(m), "task_id", "request_id", "source", "delta", "chunk_index")
}

// TaskEvaluate asks the evaluation agent to judge a completed task.
// OutputSummary is the accumulated output text, truncated if very large.
type TaskEvaluate struct {
	TaskID        string  `json:"task_id"`
	TaskType      string  `json:"task_type"`
	OutputSummary string  `json:"output_summary"`
	ExitCode      *int32  `json:"exit_code"`
	LatencyMS     *uint64 `json:"latency_ms"`
	Metadata      any     `json:"metadata"`
}

func (m *TaskEvaluate) UnmarshalJSON(data []byte) error {
	type alias TaskEvaluate
	return unmarshalStrict(data, (*alias)(m), "task_id", "task_type")
}

// TaskSummary is the evaluation agent's verdict on a task.
type TaskSummary struct {
	TaskID     string   `json:"task_id"`
	AgentID    string   `json:"agent_id"`
	Summary    string   `json:"summary"`
	Score      *float64 `json:"score"`
	Tags       []string `json:"tags"`
	Evaluation any      `json:"evaluation"`
}

func (m *TaskSummary) UnmarshalJSON(data []byte) error {
	type alias TaskSummary
	a := alias{Tags: []string{}}
	if err := unmarshalStrict(data, &a, "task_id", "agent_id", "summary"); err != nil {
		return err
	}
	*m = TaskSummary(a)
	return nil
}
