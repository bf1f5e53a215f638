package messages

// Memory payloads implement the king's layered memory system. Content is
// tiered: l0 is a one-line gist, l1 a short summary, l2 the full detail.
// Agents store and query; the king owns persistence and ranking.

// MemoryTierEntry is one tier of content supplied on store or update.
type MemoryTierEntry struct {
	Tier    string `json:"tier"`
	Content string `json:"content"`
}

func (m *MemoryTierEntry) UnmarshalJSON(data []byte) error {
	type alias MemoryTierEntry
	return unmarshalStrict(data, (*alias)(m), "tier", "content")
}

// MemoryStore stores a memory into the king.
type MemoryStore struct {
	Scope          MemoryScope       `json:"scope"`
	Category       MemoryCategory    `json:"category"`
	Key            string            `json:"key"`
	Metadata       any               `json:"metadata"`
	Tags           []string          `json:"tags"`
	AgentID        string            `json:"agent_id"`
	RunID          string            `json:"run_id"`
	SkillID        string            `json:"skill_id"`
	RelevanceScore float64           `json:"relevance_score"`
	Tiers          []MemoryTierEntry `json:"tiers"`
	TaskID         *string           `json:"task_id"`
}

func (m *MemoryStore) UnmarshalJSON(data []byte) error {
	type alias MemoryStore
	a := alias{
		Metadata: map[string]any{},
		Tags:     []string{},
		Tiers:    []MemoryTierEntry{},
	}
	if err := unmarshalStrict(data, &a, "scope", "category"); err != nil {
		return err
	}
	*m = MemoryStore(a)
	return nil
}

// MemoryQuery searches the king's memories. Only Query is required; Limit
// defaults to DefaultMemoryQueryLimit.
type MemoryQuery struct {
	Query    string          `json:"query"`
	Scope    *MemoryScope    `json:"scope"`
	Category *MemoryCategory `json:"category"`
	AgentID  *string         `json:"agent_id"`
	Tier     *string         `json:"tier"`
	TaskID   *string         `json:"task_id"`
	Limit    uint32          `json:"limit"`
}

func (m *MemoryQuery) UnmarshalJSON(data []byte) error {
	type alias MemoryQuery
	a := alias{Limit: DefaultMemoryQueryLimit}
	if err := unmarshalStrict(data, &a, "query"); err != nil {
		return err
	}
	*m = MemoryQuery(a)
	return nil
}

// MemoryTierRecord is one stored tier of a returned memory.
type MemoryTierRecord struct {
	ID        string `json:"id"`
	MemoryID  string `json:"memory_id"`
	Tier      string `json:"tier"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *MemoryTierRecord) UnmarshalJSON(data []byte) error {
	type alias MemoryTierRecord
	return unmarshalStrict(data, (*alias)(m), "id", "memory_id", "tier", "content", "created_at", "updated_at")
}

// MemoryRecord is a memory as returned in query results. Scope and Category
// are plain strings here: records echo whatever the king has stored, even
// rows written by a newer participant with enum values this reader does not
// know.
type MemoryRecord struct {
	ID             string             `json:"id"`
	Scope          string             `json:"scope"`
	Category       string             `json:"category"`
	Key            string             `json:"key"`
	Tiers          []MemoryTierRecord `json:"tiers"`
	Metadata       any                `json:"metadata"`
	Tags           []string           `json:"tags"`
	AgentID        string             `json:"agent_id"`
	RunID          string             `json:"run_id"`
	SkillID        string             `json:"skill_id"`
	RelevanceScore float64            `json:"relevance_score"`
	AccessCount    int64              `json:"access_count"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

func (m *MemoryRecord) UnmarshalJSON(data []byte) error {
	type alias MemoryRecord
	a := alias{
		Tiers:    []MemoryTierRecord{},
		Metadata: map[string]any{},
		Tags:     []string{},
	}
	if err := unmarshalStrict(data, &a, "id", "scope", "category", "key", "created_at", "updated_at"); err != nil {
		return err
	}
	*m = MemoryRecord(a)
	return nil
}

// MemoryResult returns matching memories to the querying agent.
type MemoryResult struct {
	Memories []MemoryRecord `json:"memories"`
	Count    uint32         `json:"count"`
}

func (m *MemoryResult) UnmarshalJSON(data []byte) error {
	type alias MemoryResult
	return unmarshalStrict(data, (*alias)(m), "memories", "count")
}

// MemoryChanged is broadcast when a memory is created, updated, or deleted.
// Action is "created", "updated", or "deleted"; deletions carry only the ID.
type MemoryChanged struct {
	Action   string        `json:"action"`
	Memory   *MemoryRecord `json:"memory"`
	MemoryID *string       `json:"memory_id"`
}

func (m *MemoryChanged) UnmarshalJSON(data []byte) error {
	type alias MemoryChanged
	return unmarshalStrict(data, (*alias)(m), "action")
}
