package bot

import (
	"sync"
	"time"

	"github.com/ownway22/Az-AIAgentSvc-MCP/agent"
)

// ConversationData is the per-conversation state carried across turns.
type ConversationData struct {
	UserName        string
	PromptedForName bool
	ChannelID       string
	LastMessageAt   time.Time
	History         []agent.Message
}

// StateStore keeps conversation state in memory, keyed by conversation ID.
// It is safe for concurrent use by request handlers.
type StateStore struct {
	mu            sync.Mutex
	conversations map[string]ConversationData
}

func NewStateStore() *StateStore {
	return &StateStore{conversations: make(map[string]ConversationData)}
}

// Get returns the state for a conversation, zero-valued on first contact.
func (s *StateStore) Get(conversationID string) ConversationData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversations[conversationID]
}

// Put stores the state for a conversation, replacing any previous value.
func (s *StateStore) Put(conversationID string, data ConversationData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conversationID] = data
}

// Delete removes a conversation's state.
func (s *StateStore) Delete(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, conversationID)
}

// Len reports how many conversations currently hold state.
func (s *StateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}
