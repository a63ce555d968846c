package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/ownway22/Az-AIAgentSvc-MCP/agent"
	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

const (
	namePromptText = "I am your AI Assistant and here to help you with your research and search on the internet on various topics. Can you help me with your name?"
	apologyText    = "Sorry, I ran into a problem handling that. Please try again in a moment."
)

// Bot handles message activities: a first-contact name prompt flow, then
// agent-driven turns with per-conversation history.
type Bot struct {
	logger logger.Logger
	agent  agent.Agent
	state  *StateStore
}

func New(log logger.Logger, a agent.Agent, state *StateStore) *Bot {
	return &Bot{
		logger: log,
		agent:  a,
		state:  state,
	}
}

// OnMessageActivity processes one inbound message activity and returns the
// reply. Agent failures never escape; the user gets an apology and the
// conversation history is left as it was before the turn.
func (b *Bot) OnMessageActivity(ctx context.Context, activity Activity) Activity {
	conversationID := activity.Conversation.ID
	data := b.state.Get(conversationID)

	data.ChannelID = activity.ChannelID
	if !activity.Timestamp.IsZero() {
		data.LastMessageAt = activity.Timestamp
	} else {
		data.LastMessageAt = time.Now().UTC()
	}

	var reply Activity
	switch {
	case data.UserName == "" && !data.PromptedForName:
		data.PromptedForName = true
		reply = activity.Reply(namePromptText)

	case data.UserName == "" && data.PromptedForName:
		data.UserName = activity.Text
		data.PromptedForName = false
		reply = activity.Reply(fmt.Sprintf("Thanks %s. Let me know how can I help you today", data.UserName))

	default:
		reply = b.runAgentTurn(ctx, activity, &data)
	}

	b.state.Put(conversationID, data)
	return reply
}

func (b *Bot) runAgentTurn(ctx context.Context, activity Activity, data *ConversationData) Activity {
	answer, history, err := b.agent.RunTurn(ctx, data.History, activity.Text)
	if err != nil {
		b.logger.Error("agent turn failed", err,
			"conversation", activity.Conversation.ID,
			"channel", activity.ChannelID)
		return activity.Reply(apologyText)
	}

	data.History = history
	b.logger.Debug("agent turn completed",
		"conversation", activity.Conversation.ID,
		"history", len(history))
	return activity.Reply(answer)
}
