package bot

import "time"

// Activity types processed by the bot. Anything else passes through the HTTP
// layer untouched.
const (
	ActivityTypeMessage = "message"
)

// ChannelAccount identifies the sender of an activity.
type ChannelAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ConversationAccount identifies the conversation an activity belongs to.
type ConversationAccount struct {
	ID string `json:"id"`
}

// Activity is the Bot Framework wire shape for one inbound or outbound
// message, reduced to the fields this service reads and writes.
type Activity struct {
	Type         string              `json:"type"`
	ID           string              `json:"id,omitempty"`
	Text         string              `json:"text,omitempty"`
	ChannelID    string              `json:"channelId,omitempty"`
	Timestamp    time.Time           `json:"timestamp,omitempty"`
	From         ChannelAccount      `json:"from,omitempty"`
	Recipient    ChannelAccount      `json:"recipient,omitempty"`
	Conversation ConversationAccount `json:"conversation"`
	ReplyToID    string              `json:"replyToId,omitempty"`
}

// Reply builds an outbound message activity addressed back to the sender of
// the received one.
func (a Activity) Reply(text string) Activity {
	return Activity{
		Type:         ActivityTypeMessage,
		Text:         text,
		ChannelID:    a.ChannelID,
		Timestamp:    time.Now().UTC(),
		From:         a.Recipient,
		Recipient:    a.From,
		Conversation: a.Conversation,
		ReplyToID:    a.ID,
	}
}
