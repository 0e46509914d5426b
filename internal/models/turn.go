package models

import "time"

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ImageAttachment is an uploaded image carried inside a turn.
type ImageAttachment struct {
	FileName string
	MIMEType string
	Data     []byte
}

// ChatTurn is one message in the transcript. Turns are immutable once
// created; the session store only ever appends them.
type ChatTurn struct {
	Role      Role
	Text      string
	Image     *ImageAttachment
	IsError   bool // gateway failure rendered in place of an assistant reply
	CreatedAt time.Time
}

// NewUserTurn creates a user turn with the current timestamp.
func NewUserTurn(text string, image *ImageAttachment) ChatTurn {
	return ChatTurn{
		Role:      RoleUser,
		Text:      text,
		Image:     image,
		CreatedAt: time.Now(),
	}
}

// NewAssistantTurn creates an assistant turn with the current timestamp.
func NewAssistantTurn(text string) ChatTurn {
	return ChatTurn{
		Role:      RoleAssistant,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// NewErrorTurn creates an error-styled pseudo-assistant turn.
func NewErrorTurn(text string) ChatTurn {
	return ChatTurn{
		Role:      RoleAssistant,
		Text:      text,
		IsError:   true,
		CreatedAt: time.Now(),
	}
}

// HasContent reports whether the turn carries text or an image.
func (t ChatTurn) HasContent() bool {
	return t.Text != "" || t.Image != nil
}
