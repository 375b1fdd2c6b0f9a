package services

import (
	"strings"

	"cropconnect-client/models"
	"cropconnect-client/utils"
)

// ChatAPI is the slice of the marketplace API the chat needs.
type ChatAPI interface {
	Messages(cropID string) ([]models.Message, error)
	SendMessage(cropID, senderID, text string) error
}

// Chat consumes a crop's message thread. The thread is append-only and
// server-ordered; the client never reorders, dedups or deletes.
type Chat struct {
	api    ChatAPI
	logger *utils.Logger
}

// NewChat creates a Chat over the given API.
func NewChat(api ChatAPI, logger *utils.Logger) *Chat {
	return &Chat{api: api, logger: logger}
}

// Thread fetches the current message list for a crop. On failure the
// error is logged and returned; callers keep whatever thread they last
// rendered instead of clearing it.
func (c *Chat) Thread(cropID string) ([]models.Message, error) {
	msgs, err := c.api.Messages(cropID)
	if err != nil {
		c.logger.Warn("[chat] fetch thread %s: %v", cropID, err)
		return nil, err
	}
	return msgs, nil
}

// Send posts a message to the crop's thread. Text that trims to empty
// is a no-op: no network request is issued. There is no optimistic
// append; the sent message only appears once the next fetch returns
// it, so callers re-fetch immediately on success. sent reports whether
// a request was actually made.
func (c *Chat) Send(cropID, senderID, text string) (sent bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}
	if err := c.api.SendMessage(cropID, senderID, text); err != nil {
		return true, err
	}
	return true, nil
}
