package chatclient

import (
	"context"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"fashionchat/internal/models"
)

// Fixed assistant texts. connectionErrorPrefix identifies locally
// generated connectivity notices so they can be kept out of the history
// sent to the service.
const (
	welcomeText           = "Hello! I'm your fashion assistant. Ask me about trends, styles, colors, accessories, or outfit ideas."
	connectionErrorPrefix = "I'm having trouble connecting to the fashion assistant"
	connectionErrorText   = connectionErrorPrefix + " service. Please make sure the backend is running and try again."
	sendErrorText         = "Sorry, something went wrong while processing your message. Please try again."
)

// Message is one entry of the conversation transcript. Messages are
// immutable once appended; the transcript never reorders them.
type Message struct {
	ID        string
	Role      string
	Content   string
	CreatedAt time.Time
}

// Conversation owns a single chat session: the transcript, the
// connectivity state from the startup probe, and the guard that keeps at
// most one send in flight. The transcript lives and dies with the value.
type Conversation struct {
	client *Client

	mu         sync.Mutex
	transcript []Message
	connected  bool

	inFlight atomic.Bool
}

func NewConversation(client *Client) *Conversation {
	return &Conversation{client: client}
}

// CheckConnection probes the service once and seeds the transcript with
// either the welcome message or a connectivity notice. It is meant to
// run a single time when the session starts; there is no retry.
func (c *Conversation) CheckConnection(ctx context.Context) bool {
	err := c.client.Health(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		log.Printf("Health probe failed: %v", err)
		c.connected = false
		c.append(models.RoleAssistant, connectionErrorText)
		return false
	}

	c.connected = true
	c.append(models.RoleAssistant, welcomeText)
	return true
}

// Send submits one user message. It reports false without touching the
// transcript when the text is blank or another send is in flight.
// Every accepted send appends the user message immediately and exactly
// one assistant message afterwards: the service reply on success, a
// fixed error notice otherwise. Failures never escape to the caller.
func (c *Conversation) Send(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		return false
	}
	defer c.inFlight.Store(false)

	c.mu.Lock()
	history := c.history()
	c.append(models.RoleUser, text)
	c.mu.Unlock()

	resp, err := c.client.Chat(ctx, text, history)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		log.Printf("Send failed: %v", err)
		c.append(models.RoleAssistant, sendErrorText)
		return true
	}

	c.append(models.RoleAssistant, resp.Response)
	return true
}

// Messages returns a copy of the transcript in insertion order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Last returns the most recent transcript entry.
func (c *Conversation) Last() (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.transcript) == 0 {
		return Message{}, false
	}
	return c.transcript[len(c.transcript)-1], true
}

// Connected reports the result of the startup probe. It gates nothing:
// sends are permitted regardless.
func (c *Conversation) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// append adds a message at the tail. Callers must hold c.mu.
func (c *Conversation) append(role, content string) {
	c.transcript = append(c.transcript, Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
}

// history converts the transcript to wire messages, dropping locally
// generated connectivity notices. Callers must hold c.mu.
func (c *Conversation) history() []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(c.transcript))
	for _, msg := range c.transcript {
		if strings.HasPrefix(msg.Content, connectionErrorPrefix) {
			continue
		}
		out = append(out, models.ChatMessage{Role: msg.Role, Content: msg.Content})
	}
	return out
}
