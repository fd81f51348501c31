// Package chat holds the conversational assistant session: an append-only
// message log exchanged with the chat endpoint, seeded with report context.
package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/prakharDvedi/PanditAI/internal/astro"
)

// Greeting opens every session. It is synthetic and never sent to the
// backend.
const Greeting = "Namaste. I have analyzed your chart. Ask me anything about your career, relationships, destiny, and how to make your life better"

// Fallback is appended when the chat endpoint fails; the session never
// surfaces a raw error or waits indefinitely.
const Fallback = "The cosmic connection is faint right now. Please try again in a moment."

// Asker performs one chat exchange. *api.Client satisfies it.
type Asker interface {
	Chat(ctx context.Context, query, reportContext string) (string, error)
}

// Session is an append-only conversation owned by the assistant view and
// discarded with it. Context is the opaque fact-sheet string from the
// surrounding report; the session does not interpret it.
type Session struct {
	ID      string
	Context string

	log []astro.ChatMessage
}

// NewSession creates a session seeded with the assistant greeting.
func NewSession(reportContext string) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Context: reportContext,
		log:     []astro.ChatMessage{{Role: "assistant", Content: Greeting}},
	}
}

// Messages returns the visible log in order.
func (s *Session) Messages() []astro.ChatMessage {
	out := make([]astro.ChatMessage, len(s.log))
	copy(out, s.log)
	return out
}

// AppendUser records the user's message. Called synchronously before the
// network exchange so the user sees their own message immediately.
func (s *Session) AppendUser(text string) {
	s.log = append(s.log, astro.ChatMessage{Role: "user", Content: text})
}

// AppendAssistant records one assistant reply.
func (s *Session) AppendAssistant(text string) {
	s.log = append(s.log, astro.ChatMessage{Role: "assistant", Content: text})
}

// Exchange performs the network half of one send: it asks the backend and
// returns the text to append as the single assistant reply, substituting
// Fallback on any failure.
func Exchange(ctx context.Context, asker Asker, query, reportContext string) string {
	reply, err := asker.Chat(ctx, query, reportContext)
	if err != nil || reply == "" {
		return Fallback
	}
	return reply
}

// Send runs one full exchange against the session: the user message is
// appended first, then exactly one assistant message follows.
func (s *Session) Send(ctx context.Context, asker Asker, text string) {
	s.AppendUser(text)
	s.AppendAssistant(Exchange(ctx, asker, text, s.Context))
}
