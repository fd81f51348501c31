package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prakharDvedi/PanditAI/internal/chat"
)

func (a *App) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.chat.input.Blur()
		a.activeTab = TabAnalysis
		return a, nil
	case "tab":
		return a.switchTab((a.activeTab + 1) % TabCount)
	case "shift+tab":
		return a.switchTab((a.activeTab + TabCount - 1) % TabCount)
	case "up", "ctrl+p":
		if a.chat.scroll > 0 {
			a.chat.scroll--
		}
		return a, nil
	case "down", "ctrl+n":
		a.chat.scroll++
		return a, nil
	case "enter":
		return a, a.sendChat()
	}

	if !a.chat.input.Focused() {
		a.chat.input.Focus()
	}
	var cmd tea.Cmd
	a.chat.input, cmd = a.chat.input.Update(msg)
	return a, cmd
}

// sendChat appends the user's message immediately and fires the exchange;
// exactly one assistant reply follows, fallback included.
func (a *App) sendChat() tea.Cmd {
	if a.chat.waiting {
		return nil
	}
	query := strings.TrimSpace(a.chat.input.Value())
	if query == "" {
		return nil
	}
	a.chat.session.AppendUser(query)
	a.chat.input.SetValue("")
	a.chat.waiting = true
	a.chat.scroll = 0

	asker := a.deps.API
	reportContext := a.chat.session.Context
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		return ChatReplyMsg{Text: chat.Exchange(ctx, asker, query, reportContext)}
	}
}

func (a *App) viewChat(w, h int) string {
	var b strings.Builder
	t := a.theme

	msgs := a.chat.session.Messages()

	// Most recent messages fill the pane; scroll walks backwards.
	visible := h - 10
	if visible < 3 {
		visible = 3
	}
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		prefix := t.ChatAssistant.Render("☸ Pandit  ")
		if m.Role == "user" {
			prefix = t.ChatUser.Render("You       ")
		}
		for i, line := range wrapText(m.Content, w-16) {
			if i == 0 {
				lines = append(lines, "  "+prefix+line)
			} else {
				lines = append(lines, "            "+line)
			}
		}
	}
	end := len(lines) - a.chat.scroll
	if end > len(lines) {
		end = len(lines)
	}
	if end < 0 {
		end = 0
	}
	start := end - visible
	if start < 0 {
		start = 0
	}

	b.WriteString("\n")
	for _, line := range lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.chat.waiting {
		b.WriteString("  " + a.spinner.View() + " The pandit is thinking...\n")
	}
	b.WriteString("  " + a.chat.input.View() + "\n")
	return b.String()
}

func wrapText(s string, width int) []string {
	if width < 16 {
		width = 16
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			out = append(out, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(out, line)
}
