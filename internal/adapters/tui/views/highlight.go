package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/domain"
)

const highlightDuration = 1500 * time.Millisecond

type highlightExpiredMsg struct{ gen int }

// Highlights returns, per spot id, the kind of edit that touched the spot in
// script: inserted, moved or updated. Removed spots are gone and not listed.
func Highlights(old []domain.Spot, script domain.Script[domain.Spot]) map[int64]domain.EditKind {
	out := make(map[int64]domain.EditKind)
	working := old
	for _, e := range script {
		next, err := domain.Apply(working, domain.Script[domain.Spot]{e})
		if err != nil {
			return out
		}
		working = next

		switch e.Kind {
		case domain.EditInsert, domain.EditUpdate:
			out[e.Item.ID] = e.Kind
		case domain.EditMove:
			out[working[e.To].ID] = e.Kind
		}
	}
	return out
}

func expireHighlight(gen int) tea.Cmd {
	return tea.Tick(highlightDuration, func(time.Time) tea.Msg {
		return highlightExpiredMsg{gen: gen}
	})
}
