package controller

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestListModel_Summaries(t *testing.T) {
	model := newListModel()
	if got := model.View(); !strings.Contains(got, "Scanning for declarations") {
		t.Fatalf("initial view = %q", got)
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(listModel)

	updated, _ = model.Update(summariesMsg{
		items: []callableItem{
			{label: "calc.go:3 Add → AddArgs", variants: 5},
			{label: "geo.go:9 Point → NewPoint", variants: 2},
		},
		variants: 7,
	})
	model = updated.(listModel)

	if !model.rendered || model.total != 2 || model.variants != 7 {
		t.Fatalf("summariesMsg did not set state")
	}
	if model.lastSelected != 0 {
		t.Fatalf("lastSelected = %d, want 0", model.lastSelected)
	}

	view := model.View()
	if !strings.Contains(view, "defargs callables") || !strings.Contains(view, "Add → AddArgs") {
		t.Fatalf("view = %q", view)
	}
}

func TestListModel_Error(t *testing.T) {
	model := newListModel()
	model.width = 80
	model.height = 20

	model = model.handleSummariesMsg(summariesMsg{err: errors.New("calc.go:3: unknown directive")})
	if view := model.View(); !strings.Contains(view, "unknown directive") {
		t.Fatalf("error not rendered: %q", view)
	}
}

func TestListModel_KeysAndTick(t *testing.T) {
	model := newListModel()
	model = model.handleSummariesMsg(summariesMsg{items: []callableItem{
		{label: "a.go:1 a → aArgs", variants: 1},
		{label: "b.go:1 b → bArgs", variants: 1},
	}})

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(listModel)
	if model.lastSelected != 1 {
		t.Fatalf("lastSelected = %d, want 1", model.lastSelected)
	}

	updated, cmd := model.Update(tickMsg(time.Now()))
	model = updated.(listModel)
	if model.animOffset != 1 || cmd == nil {
		t.Fatalf("tick did not advance animation")
	}

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}
}

func TestCallableDelegate_Render(t *testing.T) {
	var buf strings.Builder

	model := newListModel()
	model = model.handleSummariesMsg(summariesMsg{items: []callableItem{{label: "calc.go:3 Add → AddArgs", variants: -1}}})
	model.delegate.Render(&buf, model.callables, 1, model.callables.Items()[0])

	if !strings.Contains(buf.String(), "invalid") {
		t.Fatalf("render = %q", buf.String())
	}
}
