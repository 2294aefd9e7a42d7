package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/keymap"
	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, "", bar.Path())
	shown, total := bar.Counts()
	assert.Zero(t, shown)
	assert.Zero(t, total)
	assert.False(t, bar.Reloaded())
}

func TestNewBar_NilArgs(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		shown    int
		total    int
		reloaded bool
		want     []string
		notWant  []string
	}{
		{
			name:    "all shown",
			shown:   3,
			total:   3,
			want:    []string{"./data/findr.json", "3 candidates"},
			notWant: []string{"of 3", "reloaded"},
		},
		{
			name:  "filtered",
			shown: 1,
			total: 3,
			want:  []string{"1 of 3 candidates"},
		},
		{
			name:     "reloaded",
			shown:    0,
			total:    0,
			reloaded: true,
			want:     []string{"0 candidates", "reloaded from disk"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetPath("./data/findr.json")
			bar.SetCounts(tt.shown, tt.total)
			bar.SetReloaded(tt.reloaded)

			view := bar.View()
			for _, w := range tt.want {
				assert.Contains(t, view, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, view, nw)
			}
		})
	}
}

func TestStatusBar_ViewShowsHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	view := bar.View()

	assert.Contains(t, view, "enter: run")
	assert.Contains(t, view, "f1: help")
	assert.Contains(t, view, "ctrl+c: quit")
}

func TestStatusBar_NarrowWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(10)
	bar.SetPath("findr.json")

	assert.NotEmpty(t, bar.View())
	assert.Equal(t, 10, bar.Width())
}
