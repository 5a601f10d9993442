package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/core/live"
	"github.com/baditaflorin/go_palindrome/internal/core/palindrome"
	"github.com/baditaflorin/go_palindrome/internal/render"
)

func newModel(t *testing.T) (Model, *live.Binding) {
	t.Helper()
	e, err := palindrome.NewEvaluator(logger.NewNopLogger(), normalizer.NewDefaultNormalizer())
	require.NoError(t, err)
	b, err := live.NewBinding(e, domain.Result{})
	require.NoError(t, err)
	return New(b, render.Labels{Yes: "YES", No: "NOPE"}), b
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestTypingUpdatesVerdictPerKeystroke(t *testing.T) {
	m, b := newModel(t)

	var seen []bool
	b.Subscribe(func(r domain.Result) { seen = append(seen, r.Palindrome) })

	assert.Contains(t, m.View(), "start typing")

	m = typeText(m, "race")
	assert.Equal(t, "race", m.Value())
	assert.Contains(t, m.View(), "NOPE")

	m = typeText(m, "car")
	assert.Contains(t, m.View(), "YES")

	assert.Equal(t, []bool{true, false, false, false, false, false, true}, seen)
}

func TestLongInputIsNotCapped(t *testing.T) {
	m, b := newModel(t)

	text := strings.Repeat("ab", 2500) + "a"
	m = typeText(m, text)

	assert.Equal(t, text, m.Value())
	result, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, len(text), result.Length)
	assert.True(t, result.Palindrome)
}

func TestBackspaceReevaluates(t *testing.T) {
	m, _ := newModel(t)
	m = typeText(m, "abba!")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)

	assert.Equal(t, "abb", m.Value())
	assert.Contains(t, m.View(), "NOPE")
}

func TestNonKeyMessagesDoNotEvaluate(t *testing.T) {
	m, b := newModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	assert.Equal(t, live.Awaiting, b.State())
	assert.Equal(t, "", m.Value())
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEnter, tea.KeyEsc, tea.KeyCtrlC} {
		m, _ := newModel(t)
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}
