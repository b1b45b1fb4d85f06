package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bingosheets/internal/colorscheme"
	"github.com/lox/bingosheets/internal/generate"
)

func testModel() *Model {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return New(logger)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestFormNavigation(t *testing.T) {
	m := testModel()
	assert.Equal(t, fieldOutput, m.focus)

	m.Update(key("tab"))
	assert.Equal(t, fieldSheets, m.focus)

	m.Update(key("shift+tab"))
	assert.Equal(t, fieldOutput, m.focus)

	m.Update(key("shift+tab"))
	assert.Equal(t, fieldSeed, m.focus, "focus wraps around")
}

func TestChoiceCycling(t *testing.T) {
	m := testModel()

	m.setFocus(fieldPaper)
	assert.Equal(t, "a4", m.paper.Name)
	m.Update(key("right"))
	assert.Equal(t, "letter", m.paper.Name)
	m.Update(key("right"))
	assert.Equal(t, "a4", m.paper.Name)

	m.setFocus(fieldDistribution)
	m.Update(key("right"))
	assert.Equal(t, generate.FullyRandom, m.distribution)

	m.setFocus(fieldColorMode)
	m.Update(key("right"))
	assert.Equal(t, colorscheme.Random, m.colorMode)
	m.Update(key("left"))
	assert.Equal(t, colorscheme.Black, m.colorMode)

	m.setFocus(fieldFreeCenter)
	assert.True(t, m.freeCenter)
	m.Update(key(" "))
	assert.False(t, m.freeCenter)
}

func TestSubmitValidation(t *testing.T) {
	t.Run("non-numeric sheets is rejected", func(t *testing.T) {
		m := testModel()
		m.inputs[fieldSheets].SetValue("lots")
		m.Update(key("enter"))
		assert.Equal(t, stateForm, m.state)
		assert.Contains(t, m.errMsg, "total sheets must be a number")
	})

	t.Run("invalid range is rejected", func(t *testing.T) {
		m := testModel()
		m.distribution = generate.FullyRandom
		m.inputs[fieldMin].SetValue("1")
		m.inputs[fieldMax].SetValue("20")
		m.Update(key("enter"))
		assert.Equal(t, stateForm, m.state)
		assert.NotEmpty(t, m.errMsg)
	})

	t.Run("warnings open the confirmation view", func(t *testing.T) {
		m := testModel()
		m.inputs[fieldSheets].SetValue("10")
		m.Update(key("enter"))
		assert.Equal(t, stateConfirm, m.state)
		require.NotEmpty(t, m.warnings)
		assert.Contains(t, m.View(), "Continue anyway?")
	})
}

func TestConfirmDeclineAborts(t *testing.T) {
	m := testModel()
	m.inputs[fieldOutput].SetValue(filepath.Join(t.TempDir(), "out.txt"))
	m.inputs[fieldSheets].SetValue("10")
	m.Update(key("enter"))
	require.Equal(t, stateConfirm, m.state)

	_, cmd := m.Update(key("n"))
	assert.Nil(t, cmd, "decline must not start generation")
	assert.Equal(t, stateForm, m.state)
	assert.Equal(t, "Aborted.", m.errMsg)
	assert.Nil(t, m.result)

	_, err := os.Stat(m.inputs[fieldOutput].Value())
	assert.True(t, os.IsNotExist(err), "no output file may exist after decline")
}

func TestGenerateFlow(t *testing.T) {
	m := testModel()
	output := filepath.Join(t.TempDir(), "out.txt")
	m.inputs[fieldOutput].SetValue(output)
	m.inputs[fieldSeed].SetValue("1234")

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd, "clean config generates immediately")

	msg := cmd()
	result, ok := msg.(resultMsg)
	require.True(t, ok)
	require.NoError(t, result.err)

	m.Update(msg)
	assert.Equal(t, stateDone, m.state)
	require.NotNil(t, m.result)
	assert.Len(t, m.result.Pages, 1)
	assert.Equal(t, int64(1234), m.result.Seed)
	assert.Contains(t, m.View(), "Generated: "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Page 1/1")
}

func TestViewShowsAllFields(t *testing.T) {
	m := testModel()
	view := m.View()
	for _, label := range []string{
		"Output file", "Total sheets", "Sheets per page", "Paper size",
		"Minimum number", "Maximum number", "Distribution", "Letter colors",
		"Custom colors", "Free center cell", "Free center text", "Random seed",
	} {
		assert.Contains(t, view, label)
	}
}
