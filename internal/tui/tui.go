package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/bingosheets/internal/colorscheme"
	"github.com/lox/bingosheets/internal/confirm"
	"github.com/lox/bingosheets/internal/generate"
	"github.com/lox/bingosheets/internal/layout"
	"github.com/lox/bingosheets/internal/render"
)

// Form fields in display order. Text fields have a textinput model,
// choice fields cycle through fixed options.
const (
	fieldOutput = iota
	fieldSheets
	fieldPerPage
	fieldPaper
	fieldMin
	fieldMax
	fieldDistribution
	fieldColorMode
	fieldCustomColors
	fieldFreeCenter
	fieldFreeText
	fieldSeed
	fieldCount
)

type state int

const (
	stateForm state = iota
	stateConfirm
	stateDone
)

// resultMsg carries the outcome of a generation run back to Update
type resultMsg struct {
	result *generate.Result
	output string
	err    error
}

// Model is the Bubble Tea model for the interactive generator form
type Model struct {
	logger *log.Logger

	inputs map[int]*textinput.Model
	focus  int

	distribution generate.Mode
	paper        layout.PaperSize
	colorMode    colorscheme.Mode
	freeCenter   bool

	state    state
	pending  generate.RunConfig
	warnings []confirm.Warning
	errMsg   string
	result   *generate.Result
	output   string
	quitting bool
}

// New creates the form model with the stock defaults filled in
func New(logger *log.Logger) *Model {
	m := &Model{
		logger:       logger.WithPrefix("tui"),
		inputs:       make(map[int]*textinput.Model),
		distribution: generate.Segmented,
		paper:        layout.A4,
		colorMode:    colorscheme.Black,
		freeCenter:   true,
	}

	newInput := func(field int, value, placeholder string) {
		ti := textinput.New()
		ti.SetValue(value)
		ti.Placeholder = placeholder
		ti.CharLimit = 80
		ti.Width = 40
		ti.Prompt = ""
		m.inputs[field] = &ti
	}
	newInput(fieldOutput, "bingo_sheets.txt", "path or - for stdout")
	newInput(fieldSheets, "4", "")
	newInput(fieldPerPage, "4", "")
	newInput(fieldMin, "1", "")
	newInput(fieldMax, "75", "")
	newInput(fieldCustomColors, "", "B:#1F77B4,I:#D62728,N:#2CA02C,G:#FFBF00,O:#9467BD")
	newInput(fieldFreeText, "FREE", "")
	newInput(fieldSeed, "", "empty for new random cards")

	m.inputs[fieldOutput].Focus()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case stateConfirm:
			return m.updateConfirm(msg)
		case stateDone:
			return m.updateDone(msg)
		default:
			return m.updateForm(msg)
		}
	case resultMsg:
		if msg.err != nil {
			m.state = stateForm
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.state = stateDone
		m.result = msg.result
		m.output = msg.output
		return m, nil
	}
	return m, m.updateFocusedInput(msg)
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "left", "right":
		if m.cycleChoice(msg.String() == "right") {
			return m, nil
		}
	case " ":
		if m.focus == fieldFreeCenter {
			m.freeCenter = !m.freeCenter
			return m, nil
		}
	case "enter":
		return m.submit()
	}
	return m, m.updateFocusedInput(msg)
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.state = stateForm
		return m, m.runGenerate()
	case "n", "esc", "enter":
		// Anything but an explicit yes aborts with nothing generated.
		m.state = stateForm
		m.warnings = nil
		m.errMsg = "Aborted."
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c", "enter":
		m.quitting = true
		return m, tea.Quit
	case "e":
		m.state = stateForm
		m.result = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) setFocus(field int) {
	if in, ok := m.inputs[m.focus]; ok {
		in.Blur()
	}
	m.focus = field
	m.errMsg = ""
	if in, ok := m.inputs[field]; ok {
		in.Focus()
	}
}

// cycleChoice advances the focused choice field and reports whether the
// key was consumed.
func (m *Model) cycleChoice(forward bool) bool {
	switch m.focus {
	case fieldPaper:
		if m.paper.Name == layout.A4.Name {
			m.paper = layout.Letter
		} else {
			m.paper = layout.A4
		}
	case fieldDistribution:
		if m.distribution == generate.Segmented {
			m.distribution = generate.FullyRandom
		} else {
			m.distribution = generate.Segmented
		}
	case fieldColorMode:
		modes := []colorscheme.Mode{colorscheme.Black, colorscheme.Random, colorscheme.Custom}
		i := 0
		for j, mode := range modes {
			if mode == m.colorMode {
				i = j
			}
		}
		if forward {
			m.colorMode = modes[(i+1)%len(modes)]
		} else {
			m.colorMode = modes[(i+len(modes)-1)%len(modes)]
		}
	case fieldFreeCenter:
		m.freeCenter = !m.freeCenter
	default:
		return false
	}
	return true
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	in, ok := m.inputs[m.focus]
	if !ok {
		return nil
	}
	updated, cmd := in.Update(msg)
	*in = updated
	return cmd
}

func (m *Model) intField(field int, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(m.inputs[field].Value()))
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

// submit validates the form and either starts generation, or parks the
// run behind the warning confirmation view.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	rc, err := m.buildRun()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	warnings, err := generate.Validate(rc.Distribution)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	gateWarnings := make([]confirm.Warning, 0, len(warnings)+1)
	for _, w := range warnings {
		gateWarnings = append(gateWarnings, w)
	}
	if w := layout.CheckFit(rc.Distribution.Sheets, rc.Distribution.SheetsPerPage); w != nil {
		gateWarnings = append(gateWarnings, w)
	}

	m.pending = rc
	m.errMsg = ""
	if len(gateWarnings) > 0 {
		m.warnings = gateWarnings
		m.state = stateConfirm
		return m, nil
	}
	return m, m.runGenerate()
}

func (m *Model) buildRun() (generate.RunConfig, error) {
	var rc generate.RunConfig

	output := strings.TrimSpace(m.inputs[fieldOutput].Value())
	if output == "" {
		return rc, fmt.Errorf("output path is required")
	}
	sheets, err := m.intField(fieldSheets, "total sheets")
	if err != nil {
		return rc, err
	}
	perPage, err := m.intField(fieldPerPage, "sheets per page")
	if err != nil {
		return rc, err
	}
	minNumber, err := m.intField(fieldMin, "minimum number")
	if err != nil {
		return rc, err
	}
	maxNumber, err := m.intField(fieldMax, "maximum number")
	if err != nil {
		return rc, err
	}

	rc.Distribution = generate.Config{
		Mode:           m.distribution,
		Range:          generate.Range{Min: minNumber, Max: maxNumber},
		Sheets:         sheets,
		SheetsPerPage:  perPage,
		FreeCenter:     m.freeCenter,
		FreeCenterText: strings.TrimSpace(m.inputs[fieldFreeText].Value()),
	}
	if rc.Distribution.FreeCenterText == "" {
		rc.Distribution.FreeCenterText = "FREE"
	}
	rc.Paper = m.paper
	rc.Colors = colorscheme.Config{
		Mode:       m.colorMode,
		CustomSpec: strings.TrimSpace(m.inputs[fieldCustomColors].Value()),
	}
	if m.colorMode == colorscheme.Custom {
		if _, err := colorscheme.ParseCustom(rc.Colors.CustomSpec); err != nil {
			return rc, err
		}
	}
	if raw := strings.TrimSpace(m.inputs[fieldSeed].Value()); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return rc, fmt.Errorf("seed must be an integer")
		}
		rc.Seed = &seed
	}

	m.output = output
	return rc, nil
}

// runGenerate runs the pipeline off the update loop. The warnings were
// already confirmed in the TUI, so the gate is pre-answered.
func (m *Model) runGenerate() tea.Cmd {
	rc := m.pending
	output := strings.TrimSpace(m.inputs[fieldOutput].Value())
	logger := m.logger
	return func() tea.Msg {
		gate := &confirm.Gate{AssumeYes: true, Out: io.Discard, Logger: logger}
		result, err := generate.Run(rc, gate, logger)
		if err != nil {
			return resultMsg{err: err}
		}
		if err := render.WritePlan(output, result.Pages); err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{result: result, output: output}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case stateConfirm:
		return m.viewConfirm()
	case stateDone:
		return m.viewDone()
	default:
		return m.viewForm()
	}
}

func (m *Model) viewForm() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Bingo Sheet Generator"))
	b.WriteString("\n\n")

	row := func(field int, label, value string) {
		style := LabelStyle
		if m.focus == field {
			style = FocusedLabelStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	choice := func(value string) string {
		return ChoiceStyle.Render("< " + value + " >")
	}
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	row(fieldOutput, "Output file", m.inputs[fieldOutput].View())
	row(fieldSheets, "Total sheets", m.inputs[fieldSheets].View())
	row(fieldPerPage, "Sheets per page", m.inputs[fieldPerPage].View())
	row(fieldPaper, "Paper size", choice(m.paper.Name))
	row(fieldMin, "Minimum number", m.inputs[fieldMin].View())
	row(fieldMax, "Maximum number", m.inputs[fieldMax].View())
	row(fieldDistribution, "Distribution", choice(string(m.distribution)))
	row(fieldColorMode, "Letter colors", choice(string(m.colorMode)))
	row(fieldCustomColors, "Custom colors", m.inputs[fieldCustomColors].View())
	row(fieldFreeCenter, "Free center cell", choice(onOff(m.freeCenter)))
	row(fieldFreeText, "Free center text", m.inputs[fieldFreeText].View())
	row(fieldSeed, "Random seed", m.inputs[fieldSeed].View())

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(HintStyle.Render("tab/shift+tab move, left/right change, enter generate, esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Configuration warning"))
	b.WriteString("\n\n")
	for _, w := range m.warnings {
		b.WriteString(WarningStyle.Render("WARNING: " + w.Message()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("Continue anyway? [y/N]\n")
	return b.String()
}

func (m *Model) viewDone() string {
	var b strings.Builder
	b.WriteString(SuccessStyle.Render(fmt.Sprintf("Generated: %s", m.output)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d card(s) on %d page(s), seed %d\n\n",
		m.pending.Distribution.Sheets, len(m.result.Pages), m.result.Seed))

	// Preview the first card so the result is visible without opening
	// the output file.
	if len(m.result.Pages) > 0 && len(m.result.Pages[0].Sheets) > 0 {
		t := render.NewTerminal(io.Discard)
		b.WriteString(t.RenderSheet(m.result.Pages[0].Sheets[0]))
		b.WriteString("\n\n")
	}
	b.WriteString(HintStyle.Render("e edit, q quit"))
	b.WriteString("\n")
	return b.String()
}

var _ tea.Model = (*Model)(nil)
