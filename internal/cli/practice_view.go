package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/lexiplay/internal/app"
	"github.com/alexanderramin/lexiplay/internal/cli/formatter"
	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/leveldata"
	"github.com/alexanderramin/lexiplay/internal/sentence"
	"github.com/alexanderramin/lexiplay/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type practiceKeyMap struct {
	Correct   key.Binding
	Incorrect key.Binding
	Next      key.Binding
	NextSlot  key.Binding
	PrevSlot  key.Binding
	NextWord  key.Binding
	PrevWord  key.Binding
	Check     key.Binding
	Quit      key.Binding
}

func defaultPracticeKeys() practiceKeyMap {
	return practiceKeyMap{
		Correct:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "correct")),
		Incorrect: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "wrong")),
		Next:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		NextSlot:  key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab", "next slot")),
		PrevSlot:  key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab", "prev slot")),
		NextWord:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next word")),
		PrevWord:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev word")),
		Check:     key.NewBinding(key.WithKeys("c", " "), key.WithHelp("c", "check")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

type practiceLoadedMsg struct {
	view *service.PracticeView
	err  error
}

type practiceCheckedMsg struct {
	res *service.CheckAnswerResult
	err error
}

type practiceAdvancedMsg struct {
	out *service.NextOutcome
	err error
}

// slotBuilder holds the word picked for each slot of a sentence task.
type slotBuilder struct {
	task    domain.LevelTask
	options [][]domain.WordEntry
	picks   []int
	cursor  int
}

func newSlotBuilder(task domain.LevelTask) *slotBuilder {
	b := &slotBuilder{
		task:    task,
		options: make([][]domain.WordEntry, len(task.Slots)),
		picks:   make([]int, len(task.Slots)),
	}
	for i, slot := range task.Slots {
		b.options[i] = task.OptionsFor(slot)
	}
	return b
}

func (b *slotBuilder) moveSlot(delta int) {
	n := len(b.task.Slots)
	b.cursor = ((b.cursor+delta)%n + n) % n
}

func (b *slotBuilder) cycleWord(delta int) {
	n := len(b.options[b.cursor])
	if n == 0 {
		return
	}
	b.picks[b.cursor] = ((b.picks[b.cursor]+delta)%n + n) % n
}

func (b *slotBuilder) selection() map[domain.SlotType]string {
	sel := make(map[domain.SlotType]string, len(b.task.Slots))
	for i, slot := range b.task.Slots {
		if len(b.options[i]) > 0 {
			sel[slot] = b.options[i][b.picks[i]].ID
		}
	}
	return sel
}

func (b *slotBuilder) render() string {
	var sb strings.Builder
	sb.WriteString(formatter.Bold(b.task.Prompt) + "\n")
	for i, slot := range b.task.Slots {
		word := formatter.Dim("--")
		if len(b.options[i]) > 0 {
			word = b.options[i][b.picks[i]].Text
		}
		label := fmt.Sprintf("%-16s", sentence.SlotLabel(slot))
		if i == b.cursor {
			sb.WriteString(formatter.StyleYellowBold.Render("▶ "+label) + " ‹ " + formatter.Bold(word) + " ›\n")
			continue
		}
		sb.WriteString("  " + formatter.Dim(label) + "   " + word + "\n")
	}
	return sb.String()
}

// practiceModel is the interactive level runner behind 'practice run'.
type practiceModel struct {
	ctx      context.Context
	runner   app.PracticeRunner
	moduleID domain.ModuleID
	level    int
	keys     practiceKeyMap

	view     *service.PracticeView
	builder  *slotBuilder
	feedback string
	finished bool
	err      error
	quitting bool
}

func newPracticeModel(ctx context.Context, runner app.PracticeRunner, moduleID domain.ModuleID, level int) *practiceModel {
	return &practiceModel{
		ctx:      ctx,
		runner:   runner,
		moduleID: moduleID,
		level:    level,
		keys:     defaultPracticeKeys(),
	}
}

func (m *practiceModel) Init() tea.Cmd {
	return m.load()
}

func (m *practiceModel) load() tea.Cmd {
	return func() tea.Msg {
		view, err := m.runner.Start(m.ctx, m.moduleID, m.level)
		return practiceLoadedMsg{view: view, err: err}
	}
}

func (m *practiceModel) check(req service.CheckAnswerRequest) tea.Cmd {
	req.ModuleID, req.Level = m.moduleID, m.level
	return func() tea.Msg {
		res, err := m.runner.CheckAnswer(m.ctx, req)
		return practiceCheckedMsg{res: res, err: err}
	}
}

func (m *practiceModel) advance() tea.Cmd {
	return func() tea.Msg {
		out, err := m.runner.Next(m.ctx, m.moduleID, m.level)
		return practiceAdvancedMsg{out: out, err: err}
	}
}

func (m *practiceModel) slotQuestion() bool {
	return m.view != nil && m.view.Current().InteractionType == domain.InteractionSlotBuild && m.builder != nil
}

func (m *practiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case practiceLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.view = msg.view
		m.builder = nil
		q := m.view.Current()
		if q.InteractionType == domain.InteractionSlotBuild {
			if task, ok := leveldata.TaskForQuestion(m.level, q.QuestionNumber); ok {
				m.builder = newSlotBuilder(task)
			}
		}
		return m, nil

	case practiceCheckedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.view.Session = msg.res.Session
		m.feedback = formatter.FormatCheckResult(msg.res)
		return m, nil

	case practiceAdvancedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		switch msg.out.Status {
		case domain.OutcomePassed:
			m.feedback = formatter.FormatNextOutcome(msg.out)
			m.finished = true
			return m, nil
		case domain.OutcomeRetry:
			m.feedback = formatter.FormatNextOutcome(msg.out)
		default:
			m.feedback = ""
		}
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *practiceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.view == nil || m.finished {
		return m, nil
	}

	if key.Matches(msg, m.keys.Next) {
		return m, m.advance()
	}

	if m.slotQuestion() {
		switch {
		case key.Matches(msg, m.keys.NextSlot):
			m.builder.moveSlot(1)
		case key.Matches(msg, m.keys.PrevSlot):
			m.builder.moveSlot(-1)
		case key.Matches(msg, m.keys.NextWord):
			m.builder.cycleWord(1)
		case key.Matches(msg, m.keys.PrevWord):
			m.builder.cycleWord(-1)
		case key.Matches(msg, m.keys.Check):
			return m, m.check(service.CheckAnswerRequest{
				QuestionNumber: m.view.Current().QuestionNumber,
				TaskID:         m.builder.task.ID,
				Selection:      m.builder.selection(),
			})
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Correct):
		return m, m.check(service.CheckAnswerRequest{QuestionNumber: m.view.Current().QuestionNumber, IsCorrect: true})
	case key.Matches(msg, m.keys.Incorrect):
		return m, m.check(service.CheckAnswerRequest{QuestionNumber: m.view.Current().QuestionNumber})
	}
	return m, nil
}

func (m *practiceModel) helpBindings() []key.Binding {
	switch {
	case m.finished:
		return []key.Binding{m.keys.Quit}
	case m.slotQuestion():
		return []key.Binding{m.keys.NextSlot, m.keys.NextWord, m.keys.Check, m.keys.Next, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Correct, m.keys.Incorrect, m.keys.Next, m.keys.Quit}
	}
}

func (m *practiceModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	if m.view == nil {
		if m.err != nil {
			return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
		}
		return formatter.Dim("Loading...") + "\n"
	}

	if !m.finished {
		b.WriteString(formatter.FormatPracticeView(m.view) + "\n")
		if m.slotQuestion() {
			b.WriteString(m.builder.render() + "\n")
		}
	}
	if m.feedback != "" {
		b.WriteString(m.feedback + "\n")
	}
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}

	hints := make([]string, 0, 5)
	for _, kb := range m.helpBindings() {
		hints = append(hints, formatter.Dim(kb.Help().Key+": "+kb.Help().Desc))
	}
	b.WriteString(strings.Join(hints, "  "))
	return b.String()
}
