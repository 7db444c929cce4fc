package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todolist-go/internal/loader"
	"github.com/nibzard/todolist-go/internal/todo"
)

type focus int

const (
	focusInput focus = iota
	focusList
	focusEdit
)

// Options configures a Model.
type Options struct {
	// List is the state the model drives. A fresh list is created when nil.
	List *todo.List
	// Loader supplies the seed data. It is called once, from Init.
	Loader loader.Loader
	// Logger is the diagnostic sink for seed failures.
	Logger *log.Logger
	Keys   *KeyMap
	Styles *Styles
}

// Model is the bubbletea model for the to-do list.
type Model struct {
	ctx    context.Context
	list   *todo.List
	loader loader.Loader
	logger *log.Logger
	keys   KeyMap
	styles Styles
	help   help.Model

	input     textinput.Model
	editInput textinput.Model
	editor    *todo.Editor

	cursor    int
	focus     focus
	requested bool
	loading   bool
	quitting  bool
}

type seedLoadedMsg struct {
	items []todo.Item
}

type seedFailedMsg struct {
	err error
}

// NewModel creates a model. The seed fetch runs with ctx.
func NewModel(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	list := opts.List
	if list == nil {
		list = todo.NewList()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keys := DefaultKeyMap
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.Prompt = "› "
	input.PromptStyle = styles.Prompt
	input.SetValue(list.PendingInput())
	input.Focus()

	editInput := textinput.New()
	editInput.Prompt = ""

	return &Model{
		ctx:       ctx,
		list:      list,
		loader:    opts.Loader,
		logger:    logger,
		keys:      keys,
		styles:    styles,
		help:      help.New(),
		input:     input,
		editInput: editInput,
		focus:     focusInput,
		loading:   opts.Loader != nil,
	}
}

// List returns the list the model drives.
func (m *Model) List() *todo.List {
	return m.list
}

// Editor returns the active edit session, or nil.
func (m *Model) Editor() *todo.Editor {
	return m.editor
}

// Loading reports whether the seed fetch is still outstanding.
func (m *Model) Loading() bool {
	return m.loading
}

// Rows returns the view model of the current list.
func (m *Model) Rows() []Row {
	return BuildRows(m.list.Items(), m.editor)
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchSeed())
}

// fetchSeed returns the one-shot seed command. Later calls return nil.
func (m *Model) fetchSeed() tea.Cmd {
	if m.loader == nil || m.requested {
		return nil
	}
	m.requested = true
	l, ctx := m.loader, m.ctx
	return func() tea.Msg {
		seed, err := l.Load(ctx)
		if err != nil {
			return seedFailedMsg{err: err}
		}
		return seedLoadedMsg{items: seed.Data}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case seedLoadedMsg:
		if m.quitting {
			return m, nil
		}
		m.loading = false
		if dropped := m.list.Seed(msg.items); dropped > 0 {
			m.logger.Warn("dropped seed items with empty or duplicate ids", "dropped", dropped)
		}
		m.logger.Debug("seed data loaded", "items", m.list.Len())
		m.clampCursor()
		// The seed replaced the collection, so an open edit may point at
		// an item that no longer exists.
		if m.editor != nil {
			m.logger.Debug("edit discarded by seed data", "id", m.editor.ItemID)
			return m, m.endEdit()
		}
		return m, nil
	case seedFailedMsg:
		if m.quitting {
			return m, nil
		}
		m.loading = false
		m.logger.Error("failed to load seed data", "err", msg.err)
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	case tea.KeyMsg:
		switch m.focus {
		case focusEdit:
			return m.updateEdit(msg)
		case focusList:
			return m.updateList(msg)
		default:
			return m.updateInput(msg)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusEdit:
		m.editInput, cmd = m.editInput.Update(msg)
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Submit):
		// The seed overwrites the collection, so nothing is added before it
		// resolves.
		if m.loading {
			return m, nil
		}
		if _, ok := m.list.AddItem(m.list.PendingInput()); ok {
			m.input.Reset()
			m.cursor = m.list.Len() - 1
		}
		return m, nil
	case key.Matches(msg, m.keys.FocusToggle), key.Matches(msg, m.keys.Cancel):
		return m, m.setFocus(focusList)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.list.SetPendingInput(m.input.Value())
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.FocusToggle):
		return m, m.setFocus(focusInput)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if item, ok := m.current(); ok {
			m.list.ToggleItem(item.ID)
		}
	case key.Matches(msg, m.keys.Edit):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		editor, ok := todo.BeginEdit(item)
		if !ok {
			return m, nil
		}
		m.editor = editor
		m.editInput.SetValue(item.Value)
		m.editInput.CursorEnd()
		return m, m.setFocus(focusEdit)
	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.current(); ok && m.list.DeleteItem(item.ID) {
			m.clampCursor()
		}
	}
	return m, nil
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Submit):
		if !m.editor.Commit(m.list) {
			return m, nil
		}
		return m, m.endEdit()
	case key.Matches(msg, m.keys.Cancel):
		return m, m.endEdit()
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.editor.SetBuffer(m.editInput.Value())
	return m, cmd
}

func (m *Model) endEdit() tea.Cmd {
	m.editor = nil
	m.editInput.Reset()
	return m.setFocus(focusList)
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.input.Blur()
	m.editInput.Blur()
	switch f {
	case focusInput:
		return m.input.Focus()
	case focusEdit:
		return m.editInput.Focus()
	}
	return nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) current() (todo.Item, bool) {
	items := m.list.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return todo.Item{}, false
	}
	return items[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := m.list.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := "Todo List"
	b.WriteString(m.styles.Title.Render(title) + "\n")
	b.WriteString(m.styles.Muted.Render(strings.Repeat("=", len(title))) + "\n\n")

	b.WriteString(m.input.View() + "\n\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("  Loading...") + "\n\n")
	} else {
		m.writeRows(&b)
	}

	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d items, %d done", m.list.Len(), m.list.CountDone())) + "\n\n")
	b.WriteString(m.help.ShortHelpView(m.activeBindings()) + "\n")
	return b.String()
}

func (m *Model) writeRows(b *strings.Builder) {
	rows := m.Rows()
	if len(rows) == 0 {
		b.WriteString(m.styles.Muted.Render("  Nothing to do.") + "\n\n")
		return
	}

	for i, row := range rows {
		cursor := "  "
		if m.focus != focusInput && i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}

		check := "[ ]"
		if row.Item.IsDone {
			check = "[x]"
		}

		var value string
		switch {
		case row.Editing:
			value = m.editInput.View() + " " + m.styles.Button.Render("[Cancel]")
		case row.Class == todo.DoneClass:
			value = m.styles.Done.Render(row.Item.Value)
		default:
			value = m.styles.Open.Render(row.Item.Value)
		}

		var button string
		switch {
		case row.UpdateButtonID != "":
			button = m.styles.Button.Render("[" + row.UpdateLabel + "]")
		case row.DeleteButtonID != "":
			button = m.styles.Button.Render("[Delete]")
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, check, value, button))
	}
	b.WriteString("\n")
}

func (m *Model) activeBindings() []key.Binding {
	switch m.focus {
	case focusEdit:
		return []key.Binding{m.keys.Submit, m.keys.Cancel}
	case focusList:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Edit, m.keys.Delete, m.keys.FocusToggle, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Submit, m.keys.FocusToggle, m.keys.ForceQuit}
	}
}
