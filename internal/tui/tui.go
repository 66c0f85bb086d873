// Package tui is the interactive single-screen todo list.
//
// The model never edits tasks itself: every key press becomes a store
// command, and the list is rebuilt from the store's grouped rows afterwards.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/taskstore"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options configure the screen.
type Options struct {
	ConfirmDelete bool // ask before deleting a single task
	Logger        *log.Logger
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
	modeConfirmClear
)

// rowItem adapts a grouped row to bubbles/list.Item
type rowItem struct {
	row taskstore.Row
}

func (i rowItem) FilterValue() string { return i.row.Task.Title }

// Custom delegate to control how rows render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(rowItem)
	if it.row.Header {
		fmt.Fprint(w, ui.HeaderLine(it.row.Group))
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+ui.TaskLine(it.row.Task))
}

var (
	addBind      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind     = key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit"))
	toggleBind   = key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done"))
	deleteBind   = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind     = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	clearBind    = key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete done"))
	allDoneBind  = key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "all done"))
	allTodoBind  = key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "all to do"))
	quitBind     = key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit"))
	upBind       = key.NewBinding(key.WithKeys("up", "k"))
	priorityBind = key.NewBinding(key.WithKeys("tab", "ctrl+p"), key.WithHelp("tab", "priority"))
)

// Model is the Bubble Tea model for the todo screen.
type Model struct {
	store *taskstore.Store
	log   *log.Logger
	opts  Options

	list list.Model
	mode mode

	// Inline add/edit form
	ti       textinput.Model // shared text input (used for add & edit)
	priority model.Priority  // priority chosen in the form
	editID   int             // task being edited
	formErr  string          // last validation error (shown in the form)

	// Pending confirmation
	pendingID    int
	pendingTitle string
	pendingCount int

	// Undo support (single-level, single delete only)
	undo *model.Snapshot

	status string // one-line feedback after an action
	width  int
	height int
}

// New builds the screen over store.
func New(store *taskstore.Store, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	bindings := func() []key.Binding {
		return []key.Binding{addBind, editBind, toggleBind, deleteBind, undoBind, clearBind, allDoneBind, allTodoBind}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		store:  store,
		log:    logger,
		opts:   opts,
		list:   l,
		ti:     ti,
		width:  80,
		height: 24,
	}
	m.resize()
	m.refresh(0)
	return m
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(store *taskstore.Store, opts Options) error {
	p := tea.NewProgram(New(store, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Store exposes the underlying store (read access for callers and tests).
func (m Model) Store() *taskstore.Store { return m.store }

// Status is the last feedback line.
func (m Model) Status() string { return m.status }

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeAdd, modeEdit:
		return m.updateForm(msg)
	case modeConfirmDelete, modeConfirmClear:
		return m.updateConfirm(msg)
	}

	km, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, quitBind):
		return m, tea.Quit
	case key.Matches(km, addBind):
		m.openForm(modeAdd, model.Task{Priority: model.Medium})
		return m, textinput.Blink
	case key.Matches(km, editBind):
		if t, ok := m.selectedTask(); ok {
			m.openForm(modeEdit, t)
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(km, toggleBind):
		m.toggle()
		return m, nil
	case key.Matches(km, deleteBind):
		m.requestDelete()
		return m, nil
	case key.Matches(km, undoBind):
		m.restore()
		return m, nil
	case key.Matches(km, clearBind):
		m.requestClear()
		return m, nil
	case key.Matches(km, allDoneBind):
		m.markAll(true)
		return m, nil
	case key.Matches(km, allTodoBind):
		m.markAll(false)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	dir := 1
	if key.Matches(km, upBind) {
		dir = -1
	}
	m.skipHeader(dir)
	return m, cmd
}

// ---------- form (add & edit) ----------

func (m *Model) openForm(md mode, t model.Task) {
	m.mode = md
	m.formErr = ""
	m.status = ""
	m.editID = t.ID
	m.priority = t.Priority
	m.ti.SetValue(t.Title)
	m.ti.CursorEnd()
	if md == modeAdd {
		m.ti.Placeholder = "New task title..."
	} else {
		m.ti.Placeholder = "Edit task title..."
	}
	m.ti.Focus()
	m.resize()
}

func (m *Model) closeForm() {
	m.mode = modeBrowse
	m.formErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case km.Type == tea.KeyEnter:
			m.submitForm()
			return m, nil
		case km.Type == tea.KeyEsc:
			m.closeForm()
			return m, nil
		case key.Matches(km, priorityBind):
			m.priority = m.priority.Next()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) submitForm() {
	var (
		t   model.Task
		err error
	)
	if m.mode == modeAdd {
		t, err = m.store.Add(m.ti.Value(), m.priority)
	} else {
		t, err = m.store.Edit(m.editID, m.ti.Value(), m.priority)
	}
	if err != nil {
		if errors.Is(err, taskstore.ErrEmptyTitle) {
			m.formErr = "Title cannot be empty"
			return
		}
		// Stale edit target; nothing left to edit.
		m.closeForm()
		m.fail(err)
		return
	}
	if m.mode == modeAdd {
		m.status = "Task added"
	} else {
		m.status = "Task updated"
	}
	m.closeForm()
	m.refresh(t.ID)
}

// ---------- confirmations ----------

func (m *Model) requestDelete() {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	if !m.opts.ConfirmDelete {
		m.deleteTask(t.ID)
		return
	}
	m.mode = modeConfirmDelete
	m.pendingID, m.pendingTitle = t.ID, t.Title
	m.status = ""
}

func (m *Model) requestClear() {
	n := m.store.Stats().Completed
	if n == 0 {
		m.status = "No completed tasks to delete"
		return
	}
	m.mode = modeConfirmClear
	m.pendingCount = n
	m.status = ""
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "y", "Y", "enter":
		if m.mode == modeConfirmDelete {
			m.deleteTask(m.pendingID)
		} else {
			m.clearDone()
		}
		m.mode = modeBrowse
	case "n", "N", "esc", "q":
		m.mode = modeBrowse
		m.status = "Cancelled"
	}
	return m, nil
}

// ---------- store commands ----------

func (m *Model) toggle() {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	t, err := m.store.Toggle(t.ID)
	if err != nil {
		m.fail(err)
		return
	}
	m.status = ""
	m.refresh(t.ID)
}

func (m *Model) deleteTask(id int) {
	snap, err := m.store.Delete(id)
	if err != nil {
		m.fail(err)
		return
	}
	m.undo = &snap
	m.status = "Task deleted (u to undo)"
	m.refresh(0)
}

func (m *Model) restore() {
	if m.undo == nil {
		m.status = "Nothing to undo"
		return
	}
	t, err := m.store.Restore(*m.undo)
	m.undo = nil
	if err != nil {
		m.fail(err)
		return
	}
	m.status = "Task restored"
	m.refresh(t.ID)
}

func (m *Model) clearDone() {
	n := m.store.DeleteCompleted()
	m.status = fmt.Sprintf("%d task(s) deleted", n)
	m.refresh(0)
}

func (m *Model) markAll(done bool) {
	if m.store.Len() == 0 {
		m.status = "No tasks available"
		return
	}
	sel, _ := m.selectedTask()
	n := m.store.MarkAll(done)
	if done {
		m.status = fmt.Sprintf("All tasks marked done (%d changed)", n)
	} else {
		m.status = fmt.Sprintf("All tasks marked to do (%d changed)", n)
	}
	m.refresh(sel.ID)
}

func (m *Model) fail(err error) {
	m.log.Warn("command failed", "err", err)
	if errors.Is(err, taskstore.ErrNotFound) {
		m.status = "That task no longer exists"
	} else {
		m.status = err.Error()
	}
	m.refresh(0)
}

// ---------- list plumbing ----------

// refresh rebuilds the list from the store and selects task id when present.
func (m *Model) refresh(selectID int) {
	rows := m.store.Rows()
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = rowItem{row: r}
	}
	prev := m.list.Index()
	m.list.SetItems(items)
	m.list.Title = ui.CountsTitle(m.store.Stats())
	if len(items) == 0 {
		m.list.Select(0)
		return
	}

	target := min(prev, len(items)-1)
	for i, r := range rows {
		if !r.Header && selectID != 0 && r.Task.ID == selectID {
			target = i
			break
		}
	}
	m.list.Select(target)
	m.skipHeader(1)
}

// skipHeader moves the cursor off header rows, in dir first, then back.
func (m *Model) skipHeader(dir int) {
	items := m.list.Items()
	isHeader := func(i int) bool {
		it, ok := items[i].(rowItem)
		return ok && it.row.Header
	}
	start := m.list.Index()
	for _, d := range []int{dir, -dir} {
		for i := start; i >= 0 && i < len(items); i += d {
			if !isHeader(i) {
				if i != start {
					m.list.Select(i)
				}
				return
			}
		}
	}
}

func (m Model) selectedTask() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(rowItem)
	if !ok || it.row.Header {
		return model.Task{}, false
	}
	return it.row.Task, true
}

func (m *Model) resize() {
	reserved := 4 // frame + stats line
	if m.mode != modeBrowse {
		reserved += 4
	}
	m.list.SetSize(max(m.width-4, 20), max(m.height-reserved, 3))
}

func (m Model) View() string {
	var b strings.Builder
	if m.store.Len() == 0 {
		b.WriteString(ui.CountsTitle(m.store.Stats()))
		b.WriteString("\n\n")
		b.WriteString(mutedText("No tasks yet. Press a to add one, q to quit."))
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(mutedText(ui.StatsLine(m.store.Stats())))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusText(m.status))
	}

	switch m.mode {
	case modeAdd, modeEdit:
		title := "Add task"
		if m.mode == modeEdit {
			title = "Edit task"
		}
		if m.formErr != "" {
			title += " - " + errorText(m.formErr)
		}
		prio := fmt.Sprintf("Priority: %s  %s", ui.PriorityLabel(m.priority), mutedText("(tab to change)"))
		b.WriteString("\n")
		b.WriteString(inputBox(title + "\n" + m.ti.View() + "\n" + prio))
	case modeConfirmDelete:
		b.WriteString("\n")
		b.WriteString(inputBox(fmt.Sprintf("Delete %q? (y/n)", m.pendingTitle)))
	case modeConfirmClear:
		b.WriteString("\n")
		b.WriteString(inputBox(fmt.Sprintf("Delete %d completed task(s)? This cannot be undone. (y/n)", m.pendingCount)))
	}
	return panelString(b.String())
}
