// Package tui is the terminal front end for the tasks resource. All state
// lives on the server: every key press that changes a task issues a request
// through the restclient gateway and the list is only updated from the
// server's response.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OreBoia/my-rest-app/client/restclient"
	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
)

// requestTimeout bounds each API exchange started from the TUI.
const requestTimeout = 5 * time.Second

// taskItem adapts a task to bubbles/list.Item.
type taskItem struct {
	task tasksrepo.Task
}

func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string { return i.task.Description }
func (i taskItem) FilterValue() string { return i.task.Title }

// Messages produced by API commands.
type (
	tasksLoadedMsg struct{ tasks []tasksrepo.Task }
	taskCreatedMsg struct{ task tasksrepo.Task }
	taskToggledMsg struct{ task tasksrepo.Task }
	taskDeletedMsg struct{ task tasksrepo.Task }
	apiErrMsg      struct{ err error }
)

type sessionState int

const (
	stateLoading sessionState = iota
	stateReady
	stateFailed
)

// Model is the Bubble Tea model for the task list.
type Model struct {
	client *restclient.Client

	state sessionState
	list  list.Model
	spin  spinner.Model

	// inline add
	adding bool
	input  textinput.Model

	// last API error, cleared on the next successful exchange
	errMsg string

	width  int
	height int
}

// New builds the model around a configured gateway client.
func New(client *restclient.Client) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Tasks")
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("task", "tasks")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	reloadBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	extra := func() []key.Binding {
		return []key.Binding{addBind, toggleBind, deleteBind, reloadBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New task title..."
	ti.CharLimit = 200

	return Model{
		client: client,
		state:  stateLoading,
		list:   l,
		spin:   sp,
		input:  ti,
	}
}

// itemDelegate renders one task per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}

	box := mutedStyle.Render(boxUnchecked)
	text := it.task.Title
	if it.task.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadTasks())
}

// API commands. Each runs the exchange off the UI loop and reports back as
// a message.

func (m Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tasks, err := m.client.Tasks().List(ctx)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m Model) createTask(title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		task, err := m.client.Tasks().Create(ctx, tasksrepo.NewTask{Title: title})
		if err != nil {
			return apiErrMsg{err: err}
		}
		return taskCreatedMsg{task: task}
	}
}

func (m Model) toggleTask(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		task, err := m.client.Tasks().Toggle(ctx, id)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return taskToggledMsg{task: task}
	}
}

func (m Model) deleteTask(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		task, err := m.client.Tasks().Delete(ctx, id)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return taskDeletedMsg{task: task}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-2, m.listHeight())
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tasksLoadedMsg:
		items := make([]list.Item, 0, len(msg.tasks))
		for _, t := range msg.tasks {
			items = append(items, taskItem{task: t})
		}
		m.list.SetItems(items)
		m.state = stateReady
		m.errMsg = ""
		return m, nil

	case taskCreatedMsg:
		m.list.InsertItem(len(m.list.Items()), taskItem{task: msg.task})
		m.errMsg = ""
		return m, nil

	case taskToggledMsg:
		if i := m.indexOf(msg.task.ID); i >= 0 {
			m.list.SetItem(i, taskItem{task: msg.task})
		}
		m.errMsg = ""
		return m, nil

	case taskDeletedMsg:
		if i := m.indexOf(msg.task.ID); i >= 0 {
			m.list.RemoveItem(i)
		}
		m.errMsg = ""
		return m, nil

	case apiErrMsg:
		if m.state == stateLoading {
			m.state = stateFailed
		}
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		switch msg.String() {
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				m.errMsg = "title cannot be empty"
				return m, nil
			}
			m.adding = false
			m.input.SetValue("")
			m.input.Blur()
			m.list.SetSize(m.width-2, m.listHeight())
			return m, m.createTask(title)
		case "esc":
			m.adding = false
			m.input.SetValue("")
			m.input.Blur()
			m.list.SetSize(m.width-2, m.listHeight())
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	// while filtering, keys belong to the list
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.state = stateLoading
		return m, tea.Batch(m.spin.Tick, m.loadTasks())
	case "a":
		if m.state != stateReady {
			return m, nil
		}
		m.adding = true
		m.input.SetValue("")
		m.input.Focus()
		m.list.SetSize(m.width-2, m.listHeight())
		return m, textinput.Blink
	case " ":
		if it, ok := m.selected(); ok {
			return m, m.toggleTask(it.task.ID)
		}
		return m, nil
	case "d":
		if it, ok := m.selected(); ok {
			return m, m.deleteTask(it.task.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) selected() (taskItem, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.list.Items()) {
		return taskItem{}, false
	}
	it, ok := m.list.Items()[i].(taskItem)
	return it, ok
}

func (m Model) indexOf(id int) int {
	for i, item := range m.list.Items() {
		if it, ok := item.(taskItem); ok && it.task.ID == id {
			return i
		}
	}
	return -1
}

func (m Model) listHeight() int {
	h := m.height - 4
	if m.adding {
		h = m.height - 7
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return fmt.Sprintf("\n  %s loading tasks...\n", m.spin.View())
	case stateFailed:
		return "\n  " + errorStyle.Render("could not load tasks: "+m.errMsg) +
			"\n\n  " + helpStyle.Render("r reload • q quit") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.list.View())

	if m.adding {
		bar := "Add task"
		if m.errMsg != "" {
			bar += " — " + errorStyle.Render(m.errMsg)
		}
		b.WriteString("\n" + inputBarStyle.Render(bar+"\n"+m.input.View()))
	} else if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg))
	}

	return b.String()
}
