package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"openproject/internal/adapters/tui/styles"
	"openproject/internal/application"
	"openproject/internal/application/commands"
)

// Finder runs keyword queries against the project cache
type Finder interface {
	Search(ctx context.Context, keyword string, mode commands.MatchMode) ([]application.Project, error)
	Rescan(ctx context.Context, keyword string, mode commands.MatchMode) ([]application.Project, error)
}

// PickerKeyMap defines key bindings for the picker view
type PickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Open     key.Binding
	Copy     key.Binding
	Remote   key.Binding
	Rescan   key.Binding
	Help     key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "next page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy path"),
	),
	Remote: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "repo page"),
	),
	Rescan: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "rescan"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// OpenProjectMsg asks the app to launch a project
type OpenProjectMsg struct {
	Project application.Project
}

// CopyPathMsg asks the app to copy a project path to the clipboard
type CopyPathMsg struct {
	Project application.Project
}

// OpenRemoteMsg asks the app to open the repository page of a project
type OpenRemoteMsg struct {
	Project application.Project
}

type resultsMsg struct {
	seq     int
	results []application.Project
	err     error
}

// PickerModel is the interactive project search view
type PickerModel struct {
	ViewState
	finder    Finder
	mode      commands.MatchMode
	input     textinput.Model
	results   []application.Project
	pager     *Paginator
	query     string
	seq       int
	cancel    context.CancelFunc
	searching bool
}

// NewPickerModel creates a new picker view model
func NewPickerModel(finder Finder, mode commands.MatchMode) *PickerModel {
	input := textinput.New()
	input.Placeholder = "Search projects..."
	input.Prompt = "› "
	input.Focus()

	return &PickerModel{
		finder: finder,
		mode:   mode,
		input:  input,
		pager:  NewPaginator(10),
	}
}

// Init loads the initial list
func (m *PickerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.search("", false))
}

// Refresh reruns the current query against the cache
func (m *PickerModel) Refresh() tea.Cmd {
	return m.search(m.query, false)
}

// Results returns the ranked projects currently shown
func (m *PickerModel) Results() []application.Project {
	return m.results
}

// Selected returns the project under the cursor
func (m *PickerModel) Selected() (application.Project, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.results) {
		return application.Project{}, false
	}
	return m.results[i], true
}

// Update handles messages for the picker view
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case resultsMsg:
		// A newer query superseded this one.
		if msg.seq != m.seq {
			return m, nil
		}
		m.searching = false
		m.cancel = nil
		if msg.err != nil {
			if !errors.Is(msg.err, context.Canceled) {
				m.SetMessage(msg.err.Error(), true)
			}
			return m, nil
		}
		m.results = msg.results
		m.pager.SetTotal(len(msg.results))
		return m, nil

	case StatusMsg:
		if msg.Err != nil {
			m.SetMessage(msg.Err.Error(), true)
		} else {
			m.SetMessage(msg.Text, false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, PickerKeys.Quit):
		m.stop()
		return m, tea.Quit

	case key.Matches(msg, PickerKeys.Clear):
		if m.input.Value() == "" {
			m.stop()
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.ClearMessage()
		return m, m.search("", false)

	case key.Matches(msg, PickerKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, PickerKeys.Up):
		m.pager.CursorUp()
		return m, nil

	case key.Matches(msg, PickerKeys.Down):
		m.pager.CursorDown()
		return m, nil

	case key.Matches(msg, PickerKeys.PrevPage):
		m.pager.PrevPage()
		return m, nil

	case key.Matches(msg, PickerKeys.NextPage):
		m.pager.NextPage()
		return m, nil

	case key.Matches(msg, PickerKeys.Rescan):
		m.SetMessage("Rescanning workspace...", false)
		return m, m.search(m.query, true)

	case key.Matches(msg, PickerKeys.Open):
		return m, m.withSelected(func(p application.Project) tea.Msg { return OpenProjectMsg{Project: p} })

	case key.Matches(msg, PickerKeys.Copy):
		return m, m.withSelected(func(p application.Project) tea.Msg { return CopyPathMsg{Project: p} })

	case key.Matches(msg, PickerKeys.Remote):
		return m, m.withSelected(func(p application.Project) tea.Msg { return OpenRemoteMsg{Project: p} })
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.query {
		m.ClearMessage()
		return m, tea.Batch(cmd, m.search(q, false))
	}
	return m, cmd
}

func (m *PickerModel) withSelected(fn func(application.Project) tea.Msg) tea.Cmd {
	p, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg { return fn(p) }
}

// search cancels any query still running and starts a new one
func (m *PickerModel) search(query string, fresh bool) tea.Cmd {
	m.stop()
	m.seq++
	m.query = query
	m.searching = true

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	seq, mode, finder := m.seq, m.mode, m.finder

	return func() tea.Msg {
		defer cancel()
		var (
			results []application.Project
			err     error
		)
		if fresh {
			results, err = finder.Rescan(ctx, query, mode)
		} else {
			results, err = finder.Search(ctx, query, mode)
		}
		return resultsMsg{seq: seq, results: results, err: err}
	}
}

func (m *PickerModel) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// View renders the picker view
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Open Project"))
	b.WriteString("\n\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case len(m.results) == 0 && m.searching:
		b.WriteString(styles.MutedText.Render("Searching..."))
		b.WriteString("\n")
	case len(m.results) == 0:
		b.WriteString(styles.MutedText.Render("No projects found"))
		b.WriteString("\n")
	default:
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(RenderProject(m.results[i], i == m.pager.Cursor(), m.Width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d projects • page %d/%d",
			len(m.results), m.pager.CurrentPage(), m.pager.TotalPages())))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(PickerKeys.Open, PickerKeys.Copy, PickerKeys.Rescan, PickerKeys.Help, PickerKeys.Quit))

	return styles.App.Render(b.String())
}

// SetSize updates the view dimensions and the rows per page
func (m *PickerModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(m.pageSize())
}

// pageSize fits the result rows between the input box and the footer
func (m *PickerModel) pageSize() int {
	if m.Height == 0 {
		return 10
	}
	return max(m.Height-14, 3)
}
