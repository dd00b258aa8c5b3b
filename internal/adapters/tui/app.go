package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/cli/browser"

	"openproject/internal/adapters/tui/views"
	"openproject/internal/application"
	"openproject/internal/application/commands"
	"openproject/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPicker ViewState = iota
	ViewHelp
)

// Deps are the collaborators of the TUI
type Deps struct {
	Searcher *commands.Searcher
	Store    ports.CacheStore
	Launcher ports.Launcher
	Remotes  ports.RemoteResolver
	Mode     commands.MatchMode
	Logger   *log.Logger
}

// App is the main TUI application model
type App struct {
	store    ports.CacheStore
	launcher ports.Launcher
	remotes  ports.RemoteResolver
	logger   *log.Logger

	// Overridable for tests
	copyText func(string) error
	openURL  func(string) error

	state  ViewState
	picker *views.PickerModel
	help   *views.HelpModel
}

// NewApp creates a new TUI application
func NewApp(deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		store:    deps.Store,
		launcher: deps.Launcher,
		remotes:  deps.Remotes,
		logger:   logger,
		copyText: clipboard.WriteAll,
		openURL:  browser.OpenURL,
		state:    ViewPicker,
		picker:   views.NewPickerModel(deps.Searcher, deps.Mode),
		help:     views.NewHelpModel(deps.Searcher.Roots()),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.picker.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPickerMsg:
		a.state = ViewPicker
		return a, nil

	case views.OpenProjectMsg:
		return a, a.openProject(msg.Project)

	case views.CopyPathMsg:
		return a, a.copyPath(msg.Project)

	case views.OpenRemoteMsg:
		return a, a.openRemote(msg.Project)

	case launchFinishedMsg:
		return a, a.finishLaunch(msg)
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.picker.Update(msg)
	}
	return a, cmd
}

type launchFinishedMsg struct {
	open *commands.OpenCommand
	err  error
}

// openProject runs the resolved launcher. Terminal launchers take over the
// screen through ExecProcess; without any launcher the platform opener is used.
func (a *App) openProject(p application.Project) tea.Cmd {
	open := commands.NewOpenCommand(a.store, a.launcher, p.Path, "")
	project, command, err := open.Resolve()
	if err != nil {
		return statusErr(err)
	}

	cmd, err := a.launcher.Command(project.Path, command)
	if errors.Is(err, application.ErrNoLauncher) {
		return func() tea.Msg {
			return launchFinishedMsg{open: open, err: a.launcher.Open(project.Path, "")}
		}
	}
	if err != nil {
		return statusErr(&application.LaunchError{Path: project.Path, Command: command, Err: err})
	}

	a.logger.Debug("launching", "path", project.Path, "command", command)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			err = &application.LaunchError{Path: project.Path, Command: command, Err: err}
		}
		return launchFinishedMsg{open: open, err: err}
	})
}

func (a *App) finishLaunch(msg launchFinishedMsg) tea.Cmd {
	if msg.err != nil {
		a.logger.Warn("launch failed", "error", msg.err)
		return statusErr(msg.err)
	}

	project, err := msg.open.Record()
	if err != nil {
		return statusErr(err)
	}
	return tea.Batch(
		status(fmt.Sprintf("Opened %s (%d hits)", project.Name, project.Hits)),
		a.picker.Refresh(),
	)
}

func (a *App) copyPath(p application.Project) tea.Cmd {
	return func() tea.Msg {
		if err := a.copyText(p.Path); err != nil {
			return views.StatusMsg{Err: fmt.Errorf("failed to copy path: %w", err)}
		}
		return views.StatusMsg{Text: "Copied " + p.Path}
	}
}

func (a *App) openRemote(p application.Project) tea.Cmd {
	return func() tea.Msg {
		url, err := a.remotes.RemoteURL(p.Path)
		if err != nil {
			return views.StatusMsg{Err: err}
		}
		if err := a.openURL(url); err != nil {
			return views.StatusMsg{Err: fmt.Errorf("failed to open %s: %w", url, err)}
		}
		return views.StatusMsg{Text: "Opened " + url}
	}
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return views.StatusMsg{Text: text} }
}

func statusErr(err error) tea.Cmd {
	return func() tea.Msg { return views.StatusMsg{Err: err} }
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.picker.View()
	}
}
