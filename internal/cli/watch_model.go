package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirapatk/clockwise/internal/cli/formatter"
	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/sirapatk/clockwise/internal/timeline"
)

// The view re-renders every second so an open session visibly grows,
// but only the store fetch needs I/O; every other frame recomputes the
// pure timeline from the cached snapshot with a fresh now.
const refetchInterval = time.Minute

type watchTickMsg time.Time

type dayLoadedMsg struct {
	events []domain.TimeEntryEvent
	err    error
}

type clockedMsg struct {
	event *domain.TimeEntryEvent
	err   error
}

type watchKeymap struct {
	CheckIn  key.Binding
	CheckOut key.Binding
	Break    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func newWatchKeymap() watchKeymap {
	return watchKeymap{
		CheckIn:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "check in")),
		CheckOut: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "check out")),
		Break:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "break")),
		Back:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "return")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type watchModel struct {
	app      *App
	workerID string
	keys     watchKeymap

	events    []domain.TimeEntryEvent
	now       time.Time
	lastFetch time.Time
	err       error
	quitting  bool
}

func newWatchModel(app *App, workerID string) watchModel {
	return watchModel{
		app:      app,
		workerID: workerID,
		keys:     newWatchKeymap(),
		now:      time.Now().UTC(),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.fetchDay(), watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) fetchDay() tea.Cmd {
	app, workerID := m.app, m.workerID
	return func() tea.Msg {
		events, err := app.Timesheet.DayEvents(context.Background(), workerID, time.Now().UTC())
		return dayLoadedMsg{events: events, err: err}
	}
}

func (m watchModel) clock(action domain.EntryAction) tea.Cmd {
	app, workerID := m.app, m.workerID
	return func() tea.Msg {
		e, err := app.Timesheet.Clock(context.Background(), workerID, action, app.Config.DefaultMode, nil)
		return clockedMsg{event: e, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case watchTickMsg:
		m.now = time.Time(msg).UTC()
		if m.now.Sub(m.lastFetch) >= refetchInterval {
			return m, tea.Batch(m.fetchDay(), watchTick())
		}
		return m, watchTick()

	case dayLoadedMsg:
		m.lastFetch = time.Now().UTC()
		if msg.err != nil {
			// Show a zero state rather than stale data.
			m.err = msg.err
			m.events = nil
			return m, nil
		}
		m.err = nil
		m.events = msg.events
		return m, nil

	case clockedMsg:
		if msg.err != nil {
			// The event was not recorded; keep the snapshot as is.
			m.err = msg.err
			return m, nil
		}
		// The persisted event is authoritative; appending it to the
		// cached snapshot matches what a refetch would return.
		m.err = nil
		m.events = append(m.events, *msg.event)
		m.now = time.Now().UTC()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.CheckIn):
			return m, m.clock(domain.ActionCheckIn)
		case key.Matches(msg, m.keys.CheckOut):
			return m, m.clock(domain.ActionCheckOut)
		case key.Matches(msg, m.keys.Break):
			return m, m.clock(domain.ActionBreakStart)
		case key.Matches(msg, m.keys.Back):
			return m, m.clock(domain.ActionBreakEnd)
		}
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	report := timeline.BuildDayReport(m.events, m.now)
	status := timeline.CurrentStatus(m.events)

	view := formatter.FormatDayReport(&report, status, m.events, m.now) + "\n"
	if m.err != nil {
		view += formatter.StyleRed.Render("✖ "+m.err.Error()) + "\n"
	}
	view += formatter.Dim("i check in · o check out · b break · r return · q quit") + "\n"
	return view
}
