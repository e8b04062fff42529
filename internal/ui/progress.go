// Package ui renders check progress in the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"cisniff/internal/driver"
)

// maxActive bounds the number of in-flight files listed under the header.
const maxActive = 6

type progressModel struct {
	title    string
	events   <-chan driver.Event
	spinner  spinner.Model
	prog     progress.Model
	status   map[string]driver.Status
	active   []string
	total    int
	finished int
	cached   int
	errors   int
	warnings int
	width    int
	done     bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders check progress.
// Files are learned from their "queued" events; the model quits when
// events is closed.
func NewProgressModel(title string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76 // Default width

	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		status:  make(map[string]driver.Status),
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if m.total == 0 && !m.done {
		return m.spinner.View() + " " + m.title + "\n"
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	counter := fmt.Sprintf("%d/%d files", m.finished, m.total)
	var header string
	if m.done {
		header = fmt.Sprintf("done: %s (%s)", m.title, counter)
	} else {
		header = fmt.Sprintf("%s %s (%s)", m.spinner.View(), m.title, counter)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	nameWidth := max(m.width-16, 20)
	for i, path := range m.active {
		if i == maxActive {
			fmt.Fprintf(&b, "  %12s %d more\n", "", len(m.active)-maxActive)
			break
		}
		status := styleStatus(driver.StatusWorking).Render(fmt.Sprintf("%12s", driver.StatusWorking))
		fmt.Fprintf(&b, "  %s %s\n", status, truncate(path, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	b.WriteString(m.summary())
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) summary() string {
	errs := styleStatus(driver.StatusFailed).Render(fmt.Sprintf("%d errors", m.errors))
	warns := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(fmt.Sprintf("%d warnings", m.warnings))
	out := errs + ", " + warns
	if m.cached > 0 {
		out += fmt.Sprintf(", %d cached", m.cached)
	}
	return out
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	prev, known := m.status[ev.File]
	if !known {
		m.total++
	}
	if prev == driver.StatusWorking {
		m.removeActive(ev.File)
	}
	m.status[ev.File] = ev.Status

	switch {
	case ev.Status == driver.StatusWorking:
		m.active = append(m.active, ev.File)
	case ev.Finished():
		m.finished++
		m.errors += ev.Errors
		m.warnings += ev.Warnings
		if ev.Status == driver.StatusCached {
			m.cached++
		}
	}

	if m.total == 0 {
		return nil
	}
	return m.prog.SetPercent(float64(m.finished) / float64(m.total))
}

func (m *progressModel) removeActive(file string) {
	for i, path := range m.active {
		if path == file {
			m.active = append(m.active[:i], m.active[i+1:]...)
			return
		}
	}
}

func styleStatus(status driver.Status) lipgloss.Style {
	switch status {
	case driver.StatusDone, driver.StatusCached:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case driver.StatusFailed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case driver.StatusWorking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
