package progress

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))

type tickMsg time.Time

type doneMsg struct{}

type barModel struct {
	label   string
	total   int
	counter *Counter
	bar     progress.Model
	count   int64
	done    bool
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m barModel) Init() tea.Cmd { return tick() }

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.count = m.counter.Count()
		return m, tick()
	case doneMsg:
		m.count = m.counter.Count()
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m barModel) View() string {
	pct := 1.0
	if m.total > 0 {
		pct = float64(m.count) / float64(m.total)
	}
	if pct > 1 {
		pct = 1
	}
	view := fmt.Sprintf("%s %s %s\n",
		labelStyle.Render(m.label),
		m.bar.ViewAs(pct),
		labelStyle.Render(fmt.Sprintf("%d/%d points", m.count, m.total)))
	if m.done {
		return ""
	}
	return view
}

// Bar renders a live progress bar for a computation of total points tracked
// by c. It blocks until done is closed. The computation itself runs in the
// caller's goroutines; Bar only polls the counter.
func Bar(label string, total int, c *Counter, done <-chan struct{}) error {
	m := barModel{
		label:   label,
		total:   total,
		counter: c,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
	p := tea.NewProgram(m)
	go func() {
		<-done
		p.Send(doneMsg{})
	}()
	_, err := p.Run()
	return err
}
