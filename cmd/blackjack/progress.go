package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const maxBarWidth = 60

type progressMsg struct {
	done  int
	total int
}

type progressDoneMsg struct{}

// progressModel is the bubbletea model behind the sample progress bar
type progressModel struct {
	title  string
	bar    progress.Model
	done   int
	total  int
	cancel func()
}

func newProgressModel(title string, cancel func()) progressModel {
	return progressModel{
		title:  title,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxBarWidth)),
		cancel: cancel,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, maxBarWidth)
	case progressMsg:
		m.done = msg.done
		m.total = msg.total
	case progressDoneMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m progressModel) View() string {
	return fmt.Sprintf("Sampling %s\n%s %d/%d games\n", m.title, m.bar.ViewAs(m.percent()), m.done, m.total)
}

// progressBar reports sample progress through a bubbletea program
type progressBar struct {
	program  *tea.Program
	finished chan struct{}
	stopOnce sync.Once
}

func newProgressBar(title string, out io.Writer, cancel func()) *progressBar {
	return &progressBar{
		program:  tea.NewProgram(newProgressModel(title, cancel), tea.WithOutput(out)),
		finished: make(chan struct{}),
	}
}

// Start runs the program in the background.
func (p *progressBar) Start() {
	go func() {
		defer close(p.finished)
		_, _ = p.program.Run()
	}()
}

// OnGameComplete implements simulator.Reporter.
func (p *progressBar) OnGameComplete(done, total int) {
	p.program.Send(progressMsg{done: done, total: total})
}

// Stop quits the program and waits for the terminal to be restored.
func (p *progressBar) Stop() {
	p.stopOnce.Do(func() {
		p.program.Send(progressDoneMsg{})
		<-p.finished
	})
}
