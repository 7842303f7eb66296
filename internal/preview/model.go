// ABOUTME: Bubble Tea model animating the spinner ring in the terminal
// ABOUTME: Ticks at a fixed FPS; q, esc, or ctrl+c quits

package preview

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/spinveil/internal/raster"
	"github.com/mauromedda/spinveil/pkg/overlay"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Run when stdout is not a terminal.
var ErrNotTerminal = errors.New("preview needs an interactive terminal")

type tickMsg time.Time

// OptionsMsg restyles a running preview, e.g. after the settings files change.
type OptionsMsg overlay.Options

// Model animates the spinner and centers it in the window.
type Model struct {
	interval time.Duration
	elapsed  time.Duration
	width    int
	height   int
	label    string
	spinner  lipgloss.Style
	panel    lipgloss.Style
}

// New creates a preview model for opts at fps frames per second.
func New(opts overlay.Options, fps int, label string) Model {
	if fps <= 0 {
		fps = 1
	}
	m := Model{
		interval: time.Second / time.Duration(fps),
		label:    label,
	}
	return m.restyle(opts)
}

func (m Model) restyle(opts overlay.Options) Model {
	m.spinner = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(opts.SpinnerColor)))
	m.panel = lipgloss.NewStyle().
		Background(lipgloss.Color(hexColor(opts.BackgroundColor))).
		Padding(1, 2)
	return m
}

// hexColor converts a CSS color to the #rrggbb form lipgloss understands.
// Unparseable colors become "" (no color).
func hexColor(css string) string {
	c, ok := raster.ParseColor(css)
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the animation clock.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update advances the animation, tracks the window size, and handles quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.elapsed = (m.elapsed + m.interval) % overlay.CycleDuration
		return m, m.tick()
	case OptionsMsg:
		return m.restyle(overlay.Options(msg)), nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the ring inside the background panel, label underneath.
func (m Model) View() string {
	lines := Ring(m.elapsed, func(g string) string { return m.spinner.Render(g) })
	if m.label != "" {
		lines = append(lines, "", center(m.label, ringCols))
	}
	body := m.panel.Render(strings.Join(lines, "\n"))

	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Elapsed returns the animation position within the current cycle.
func (m Model) Elapsed() time.Duration {
	return m.elapsed
}

// Run shows the preview until the user quits. Options received on updates
// restyle the running preview; updates may be nil.
func Run(opts overlay.Options, fps int, label string, updates <-chan overlay.Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	p := tea.NewProgram(New(opts, fps, label), tea.WithAltScreen())
	done := make(chan struct{})
	defer close(done)
	if updates != nil {
		go func() {
			for {
				select {
				case <-done:
					return
				case o, ok := <-updates:
					if !ok {
						return
					}
					p.Send(OptionsMsg(o))
				}
			}
		}()
	}
	_, err := p.Run()
	return err
}
