package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tower/internal/core"
)

// maxCachedStyles bounds the style cache; photographic assets produce many
// distinct color pairs.
const maxCachedStyles = 4096

type colorPair struct {
	fg, bg core.Color
}

// Renderer converts Screen buffers to styled strings.
// It is not safe for concurrent use; each program owns one.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[colorPair]lipgloss.Style
}

// NewRenderer creates a renderer bound to lg. A nil lg uses the process-wide
// default renderer; SSH sessions pass their own.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	return &Renderer{
		lg:     lipglossFor(lg),
		styles: make(map[colorPair]lipgloss.Style),
	}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			pair := colorPair{start.FG, start.BG}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != pair.fg || cell.BG != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(pair).Render(run.String()))
		}
	}
	return sb.String()
}

func (r *Renderer) style(p colorPair) lipgloss.Style {
	if st, ok := r.styles[p]; ok {
		return st
	}
	if len(r.styles) >= maxCachedStyles {
		clear(r.styles)
	}

	st := r.lg.NewStyle()
	if p.fg != core.ColorNone {
		st = st.Foreground(lipgloss.Color(p.fg.Hex()))
	}
	if p.bg != core.ColorNone {
		st = st.Background(lipgloss.Color(p.bg.Hex()))
	}
	r.styles[p] = st
	return st
}

// lipglossFor returns lg or the default renderer.
func lipglossFor(lg *lipgloss.Renderer) *lipgloss.Renderer {
	if lg == nil {
		return lipgloss.DefaultRenderer()
	}
	return lg
}
