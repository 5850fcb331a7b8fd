package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

const (
	segmentRune = '•'
	appleRune   = '•'
)

// Thick box drawing runes for the frame border.
const (
	borderTopLeft     = '┏'
	borderTopRight    = '┓'
	borderBottomLeft  = '┗'
	borderBottomRight = '┛'
	borderHorizontal  = '━'
	borderVertical    = '┃'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Frame holds everything needed to draw one screen.
type Frame struct {
	Snapshot game.Snapshot
	Width    int
	Height   int
	Keys     KeyMap
	Best     int
	ShowBest bool
}

// Draw paints the frame for the snapshot's status into s.
func Draw(s *core.Screen, f Frame) {
	s.Resize(f.Width, f.Height)
	s.Clear()
	drawBorder(s)

	snap := f.Snapshot
	switch snap.Status {
	case game.StatusMenu:
		s.DrawTextCentered(0, " Snake Game ", core.ColorDefault)
		if f.ShowBest {
			s.DrawTextCentered(s.Height()/2, fmt.Sprintf(" Best score: %d ", f.Best), core.ColorGray)
		}
		drawInstructions(s, s.Height()-1, f.Keys.Play, f.Keys.Quit)

	case game.StatusPlaying:
		s.DrawTextCentered(0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorDefault)
		drawField(s, snap)

	case game.StatusGameOver:
		s.DrawTextCentered(0, " Game over ", core.ColorDefault)
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf(" Your score was: %d ", snap.Score), core.ColorDefault)
		again := key.NewBinding(
			key.WithKeys(f.Keys.Play.Keys()...),
			key.WithHelp(f.Keys.Play.Help().Key, "Play Again"),
		)
		drawInstructions(s, s.Height()-1, again, f.Keys.Menu, f.Keys.Quit)
	}
}

// View renders the frame to a styled string.
func View(f Frame) string {
	s := core.NewScreen(f.Width, f.Height)
	Draw(s, f)
	return RenderScreen(s)
}

// drawBorder outlines the screen with a thick border.
func drawBorder(s *core.Screen) {
	w, h := s.Width(), s.Height()
	if w < 2 || h < 2 {
		return
	}
	for x := 1; x < w-1; x++ {
		s.Set(x, 0, borderHorizontal, core.ColorDefault)
		s.Set(x, h-1, borderHorizontal, core.ColorDefault)
	}
	for y := 1; y < h-1; y++ {
		s.Set(0, y, borderVertical, core.ColorDefault)
		s.Set(w-1, y, borderVertical, core.ColorDefault)
	}
	s.Set(0, 0, borderTopLeft, core.ColorDefault)
	s.Set(w-1, 0, borderTopRight, core.ColorDefault)
	s.Set(0, h-1, borderBottomLeft, core.ColorDefault)
	s.Set(w-1, h-1, borderBottomRight, core.ColorDefault)
}

// drawField paints the apple and the snake inside the border. Points are
// offset by one cell for the border; anything outside the inner area is
// clipped.
func drawField(s *core.Screen, snap game.Snapshot) {
	offset := core.Point{X: 1, Y: 1}
	inside := func(p core.Point) bool {
		return p.X >= 0 && p.Y >= 0 &&
			int(p.X)+1 < s.Width()-1 && int(p.Y)+1 < s.Height()-1
	}

	if snap.HasApple && inside(snap.Apple) {
		s.SetPoint(snap.Apple.Add(offset), appleRune, core.ColorRed)
	}

	for i := len(snap.Body) - 1; i >= 0; i-- {
		p := snap.Body[i]
		if !inside(p) {
			continue
		}
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorYellow
		}
		s.SetPoint(p.Add(offset), segmentRune, color)
	}
}

// drawInstructions writes " Desc <Key>" pairs centered on row y, with the
// keys highlighted.
func drawInstructions(s *core.Screen, y int, bindings ...key.Binding) {
	type segment struct {
		text  string
		color core.Color
	}

	var segs []segment
	total := 0
	for _, b := range bindings {
		h := b.Help()
		segs = append(segs,
			segment{" " + h.Desc + " ", core.ColorDefault},
			segment{h.Key, core.ColorBlue},
		)
		total += len([]rune(h.Desc)) + 2 + len([]rune(h.Key))
	}
	segs = append(segs, segment{" ", core.ColorDefault})
	total++

	x := (s.Width() - total) / 2
	for _, seg := range segs {
		s.DrawText(x, y, seg.text, seg.color)
		x += len([]rune(seg.text))
	}
}
