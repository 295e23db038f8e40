package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/blockfall/game"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	hudStyle   = lipgloss.NewStyle().Padding(1, 2)
	pausedCell = lipgloss.NewStyle().Background(lipgloss.Color("240"))
	ghostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	bannerText = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// cellGrid rasterizes the snapshot into a Rows x Columns grid of styled
// two-character cells. Rectangles above the playfield top are clipped.
func cellGrid(s game.Snapshot) [game.Rows][game.Columns]string {
	var grid [game.Rows][game.Columns]string
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = "  "
		}
	}

	for _, cr := range s.Rects {
		style := lipgloss.NewStyle().Background(hex(cr.Color))
		if s.Paused {
			style = pausedCell
		}
		for y := cr.Rect.Min.Y / game.SideLength; y < cr.Rect.Max.Y/game.SideLength; y++ {
			if y < 0 || y >= game.Rows {
				continue
			}
			for x := cr.Rect.Min.X / game.SideLength; x < cr.Rect.Max.X/game.SideLength; x++ {
				grid[y][x] = style.Render("  ")
			}
		}
	}

	for _, r := range s.Ghost {
		for y := r.Min.Y / game.SideLength; y < r.Max.Y/game.SideLength; y++ {
			if y < 0 || y >= game.Rows {
				continue
			}
			for x := r.Min.X / game.SideLength; x < r.Max.X/game.SideLength; x++ {
				if grid[y][x] == "  " {
					grid[y][x] = ghostStyle.Render("░░")
				}
			}
		}
	}

	return grid
}

func (m *model) View() string {
	s := m.engine.Snapshot()
	grid := cellGrid(s)

	var board strings.Builder
	for y := range grid {
		for x := range grid[y] {
			board.WriteString(grid[y][x])
		}
		if y < len(grid)-1 {
			board.WriteByte('\n')
		}
	}

	hud := []string{
		fmt.Sprintf("Level: %d", s.Level),
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Lines: %d", s.TotalLines),
		"",
		"arrows move",
		"x/z rotate",
		"space drop",
		"p pause  g ghost",
		"r reset  q quit",
	}
	if s.Paused {
		hud = append(hud, "", bannerText.Render("P A U S E D"))
	}
	if s.GameOver {
		hud = append(hud, "", bannerText.Render("GAME OVER"), "press r to restart")
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		boardStyle.Render(board.String()),
		hudStyle.Render(strings.Join(hud, "\n")),
	)
}
