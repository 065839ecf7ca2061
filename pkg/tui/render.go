package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ssargent/logmacster/pkg/grid"
)

const (
	headerRows = 2 // title and column headers
	footerRows = 2 // input or status, and help
	colGap     = 1
)

// cellWidth converts a column's pixel width to terminal cells
func cellWidth(c grid.Column) int {
	w := c.Width / 10
	if w < 4 {
		w = 4
	}
	return w
}

// visibleColumns returns the column indexes that fit in width, scrolling
// s.left so the cursor column is among them
func visibleColumns(s *AppState, width int) []int {
	for {
		var cols []int
		used := 0
		for i := s.left; i < len(s.columns); i++ {
			w := cellWidth(s.columns[i]) + colGap
			if used+w > width && len(cols) > 0 {
				break
			}
			cols = append(cols, i)
			used += w
		}
		if s.col <= s.left || len(cols) == 0 || s.col <= cols[len(cols)-1] {
			return cols
		}
		s.left++
	}
}

func render(screen tcell.Screen, s *AppState, title string) {
	screen.Clear()
	width, height := screen.Size()

	styleTitle := tcell.StyleDefault.Bold(true).Reverse(true)
	styleHeader := tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	styleDefault := tcell.StyleDefault
	styleSelected := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	styleCurrent := tcell.StyleDefault.Reverse(true).Bold(true)
	styleInvalid := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHelp := tcell.StyleDefault.Foreground(tcell.ColorGray)

	drawText(screen, 0, 0, width, styleTitle, " "+title)

	s.SetPageSize(height - headerRows - footerRows)
	cols := visibleColumns(s, width)

	x := 0
	for _, ci := range cols {
		c := s.columns[ci]
		w := cellWidth(c)
		drawText(screen, x, 1, w, styleHeader, truncate(c.Header, w))
		x += w + colGap
	}

	for y := headerRows; y < height-footerRows; y++ {
		ri := s.top + y - headerRows
		if ri >= len(s.rows) {
			break
		}
		row := s.rows[ri]
		x := 0
		for _, ci := range cols {
			c := s.columns[ci]
			w := cellWidth(c)
			value := row.Record.Value(c.Field)

			style := styleDefault
			switch {
			case ri == s.row && ci == s.col:
				style = styleCurrent
			case s.selected[row.ID]:
				style = styleSelected
			case grid.Highlight(c.Field, value):
				style = styleInvalid
			}

			text := grid.Format(c.Field, value)
			if ri == s.row && ci == s.col && s.mode == ModeEdit {
				text = s.Input()
			}
			drawText(screen, x, y, w, style, truncate(text, w))
			x += w + colGap
		}
	}

	statusY := height - footerRows
	switch s.mode {
	case ModeEdit, ModeFilter:
		prompt := s.CurrentColumn().Header + ": "
		if s.mode == ModeFilter {
			prompt = "/"
		}
		drawText(screen, 0, statusY, width, styleStatus, prompt+s.Input())
		screen.ShowCursor(len([]rune(prompt))+s.cursor, statusY)
	default:
		drawText(screen, 0, statusY, width, styleStatus, s.status)
		screen.HideCursor()
	}

	help := " Enter=Edit Space=Select d=Delete n=New /=Filter s=Sort ^S=Save ^O=Open q=Quit "
	if s.mode == ModeEdit {
		help = " Enter=Commit Esc=Cancel "
	}
	drawText(screen, 0, height-1, width, styleHelp, help)
}

// drawText draws a string at the given position, padding to maxWidth
func drawText(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			break
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
	for col < maxWidth {
		screen.SetContent(x+col, y, ' ', nil, style)
		col++
	}
}

// truncate shortens s to maxLen characters, marking the cut with "~"
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-1]) + "~"
}
