package term

import (
	"fmt"

	"dungeoncore/internal/component"
	"dungeoncore/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawHUD renders the HP line, the HP bar and the newest log entries in a
// box under the map.
func (r *Renderer) drawHUD(sim *game.Simulation) {
	screenW, screenH := r.screen.Size()
	top := screenH - hudRows
	if top < 0 {
		return
	}
	r.drawBox(top, screenW, tcell.ColorWhite)

	if c := sim.World().Get(sim.Player(), component.CCombatStats); c != nil {
		st := c.(component.CombatStats)
		hp := fmt.Sprintf(" HP: %d / %d ", st.HP, st.MaxHP)
		r.drawText(12, top, hp, tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack))
		barX := 12 + runewidth.StringWidth(hp) + 1
		r.drawBar(barX, top, screenW-barX-1, st.HP, st.MaxHP)
	}

	n := min(r.logWindow, hudRows-2)
	for i, line := range sim.Log().Window(n, screenW-4) {
		r.drawText(2, top+1+i, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
}

// drawBox draws a frame spanning the full width from row top to the last
// row of the screen.
func (r *Renderer) drawBox(top, width int, color tcell.Color) {
	_, h := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack)
	bottom := h - 1
	for x := 1; x < width-1; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, style)
		r.screen.SetContent(width-1, y, '│', nil, style)
	}
	r.screen.SetContent(0, top, '┌', nil, style)
	r.screen.SetContent(width-1, top, '┐', nil, style)
	r.screen.SetContent(0, bottom, '└', nil, style)
	r.screen.SetContent(width-1, bottom, '┘', nil, style)
}

// drawBar draws a horizontal bar of width cells filled in proportion to
// value/maximum.
func (r *Renderer) drawBar(x, y, width, value, maximum int) {
	if width <= 0 || maximum <= 0 {
		return
	}
	filled := width * max(value, 0) / maximum
	full := tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	empty := tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	for i := 0; i < width; i++ {
		if i < filled {
			r.screen.SetContent(x+i, y, '█', nil, full)
		} else {
			r.screen.SetContent(x+i, y, '░', nil, empty)
		}
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
