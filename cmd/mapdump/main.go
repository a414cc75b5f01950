// mapdump generates a dungeon and prints it as text. Build:
//
//	go build -o mapdump ./cmd/mapdump
//
// Usage:
//
//	./mapdump [--config dungeon.yaml] [--seed phrase] [--entities] [--plain]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"dungeoncore/internal/component"
	"dungeoncore/internal/config"
	"dungeoncore/internal/game"
	"dungeoncore/internal/gamemap"

	"github.com/gookit/color"
	xterm "golang.org/x/term"
)

var (
	styleWall    = color.Style{color.FgGreen}
	styleFloor   = color.Style{color.FgCyan}
	stylePlayer  = color.Style{color.FgYellow, color.OpBold}
	styleMonster = color.Style{color.FgRed, color.OpBold}
	styleItem    = color.Style{color.FgMagenta}
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	seed := flag.String("seed", "", "Seed phrase; overrides the config file")
	entities := flag.Bool("entities", true, "Overlay the player, monsters and items")
	plain := flag.Bool("plain", false, "Disable colour even on a terminal")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *seed != "" {
		cfg.Seed = *seed
	}

	sim, err := game.New(cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	colored := !*plain && xterm.IsTerminal(int(os.Stdout.Fd()))
	fmt.Printf("seed: %q  size: %dx%d  rooms: %d\n", cfg.Seed, sim.Map().Width, sim.Map().Height, len(sim.Map().Rooms))
	dump(os.Stdout, sim, *entities, colored)
}

// dump writes one line per map row. Entities are drawn over the terrain
// when withEntities is set; the highest render order wins a shared cell.
func dump(out io.Writer, sim *game.Simulation, withEntities bool, colored bool) {
	m := sim.Map()
	type mark struct {
		glyph rune
		style color.Style
		order int
	}
	overlay := make(map[int]mark)
	if withEntities {
		w := sim.World()
		for _, id := range w.Query(component.CPosition, component.CRenderable) {
			pos := w.Get(id, component.CPosition).(component.Position)
			rend := w.Get(id, component.CRenderable).(component.Renderable)
			style := styleItem
			switch {
			case w.Has(id, component.CTagPlayer):
				style = stylePlayer
			case w.Has(id, component.CTagMonster):
				style = styleMonster
			}
			idx := m.XYIdx(pos.X, pos.Y)
			if prev, ok := overlay[idx]; !ok || rend.RenderOrder > prev.order {
				overlay[idx] = mark{glyph: rend.Glyph, style: style, order: rend.RenderOrder}
			}
		}
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.XYIdx(x, y)
			glyph, style := '.', styleFloor
			if m.Tiles[idx] == gamemap.TileWall {
				glyph, style = '#', styleWall
			}
			if mk, ok := overlay[idx]; ok {
				glyph, style = mk.glyph, mk.style
			}
			if colored {
				fmt.Fprint(out, style.Sprint(string(glyph)))
			} else {
				fmt.Fprintf(out, "%c", glyph)
			}
		}
		fmt.Fprintln(out)
	}
}
