package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/tileactor/common"
	"github.com/milk9111/tileactor/obj"
	"github.com/milk9111/tileactor/prefabs"
)

const roomMargin = 40

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	input   *obj.Input
	world   *obj.CollisionWorld
	actors  []*actorEntity
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(debug, watch bool) (*Game, error) {
	g := &Game{
		debug: debug,
		input: obj.NewInput(),
		world: obj.NewCollisionWorld(roomMargin, common.BaseWidth-roomMargin, common.FloorY),
	}

	files, err := prefabs.ActorSpecNames()
	if err != nil {
		return nil, fmt.Errorf("list actor prefabs: %w", err)
	}
	for _, file := range files {
		e, err := spawnActor(file, g.world, nil, "", debug)
		if err != nil {
			return nil, fmt.Errorf("spawn %s: %w", file, err)
		}
		g.actors = append(g.actors, e)
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	if g.input.QuitPressed || g.quit {
		return ebiten.Termination
	}
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.input.ReloadPressed {
		g.reload(nil)
	} else if changed := g.watcher.Poll(); len(changed) > 0 {
		g.reload(changed)
	}
	for _, err := range g.watcher.PollErrors() {
		log.Printf("prefab watch: %v", err)
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := time.Second / time.Duration(tps)
	stepSecs := dt.Seconds()

	for _, e := range g.actors {
		e.body.SetStep(e.step(g.input), stepSecs)
	}
	g.world.Step(stepSecs)
	for _, e := range g.actors {
		e.sync(dt)
	}
	return nil
}

// reload respawns actors whose prefab or script is in changed, or every
// actor when changed is nil. Actors keep their position; their animation
// state starts over. A reload that would rename an actor onto another live
// actor is rejected and the old actor keeps running.
func (g *Game) reload(changed []string) {
	for i, e := range g.actors {
		if changed != nil && !affects(e, changed) {
			continue
		}
		x, y := e.body.Position()
		ne, err := spawnActor(e.file, g.world, &[2]float64{x, y}, e.actor.Name, g.debug)
		if err != nil {
			log.Printf("reload %s: %v", e.file, err)
			continue
		}
		if ne.actor.Name != e.actor.Name {
			g.world.RemoveActor(e.actor.Name)
		}
		log.Printf("reloaded %s", e.file)
		g.actors[i] = ne
	}
}

func affects(e *actorEntity, changed []string) bool {
	for _, name := range changed {
		if name == e.file {
			return true
		}
		if script, ok := strings.CutPrefix(name, "scripts/"); ok && e.spec.Script != "" &&
			strings.TrimPrefix(e.spec.Script, "scripts/") == script {
			return true
		}
	}
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff})
	minX, maxX := g.world.Bounds()
	vector.StrokeLine(screen, float32(minX), common.FloorY, float32(maxX), common.FloorY, 2, color.White, false)

	for _, e := range g.actors {
		e.draw(screen)
	}

	lines := []string{fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())}
	if g.debug {
		for _, e := range g.actors {
			lines = append(lines, e.String())
		}
	}
	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
