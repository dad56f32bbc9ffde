package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/ecs/entity"
	"github.com/milk9111/deadzone/ecs/render"
	"github.com/milk9111/deadzone/ecs/system"
	"github.com/milk9111/deadzone/hud"
	"github.com/milk9111/deadzone/levels"
	"github.com/milk9111/deadzone/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Options struct {
	Level  string
	Debug  bool
	Design bool
	Watch  bool
}

type Game struct {
	opts      Options
	levelFile string

	tiles   *prefabs.TilesSpec
	hudSpec *prefabs.HUDSpec
	strips  *render.StripRegistry
	watcher *prefabs.Watcher

	world *ecs.World
	auto  *system.AutotileSystem
}

func NewGame(opts Options) (*Game, error) {
	levelFile, err := resolveLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	g := &Game{opts: opts, levelFile: levelFile}
	if err := g.loadSpecs(); err != nil {
		return nil, err
	}
	if err := g.loadLevel(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func resolveLevel(name string) (string, error) {
	if name != "" {
		if !strings.HasSuffix(name, ".json") {
			name += ".json"
		}
		return name, nil
	}
	names, err := levels.Names()
	if err != nil {
		return "", fmt.Errorf("game: list levels: %w", err)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("game: no embedded levels")
	}
	return names[0], nil
}

func (g *Game) loadSpecs() error {
	tiles, err := prefabs.LoadTilesSpec()
	if err != nil {
		return err
	}
	hudSpec, err := prefabs.LoadHUDSpec()
	if err != nil {
		return err
	}
	strips, err := render.LoadStripRegistry(*tiles)
	if err != nil {
		return err
	}
	g.tiles, g.hudSpec, g.strips = tiles, hudSpec, strips
	return nil
}

func (g *Game) loadLevel() error {
	lvl, err := levels.LoadLevelFromFS(g.levelFile)
	if err != nil {
		return fmt.Errorf("game: load level %s: %w", g.levelFile, err)
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	grid, err := entity.LoadLevelToWorld(w, lvl, entity.LevelOptions{TileSize: g.tiles.TileSize, Strips: g.strips})
	if err != nil {
		return err
	}
	_, err = entity.NewCamera(w, g.tiles.Zoom)
	if err != nil {
		return err
	}
	if _, err := entity.NewHUD(w, g.hudSpec, true); err != nil {
		return err
	}

	g.auto = system.NewAutotileSystem(grid, g.opts.Design)
	w.AddSystem(system.NewCameraSystem(baseWidth, baseHeight))
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(g.auto)
	w.AddSystem(system.NewTileRenderSystem())
	w.AddSystem(system.NewHUDSystem())
	if g.opts.Debug {
		w.AddSystem(system.NewPhysicsDebugSystem())
	}

	g.world = w
	log.Printf("game: loaded %s (%dx%d)", g.levelFile, grid.Width(), grid.Height())
	return nil
}

// reload applies prefab and script edits picked up by the watcher.
func (g *Game) reload() {
	changed, err := g.watcher.Poll()
	if err != nil {
		log.Printf("game: watcher: %v", err)
	}
	if len(changed) == 0 {
		return
	}
	scriptsOnly := true
	for _, name := range changed {
		log.Printf("game: %s changed", name)
		if !prefabs.IsScriptFile(name) {
			scriptsOnly = false
		}
	}
	if scriptsOnly {
		g.restyle()
		return
	}

	if err := g.loadSpecs(); err != nil {
		log.Printf("game: reload prefabs: %v", err)
		return
	}
	var counter *hud.Counter
	if e, ok := g.world.First(component.HUDComponent.Kind()); ok {
		h, _ := ecs.Get(g.world, e, component.HUDComponent)
		counter = h.Counter
	}
	if err := g.loadLevel(); err != nil {
		log.Printf("game: reload level: %v", err)
		return
	}
	if counter == nil {
		return
	}
	// Keep the running timer and progress across a hot reload.
	g.world.Events().Take(ecs.EventLevelReset)
	if e, ok := g.world.First(component.HUDComponent.Kind()); ok {
		if err := ecs.Add(g.world, e, component.HUDComponent, component.HUD{
			Counter: counter,
			View:    hud.NewView(counter, entity.HUDStyle(g.hudSpec)),
		}); err != nil {
			log.Printf("game: keep hud counter: %v", err)
		}
	}
}

// restyle recomputes alternate wall textures in place after a script edit.
func (g *Game) restyle() {
	lvl, err := levels.LoadLevelFromFS(g.levelFile)
	if err != nil {
		log.Printf("game: restyle: %v", err)
		return
	}
	grid, err := g.auto.Grid().Restyle(lvl)
	if err != nil {
		log.Printf("game: restyle: %v", err)
		return
	}
	g.auto.SetGrid(g.world, grid)
}

func (g *Game) Update() error {
	if g.watcher != nil {
		g.reload()
	}
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)

	if g.opts.Debug {
		pw := g.world.PhysicsWorld()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  tiles: %d  bodies: %d",
			ebiten.ActualFPS(),
			len(g.world.Query(component.GridCellComponent.Kind())),
			pw.Len(),
		), 0, baseHeight-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}
