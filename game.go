package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/goldminer/assets"
	"github.com/milk9111/goldminer/config"
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/entity"
	"github.com/milk9111/goldminer/ecs/system"
	"github.com/milk9111/goldminer/layouts"
	"github.com/milk9111/goldminer/physics"
	"github.com/milk9111/goldminer/rope"
	"github.com/milk9111/goldminer/rules"
	"github.com/milk9111/goldminer/sprite"
	"go.uber.org/zap"
)

type gameState int

const (
	stateMenu gameState = iota
	statePlaying
	stateOver
)

type Game struct {
	cfg        *config.Config
	configPath string
	debug      bool
	log        *zap.Logger
	rng        *rand.Rand
	keys       []ebiten.Key

	state     gameState
	world     *ecs.World
	physics   *physics.World
	scheduler *ecs.Scheduler
	rope      *system.RopeSystem
	render    *system.RenderSystem
	rules     *rules.Runtime
	watcher   *config.Watcher
	layout    string
}

func NewGame(cfg *config.Config, configPath string, debug bool, log *zap.Logger) (*Game, error) {
	keys, err := fireKeys(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:        cfg,
		configPath: configPath,
		debug:      debug,
		log:        log,
		rng:        rand.New(rand.NewSource(seed)),
		keys:       keys,
		rules:      rules.NewRuntime(cfg.Game.ScriptsDir, log.Named("rules")),
	}
	if err := g.rules.LoadAll(); err != nil {
		log.Warn("rules", zap.Error(err))
	}

	atlas := sprite.NewAtlas(assets.NewLoader(cfg.Game.AssetsDir), log.Named("sprite"))
	g.render = system.NewRenderSystem(atlas, g.ropeParams)

	g.watcher, err = config.Watch(configPath, cfg.Game.ScriptsDir)
	if err != nil {
		// hot reload is optional
		log.Warn("config watch disabled", zap.Error(err))
		g.watcher = nil
	}

	return g, nil
}

func fireKeys(cfg *config.Config) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, len(cfg.Players))
	for i, p := range cfg.Players {
		k, ok := system.ParseKey(p.FireKey)
		if !ok {
			return nil, fmt.Errorf("game: player %d: unknown fire key %q", i, p.FireKey)
		}
		keys[i] = k
	}
	return keys, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) ropeParams() rope.Params {
	if g.rope != nil {
		return g.rope.Params()
	}
	return g.cfg.RopeParams()
}

// startRound discards the previous round and builds a fresh one.
func (g *Game) startRound() error {
	layout := g.cfg.Game.Layout
	if layout == "" {
		layout = layouts.Random(g.rng)
	}

	w := ecs.NewWorld()
	pw := physics.NewWorld(g.cfg.PhysicsWorld())
	system.BindPhysics(w, pw)

	env := entity.Env{Physics: pw, Config: g.cfg}
	if _, err := entity.NewRound(w, env, layout); err != nil {
		return err
	}

	dt := g.cfg.Game.DT
	g.rope = system.NewRopeSystem(pw, g.cfg.RopeParams(), g.log.Named("rope"))
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(g.keys),
		system.NewPhysicsStepSystem(pw, dt),
		g.rope,
		system.NewPhysicsSyncSystem(pw),
		system.NewCollisionSystem(pw, g.log.Named("collision")),
		system.NewMysteryRevealSystem(g.rules, g.log.Named("mystery")),
		system.NewScoreSystem(g.log.Named("score")),
		system.NewTimerSystem(dt),
		system.NewLifeTimeSystem(dt),
		system.NewMoleSystem(g.rules, dt, float64(g.cfg.Screen.Width), g.log.Named("mole")),
		system.NewDestructionSystem(g.log.Named("destruction")),
	)
	g.world = w
	g.physics = pw
	g.layout = layout

	g.log.Info("round started", zap.String("layout", layout), zap.Int("players", len(g.cfg.Players)))
	return nil
}

func (g *Game) Update() error {
	g.reload()

	switch g.state {
	case stateMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := g.startRound(); err != nil {
				return err
			}
			g.state = statePlaying
		}
	case statePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = stateMenu
			return nil
		}
		g.scheduler.Update(g.world)
		if system.RoundOver(g.world) {
			g.logScores()
			g.state = stateOver
		}
	case stateOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = stateMenu
		}
	}
	return nil
}

// reload applies config and rule changes reported by the watcher.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
drain:
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if !ok {
				break drain
			}
			g.log.Warn("config watch", zap.Error(err))
		default:
			break drain
		}
	}

	for _, path := range g.watcher.Poll() {
		if strings.EqualFold(filepath.Ext(path), ".tengo") {
			ok, err := g.rules.Reload(path)
			if err != nil {
				g.log.Warn("rule reload", zap.String("path", path), zap.Error(err))
				continue
			}
			g.log.Info("rule reloaded", zap.String("path", path), zap.Bool("active", ok))
			continue
		}
		if g.configPath == "" || filepath.Clean(path) != filepath.Clean(g.configPath) {
			continue
		}

		cfg, err := config.Load(g.configPath)
		if err != nil {
			g.log.Warn("config reload", zap.Error(err))
			continue
		}
		g.cfg.Rope = cfg.Rope
		if g.rope != nil {
			g.rope.SetParams(g.cfg.RopeParams())
		}
		g.log.Info("rope tuning reloaded", zap.String("path", path))
	}
}

func (g *Game) logScores() {
	fields := make([]zap.Field, 0, len(g.cfg.Players))
	for p := range g.cfg.Players {
		fields = append(fields, zap.Int(fmt.Sprintf("player%d", p+1), system.HUD(g.world, p).Score))
	}
	g.log.Info("round over", fields...)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case stateMenu:
		ebitenutil.DebugPrintAt(screen, "GOLD MINER\n\nEnter: start    Escape: back to menu", g.cfg.Screen.Width/2-120, g.cfg.Screen.Height/2-20)
		return
	}

	g.render.Draw(g.world, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.physics, screen)
		system.DrawRopeDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  layout: %s  bodies: %d  entities: %d",
			ebiten.ActualFPS(), g.layout, g.physics.BodyCount(), len(ecs.Entities(g.world))), 10, g.cfg.Screen.Height-20)
	}

	if g.state == stateOver {
		msg := "TIME'S UP"
		for p := range g.cfg.Players {
			msg += fmt.Sprintf("\nPlayer %d: %d", p+1, system.HUD(g.world, p).Score)
		}
		msg += "\n\nEnter: menu"
		ebitenutil.DebugPrintAt(screen, msg, g.cfg.Screen.Width/2-60, g.cfg.Screen.Height/2-40)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
