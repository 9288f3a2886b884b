package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Yashwanth-Chandrakumar/Vomo/audio"
	"github.com/Yashwanth-Chandrakumar/Vomo/config"
	"github.com/Yashwanth-Chandrakumar/Vomo/engine"
	"github.com/Yashwanth-Chandrakumar/Vomo/score"
)

// Game is the ebiten host around the headless engine. ebiten calls Update
// once per display refresh, which is the engine's tick scheduler.
type Game struct {
	cfg        config.Config
	configPath string
	playerName string

	eng      *engine.Engine
	shout    *heldKeyProvider
	sampler  *audio.Sampler
	store    *score.Store
	board    *score.Client
	watcher  *config.Watcher
	staged   *config.Config // reloaded tuning, applied on the next run
	finalScore int

	menuUI *ebitenui.UI
	overUI *ebitenui.UI
}

func NewGame(cfg config.Config, configPath, savePath, scoreboardURL, playerName string, mute bool) (*Game, error) {
	g := &Game{
		cfg:        cfg,
		configPath: configPath,
		playerName: playerName,
		store:      score.NewStore(savePath),
	}
	if scoreboardURL != "" {
		g.board = score.NewClient(scoreboardURL)
	}
	if !mute {
		g.shout = newHeldKeyProvider()
		g.sampler = audio.NewSampler(
			audio.NewMapper(cfg.Audio),
			g.shout,
			time.Duration(cfg.Audio.PollMS)*time.Millisecond,
		)
	}

	eng, err := g.buildEngine(cfg)
	if err != nil {
		return nil, err
	}
	g.eng = eng

	if configPath != "" {
		watcher, err := config.NewWatcher(filepath.Dir(configPath))
		if err != nil {
			log.Printf("config watcher unavailable: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	g.menuUI = NewMenuUI(g)
	g.overUI = NewGameOverUI(g)
	return g, nil
}

func (g *Game) buildEngine(cfg config.Config) (*engine.Engine, error) {
	opts := []engine.Option{
		engine.WithStore(g.store),
		engine.WithCallbacks(engine.Callbacks{OnGameOver: g.onGameOver}),
	}
	if g.sampler != nil {
		opts = append(opts, engine.WithSource(g.sampler))
	}
	return engine.New(cfg, opts...)
}

func (g *Game) onGameOver(finalScore int) {
	g.finalScore = finalScore
	g.overUI = NewGameOverUI(g)
	if g.board == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := g.board.Submit(ctx, g.playerName, finalScore); err != nil {
			log.Printf("scoreboard submit: %v", err)
		}
	}()
}

// startRun applies any staged config reload, then starts a fresh run.
func (g *Game) startRun() {
	if g.staged != nil {
		if eng, err := g.buildEngine(*g.staged); err != nil {
			log.Printf("reloaded config rejected: %v", err)
		} else {
			g.cfg = *g.staged
			g.eng = eng
		}
		g.staged = nil
	}
	g.eng.Start()
}

// drainWatcher stages tuning reloads without touching the run in progress.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("config watcher: %v", err)
			}
		default:
			if reload {
				cfg, err := config.Load(g.configPath)
				if err != nil {
					log.Printf("config reload: %v", err)
					return
				}
				g.staged = &cfg
				log.Printf("config reloaded, applies to the next run")
			}
			return
		}
	}
}

func (g *Game) Update() error {
	g.drainWatcher()
	if g.shout != nil {
		g.shout.Update()
	}

	startPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	switch g.eng.State() {
	case engine.StateMenu:
		g.menuUI.Update()
		if startPressed {
			g.startRun()
		}
	case engine.StateGameOver:
		g.overUI.Update()
		if startPressed {
			g.startRun()
		}
	case engine.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.eng.Pause()
			break
		}
		if startPressed {
			g.eng.Jump()
		}
		g.eng.Tick()
	case engine.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || startPressed {
			g.eng.Resume()
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.eng.Snapshot()
	drawPlayfield(screen, g.cfg, snap)

	switch snap.State {
	case engine.StateMenu:
		g.menuUI.Draw(screen)
	case engine.StateGameOver:
		g.overUI.Draw(screen)
	case engine.StatePaused:
		drawPausedOverlay(screen, g.cfg)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Playfield.Width), int(g.cfg.Playfield.Height)
}

// Close releases the audio sampler and the config watcher. The engine
// itself holds no resources.
func (g *Game) Close() {
	g.eng.Stop()
	if g.sampler != nil {
		g.sampler.Close()
	}
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
