package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Yashwanth-Chandrakumar/Vomo/config"
)

func main() {
	configPath := flag.String("config", "", "tuning yaml (built-in defaults when empty)")
	savePath := flag.String("save", defaultSavePath(), "high score file")
	mute := flag.Bool("mute", false, "skip the loudness input; jump with Space only")
	scoreboard := flag.String("scoreboard", "", "remote scoreboard base URL (optional)")
	name := flag.String("name", "anon", "name for scoreboard submissions")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	game, err := NewGame(cfg, *configPath, *savePath, *scoreboard, *name, *mute)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	ebiten.SetWindowTitle("vomo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "vomo_save.json"
	}
	return filepath.Join(dir, "vomo", "save.json")
}
