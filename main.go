package main

import (
	"flag"
	"time"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/loop"
	"classic-snake/render"
	"classic-snake/ui"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

func main() {
	// glog registers its own logging flags; the game itself takes none.
	flag.Parse()
	defer glog.Flush()

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		glog.Exitf("invalid game config: %v", err)
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	win := ui.OpenWindow(cfg.ScreenWidth, cfg.ScreenHeight, config.WindowTitle)
	defer win.Close()

	g := game.NewGame(cfg, rng)
	l := loop.New(g, cfg.Delay, win, render.NewRenderer(win, cfg.Grid()))
	l.Start(time.Now())

	for !win.ShouldClose() {
		l.Frame(time.Now())
	}

	glog.Infof("window closed: game %s %v, score %d", g.UUID, l.Phase(), g.Score())
}
