package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"SketchBoard/internal/board"
	"SketchBoard/internal/config"
	"SketchBoard/internal/export"
	"SketchBoard/internal/share"
	"SketchBoard/internal/state"
	"SketchBoard/internal/ui"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", config.DefaultPath(), "path to the TOML settings file")
	shareView := flag.Bool("share", false, "serve a read-only live view on the LAN")
	discover := flag.Bool("discover", false, "list live views on the LAN and exit")
	flag.Parse()

	if *discover {
		runDiscover()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *shareView {
		cfg.Share.Enabled = true
	}
	runBoard(cfg)
}

func runBoard(cfg config.Config) {
	log.Println("Starting board")
	background, _ := state.ParseColor(cfg.Canvas.Background)
	ctrl := board.New(board.Options{
		Background:   background,
		HistoryDepth: cfg.History.Depth,
		Palette:      cfg.Palette(),
		Tools:        cfg.ToolState(),
		BaseName:     cfg.Export.BaseName,
		JPEGQuality:  cfg.Export.JPEGQuality,
	})

	status := "Ready"
	var onChange func()
	if cfg.Share.Enabled {
		srv := share.NewServer(cfg.Share.Port)
		if err := srv.Start(cfg.Share.Advertise); err != nil {
			log.Printf("[SHARE] Live view disabled: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				srv.Close(ctx)
			}()
			status = "Live view at " + share.ViewerURL(cfg.Share.Port)
			onChange = func() { publish(ctrl, srv) }
		}
	}

	ui.RunApp(cfg, ctrl, status, onChange)
}

func publish(ctrl *board.Controller, srv *share.Server) {
	png, err := ctrl.Surface().ExportRaster(export.PNG.MIME)
	if err != nil {
		log.Printf("[SHARE] Encoding frame failed: %v", err)
		return
	}
	srv.Publish(png)
}

func runDiscover() {
	boards, err := share.Discover(3 * time.Second)
	if err != nil {
		log.Printf("Discovery failed: %v", err)
	}
	if len(boards) == 0 {
		fmt.Println("No boards found")
		os.Exit(1)
	}
	for _, b := range boards {
		fmt.Printf("%s\thttp://%s/\n", b.Instance, b.Addr)
	}
}
