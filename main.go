package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"StrawBoard/internal/config"
	"StrawBoard/internal/control"
	"StrawBoard/internal/ink"
	"StrawBoard/internal/net"
	"StrawBoard/internal/state"
	"StrawBoard/internal/ui"
)

// eventBuffer is how many input events may queue before posting blocks.
const eventBuffer = 256

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "settings file")
	discover := flag.Bool("discover", false, "list boards on the local network and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [strawboard://host:port]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		ink.SetLogger(slog.Default())
	}

	switch {
	case *discover:
		runDiscover()
	case flag.NArg() > 0:
		runPen(cfg, flag.Arg(0))
	default:
		runHost(cfg)
	}
}

// newSession wires a board to a controller loop configured from cfg.
func newSession(cfg config.Config) ui.Session {
	board := state.NewBoard()
	ctrl := control.NewController(board, cfg.Shapes)
	ctrl.SetBrush(cfg.Brush.Color, cfg.Brush.Size)
	ctrl.SetDensify(cfg.DensifyOnRelease)
	return ui.Session{
		Board:  board,
		Loop:   control.NewLoop(ctrl, eventBuffer),
		Config: cfg,
	}
}

func runHost(cfg config.Config) {
	log.Println("Starting as HOST")
	sess := newSession(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Remote.Enabled {
		ip, err := net.GetOutgoingIP()
		if err != nil {
			log.Printf("Could not determine local IP: %v", err)
			ip = "127.0.0.1"
		}
		sess.Status = "Pens can connect at " + net.ShareLink(ip, cfg.Remote.Port)

		pens := net.NewPenServer(sess.Loop.Post)
		go func() {
			if err := pens.ListenAndServe(ctx, cfg.Remote.Port); err != nil {
				log.Printf("Remote pens disabled: %v", err)
			}
		}()

		if cfg.Remote.Advertise {
			server, err := net.Advertise(cfg.Remote.Port)
			if err != nil {
				log.Printf("[MDNS] Not advertising: %v", err)
			} else {
				log.Printf("[MDNS] Advertising board on port %d", cfg.Remote.Port)
				defer server.Shutdown()
			}
		}
	}

	app := ui.NewApp(sess)
	go sess.Loop.Run(ctx)
	app.Run()
}

// runPen draws on a local preview board and streams every input event to
// the board behind link.
func runPen(cfg config.Config, link string) {
	log.Println("Starting as PEN")
	addr, ok := net.ParseLink(link)
	if !ok {
		log.Fatalf("Not a share link: %q", link)
	}

	dialCtx, cancelDial := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := net.DialPen(dialCtx, addr)
	cancelDial()
	if err != nil {
		log.Fatalf("Connection failed: %v", err)
	}
	defer client.Close()

	sess := newSession(cfg)
	sess.Title = "StrawBoard pen"
	sess.Status = "Connected to " + addr
	sess.Post = func(ev control.Event) bool {
		if err := client.Send(ev); err != nil {
			log.Printf("[PEN] Failed to send %s: %v", ev.Kind, err)
		}
		return sess.Loop.Post(ev)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := ui.NewApp(sess)
	go sess.Loop.Run(ctx)
	app.Run()
}

func runDiscover() {
	n := 0
	err := net.Browse(func(addr string) {
		n++
		fmt.Println(net.LinkScheme + addr)
	})
	if err != nil {
		log.Fatalf("Discovery failed: %v", err)
	}
	if n == 0 {
		log.Println("No boards found")
	}
}
