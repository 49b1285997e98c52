package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"escaperoom/pkg/config"
	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/dialog"
	"escaperoom/pkg/game/gameplay"
	ebitenrenderer "escaperoom/pkg/game/renderer/ebiten"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/logger"
	"escaperoom/pkg/roomclient"
	"escaperoom/pkg/roomservice"
	"escaperoom/pkg/server"
)

const windowSize = 800

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	mode := flag.String("mode", defaultMode, "what to run: server or client")
	port := flag.Int("port", cfg.Port, "room service port (server mode)")
	serverURL := flag.String("server", cfg.ServerURL, "room service base URL (client mode)")
	debug := flag.Bool("debug", false, "show the TPS/FPS overlay and debug logging")
	flag.Parse()

	cfg.Port = *port
	cfg.ServerURL = *serverURL
	if *debug {
		cfg.LogLevel = "debug"
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	gotext.Configure(cfg.LocalesDir, cfg.Language, "default")
	applyKeyBindings(cfg.KeyBindings)

	switch *mode {
	case "server":
		err = runServer(cfg)
	case "client":
		err = runClient(cfg, *debug)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("Exiting")
	}
}

// applyKeyBindings installs configured rebinds and logs the resulting layout
func applyKeyBindings(b map[string]engineinput.Direction) {
	engineinput.ApplyBindings(b)

	fields := logrus.Fields{}
	for dir, codes := range engineinput.GetBindingsByDirection() {
		if dir == engineinput.DirNone {
			continue
		}
		fields[engineinput.DirectionName(dir)] = strings.Join(codes, ",")
	}
	logger.Log.WithFields(fields).Debug("Key bindings")
}

func runServer(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := roomservice.DefaultCatalog()
	srv := server.New(catalog, cfg.ListenAddr(), cfg.AssetsDir, cfg.PublicDir)

	color.Green.Printf("Server running at http://localhost:%d\n", cfg.Port)
	logger.Log.WithField("rooms", catalog.RoomIDs()).Info("Catalog loaded")

	return srv.Run(ctx)
}

func runClient(cfg config.Config, debug bool) error {
	client := roomclient.New(cfg.ServerURL, cfg.FetchTimeout)
	images := ebitenrenderer.NewImageCache(client)
	dialogs := dialog.NewQueue()

	session := state.NewSession(cfg.PlayerID, windowSize)
	controller := gameplay.NewController(session, engineinput.NewState(), client, images, dialogs)

	r, err := ebitenrenderer.New(controller, images, dialogs, ebitenrenderer.Options{
		WindowSize: windowSize,
		Debug:      debug,
	})
	if err != nil {
		return err
	}

	logger.Log.WithField("server", cfg.ServerURL).Info("Starting client")
	controller.LoadRoom(cfg.StartRoom, cfg.PlayerID)

	return r.Run()
}
