package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/talkincode/inventorypro/config"
	"github.com/talkincode/inventorypro/internal/adminapi"
	"github.com/talkincode/inventorypro/internal/app"
	"github.com/talkincode/inventorypro/internal/webserver"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("c", "", "config file path")
	initDb     = flag.Bool("initdb", false, "discard the stored inventory and reseed demonstration data")
	showVer    = flag.Bool("v", false, "show version")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("inventorypro %s\n", version)
		return
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init error: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	if *initDb {
		application.InitDb()
		zap.L().Info("inventory reseeded with demonstration data")
		return
	}

	webserver.Init(application)
	adminapi.InitRouter()

	errCh := make(chan error, 1)
	go func() {
		errCh <- webserver.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zap.L().Error("web server stopped", zap.Error(err))
		}
	case sig := <-sigCh:
		zap.L().Info("shutting down", zap.String("signal", sig.String()))
		_ = webserver.Shutdown()
	}
}
