package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/duel/config"
	"github.com/ratel-online/duel/database"
	"github.com/ratel-online/duel/network"
	"github.com/ratel-online/duel/state"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	store, err := database.OpenStore(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	database.SetStore(store)
	state.SetTiming(cfg.Timing())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	database.StartSweeper(ctx, time.Minute, cfg.SessionIdle)

	servers := []network.Network{
		network.NewTcpServer(cfg.TCPAddr),
		network.NewWebsocketServer(cfg.WSAddr),
	}
	for _, server := range servers {
		server := server
		async.Async(func() {
			log.Error(server.Serve())
		})
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	log.Infof("received %s, saving games\n", sig)
	cancel()
	database.Shutdown()
	if err := store.Close(); err != nil {
		log.Error(err)
	}
}
