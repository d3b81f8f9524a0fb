package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/domino/client"
	"github.com/ratel-online/domino/config"
	"github.com/ratel-online/domino/domino/game"
	"github.com/ratel-online/domino/local"
	"github.com/ratel-online/domino/network"
	"github.com/ratel-online/domino/render"
	"github.com/ratel-online/domino/session"
)

var (
	mode       = flag.String("mode", "", "server, local or client")
	configPath = flag.String("config", "", "path of a YAML config file")
	addr       = flag.String("addr", "", "listen address in server mode, server address in client mode")
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *addr != "" {
		cfg.TCPAddr, cfg.ServerAddr = *addr, *addr
	}
	if err := cfg.Validate(); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	switch cfg.Mode {
	case "local":
		_, err = local.New(os.Stdin, render.Stdout, local.Options{
			DefaultNames: cfg.DefaultNames,
			NewStock:     game.StockSource(cfg.Seed),
		}).Run()
	case "client":
		err = runClient(cfg)
	default:
		err = serve(cfg)
	}
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func serve(cfg config.Config) error {
	opts := session.Options{
		DefaultNames: cfg.DefaultNames,
		NewStock:     game.StockSource(cfg.Seed),
	}
	lobby := network.NewLobby(func(first, second network.Conn) {
		_, _ = session.New(first, second, opts).Run()
		log.Infof("%d match(es) running\n", len(session.Active()))
	})
	servers := make([]network.Network, 0, 2)
	if cfg.TCPAddr != "" {
		servers = append(servers, network.NewTcpServer(cfg.TCPAddr, lobby))
	}
	if cfg.WSAddr != "" {
		servers = append(servers, network.NewWebsocketServer(cfg.WSAddr, cfg.WSPath, lobby))
	}
	errs := make(chan error, len(servers))
	for _, server := range servers {
		server := server
		async.Async(func() {
			errs <- server.Serve()
		})
	}
	return <-errs
}

func runClient(cfg config.Config) error {
	conn, err := network.Dial(cfg.ServerAddr)
	if err != nil {
		return err
	}
	fmt.Fprintf(render.Stdout, "Connected to the server at %s\n", cfg.ServerAddr)
	_, err = client.New(conn, os.Stdin, render.Stdout).Run()
	return err
}
