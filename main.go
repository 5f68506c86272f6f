package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"glsnake.com/server/config"
	"glsnake.com/server/game"
	"glsnake.com/server/network"
)

var addr = flag.String("addr", "", "http service address (overrides ADDR)")

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	world := game.NewWorld(cfg.TileSize, cfg.RespawnSteps, time.Now().UnixNano())
	hub := network.NewHub(world, cfg.StepEvery())
	go hub.Run()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		network.ServeWs(hub, w, r)
	})

	fmt.Println("Server running at: http://localhost" + cfg.Addr)
	err = http.ListenAndServe(cfg.Addr, nil)
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
