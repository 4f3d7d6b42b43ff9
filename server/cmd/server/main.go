package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/server/core"
	"github.com/automoto/quai/shared/protocol"
)

func main() {
	port := flag.Uint("port", cfg.Server.Port, "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", "Quai Arena", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	moveSpeed := flag.Float64("movespeed", cfg.Server.PlayerSpeed, "Player movement speed (units/s)")
	health := flag.Int("health", cfg.Server.PlayerHealth, "Player starting health")
	assetsDir := flag.String("assets", "", "Directory holding levels/ (empty = embedded layouts)")
	layout := flag.String("layout", cfg.Server.LayoutPath, "Spawn layout path inside the assets directory")
	flag.Parse()

	cfg.Server.PlayerSpeed = *moveSpeed
	cfg.Server.PlayerHealth = *health

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	level, err := core.LoadServerLevel(*assetsDir, *layout)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	server := core.NewServer(*tickRate, *name, *version, level)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting Quai server %q on port %d (tick rate: %d/s, layout: %s)",
		*name, *port, *tickRate, level.Layout.Name)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
