package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/automoto/keydoor/server/core"
	"github.com/automoto/keydoor/shared/messages"
	"github.com/automoto/keydoor/shared/netconfig"
)

func main() {
	port := flag.Uint("port", netconfig.DefaultPort, "Server port (overridden by PORT)")
	tickRate := flag.Int("tickrate", netconfig.TickRate, "Command processing rate (ticks per second)")
	maxRooms := flag.Int("rooms", 0, "Maximum concurrent rooms, 0 for unlimited (overridden by KEYDOOR_ROOMS)")
	version := flag.String("version", messages.ProtocolVersion, "Required client protocol version (empty = accept any)")
	flag.Parse()

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			log.Fatalf("Invalid PORT %q: %v", v, err)
		}
		*port = uint(p)
	}
	if v := os.Getenv("KEYDOOR_ROOMS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Fatalf("Invalid KEYDOOR_ROOMS %q", v)
		}
		*maxRooms = n
	}

	server := core.NewServer(*tickRate, *version, *maxRooms)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down relay...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting keydoor relay on port %d (tick rate: %d/s, rooms: %d, version: %q)",
		*port, *tickRate, *maxRooms, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
