package main

import (
	"fmt"
	"os"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/dispatch"
	"auction-house/internal/ledger"
	"auction-house/internal/server"
	"auction-house/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	assetLedger := ledger.NewMemoryLedger()
	auctionSvc := auction.NewAuctionService(assetLedger)

	dispatcher := dispatch.NewDispatcher(auctionSvc, assetLedger, dispatch.Portals{
		EtherPortal:  cfg.EtherPortal,
		ERC20Portal:  cfg.ERC20Portal,
		ERC721Portal: cfg.ERC721Portal,
		AddressRelay: cfg.AddressRelay,
	})

	router := server.SetupRouter(dispatcher)

	addr := ":" + cfg.Port
	fmt.Printf("Starting marketplace server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
