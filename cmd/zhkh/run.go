package cmd

import (
	"fmt"
	"os"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/config"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/auth"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/server"
)

// run is the entrypoint for the assistant server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := server.NewAppState(cfg)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if generateKey {
		fmt.Println(auth.GenerateJWT(cfg))
		os.Exit(0)
	}
	if dumpConfig {
		fmt.Printf("%+v\n", cfg)
		os.Exit(0)
	}
}
