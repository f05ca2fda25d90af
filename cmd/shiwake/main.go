package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/shiwake-dev/shiwake/internal/commands"
)

func main() {
	// A .env file may point SHIWAKE_CONFIG somewhere else; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
