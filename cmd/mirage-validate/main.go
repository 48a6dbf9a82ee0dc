package main

import (
	"fmt"
	"os"

	"github.com/sigma/mirage/internal/config"
)

func main() {
	configPath := "~/.config/mirage/config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	fmt.Printf("Validating config: %s\n", configPath)

	if _, err := config.LoadAndValidateConfig(configPath); err != nil {
		fmt.Printf("Config validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Config is valid")
}
