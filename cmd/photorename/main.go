// cmd/photorename/main.go
package main

import (
	"github.com/jmoren/photorename/internal/logger"
	"github.com/jmoren/photorename/pkg/cli"
)

func main() {
	// Initialize logger
	logger.Init()

	// Execute CLI
	cli.Execute()
}
