package main

import (
	"os"

	"github.com/studyportal/backend/internal/pkg/logger"
	"github.com/studyportal/backend/internal/server"
)

// @title Study Portal API
// @version 1.0
// @description Departmental study material portal: accounts, batches, subjects and downloadable materials

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Errors are already logged inside the setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
