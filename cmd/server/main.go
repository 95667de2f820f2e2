// Package main implements the entry point for the People API server, a
// person directory with validated create, lookup and update operations,
// login, contact and image upload endpoints.
package main

import (
	"context"
	"fmt"
	"log"
)

// main is the entry point for the people-api server.
// It loads configuration, sets up logging, wires the application and runs
// the HTTP server until it receives SIGINT or SIGTERM.
func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run initializes the application and blocks until the server stops.
func run(ctx context.Context) error {
	app, err := initializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}

	return newApplication(cfg, l)
}
