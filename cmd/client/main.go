// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/ml-community/internal/adapter"
	"github.com/MKhiriev/ml-community/internal/client"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	serverAddress := flag.String("server", envOr("ML_SERVER_ADDRESS", "localhost:8080"), "server address")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	token := flag.String("token", os.Getenv("ML_TOKEN"), "access token for authenticated commands")
	version := flag.Bool("version", false, "print build info and exit")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	if *version {
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
			buildInfo.BuildVersion(), buildInfo.BuildDate(), buildInfo.BuildCommit())
		return
	}

	log := logger.NewClientLogger("ml-community-client")
	if err := logger.SetLevel(*logLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	api, err := adapter.NewHTTPAPIClient(*serverAddress, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}
	api.SetToken(*token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(api, os.Stdout, os.Stderr, log)
	if err = app.Run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
