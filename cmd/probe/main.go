package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/airbusgeo/imagery-probe/common"
	"github.com/airbusgeo/imagery-probe/interface/provider"
	"github.com/airbusgeo/imagery-probe/probe"
	"github.com/airbusgeo/imagery-probe/service/geometry"
	"github.com/airbusgeo/imagery-probe/service/log"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type config struct {
	BBox   string
	Center string

	SentinelToken        string
	SentinelClientID     string
	SentinelClientSecret string
	GoogleApiKey         string

	LogLevel string
}

func newAppConfig() (*config, error) {
	config := config{}
	flag.StringVar(&config.BBox, "bbox", common.DefaultBBox, "bounding box to probe (west,south,east,north)")
	flag.StringVar(&config.Center, "center", common.DefaultCenter, "center of the static map (lat,lon)")

	// Providers requiring credentials: disabled if not set
	flag.StringVar(&config.SentinelToken, "sentinel-token", "", "sentinel hub bearer token (optional). To probe the Sentinel Hub process API.")
	flag.StringVar(&config.SentinelClientID, "sentinel-client-id", "", "sentinel hub oauth client id (optional). To probe the Sentinel Hub process API, retrieving the token with the client credentials.")
	flag.StringVar(&config.SentinelClientSecret, "sentinel-client-secret", "", "sentinel hub oauth client secret")
	flag.StringVar(&config.GoogleApiKey, "google-apikey", "", "google maps api key (optional). To probe the Google Maps Static API.")

	flag.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	if config.SentinelClientID != "" && config.SentinelClientSecret == "" {
		return nil, fmt.Errorf("missing sentinel-client-secret config flag")
	}
	return &config, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := run(ctx)
	if err != nil {
		log.Fatal("error", zap.Error(err))
	}
}

func run(ctx context.Context) error {
	config, err := newAppConfig()
	if err != nil {
		return err
	}
	if err := log.Configure(config.LogLevel); err != nil {
		return err
	}
	defer log.Sync()

	ctx = log.With(ctx, zap.String(common.TagRunID, uuid.New().String()))

	// Load imagery providers
	providers := []provider.ImageryProvider{provider.NewOpenAerialMapProvider()}
	switch {
	case config.SentinelClientID != "":
		providers = append(providers, provider.NewSentinelHubOAuthProvider(config.SentinelClientID, config.SentinelClientSecret, ""))
	case config.SentinelToken != "":
		providers = append(providers, provider.NewSentinelHubProvider(config.SentinelToken))
	}
	providers = append(providers, provider.NewWorldviewProvider())
	if config.GoogleApiKey != "" {
		providers = append(providers, provider.NewGoogleStaticMapProvider(config.GoogleApiKey))
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	log.Logger(ctx).Debug("probing",
		zap.String(common.TagBBox, config.BBox),
		zap.String(common.TagAOI, geometry.BBoxWKT(config.BBox)),
		zap.Strings("providers", names))

	probe.Run(ctx, os.Stdout, common.Area{BBox: config.BBox, Center: config.Center}, providers...)
	return nil
}
