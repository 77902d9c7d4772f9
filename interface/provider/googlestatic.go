package provider

import (
	"context"
	"fmt"

	"github.com/airbusgeo/imagery-probe/common"
	"github.com/airbusgeo/imagery-probe/service"
)

const (
	GoogleStaticMapURL = "https://maps.googleapis.com/maps/api/staticmap"

	googleStaticMapZoom = "12"
	googleStaticMapSize = "512x512"
)

// GoogleStaticMapProvider implements ImageryProvider for the Google Maps Static API
type GoogleStaticMapProvider struct {
	Endpoint string
	apiKey   string
}

// NewGoogleStaticMapProvider creates a new ImageryProvider requesting a satellite map centered on the area
func NewGoogleStaticMapProvider(apiKey string) *GoogleStaticMapProvider {
	return &GoogleStaticMapProvider{Endpoint: GoogleStaticMapURL, apiKey: apiKey}
}

// Name implements ImageryProvider
func (p *GoogleStaticMapProvider) Name() string {
	return "Google Maps"
}

// Probe implements ImageryProvider
// The map is centered on area.Center, the image is fetched but not kept.
func (p *GoogleStaticMapProvider) Probe(ctx context.Context, area common.Area) (common.Result, error) {
	url, err := withQuery(p.Endpoint, map[string]string{
		"center":  area.Center,
		"zoom":    googleStaticMapZoom,
		"size":    googleStaticMapSize,
		"maptype": "satellite",
		"key":     p.apiKey,
	})
	if err != nil {
		return common.Result{}, service.WithKind(service.ErrorKindRequest, err)
	}
	if err := service.HTTPGetDiscard(ctx, url, nil); err != nil {
		return common.Result{}, err
	}
	return common.Result{
		Provider: p.Name(),
		URL:      url,
		Found:    true,
		Message:  fmt.Sprintf("%s: received image from %s", p.Name(), url),
	}, nil
}
