package provider

import (
	"context"

	"github.com/airbusgeo/imagery-probe/common"
)

// ImageryProvider is the interface of an imagery service that can be probed for an area
type ImageryProvider interface {
	// Probe performs a single request on the provider for the given area.
	// The returned error is classified with service.ErrorKind
	Probe(ctx context.Context, area common.Area) (common.Result, error)

	// Name of the provider
	Name() string
}
