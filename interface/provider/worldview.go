package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/airbusgeo/imagery-probe/common"
	"github.com/airbusgeo/imagery-probe/service"
)

const (
	WorldviewSnapshotURL = "https://wvs.earthdata.nasa.gov/api/v1/snapshot"
	WorldviewLayer       = "MODIS_Terra_CorrectedReflectance_TrueColor"
)

// WorldviewProvider implements ImageryProvider for the NASA Worldview snapshot service
type WorldviewProvider struct {
	Endpoint string
	// Now returns the current time (time.Now if nil)
	Now func() time.Time
}

// NewWorldviewProvider creates a new ImageryProvider requesting yesterday's true color snapshot
func NewWorldviewProvider() *WorldviewProvider {
	return &WorldviewProvider{Endpoint: WorldviewSnapshotURL}
}

// Name implements ImageryProvider
func (p *WorldviewProvider) Name() string {
	return "NASA Worldview"
}

// SnapshotDate returns the day before now (UTC) at midnight, formatted as expected by the snapshot service
func SnapshotDate(now time.Time) string {
	return now.UTC().Add(-24*time.Hour).Format("2006-01-02") + "T00:00:00Z"
}

func (p *WorldviewProvider) snapshotURL(bbox string) (string, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return withQuery(p.Endpoint, map[string]string{
		"REQUEST": "GetSnapshot",
		"TIME":    SnapshotDate(now()),
		"BBOX":    bbox,
		"CRS":     "EPSG:4326",
		"LAYERS":  WorldviewLayer,
		"WIDTH":   "1024",
		"HEIGHT":  "1024",
		"FORMAT":  "image/jpeg",
	})
}

// Probe implements ImageryProvider
// The snapshot is fetched but not kept: only the url is reported.
func (p *WorldviewProvider) Probe(ctx context.Context, area common.Area) (common.Result, error) {
	url, err := p.snapshotURL(area.BBox)
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
