package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/airbusgeo/imagery-probe/common"
	"github.com/airbusgeo/imagery-probe/service"
	"github.com/airbusgeo/imagery-probe/service/log"
	"github.com/araddon/dateparse"
	"go.uber.org/zap"
)

const OpenAerialMapURL = "https://api.openaerialmap.org/meta"

// OpenAerialMapProvider implements ImageryProvider for the OpenAerialMap metadata catalog
type OpenAerialMapProvider struct {
	Endpoint string
}

// NewOpenAerialMapProvider creates a new ImageryProvider querying the public OpenAerialMap catalog
func NewOpenAerialMapProvider() *OpenAerialMapProvider {
	return &OpenAerialMapProvider{Endpoint: OpenAerialMapURL}
}

// Name implements ImageryProvider
func (p *OpenAerialMapProvider) Name() string {
	return "OpenAerialMap"
}

type oamImage struct {
	UUID             string `json:"uuid"`
	Title            string `json:"title"`
	Provider         string `json:"provider"`
	AcquisitionStart string `json:"acquisition_start"`
}

type oamResponse struct {
	Results []oamImage `json:"results"`
}

// Probe implements ImageryProvider
// It searches the tiff images intersecting the bounding box and returns the first one.
func (p *OpenAerialMapProvider) Probe(ctx context.Context, area common.Area) (common.Result, error) {
	url, err := withQuery(p.Endpoint, map[string]string{
		"bbox":   area.BBox,
		"format": "tiff",
	})
	if err != nil {
		return common.Result{}, service.WithKind(service.ErrorKindRequest, err)
	}

	body, err := service.HTTPGet(ctx, url, nil)
	if err != nil {
		return common.Result{}, err
	}

	var resp oamResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return common.Result{}, service.WithKind(service.ErrorKindDecode, fmt.Errorf("decode response: %w", err))
	}

	result := common.Result{Provider: p.Name(), URL: url}
	if len(resp.Results) == 0 {
		result.Message = p.Name() + ": no images available."
		return result, nil
	}

	first := resp.Results[0]
	result.Found = true
	result.ImageID = first.UUID
	result.Message = fmt.Sprintf("%s: found image %s", p.Name(), first.UUID)

	fields := []zap.Field{zap.String(common.TagImageID, first.UUID), zap.Int("results", len(resp.Results))}
	if first.AcquisitionStart != "" {
		if date, err := dateparse.ParseAny(first.AcquisitionStart); err != nil {
			log.Logger(ctx).Sugar().Debugf("unable to parse acquisition date %q: %v", first.AcquisitionStart, err)
		} else {
			fields = append(fields, zap.Time(common.TagImageDate, date))
		}
	}
	log.Logger(ctx).Debug(fmt.Sprintf("%s (%s)", first.Title, first.Provider), fields...)

	return result, nil
}
