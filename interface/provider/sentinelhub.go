package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/airbusgeo/imagery-probe/common"
	"github.com/airbusgeo/imagery-probe/service"
	"github.com/airbusgeo/imagery-probe/service/geometry"
	"github.com/airbusgeo/imagery-probe/service/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	SentinelHubProcessURL = "https://services.sentinel-hub.com/api/v1/process"
	SentinelHubTokenURL   = "https://services.sentinel-hub.com/auth/realms/main/protocol/openid-connect/token"

	sentinelHubPreviewLength = 200
	sentinelHubImageSize     = 512
)

// trueColorEvalscript maps B04, B03, B02 to red, green, blue with a 2.5 gain
const trueColorEvalscript = `//VERSION=3
function setup() { return { input: ["B02", "B03", "B04"], output: { bands: 3 } }; }
function evaluatePixel(sample) { return [2.5 * sample.B04, 2.5 * sample.B03, 2.5 * sample.B02]; }`

type processRequest struct {
	Input      processInput  `json:"input"`
	Output     processOutput `json:"output"`
	Evalscript string        `json:"evalscript"`
}

type processInput struct {
	Bounds processBounds `json:"bounds"`
	Data   []processData `json:"data"`
}

type processBounds struct {
	BBox [4]float64 `json:"bbox"`
}

type processData struct {
	Type string `json:"type"`
}

type processOutput struct {
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Responses []processResponse `json:"responses"`
}

type processResponse struct {
	Identifier string        `json:"identifier"`
	Format     processFormat `json:"format"`
}

type processFormat struct {
	Type string `json:"type"`
}

func newTrueColorRequest(bbox [4]float64) processRequest {
	return processRequest{
		Input: processInput{
			Bounds: processBounds{BBox: bbox},
			Data:   []processData{{Type: "sentinel-2-l2a"}},
		},
		Output: processOutput{
			Width:     sentinelHubImageSize,
			Height:    sentinelHubImageSize,
			Responses: []processResponse{{Identifier: "default", Format: processFormat{Type: "image/jpeg"}}},
		},
		Evalscript: trueColorEvalscript,
	}
}

// SentinelHubProvider implements ImageryProvider for the Sentinel Hub process API
type SentinelHubProvider struct {
	Endpoint string

	token       string
	credentials *clientcredentials.Config
}

// NewSentinelHubProvider creates a new ImageryProvider authenticated with a bearer token
func NewSentinelHubProvider(token string) *SentinelHubProvider {
	return &SentinelHubProvider{Endpoint: SentinelHubProcessURL, token: token}
}

// NewSentinelHubOAuthProvider creates a new ImageryProvider retrieving its bearer token
// with the OAuth2 client credentials flow (tokenURL defaults to SentinelHubTokenURL)
func NewSentinelHubOAuthProvider(clientID, clientSecret, tokenURL string) *SentinelHubProvider {
	if tokenURL == "" {
		tokenURL = SentinelHubTokenURL
	}
	return &SentinelHubProvider{
		Endpoint: SentinelHubProcessURL,
		credentials: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		},
	}
}

// Name implements ImageryProvider
func (p *SentinelHubProvider) Name() string {
	return "SentinelHub"
}

// bearer returns the token to authenticate the request with
func (p *SentinelHubProvider) bearer(ctx context.Context) (*oauth2.Token, error) {
	if p.credentials == nil {
		if p.token == "" {
			return nil, fmt.Errorf("no bearer token")
		}
		return &oauth2.Token{AccessToken: p.token, TokenType: "Bearer"}, nil
	}

	client, release := service.NewScopedClient(nil)
	defer release()
	token, err := p.credentials.Token(context.WithValue(ctx, oauth2.HTTPClient, client))
	if err != nil {
		return nil, fmt.Errorf("retrieve token: %w", err)
	}
	return token, nil
}

// Probe implements ImageryProvider
// It requests a 512x512 true color jpeg of the bounding box and returns the beginning of the response.
func (p *SentinelHubProvider) Probe(ctx context.Context, area common.Area) (common.Result, error) {
	extent, err := geometry.ParseBBox(area.BBox)
	if err != nil {
		return common.Result{}, service.WithKind(service.ErrorKindRequest, err)
	}
	payload, err := json.Marshal(newTrueColorRequest(extent))
	if err != nil {
		return common.Result{}, service.WithKind(service.ErrorKindRequest, fmt.Errorf("marshal request: %w", err))
	}

	token, err := p.bearer(ctx)
	if err != nil {
		return common.Result{}, service.WithKind(service.ErrorKindAuth, err)
	}

	log.Logger(ctx).Sugar().Debugf("process request on %s", geometry.BBoxWKT(area.BBox))
	body, err := service.HTTPPostJSON(ctx, p.Endpoint, bytes.NewReader(payload), func(rt http.RoundTripper) http.RoundTripper {
		return &oauth2.Transport{Source: oauth2.StaticTokenSource(token), Base: rt}
	})
	if err != nil {
		return common.Result{}, err
	}

	pv := preview(body, sentinelHubPreviewLength)
	return common.Result{
		Provider: p.Name(),
		URL:      p.Endpoint,
		Found:    true,
		Preview:  pv,
		Message:  fmt.Sprintf("%s: received response %s...", p.Name(), pv),
	}, nil
}
