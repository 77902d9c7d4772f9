package common

// Default area probed by the command line
const (
	DefaultBBox   = "-74.05,40.65,-73.85,40.85"
	DefaultCenter = "30.5,50.4"
)

// Area is the geographic extent sent to the providers
type Area struct {
	// BBox is "west,south,east,north", sent as is to the providers
	BBox string
	// Center is "lat,lon", used by providers expecting a point instead of a bounding box
	Center string
}

// Result of a successful probe
type Result struct {
	Provider string
	// URL is the fetched url
	URL string
	// Found is false if the provider answered without any image
	Found bool
	// ImageID is the identifier of the first image found, if the provider returns a list of images
	ImageID string
	// Preview is the beginning of the response body, if the provider returns an opaque body
	Preview string
	// Message is the human-readable status line
	Message string
}
