package common

// Log fields
const (
	TagRunID     = "run_id"
	TagProvider  = "provider"
	TagURL       = "url"
	TagBBox      = "bbox"
	TagAOI       = "aoi"
	TagImageID   = "image_id"
	TagImageDate = "image_date"
	TagKind      = "error_kind"
	TagTemporary = "temporary"
	TagDuration  = "duration"
)
