package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-spatial/geom"
	geomwkt "github.com/go-spatial/geom/encoding/wkt"
)

// ParseBBox reads a "minx,miny,maxx,maxy" bounding box.
// The coordinates are neither reordered nor checked: the extent is returned as written.
func ParseBBox(bbox string) (geom.Extent, error) {
	parts := strings.Split(bbox, ",")
	if len(parts) != 4 {
		return geom.Extent{}, fmt.Errorf("ParseBBox: expecting 4 comma-separated coordinates, got %d", len(parts))
	}
	var e geom.Extent
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Extent{}, fmt.Errorf("ParseBBox: %w", err)
		}
		e[i] = v
	}
	return e, nil
}

// ExtentPolygon returns the rectangle covered by the extent
func ExtentPolygon(e geom.Extent) geom.Polygon {
	return geom.Polygon{{
		{e[0], e[1]},
		{e[2], e[1]},
		{e[2], e[3]},
		{e[0], e[3]},
	}}
}

// BBoxWKT returns the bounding box as a WKT polygon, or an empty string if it cannot be parsed nor encoded
func BBoxWKT(bbox string) string {
	e, err := ParseBBox(bbox)
	if err != nil {
		return ""
	}
	wkt, err := geomwkt.EncodeString(ExtentPolygon(e))
	if err != nil {
		return ""
	}
	return wkt
}
