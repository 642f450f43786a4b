package models

import (
	"errors"
	"math"
)

var ErrInvalidSpotQuery = errors.New("invalid study spot query")

// StudySpot is a point of interest returned by the study spot search.
type StudySpot struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// Name falls back to a placeholder for untagged spots.
func (s StudySpot) Name() string {
	if n := s.Tags["name"]; n != "" {
		return n
	}
	return "Unnamed Spot"
}

// StudySpotsResponse is the body returned by POST /api/study_spots.
type StudySpotsResponse struct {
	Elements []StudySpot `json:"elements"`
}

// BoundingBox is a south/west/north/east rectangle in degrees.
type BoundingBox struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// SpotQuery searches either around a center (Lat, Lon, Radius meters) or
// inside a bounding box. Exactly one form must be used.
type SpotQuery struct {
	Lat    *float64     `json:"lat,omitempty"`
	Lon    *float64     `json:"lon,omitempty"`
	Radius float64      `json:"radius,omitempty"`
	BBox   *BoundingBox `json:"bbox,omitempty"`
}

// Default map center (New York City) and radius.
const (
	DefaultLat    = 40.7128
	DefaultLon    = -74.0060
	DefaultRadius = 1000
)

// NearQuery builds a center+radius query.
func NearQuery(lat, lon, radius float64) SpotQuery {
	return SpotQuery{Lat: &lat, Lon: &lon, Radius: radius}
}

// BoxQuery builds a bounding-box query.
func BoxQuery(b BoundingBox) SpotQuery {
	return SpotQuery{BBox: &b}
}

func (q SpotQuery) Validate() error {
	center := q.Lat != nil || q.Lon != nil
	if center == (q.BBox != nil) {
		return ErrInvalidSpotQuery
	}

	if q.BBox != nil {
		b := q.BBox
		if !validLat(b.South) || !validLat(b.North) || !validLon(b.West) || !validLon(b.East) || b.South >= b.North {
			return ErrInvalidSpotQuery
		}
		return nil
	}

	if q.Lat == nil || q.Lon == nil || !validLat(*q.Lat) || !validLon(*q.Lon) || q.Radius <= 0 {
		return ErrInvalidSpotQuery
	}
	return nil
}

func validLat(v float64) bool { return !math.IsNaN(v) && v >= -90 && v <= 90 }
func validLon(v float64) bool { return !math.IsNaN(v) && v >= -180 && v <= 180 }
