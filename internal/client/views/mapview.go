package views

import (
	"context"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/services"
)

// MapView lists study spots around a center point or inside a box.
type MapView struct {
	auth  Auth
	spots services.SpotService

	Lat    float64
	Lon    float64
	Radius float64

	Spots Loader[[]models.StudySpot]
}

func NewMapView(a Auth, s services.SpotService) *MapView {
	return &MapView{
		auth:   a,
		spots:  s,
		Lat:    models.DefaultLat,
		Lon:    models.DefaultLon,
		Radius: models.DefaultRadius,
	}
}

func (v *MapView) Mount(ctx context.Context) error {
	return v.Search(ctx)
}

// Search queries around the current center.
func (v *MapView) Search(ctx context.Context) error {
	if err := guard(v.auth); err != nil {
		return err
	}
	err := v.Spots.Load(ctx, func(ctx context.Context) ([]models.StudySpot, error) {
		return v.spots.Near(ctx, v.Lat, v.Lon, v.Radius)
	})
	return checked(ctx, v.auth, err)
}

// SearchBox queries inside b, as when the map is panned.
func (v *MapView) SearchBox(ctx context.Context, b models.BoundingBox) error {
	if err := guard(v.auth); err != nil {
		return err
	}
	err := v.Spots.Load(ctx, func(ctx context.Context) ([]models.StudySpot, error) {
		return v.spots.InBox(ctx, b)
	})
	return checked(ctx, v.auth, err)
}

func (v *MapView) Close() { v.Spots.Close() }
