package services

import (
	"context"

	"github.com/dmitrijs2005/menta/internal/client/client"
	"github.com/dmitrijs2005/menta/internal/client/models"
)

type SpotService interface {
	Near(ctx context.Context, lat, lon, radius float64) ([]models.StudySpot, error)
	InBox(ctx context.Context, box models.BoundingBox) ([]models.StudySpot, error)
}

type spotService struct {
	client client.Client
}

func NewSpotService(c client.Client) SpotService {
	return &spotService{client: c}
}

func (s *spotService) Near(ctx context.Context, lat, lon, radius float64) ([]models.StudySpot, error) {
	return s.client.StudySpots(ctx, models.NearQuery(lat, lon, radius))
}

func (s *spotService) InBox(ctx context.Context, box models.BoundingBox) ([]models.StudySpot, error) {
	return s.client.StudySpots(ctx, models.BoxQuery(box))
}
