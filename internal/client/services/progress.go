package services

import (
	"context"

	"github.com/dmitrijs2005/menta/internal/client/client"
	"github.com/dmitrijs2005/menta/internal/client/models"
)

type ProgressService interface {
	Progress(ctx context.Context, userID string) (models.Progress, error)
}

type progressService struct {
	client client.Client
}

func NewProgressService(c client.Client) ProgressService {
	return &progressService{client: c}
}

func (p *progressService) Progress(ctx context.Context, userID string) (models.Progress, error) {
	entries, err := p.client.Progress(ctx, userID)
	if err != nil {
		return models.Progress{}, err
	}
	return models.Progress{Entries: entries}, nil
}
