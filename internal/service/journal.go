package service

import (
	"context"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

func (s *Service) Journal(ctx context.Context, filter entity.JournalFilter) ([]entity.Mutation, int, error) {
	return s.repo.Mutations(ctx, filter)
}

// SaveMutation stores a mutation event received from the broker.
func (s *Service) SaveMutation(ctx context.Context, m entity.Mutation) error {
	return s.repo.SaveMutation(ctx, m)
}
