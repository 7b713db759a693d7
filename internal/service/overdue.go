package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/backoffice/internal/calendar"
	"github.com/samandr77/microservices/backoffice/internal/entity"
)

// NotifyOverdueCare logs the overdue care activities and mails the digest
// when a mailer is configured.
func (s *Service) NotifyOverdueCare(ctx context.Context) error {
	rows, lookups, err := s.load(ctx, entity.MustSchema(entity.CareActivities))
	if err != nil {
		return err
	}

	items := calendar.Overdue(rows, lookups, s.now())

	slog.InfoContext(ctx, "overdue care activities", "count", len(items))

	if len(items) == 0 || s.mailer == nil {
		return nil
	}

	err = s.mailer.SendOverdueDigest(ctx, items)
	if err != nil {
		return fmt.Errorf("send overdue digest: %w", err)
	}

	return nil
}
