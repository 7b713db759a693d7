package service

import (
	"context"

	"github.com/samandr77/microservices/backoffice/internal/calendar"
	"github.com/samandr77/microservices/backoffice/internal/entity"
)

// CareCalendar projects care activities on the month grid. month is zero based.
func (s *Service) CareCalendar(ctx context.Context, month, year int) (calendar.CareCalendar, error) {
	err := calendar.ValidateMonth(month, year)
	if err != nil {
		return calendar.CareCalendar{}, err
	}

	rows, lookups, err := s.load(ctx, entity.MustSchema(entity.CareActivities))
	if err != nil {
		return calendar.CareCalendar{}, err
	}

	return calendar.ProjectCare(rows, lookups, month, year), nil
}

// CompanyCalendar projects contact birthdays and founding anniversaries.
func (s *Service) CompanyCalendar(ctx context.Context, month, year int) (calendar.CompanyCalendar, error) {
	err := calendar.ValidateMonth(month, year)
	if err != nil {
		return calendar.CompanyCalendar{}, err
	}

	rows, _, err := s.load(ctx, entity.MustSchema(entity.Companies))
	if err != nil {
		return calendar.CompanyCalendar{}, err
	}

	return calendar.ProjectCompanies(rows, month, year), nil
}
