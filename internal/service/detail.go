package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/httpclients/recordstore"
)

// CompanyDetail loads one company with its care activities and quotes.
// An unknown id yields the not_found state rather than an error.
func (s *Service) CompanyDetail(ctx context.Context, id string) (entity.CompanyDetail, error) {
	if id == "" {
		return entity.CompanyDetail{}, fmt.Errorf("%w: empty company id", entity.ErrInvalidArgument)
	}

	companies := entity.MustSchema(entity.Companies)

	var (
		company entity.Record
		care    []entity.Record
		quotes  []entity.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		company, err = s.findOne(gCtx, companies, id)

		return err
	})

	g.Go(func() error {
		rows, err := s.store.Find(gCtx, entity.CareActivities, recordstore.Where(entity.CareActivities, entity.CareCompany, id))
		if err != nil {
			return fmt.Errorf("find %s: %w", entity.CareActivities, err)
		}

		care = entity.RelatedBy(rows, entity.CareCompany, id)

		return nil
	})

	g.Go(func() error {
		rows, err := s.store.Find(gCtx, entity.Quotes, recordstore.Where(entity.Quotes, entity.QuoteCompany, id))
		if err != nil {
			return fmt.Errorf("find %s: %w", entity.Quotes, err)
		}

		quotes = entity.RelatedBy(rows, entity.QuoteCompany, id)

		return nil
	})

	err := g.Wait()
	if errors.Is(err, entity.ErrNotFound) {
		return entity.CompanyDetail{State: entity.DetailNotFound}, nil
	}

	if err != nil {
		return entity.CompanyDetail{}, err
	}

	return entity.CompanyDetail{
		State:   entity.DetailReady,
		Company: company,
		Care:    care,
		Quotes:  quotes,
		Summary: entity.DetailSummary{
			CareCount:  len(care),
			QuoteCount: len(quotes),
			QuoteTotal: sumQuotes(ctx, quotes),
		},
	}, nil
}

func sumQuotes(ctx context.Context, quotes []entity.Record) decimal.Decimal {
	total := decimal.Zero

	for _, q := range quotes {
		raw := q.String(entity.QuoteTotal)
		if raw == "" {
			continue
		}

		v, err := decimal.NewFromString(raw)
		if err != nil {
			slog.WarnContext(ctx, "skip unparseable quote total", "key", q.String(entity.QuoteID), "value", raw)
			continue
		}

		total = total.Add(v)
	}

	return total
}

// RelatedRecord returns one care activity or quote of the company.
func (s *Service) RelatedRecord(ctx context.Context, companyID, name, key string) (entity.Record, error) {
	schema, err := entity.SchemaByName(name)
	if err != nil {
		return nil, err
	}

	var companyField string

	switch schema.Name {
	case entity.CareActivities:
		companyField = entity.CareCompany
	case entity.Quotes:
		companyField = entity.QuoteCompany
	default:
		return nil, fmt.Errorf("%w: %s is not related to companies", entity.ErrInvalidArgument, schema.Name)
	}

	record, err := s.findOne(ctx, schema, key)
	if err != nil {
		return nil, err
	}

	if record.String(companyField) != companyID {
		return nil, fmt.Errorf("%w: %s %s of company %s", entity.ErrNotFound, schema.Name, key, companyID)
	}

	return record, nil
}
