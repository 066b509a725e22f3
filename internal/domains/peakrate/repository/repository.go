package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/peakrate/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/period"
	gRepo "stayhub/shared/repository"
)

type PeakRate interface {
	Insert(ctx context.Context, model model.PeakRateRule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PeakRateRule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PeakRateRule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Overlapping(ctx context.Context, roomTypeID string, from, to time.Time) ([]model.PeakRateRule, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PeakRateRule]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PeakRate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PeakRateRule](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// Overlapping returns the rules of the room type sharing a day with [from, to], ordered by start date.
// A zero from or to leaves that side of the window open.
func (r *repositoryImpl) Overlapping(ctx context.Context, roomTypeID string, from, to time.Time) (rules []model.PeakRateRule, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".peak_rate_rule.Overlapping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldStartDate, SortDir: gDto.SortDirAsc}

	rules, err = r.GetAll(ctx, params, OverlappingFilter(roomTypeID, from, to))
	if err != nil {
		return nil, fmt.Errorf("failed to get overlapping peak rates: %w", err)
	}

	for idx := range rules {
		rules[idx].StartDate = period.Day(rules[idx].StartDate)
		rules[idx].EndDate = period.Day(rules[idx].EndDate)
	}

	return rules, nil
}

// OverlappingFilter matches rules with start_date <= to and end_date >= from.
func OverlappingFilter(roomTypeID string, from, to time.Time) gDto.FilterGroup {
	filter := gDto.FilterGroup{}.And(
		gDto.Filter{Field: model.FieldRoomTypeID, Value: roomTypeID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)

	if !to.IsZero() {
		filter = filter.And(gDto.Filter{ArgName: "window_to", Field: model.FieldStartDate, Value: period.FormatDate(to), Operator: gDto.FilterOperatorLessEq, Table: model.TableName})
	}

	if !from.IsZero() {
		filter = filter.And(gDto.Filter{ArgName: "window_from", Field: model.FieldEndDate, Value: period.FormatDate(from), Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	return filter
}
