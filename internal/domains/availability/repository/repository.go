package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/availability/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/period"
	gRepo "stayhub/shared/repository"
)

var (
	conflictColumns = []string{model.FieldRoomTypeID, model.FieldDate}
	updateColumns   = []string{model.FieldAvailableCount, constant.FieldModifiedAt, constant.FieldModifiedBy}
)

type Availability interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Availability, error)
	Save(ctx context.Context, record model.Availability) error
	Between(ctx context.Context, roomTypeIDs []string, from, to time.Time) ([]model.Availability, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Availability]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Availability](model.EntityName, model.TableName, model.FieldRoomTypeID, db, otel),
		otel:       otel,
	}
}

// Save writes the count of the record's date, replacing any stored count.
func (r *repositoryImpl) Save(ctx context.Context, record model.Availability) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record.Date = period.Day(record.Date)

	if err = r.Upsert(ctx, record, conflictColumns, updateColumns); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}

	return nil
}

// Between returns the stored rows of the room types dated within [from, to].
func (r *repositoryImpl) Between(ctx context.Context, roomTypeIDs []string, from, to time.Time) (records []model.Availability, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.Between")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(roomTypeIDs) == 0 {
		return nil, nil
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldDate, SortDir: gDto.SortDirAsc}

	records, err = r.GetAll(ctx, params, BetweenFilter(roomTypeIDs, from, to))
	if err != nil {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	for idx := range records {
		records[idx].Date = period.Day(records[idx].Date)
	}

	return records, nil
}

// On filters the row of one room type on one date.
func On(roomTypeID string, day time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{}.And(
		gDto.Filter{Field: model.FieldRoomTypeID, Value: roomTypeID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldDate, Value: period.FormatDate(day), Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)
}

func BetweenFilter(roomTypeIDs []string, from, to time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{}.And(
		gDto.Filter{Field: model.FieldRoomTypeID, Value: roomTypeIDs, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		gDto.Filter{ArgName: "date_from", Field: model.FieldDate, Value: period.FormatDate(from), Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		gDto.Filter{ArgName: "date_to", Field: model.FieldDate, Value: period.FormatDate(to), Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
	)
}
