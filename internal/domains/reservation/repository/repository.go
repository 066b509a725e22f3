package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/reservation/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/period"
	gRepo "stayhub/shared/repository"
)

type Reservation interface {
	HasActive(ctx context.Context, roomTypeID string, day time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// HasActive reports whether a pending or confirmed reservation of the room type occupies day.
func (r *repositoryImpl) HasActive(ctx context.Context, roomTypeID string, day time.Time) (exist bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.HasActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err = r.Exist(ctx, ActiveOn(roomTypeID, day))
	if err != nil {
		return false, fmt.Errorf("failed to check active reservations: %w", err)
	}

	return exist, nil
}

// ActiveOn filters active reservations of the room type whose stay covers day.
func ActiveOn(roomTypeID string, day time.Time) gDto.FilterGroup {
	date := period.FormatDate(day)

	return gDto.FilterGroup{}.And(
		gDto.Filter{Field: model.FieldRoomTypeID, Value: roomTypeID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		gDto.Filter{ArgName: "day_in", Field: model.FieldCheckIn, Value: date, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		gDto.Filter{ArgName: "day_out", Field: model.FieldCheckOut, Value: date, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
	)
}
