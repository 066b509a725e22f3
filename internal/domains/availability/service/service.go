package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"stayhub/config"
	"stayhub/infras/kafka"
	"stayhub/infras/otel"
	"stayhub/internal/domains/availability/model"
	"stayhub/internal/domains/availability/model/dto"
	"stayhub/internal/domains/availability/repository"
	peakRateModel "stayhub/internal/domains/peakrate/model"
	peakRateRepo "stayhub/internal/domains/peakrate/repository"
	propertyModel "stayhub/internal/domains/property/model"
	propertyRepo "stayhub/internal/domains/property/repository"
	reservationRepo "stayhub/internal/domains/reservation/repository"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	roomTypeRepo "stayhub/internal/domains/roomtype/repository"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	gModel "stayhub/shared/model"
	"stayhub/shared/period"
	"stayhub/shared/timezone"
	"stayhub/shared/validator"

	"github.com/rs/zerolog/log"
)

var (
	errEmptyBatch       = failure.BadRequestFromString("availability must not be empty")
	errPropertyNotFound = failure.NotFound("property not found")
)

// Availability reads and writes per-day availability and assembles monthly price calendars.
type Availability interface {
	GetAvailability(ctx context.Context, roomTypeID string, date time.Time) (int, error)
	SetAvailability(ctx context.Context, roomTypeID string, date time.Time, isAvailable bool) error
	ApplyBulk(ctx context.Context, roomTypeID, ownerID string, changes []dto.Change) (dto.BulkResult, error)
	MonthlyView(ctx context.Context, roomTypeID, yearMonth string) (dto.MonthlyViewResponse, error)
	OwnerMonthlyView(ctx context.Context, roomTypeID, ownerID, yearMonth string) (dto.MonthlyViewResponse, error)
	PropertyCalendar(ctx context.Context, propertyID, yearMonth string) (dto.PropertyCalendarResponse, error)
}

type serviceImpl struct {
	repo            repository.Availability
	roomTypeRepo    roomTypeRepo.RoomType
	propertyRepo    propertyRepo.Property
	peakRateRepo    peakRateRepo.PeakRate
	reservationRepo reservationRepo.Reservation
	kafka           kafka.Client
	cfg             *config.Config
	otel            otel.Otel
}

func New(
	repo repository.Availability,
	roomTypeRepo roomTypeRepo.RoomType,
	propertyRepo propertyRepo.Property,
	peakRateRepo peakRateRepo.PeakRate,
	reservationRepo reservationRepo.Reservation,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		repo:            repo,
		roomTypeRepo:    roomTypeRepo,
		propertyRepo:    propertyRepo,
		peakRateRepo:    peakRateRepo,
		reservationRepo: reservationRepo,
		kafka:           kafka,
		cfg:             cfg,
		otel:            otel,
	}
}

// GetAvailability returns the units left on date, or the room type's total quantity when
// nothing is stored for it.
func (s *serviceImpl) GetAvailability(ctx context.Context, roomTypeID string, date time.Time) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.GetAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType, err := s.findRoomType(ctx, roomTypeID)
	if err != nil {
		return 0, err
	}

	record, err := s.repo.Get(ctx, repository.On(roomTypeID, date))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to get availability")

		return 0, fmt.Errorf("failed to get availability: %w", err)
	}

	return record.Count(roomType.TotalQuantity), nil
}

// SetAvailability fully releases or fully blocks date. Writing the same flag twice leaves the same row.
func (s *serviceImpl) SetAvailability(ctx context.Context, roomTypeID string, date time.Time, isAvailable bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.SetAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType, err := s.findRoomType(ctx, roomTypeID)
	if err != nil {
		return err
	}

	return s.store(ctx, roomType, date, isAvailable)
}

// ApplyBulk writes each distinct date of changes independently. Items that cannot be applied are
// reported in Rejected and never abort the batch; a storage error stops it and is returned with
// what was written so far.
func (s *serviceImpl) ApplyBulk(ctx context.Context, roomTypeID, ownerID string, changes []dto.Change) (res dto.BulkResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.ApplyBulk")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = dto.NewBulkResult()

	if len(changes) == 0 {
		return res, errEmptyBatch
	}

	roomType, err := s.findRoomType(ctx, roomTypeID)
	if err != nil {
		return res, err
	}

	if err = roomType.Authorize(ownerID); err != nil {
		return res, err
	}

	defer func() {
		if len(res.Applied) > 0 {
			s.publish(ctx, roomTypeID, res.Applied)
		}
	}()

	today := period.Today()

	for _, change := range dedupe(changes) {
		day, ok := period.ParseDate(change.Date)
		if !ok {
			res.Reject(change.Date, model.ReasonInvalidDate)

			continue
		}

		if change.MissingFlag {
			res.Reject(change.Date, model.ReasonInvalidFlag)

			continue
		}

		if day.Before(today) {
			res.Reject(change.Date, model.ReasonPastDate)

			continue
		}

		if !change.IsAvailable {
			active, err := s.reservationRepo.HasActive(ctx, roomTypeID, day)
			if err != nil {
				log.Error().Err(err).Str("room_type_id", roomTypeID).Str("date", change.Date).Msg("failed to check reservations")

				return res, fmt.Errorf("failed to check reservations: %w", err)
			}

			if active {
				res.Reject(change.Date, model.ReasonHasActiveReservations)

				continue
			}
		}

		if err = s.store(ctx, roomType, day, change.IsAvailable); err != nil {
			return res, err
		}

		res.Applied = append(res.Applied, change.Date)
	}

	log.Info().
		Str("room_type_id", roomTypeID).
		Int("applied", len(res.Applied)).
		Int("rejected", len(res.Rejected)).
		Msg("bulk availability applied")

	return res, nil
}

// MonthlyView returns one row per day of yearMonth with availability and resolved price.
func (s *serviceImpl) MonthlyView(ctx context.Context, roomTypeID, yearMonth string) (res dto.MonthlyViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.MonthlyView")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	year, month, ok := period.ParseMonth(yearMonth)
	if !ok {
		return res, failure.InvalidMonthFormat
	}

	roomType, err := s.findRoomType(ctx, roomTypeID)
	if err != nil {
		return res, err
	}

	records, err := s.monthRecords(ctx, []string{roomType.ID}, year, month)
	if err != nil {
		return res, err
	}

	return s.assemble(ctx, roomType, records[roomType.ID], year, month)
}

func (s *serviceImpl) OwnerMonthlyView(ctx context.Context, roomTypeID, ownerID, yearMonth string) (res dto.MonthlyViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.OwnerMonthlyView")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	year, month, ok := period.ParseMonth(yearMonth)
	if !ok {
		return res, failure.InvalidMonthFormat
	}

	roomType, err := s.findRoomType(ctx, roomTypeID)
	if err != nil {
		return res, err
	}

	if err = roomType.Authorize(ownerID); err != nil {
		return res, err
	}

	records, err := s.monthRecords(ctx, []string{roomType.ID}, year, month)
	if err != nil {
		return res, err
	}

	return s.assemble(ctx, roomType, records[roomType.ID], year, month)
}

// PropertyCalendar returns the monthly view of every room type of an active property.
func (s *serviceImpl) PropertyCalendar(ctx context.Context, propertyID, yearMonth string) (res dto.PropertyCalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.PropertyCalendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	year, month, ok := period.ParseMonth(yearMonth)
	if !ok {
		return res, failure.InvalidMonthFormat
	}

	if err = validator.ValidateID(propertyID); err != nil {
		return res, err
	}

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty || !property.Active {
		return res, errPropertyNotFound
	}

	params := gDto.QueryParams{SortBy: roomTypeModel.TableName + "." + roomTypeModel.FieldName, SortDir: gDto.SortDirAsc}
	filter := gDto.FilterGroup{}.And(gDto.Filter{
		Field:    roomTypeModel.FieldPropertyID,
		Value:    property.ID,
		Operator: gDto.FilterOperatorEq,
		Table:    roomTypeModel.TableName,
	})

	roomTypes, err := s.roomTypeRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromProperty(property, year, month)

	ids := make([]string, len(roomTypes))
	for idx, roomType := range roomTypes {
		ids[idx] = roomType.ID
	}

	records, err := s.monthRecords(ctx, ids, year, month)
	if err != nil {
		return res, err
	}

	for _, roomType := range roomTypes {
		view, err := s.assemble(ctx, roomType, records[roomType.ID], year, month)
		if err != nil {
			return dto.PropertyCalendarResponse{}, err
		}

		res.RoomTypes = append(res.RoomTypes, view)
	}

	return res, nil
}

func (s *serviceImpl) assemble(ctx context.Context, roomType roomTypeModel.RoomType, records map[string]model.Availability, year, month int) (res dto.MonthlyViewResponse, err error) {
	first, last := period.MonthBounds(year, month)

	rules, err := s.peakRateRepo.Overlapping(ctx, roomType.ID, first, last)
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomType.ID).Msg("failed to get peak rates")

		return res, fmt.Errorf("failed to get peak rates: %w", err)
	}

	res.FromRoomType(roomType, year, month)

	for day := range period.DaysInMonth(year, month) {
		resolution, err := peakRateModel.Resolve(rules, day, roomType.BasePrice)
		if err != nil {
			log.Error().Err(err).Str("room_type_id", roomType.ID).Int64("base_price", roomType.BasePrice).Msg("cannot price room type")

			return dto.MonthlyViewResponse{}, err
		}

		res.AddDay(day, records[period.FormatDate(day)].Count(roomType.TotalQuantity), resolution)
	}

	return res, nil
}

// monthRecords loads the stored rows of the month for the room types, indexed by room type and date.
func (s *serviceImpl) monthRecords(ctx context.Context, roomTypeIDs []string, year, month int) (map[string]map[string]model.Availability, error) {
	first, last := period.MonthBounds(year, month)

	records, err := s.repo.Between(ctx, roomTypeIDs, first, last)
	if err != nil {
		log.Error().Err(err).Strs("room_type_ids", roomTypeIDs).Msg("failed to get availability")

		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	grouped := make(map[string]map[string]model.Availability, len(roomTypeIDs))

	for _, record := range records {
		if grouped[record.RoomTypeID] == nil {
			grouped[record.RoomTypeID] = make(map[string]model.Availability)
		}

		grouped[record.RoomTypeID][period.FormatDate(record.Date)] = record
	}

	return grouped, nil
}

func (s *serviceImpl) store(ctx context.Context, roomType roomTypeModel.RoomType, date time.Time, isAvailable bool) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	record := model.Availability{
		RoomTypeID:     roomType.ID,
		Date:           period.Day(date),
		AvailableCount: model.CountFor(isAvailable, roomType.TotalQuantity),
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}

	if err := s.repo.Save(ctx, record); err != nil {
		log.Error().Err(err).Str("room_type_id", roomType.ID).Str("date", period.FormatDate(date)).Msg("failed to save availability")

		return fmt.Errorf("failed to save availability: %w", err)
	}

	return nil
}

func (s *serviceImpl) findRoomType(ctx context.Context, roomTypeID string) (roomTypeModel.RoomType, error) {
	if err := validator.ValidateID(roomTypeID); err != nil {
		return roomTypeModel.RoomType{}, err
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return roomType, roomTypeModel.ErrNotFound
	}

	return roomType, nil
}

func (s *serviceImpl) publish(ctx context.Context, roomTypeID string, dates []string) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event := model.ChangedEvent{
		RoomTypeID: roomTypeID,
		Dates:      dates,
		ChangedBy:  user,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateTimeFormat),
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.AvailabilityChanged, kafka.Message{Key: roomTypeID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to publish availability change")
	}
}

// dedupe keeps the last change of each date, ordered by the first appearance of the date.
func dedupe(changes []dto.Change) []dto.Change {
	positions := make(map[string]int, len(changes))
	unique := make([]dto.Change, 0, len(changes))

	for _, change := range changes {
		if idx, seen := positions[change.Date]; seen {
			unique[idx] = change

			continue
		}

		positions[change.Date] = len(unique)
		unique = append(unique, change)
	}

	return unique
}
