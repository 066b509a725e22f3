package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"stayhub/config"
	"stayhub/infras/kafka"
	"stayhub/infras/otel"
	"stayhub/internal/domains/peakrate/model"
	"stayhub/internal/domains/peakrate/model/dto"
	"stayhub/internal/domains/peakrate/repository"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	roomTypeRepo "stayhub/internal/domains/roomtype/repository"
	"stayhub/shared"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/shared/period"
	"stayhub/shared/timezone"
	"stayhub/shared/validator"

	"github.com/rs/zerolog/log"
)

var (
	errEmptyUpdate    = failure.BadRequestFromString("at least one field must be provided")
	errReversedWindow = failure.BadRequestFromString("from must not be after to")
)

// PeakRate manages the peak rate rules of a room type. Rules are addressed by a date: the rule
// the resolver picks for that date is the one updated or deleted.
type PeakRate interface {
	Create(ctx context.Context, roomTypeID, ownerID string, req dto.CreatePeakRateRequest) (dto.PeakRateMutationResponse, error)
	List(ctx context.Context, roomTypeID, ownerID string, from, to time.Time) (dto.GetPeakRatesResponse, error)
	Update(ctx context.Context, roomTypeID, ownerID string, date time.Time, req dto.UpdatePeakRateRequest) (dto.PeakRateMutationResponse, error)
	Delete(ctx context.Context, roomTypeID, ownerID string, date time.Time) error
	ResolveRate(ctx context.Context, roomTypeID string, date time.Time, basePrice int64) (model.Resolution, error)
	Quote(ctx context.Context, roomTypeID, ownerID string, date time.Time) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo         repository.PeakRate
	roomTypeRepo roomTypeRepo.RoomType
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.PeakRate, roomTypeRepo roomTypeRepo.RoomType, kafka kafka.Client, cfg *config.Config, otel otel.Otel) PeakRate {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, roomTypeID, ownerID string, req dto.CreatePeakRateRequest) (res dto.PeakRateMutationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".peak_rate.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.authorizedRoomType(ctx, roomTypeID, ownerID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	rule := req.ToModel(roomTypeID, user)

	if err = rule.Validate(); err != nil {
		return res, err
	}

	if rule.StartDate.Before(period.Today()) {
		return res, model.ErrPastStartDate
	}

	overlapping, err := s.overlapping(ctx, rule)
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, rule); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return res, model.ErrDuplicateRange
		}

		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to create peak rate")

		return res, fmt.Errorf("failed to create peak rate: %w", err)
	}

	s.warnOverlaps(rule, overlapping)
	s.publish(ctx, model.EventActionCreated, rule, user)

	res.FromModel(rule, overlapping)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, roomTypeID, ownerID string, from, to time.Time) (res dto.GetPeakRatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".peak_rate.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return res, errReversedWindow
	}

	if _, err = s.authorizedRoomType(ctx, roomTypeID, ownerID); err != nil {
		return res, err
	}

	rules, err := s.repo.Overlapping(ctx, roomTypeID, from, to)
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to list peak rates")

		return res, fmt.Errorf("failed to list peak rates: %w", err)
	}

	res.FromModels(rules)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, roomTypeID, ownerID string, date time.Time, req dto.UpdatePeakRateRequest) (res dto.PeakRateMutationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".peak_rate.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, errEmptyUpdate
	}

	if _, err = s.authorizedRoomType(ctx, roomTypeID, ownerID); err != nil {
		return res, err
	}

	target, err := s.effective(ctx, roomTypeID, date)
	if err != nil {
		return res, err
	}

	rule := req.Merge(target)

	if err = rule.Validate(); err != nil {
		return res, err
	}

	today := period.Today()

	if rule.EndDate.Before(today) {
		return res, model.ErrPastEndDate
	}

	if !rule.StartDate.Equal(target.StartDate) && rule.StartDate.Before(today) {
		return res, model.ErrPastStartDate
	}

	overlapping, err := s.overlapping(ctx, rule)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	affected, err := s.repo.Update(ctx, dto.Values(rule, user, now), shared.FilterByID(rule.ID, model.FieldID, model.TableName))
	if err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return res, model.ErrDuplicateRange
		}

		log.Error().Err(err).Str("id", rule.ID).Msg("failed to update peak rate")

		return res, fmt.Errorf("failed to update peak rate: %w", err)
	}

	if affected == 0 {
		return res, model.ErrNotFound
	}

	rule.ModifiedAt = now
	rule.ModifiedBy = user

	s.warnOverlaps(rule, overlapping)
	s.publish(ctx, model.EventActionUpdated, rule, user)

	res.FromModel(rule, overlapping)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, roomTypeID, ownerID string, date time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".peak_rate.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.authorizedRoomType(ctx, roomTypeID, ownerID); err != nil {
		return err
	}

	target, err := s.effective(ctx, roomTypeID, date)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(target.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", target.ID).Msg("failed to delete peak rate")

		return fmt.Errorf("failed to delete peak rate: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	s.publish(ctx, model.EventActionDeleted, target, user)

	return nil
}

// ResolveRate prices date for the room type from its stored rules.
func (s *serviceImpl) ResolveRate(ctx context.Context, roomTypeID string, date time.Time, basePrice int64) (res model.Resolution, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".peak_rate.ResolveRate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateID(roomTypeID); err != nil {
		return res, err
	}

	if basePrice <= 0 || basePrice > model.MaxPrice {
		return res, model.ErrInvalidBasePrice
	}

	day := period.Day(date)

	rules, err := s.repo.Overlapping(ctx, roomTypeID, day, day)
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to get peak rates")

		return res, fmt.Errorf("failed to get peak rates: %w", err)
	}

	return model.Resolve(rules, day, basePrice)
}

func (s *serviceImpl) Quote(ctx context.Context, roomTypeID, ownerID string, date time.Time) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".peak_rate.Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType, err := s.authorizedRoomType(ctx, roomTypeID, ownerID)
	if err != nil {
		return res, err
	}

	resolution, err := s.ResolveRate(ctx, roomTypeID, date, roomType.BasePrice)
	if err != nil {
		return res, err
	}

	res.FromResolution(roomType.ID, roomType.BasePrice, date, resolution)

	return res, nil
}

func (s *serviceImpl) authorizedRoomType(ctx context.Context, roomTypeID, ownerID string) (roomTypeModel.RoomType, error) {
	if err := validator.ValidateID(roomTypeID); err != nil {
		return roomTypeModel.RoomType{}, err
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	return roomType, roomType.Authorize(ownerID) //nolint:wrapcheck
}

func (s *serviceImpl) effective(ctx context.Context, roomTypeID string, date time.Time) (model.PeakRateRule, error) {
	day := period.Day(date)

	rules, err := s.repo.Overlapping(ctx, roomTypeID, day, day)
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to get peak rates")

		return model.PeakRateRule{}, fmt.Errorf("failed to get peak rates: %w", err)
	}

	rule := model.Effective(rules, day)
	if rule == nil {
		return model.PeakRateRule{}, model.ErrNotFound
	}

	return *rule, nil
}

// overlapping returns the other rules sharing days with rule, or ErrDuplicateRange when one spans the same range.
func (s *serviceImpl) overlapping(ctx context.Context, rule model.PeakRateRule) ([]model.PeakRateRule, error) {
	rules, err := s.repo.Overlapping(ctx, rule.RoomTypeID, rule.StartDate, rule.EndDate)
	if err != nil {
		log.Error().Err(err).Str("room_type_id", rule.RoomTypeID).Msg("failed to get overlapping peak rates")

		return nil, fmt.Errorf("failed to get overlapping peak rates: %w", err)
	}

	others := make([]model.PeakRateRule, 0, len(rules))

	for _, other := range rules {
		if other.ID == rule.ID {
			continue
		}

		if other.SameRange(rule.StartDate, rule.EndDate) {
			return nil, model.ErrDuplicateRange
		}

		others = append(others, other)
	}

	return others, nil
}

func (s *serviceImpl) warnOverlaps(rule model.PeakRateRule, overlapping []model.PeakRateRule) {
	if len(overlapping) == 0 {
		return
	}

	ids := make([]string, len(overlapping))
	for idx, other := range overlapping {
		ids[idx] = other.ID
	}

	log.Warn().
		Str("rule_id", rule.ID).
		Str("room_type_id", rule.RoomTypeID).
		Strs("overlapping", ids).
		Msg("peak rate overlaps existing rules, the latest written rule wins on shared days")
}

func (s *serviceImpl) publish(ctx context.Context, action string, rule model.PeakRateRule, user string) {
	event := model.ChangedEvent{
		Action:     action,
		RuleID:     rule.ID,
		RoomTypeID: rule.RoomTypeID,
		StartDate:  period.FormatDate(rule.StartDate),
		EndDate:    period.FormatDate(rule.EndDate),
		ChangedBy:  user,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateTimeFormat),
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.PeakRateChanged, kafka.Message{Key: rule.RoomTypeID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("rule_id", rule.ID).Msg("failed to publish peak rate change")
	}
}
