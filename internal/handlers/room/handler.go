package room

import (
	"net/http"
	"time"

	"stayhub/infras/otel"
	availabilityService "stayhub/internal/domains/availability/service"
	peakRateService "stayhub/internal/domains/peakrate/service"
	propertyModel "stayhub/internal/domains/property/model"
	"stayhub/internal/domains/roomtype/model"
	"stayhub/internal/domains/roomtype/model/dto"
	"stayhub/internal/domains/roomtype/service"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/period"
	"stayhub/shared/validator"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var errInvalidDateParam = failure.BadRequestFromString("date must be a valid YYYY-MM-DD calendar date")

type Handler struct {
	service      service.RoomType
	availability availabilityService.Availability
	peakRate     peakRateService.PeakRate
	otel         otel.Otel
}

func New(service service.RoomType, availability availabilityService.Availability, peakRate peakRateService.PeakRate, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		peakRate:     peakRate,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Get("/", handler.GetRoomTypes)

		byID := routerGroup.With(middleware.ValidID)
		byID.Get("/{id}", handler.GetRoomTypeByID)
		byID.Patch("/{id}", handler.UpdateRoomType)
		byID.Delete("/{id}", handler.DeleteRoomType)

		byID.Post("/{id}/availability", handler.SetAvailability)
		byID.Get("/{id}/availability", handler.GetMonthlyAvailability)
		byID.Get("/{id}/availability/{date}", handler.GetAvailabilityByDate)

		byID.Post("/{id}/peak-price", handler.CreatePeakRate)
		byID.Get("/{id}/peak-price", handler.GetPeakRates)
		byID.Patch("/{id}/peak-price/{date}", handler.UpdatePeakRate)
		byID.Delete("/{id}/peak-price/{date}", handler.DeletePeakRate)

		byID.Get("/{id}/price/{date}", handler.GetPrice)
	})
}

// CreateRoomType handles the creation of a new room type.
// @Summary Create a new room type
// @Description Create a room type under one of the caller's properties.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Room type details"
// @Success 201 {object} response.Data[dto.RoomTypeResponse] "Created room type"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	var req dto.CreateRoomTypeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	roomType, err := handler.service.Create(ctx, shared.OwnerScope(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, roomType)
}

// GetRoomTypes lists room types of the caller's properties.
// @Summary Get room types
// @Description Retrieve room types with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse] "List of room types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.FieldName, model.FieldBasePrice, constant.FieldCreatedAt)

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if propertyID := query.Get(model.FieldPropertyID); propertyID != constant.Empty {
		if err := validator.ValidateID(propertyID); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    propertyID,
			Table:    model.TableName,
		})
	}

	if name := query.Get(model.FieldName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if owner := shared.OwnerScope(ctx); owner != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    propertyModel.FieldOwnerID,
			Operator: gDto.FilterOperatorEq,
			Value:    owner,
			Table:    propertyModel.TableName,
		})
	}

	roomTypes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room types retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomTypes)
}

// GetRoomTypeByID retrieves a room type by its ID.
// @Summary Get a room type by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} response.Data[dto.RoomTypeResponse] "Room type details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	roomType, err := handler.service.Get(ctx, id, shared.OwnerScope(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomType)
}

// UpdateRoomType updates an existing room type by its ID.
// @Summary Update a room type by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Fields to update"
// @Success 200 {object} response.Message "Room type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateRoomTypeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, shared.OwnerScope(ctx), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room type updated successfully")
}

// DeleteRoomType deletes a room type with its availability and peak rates.
// @Summary Delete a room type by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} response.Message "Room type deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, shared.OwnerScope(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room type deleted successfully")
}

func dateParam(r *http.Request) (time.Time, error) {
	day, ok := period.ParseDate(chi.URLParam(r, constant.RequestParamDate))
	if !ok {
		return time.Time{}, errInvalidDateParam
	}

	return day, nil
}
