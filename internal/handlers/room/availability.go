package room

import (
	"net/http"

	"stayhub/internal/domains/availability/model/dto"
	"stayhub/shared"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/shared/validator"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// SetAvailability applies a batch of per-date availability flags.
// @Summary Set availability for a room type
// @Description Marks dates available or unavailable. Invalid, past or reserved dates are rejected per item;
// @Description the rest are applied. A storage failure returns the error with the partial result.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param request body dto.BulkAvailabilityRequest true "Dates to update"
// @Success 200 {object} response.Data[dto.BulkResult] "Applied and rejected dates"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.PartialError[dto.BulkResult]
// @Router /v1/rooms/{id}/availability [post]
// @Security BearerAuth
func (handler *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.BulkAvailabilityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.availability.ApplyBulk(ctx, id, shared.OwnerScope(ctx), req.Changes())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("applied", len(result.Applied)).Msg("failed to apply availability")

		if failure.GetCode(err) >= http.StatusInternalServerError {
			response.WithPartialError(w, err, result)

			return
		}

		response.WithError(w, err)

		return
	}

	scope.SetAttributes(map[string]any{
		"availability.applied":  len(result.Applied),
		"availability.rejected": len(result.Rejected),
	})

	response.WithJSON(w, http.StatusOK, result)
}

// GetMonthlyAvailability returns every day of a month with availability and price.
// @Summary Monthly availability of a room type
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param month query string true "Month as YYYY-MM"
// @Success 200 {object} response.Data[dto.MonthlyViewResponse] "Monthly calendar"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/availability [get]
// @Security BearerAuth
func (handler *Handler) GetMonthlyAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthlyAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	month := r.URL.Query().Get(constant.RequestParamMonth)

	view, err := handler.availability.OwnerMonthlyView(ctx, id, shared.OwnerScope(ctx), month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("month", month).Msg("failed to get monthly availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// GetAvailabilityByDate returns the number of free units on one date.
// @Summary Availability of a room type on one date
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param date path string true "Date as YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/availability/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetAvailabilityByDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailabilityByDate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	day, err := dateParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if _, err = handler.service.Get(ctx, id, shared.OwnerScope(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to authorize room type")

		response.WithError(w, err)

		return
	}

	count, err := handler.availability.GetAvailability(ctx, id, day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	var res dto.AvailabilityResponse
	res.FromCount(id, day, count)

	response.WithJSON(w, http.StatusOK, res)
}
