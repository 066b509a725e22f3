package room

import (
	"net/http"
	"time"

	"stayhub/internal/domains/peakrate/model/dto"
	"stayhub/shared"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/shared/period"
	"stayhub/shared/validator"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var errInvalidWindowParam = failure.BadRequestFromString("from and to must be valid YYYY-MM-DD calendar dates")

// CreatePeakRate adds a peak pricing rule to a room type.
// @Summary Create a peak rate rule
// @Description Overlapping rules are allowed; the most recently updated one wins and the response lists
// @Description the rules it overlaps. A rule with the exact same range is a conflict.
// @Tags PeakRate
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param request body dto.CreatePeakRateRequest true "Rule"
// @Success 201 {object} response.Data[dto.PeakRateMutationResponse] "Created rule"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/peak-price [post]
// @Security BearerAuth
func (handler *Handler) CreatePeakRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePeakRate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.CreatePeakRateRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rule, err := handler.peakRate.Create(ctx, id, shared.OwnerScope(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create peak rate")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Peak rate created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, rule)
}

// GetPeakRates lists the rules of a room type, optionally limited to a date window.
// @Summary List peak rate rules
// @Tags PeakRate
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param from query string false "Window start as YYYY-MM-DD"
// @Param to query string false "Window end as YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.GetPeakRatesResponse] "Rules"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/peak-price [get]
// @Security BearerAuth
func (handler *Handler) GetPeakRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPeakRates")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	from, to, err := windowParams(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rules, err := handler.peakRate.List(ctx, id, shared.OwnerScope(ctx), from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get peak rates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rules)
}

// UpdatePeakRate edits the rule in effect on date.
// @Summary Update the peak rate effective on a date
// @Tags PeakRate
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param date path string true "Date covered by the rule, YYYY-MM-DD"
// @Param request body dto.UpdatePeakRateRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.PeakRateMutationResponse] "Updated rule"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/peak-price/{date} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePeakRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePeakRate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	day, err := dateParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	var req dto.UpdatePeakRateRequest
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rule, err := handler.peakRate.Update(ctx, id, shared.OwnerScope(ctx), day, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update peak rate")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Peak rate updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, rule)
}

// DeletePeakRate removes the rule in effect on date.
// @Summary Delete the peak rate effective on a date
// @Tags PeakRate
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param date path string true "Date covered by the rule, YYYY-MM-DD"
// @Success 200 {object} response.Message "Peak rate deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/peak-price/{date} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePeakRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePeakRate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	day, err := dateParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err = handler.peakRate.Delete(ctx, id, shared.OwnerScope(ctx), day); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete peak rate")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Peak rate deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Peak rate deleted successfully")
}

// GetPrice quotes the nightly price of a room type on date.
// @Summary Price of a room type on one date
// @Tags PeakRate
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param date path string true "Date as YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Quote"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/price/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	day, err := dateParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	quote, err := handler.peakRate.Quote(ctx, id, shared.OwnerScope(ctx), day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// windowParams reads the optional from/to query. A missing bound is the zero time.
func windowParams(r *http.Request) (from, to time.Time, err error) {
	query := r.URL.Query()

	for _, param := range []struct {
		name string
		dst  *time.Time
	}{
		{constant.RequestParamFrom, &from},
		{constant.RequestParamTo, &to},
	} {
		raw := query.Get(param.name)
		if raw == constant.Empty {
			continue
		}

		day, ok := period.ParseDate(raw)
		if !ok {
			return time.Time{}, time.Time{}, errInvalidWindowParam
		}

		*param.dst = day
	}

	return from, to, nil
}
