package public

import (
	"net/http"

	"stayhub/infras/otel"
	"stayhub/internal/domains/availability/service"
	"stayhub/shared/constant"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves unauthenticated guest-facing reads.
type Handler struct {
	availability service.Availability
	otel         otel.Otel
}

func New(availability service.Availability, otel otel.Otel) Handler {
	return Handler{
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/public", func(routerGroup chi.Router) {
		routerGroup.With(middleware.ValidID).Get("/properties/{id}/calendar-pricing", handler.GetCalendarPricing)
	})
}

// GetCalendarPricing returns availability and nightly prices for every room type of a property.
// @Summary Public calendar with pricing
// @Description Monthly availability and prices of every room type of an active property.
// @Tags Public
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param month query string true "Month as YYYY-MM"
// @Success 200 {object} response.Data[dto.PropertyCalendarResponse] "Calendar"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/properties/{id}/calendar-pricing [get]
func (handler *Handler) GetCalendarPricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendarPricing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	month := r.URL.Query().Get(constant.RequestParamMonth)

	calendar, err := handler.availability.PropertyCalendar(ctx, id, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("property_id", id).Str("month", month).Msg("failed to get calendar pricing")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("calendar.room_types", len(calendar.RoomTypes))

	response.WithJSON(w, http.StatusOK, calendar)
}
