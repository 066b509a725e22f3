package property

import (
	"net/http"

	"stayhub/infras/otel"
	"stayhub/internal/domains/property/model"
	"stayhub/internal/domains/property/model/dto"
	"stayhub/internal/domains/property/service"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/validator"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Property
	otel    otel.Otel
}

func New(service service.Property, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/properties", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProperty)
		routerGroup.Get("/", handler.GetProperties)

		byID := routerGroup.With(middleware.ValidID)
		byID.Get("/{id}", handler.GetPropertyByID)
		byID.Patch("/{id}", handler.UpdateProperty)
		byID.Delete("/{id}", handler.DeleteProperty)
	})
}

// CreateProperty handles the creation of a new property.
// @Summary Create a new property
// @Description Create a property owned by the caller.
// @Tags Property
// @Accept json
// @Produce json
// @Param request body dto.CreatePropertyRequest true "Property details"
// @Success 201 {object} response.Data[dto.PropertyResponse] "Created property"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [post]
// @Security BearerAuth
func (handler *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProperty")
	defer scope.End()

	var req dto.CreatePropertyRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	property, err := handler.service.Create(ctx, user, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, property)
}

// GetProperties lists the caller's properties. Admins see every owner's.
// @Summary Get properties
// @Description Retrieve properties with optional filtering and pagination.
// @Tags Property
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetPropertiesResponse] "List of properties"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [get]
// @Security BearerAuth
func (handler *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperties")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.FieldName, model.FieldLocation, constant.FieldCreatedAt)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldName, model.FieldLocation} {
		if value := query.Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if active := shared.ConvertStringToBool(query.Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	if owner := shared.OwnerScope(ctx); owner != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOwnerID,
			Operator: gDto.FilterOperatorEq,
			Value:    owner,
			Table:    model.TableName,
		})
	}

	properties, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get properties")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Properties retrieved successfully")

	response.WithJSON(w, http.StatusOK, properties)
}

// GetPropertyByID retrieves a property by its ID.
// @Summary Get a property by ID
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[dto.PropertyResponse] "Property details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	property, err := handler.service.Get(ctx, id, shared.OwnerScope(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property retrieved successfully")

	response.WithJSON(w, http.StatusOK, property)
}

// UpdateProperty updates an existing property by its ID.
// @Summary Update a property by ID
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} response.Message "Property updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdatePropertyRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, shared.OwnerScope(ctx), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update property")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Property updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Property updated successfully")
}

// DeleteProperty deletes a property and, by cascade, its room types.
// @Summary Delete a property by ID
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Message "Property deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, shared.OwnerScope(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete property")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Property deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Property deleted successfully")
}
