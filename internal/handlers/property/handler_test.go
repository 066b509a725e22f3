package property_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stayhub/infras/otel/mocks"
	"stayhub/internal/domains/property/model/dto"
	propertyMocks "stayhub/internal/domains/property/service/mocks"
	"stayhub/internal/handlers/property"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const propertyID = "8d1e4a6c-2b3f-4c5d-8e7f-9a0b1c2d3e41"

func serve(t *testing.T, role, method, path, body string, expect func(*propertyMocks.MockProperty)) *httptest.ResponseRecorder {
	t.Helper()

	service := propertyMocks.NewMockProperty(gomock.NewController(t))
	expect(service)

	handler := property.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, "owner-1")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, strings.NewReader(body)))

	return recorder
}

func TestCreateProperty(t *testing.T) {
	rec := serve(t, constant.RoleOwner, http.MethodPost, "/properties", `{"name":"Villa Ubud","location":"Bali"}`,
		func(service *propertyMocks.MockProperty) {
			service.EXPECT().
				Create(gomock.Any(), "owner-1", dto.CreatePropertyRequest{Name: "Villa Ubud", Location: "Bali"}).
				Return(dto.PropertyResponse{ID: propertyID, OwnerID: "owner-1", Name: "Villa Ubud", Active: true}, nil)
		})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"`+propertyID+`"`)
}

func TestCreatePropertyMissingName(t *testing.T) {
	rec := serve(t, constant.RoleOwner, http.MethodPost, "/properties", `{"location":"Bali"}`,
		func(*propertyMocks.MockProperty) {})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProperties(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		wantOwner bool
	}{
		{name: "owner sees own properties", role: constant.RoleOwner, wantOwner: true},
		{name: "admin sees every property", role: constant.RoleAdmin, wantOwner: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.role, http.MethodGet, "/properties?name=villa", "", func(service *propertyMocks.MockProperty) {
				service.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPropertiesResponse, error) {
						where, args := filter.GetWhereClause()

						assert.Contains(t, where, "LOWER(properties.name) LIKE LOWER(:name)")
						assert.NotContains(t, where, "properties.location")
						assert.Equal(t, tt.wantOwner, strings.Contains(where, "properties.owner_id = :owner_id"))

						if tt.wantOwner {
							assert.Equal(t, "owner-1", args["owner_id"])
						}

						return dto.GetPropertiesResponse{Properties: []dto.PropertyResponse{}, TotalPage: 1}, nil
					})
			})

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestDeleteProperty(t *testing.T) {
	rec := serve(t, constant.RoleOwner, http.MethodDelete, "/properties/"+propertyID, "", func(service *propertyMocks.MockProperty) {
		service.EXPECT().Delete(gomock.Any(), propertyID, "owner-1").Return(failure.Forbidden("property belongs to another owner"))
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPropertyMalformedID(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec := serve(t, constant.RoleOwner, method, "/properties/not-a-uuid", `{"name":"Villa Ubud"}`, func(*propertyMocks.MockProperty) {})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"id must be a valid UUID"}`, rec.Body.String())
		})
	}
}
