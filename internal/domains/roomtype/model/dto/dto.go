package dto

import (
	"stayhub/internal/domains/roomtype/model"
	"stayhub/shared"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	PropertyID    string `json:"property_id"    validate:"required,uuid"`
	Name          string `json:"name"           validate:"required,max=100"`
	BasePrice     int64  `json:"base_price"     validate:"required,gt=0,lte=9999999999"`
	Capacity      int    `json:"capacity"       validate:"required,gte=1,lte=50"`
	TotalQuantity int    `json:"total_quantity" validate:"required,gte=1,lte=1000"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:            uuid.NewString(),
		PropertyID:    c.PropertyID,
		Name:          c.Name,
		BasePrice:     c.BasePrice,
		Capacity:      c.Capacity,
		TotalQuantity: c.TotalQuantity,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRoomTypeRequest struct {
	Name          string `db:"name"           json:"name"           validate:"omitempty,max=100"`
	BasePrice     *int64 `db:"base_price"     json:"base_price"     validate:"omitempty,gt=0,lte=9999999999"`
	Capacity      *int   `db:"capacity"       json:"capacity"       validate:"omitempty,gte=1,lte=50"`
	TotalQuantity *int   `db:"total_quantity" json:"total_quantity" validate:"omitempty,gte=1,lte=1000"`
}

type RoomTypeResponse struct {
	ID            string `json:"id"`
	PropertyID    string `json:"property_id"`
	PropertyName  string `json:"property_name"`
	OwnerID       string `json:"owner_id"`
	Name          string `json:"name"`
	BasePrice     int64  `json:"base_price"`
	Capacity      int    `json:"capacity"`
	TotalQuantity int    `json:"total_quantity"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.PropertyName = model.PropertyName
	r.OwnerID = model.OwnerID
	r.Name = model.Name
	r.BasePrice = model.BasePrice
	r.Capacity = model.Capacity
	r.TotalQuantity = model.TotalQuantity
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
