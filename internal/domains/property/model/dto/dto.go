package dto

import (
	"stayhub/internal/domains/property/model"
	"stayhub/shared"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Name     string `json:"name"     validate:"required,max=150"`
	Location string `json:"location" validate:"omitempty,max=255"`
	Active   *bool  `json:"active"   validate:"omitempty"`
}

func (c *CreatePropertyRequest) ToModel(ownerID string) model.Property {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Property{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		Name:     c.Name,
		Location: c.Location,
		Active:   active,
		Metadata: gModel.NewMetadata(ownerID, timezone.Now()),
	}
}

type UpdatePropertyRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=150"`
	Location string `db:"location" json:"location" validate:"omitempty,max=255"`
	Active   *bool  `db:"active"   json:"active"   validate:"omitempty"`
}

type PropertyResponse struct {
	ID       string `json:"id"`
	OwnerID  string `json:"owner_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (p *PropertyResponse) FromModel(model model.Property) {
	p.ID = model.ID
	p.OwnerID = model.OwnerID
	p.Name = model.Name
	p.Location = model.Location
	p.Active = model.Active
	p.Metadata.FromModel(model.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
