package model_test

import (
	"testing"

	"stayhub/internal/domains/roomtype/model"

	"github.com/stretchr/testify/assert"
)

const roomTypeID = "3f9c2b7e-1d4a-4e8b-9c6f-2a5b7d8e0f11"

func TestRoomType_Authorize(t *testing.T) {
	roomType := model.RoomType{ID: roomTypeID, OwnerID: "owner-1"}

	assert.NoError(t, roomType.Authorize("owner-1"))
	assert.NoError(t, roomType.Authorize(""))
	assert.ErrorIs(t, roomType.Authorize("owner-2"), model.ErrForbidden)
	assert.ErrorIs(t, model.RoomType{}.Authorize("owner-1"), model.ErrNotFound)
}
