package repository_test

import (
	"testing"
	"time"

	"stayhub/internal/domains/reservation/model"
	"stayhub/internal/domains/reservation/repository"

	"github.com/stretchr/testify/assert"
)

const roomTypeID = "3f9c2b7e-1d4a-4e8b-9c6f-2a5b7d8e0f11"

func TestActiveOn(t *testing.T) {
	filter := repository.ActiveOn(roomTypeID, time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC))

	where, args := filter.GetWhereClause()

	assert.Equal(t,
		"(reservations.room_type_id = :room_type_id AND reservations.status IN (:status_0, :status_1)  AND "+
			"reservations.check_in <= :day_in AND reservations.check_out > :day_out)",
		where,
	)
	assert.Equal(t, map[string]any{
		"room_type_id": roomTypeID,
		"status_0":     model.StatusPending,
		"status_1":     model.StatusConfirmed,
		"day_in":       "2025-02-14",
		"day_out":      "2025-02-14",
	}, args)
}
