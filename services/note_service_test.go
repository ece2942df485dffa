package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestPrepareNoteForcesServerFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	note := &models.Note{
		FoodID:    "client-supplied",
		AddedDate: "2001-01-01T00:00:00.000Z",
		Extra: map[string]interface{}{
			"foodId":    "also-client-supplied",
			"addedDate": 42,
			"text":      "half gone",
		},
	}

	prepareNote(note, "66a1f0c2e8b4a92d3c5f7e01", now)

	assert.Equal(t, "66a1f0c2e8b4a92d3c5f7e01", note.FoodID)
	assert.Equal(t, isoStamp(now), note.AddedDate)
	assert.NotContains(t, note.Extra, "foodId")
	assert.NotContains(t, note.Extra, "addedDate")
	assert.Equal(t, "half gone", note.Extra["text"])
}
