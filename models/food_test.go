package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFoodUnmarshalLiftsKnownFields(t *testing.T) {
	body := []byte(`{
		"foodTitle": "Apple",
		"description": "red and crisp",
		"category": "Fruit",
		"userEmail": "ann@example.com",
		"expiryDate": "2025-06-10T00:00:00.000Z",
		"quantity": 3,
		"tags": ["snack"]
	}`)

	var food Food
	require.NoError(t, json.Unmarshal(body, &food))

	assert.Equal(t, "Apple", food.FoodTitle)
	assert.Equal(t, "red and crisp", food.Description)
	assert.Equal(t, "Fruit", food.Category)
	assert.Equal(t, "ann@example.com", food.UserEmail)
	assert.Equal(t, "2025-06-10T00:00:00.000Z", food.ExpiryDate)

	// open-schema fields live in Extra, typed fields do not
	assert.Equal(t, float64(3), food.Extra["quantity"])
	assert.NotContains(t, food.Extra, "foodTitle")
}

func TestFoodUnmarshalKeepsNonStringTypedKeysInExtra(t *testing.T) {
	var food Food
	require.NoError(t, json.Unmarshal([]byte(`{"foodTitle": 5}`), &food))

	assert.Empty(t, food.FoodTitle)
	assert.Equal(t, float64(5), food.Extra["foodTitle"])
}

func TestFoodMarshalFlattensExtra(t *testing.T) {
	oid := primitive.NewObjectID()
	food := Food{
		ID:        oid,
		FoodTitle: "Milk",
		Category:  "Dairy",
		Extra:     map[string]interface{}{"quantity": 2},
	}

	out, err := json.Marshal(food)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &got))

	assert.Equal(t, oid.Hex(), got["_id"])
	assert.Equal(t, "Milk", got["foodTitle"])
	assert.Equal(t, "Dairy", got["category"])
	assert.Equal(t, float64(2), got["quantity"])
	// empty typed fields are omitted, not serialized as ""
	assert.NotContains(t, got, "description")
}

func TestFoodRoundTrip(t *testing.T) {
	body := []byte(`{"foodTitle":"Yogurt","brand":"Acme","shelf":2}`)

	var food Food
	require.NoError(t, json.Unmarshal(body, &food))
	out, err := json.Marshal(food)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "Yogurt", got["foodTitle"])
	assert.Equal(t, "Acme", got["brand"])
	assert.Equal(t, float64(2), got["shelf"])
}

func TestNoteRoundTrip(t *testing.T) {
	body := []byte(`{"text":"opened on monday","foodId":"abc"}`)

	var note Note
	require.NoError(t, json.Unmarshal(body, &note))
	assert.Equal(t, "abc", note.FoodID)
	assert.Equal(t, "opened on monday", note.Extra["text"])

	out, err := json.Marshal(note)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "abc", got["foodId"])
	assert.Equal(t, "opened on monday", got["text"])
}
