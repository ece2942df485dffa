package controllers

import (
	"context"
	"net/http"

	"backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NoteStore interface {
	ListByFood(ctx context.Context, foodID string) ([]models.Note, error)
	Create(ctx context.Context, foodID string, note *models.Note) (primitive.ObjectID, error)
}

type NoteController struct {
	Notes NoteStore
}

func NewNoteController(notes NoteStore) *NoteController {
	return &NoteController{Notes: notes}
}

// List returns every note for the food, empty array included. Zero notes
// is not a 404: the food id is just a key with nothing under it.
func (nc *NoteController) List(c *gin.Context) {
	notes, err := nc.Notes.ListByFood(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (nc *NoteController) Create(c *gin.Context) {
	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		fail(c, err)
		return
	}
	id, err := nc.Notes.Create(c.Request.Context(), c.Param("id"), &note)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "insertedId": id.Hex()})
}
