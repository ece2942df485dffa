package services

import (
	"context"
	"time"

	"backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NoteService struct {
	col *mongo.Collection
}

func NewNoteService(db *mongo.Database) *NoteService {
	return &NoteService{col: db.Collection("notes")}
}

// ListByFood matches on the raw string foodId. The id is deliberately not
// parsed into an ObjectID: notes store the path value verbatim, and a food
// that never existed simply has zero notes.
func (s *NoteService) ListByFood(ctx context.Context, foodID string) ([]models.Note, error) {
	cur, err := s.col.Find(ctx, bson.M{"foodId": foodID})
	if err != nil {
		return nil, err
	}
	notes := []models.Note{}
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// prepareNote forces the server-owned fields: foodId always comes from the
// path, addedDate from the clock, regardless of what the body carried.
func prepareNote(note *models.Note, foodID string, now time.Time) {
	delete(note.Extra, "foodId")
	delete(note.Extra, "addedDate")
	note.FoodID = foodID
	note.AddedDate = isoStamp(now)
}

func (s *NoteService) Create(ctx context.Context, foodID string, note *models.Note) (primitive.ObjectID, error) {
	prepareNote(note, foodID, time.Now())

	res, err := s.col.InsertOne(ctx, note)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
