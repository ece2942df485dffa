package services

import (
	"context"
	"errors"
	"time"

	"backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound signals that an id-addressed operation matched zero
// documents. List-style operations return empty slices instead.
var ErrNotFound = errors.New("not found")

type FoodService struct {
	col *mongo.Collection
	hub *RealtimeHub // optional; nil disables broadcasting
}

func NewFoodService(db *mongo.Database, hub *RealtimeHub) *FoodService {
	return &FoodService{col: db.Collection("foods"), hub: hub}
}

// prepareFood stamps the server-assigned creation time. Whatever the
// client sent for addedDate is discarded, including non-string values
// parked in Extra.
func prepareFood(food *models.Food, now time.Time) {
	delete(food.Extra, "addedDate")
	food.AddedDate = isoStamp(now)
}

func (s *FoodService) Create(ctx context.Context, food *models.Food) (primitive.ObjectID, error) {
	prepareFood(food, time.Now())

	res, err := s.col.InsertOne(ctx, food)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)

	s.emit(food.UserEmail, bson.M{
		"kind":      "food.created",
		"foodId":    id.Hex(),
		"foodTitle": food.FoodTitle,
	})
	return id, nil
}

// listFilter builds the passthrough query for GET /api/foods. Search is a
// case-insensitive substring match over title and description; category
// "All" means no category constraint.
func listFilter(search, category string) bson.M {
	filter := bson.M{}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"foodTitle": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if category != "" && category != "All" {
		filter["category"] = category
	}
	return filter
}

func (s *FoodService) List(ctx context.Context, search, category string) ([]models.Food, error) {
	return s.find(ctx, listFilter(search, category), nil)
}

func nearlyExpiredFilter(now time.Time) bson.M {
	from, to := expiryWindow(now)
	return bson.M{"expiryDate": bson.M{"$gte": from, "$lte": to}}
}

func (s *FoodService) NearlyExpired(ctx context.Context) ([]models.Food, error) {
	return s.find(ctx, nearlyExpiredFilter(time.Now()), nil)
}

func expiredFilter(now time.Time) bson.M {
	return bson.M{"expiryDate": bson.M{"$lt": isoStamp(now)}}
}

// expiredSort orders most-recently-expired first.
func expiredSort() bson.D {
	return bson.D{{Key: "expiryDate", Value: -1}}
}

func (s *FoodService) Expired(ctx context.Context) ([]models.Food, error) {
	sort := options.Find().SetSort(expiredSort())
	return s.find(ctx, expiredFilter(time.Now()), sort)
}

// Stats runs its three counts against a single now snapshot so the
// derived safe count cannot drift between queries.
func (s *FoodService) Stats(ctx context.Context) (models.FoodStats, error) {
	now := time.Now()
	var stats models.FoodStats
	var err error

	if stats.Total, err = s.col.CountDocuments(ctx, bson.M{}); err != nil {
		return models.FoodStats{}, err
	}
	if stats.Expired, err = s.col.CountDocuments(ctx, expiredFilter(now)); err != nil {
		return models.FoodStats{}, err
	}
	if stats.NearlyExpired, err = s.col.CountDocuments(ctx, nearlyExpiredFilter(now)); err != nil {
		return models.FoodStats{}, err
	}
	stats.Safe = stats.Total - stats.Expired - stats.NearlyExpired
	return stats, nil
}

func (s *FoodService) ByUser(ctx context.Context, email string) ([]models.Food, error) {
	return s.find(ctx, bson.M{"userEmail": email}, nil)
}

func (s *FoodService) Get(ctx context.Context, id string) (*models.Food, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var food models.Food
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// Update applies a merge-patch: only keys present in patch are $set,
// everything else on the document is untouched. A matched document with
// no changed field is still a success, with modified count zero.
func (s *FoodService) Update(ctx context.Context, id string, patch map[string]interface{}) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": patch})
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, ErrNotFound
	}
	return res.ModifiedCount, nil
}

func (s *FoodService) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	var food models.Food
	err = s.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	s.emit(food.UserEmail, bson.M{
		"kind":      "food.deleted",
		"foodId":    food.ID.Hex(),
		"foodTitle": food.FoodTitle,
	})
	return 1, nil
}

func (s *FoodService) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Food, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = s.col.Find(ctx, filter, opts)
	} else {
		cur, err = s.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	foods := []models.Food{}
	if err := cur.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *FoodService) emit(email string, payload interface{}) {
	if s.hub != nil {
		s.hub.Broadcast(email, payload)
	}
}
