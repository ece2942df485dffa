package controllers

import (
	"context"
	"errors"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodStore is the food capability the handlers run against. Injected so
// tests can swap in a stub instead of a live collection.
type FoodStore interface {
	Create(ctx context.Context, food *models.Food) (primitive.ObjectID, error)
	List(ctx context.Context, search, category string) ([]models.Food, error)
	NearlyExpired(ctx context.Context) ([]models.Food, error)
	Expired(ctx context.Context) ([]models.Food, error)
	Stats(ctx context.Context) (models.FoodStats, error)
	ByUser(ctx context.Context, email string) ([]models.Food, error)
	Get(ctx context.Context, id string) (*models.Food, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type FoodController struct {
	Foods FoodStore
}

func NewFoodController(foods FoodStore) *FoodController {
	return &FoodController{Foods: foods}
}

// fail maps a store error to the response envelope: 404 for the
// not-found sentinel, 500 with the raw message for everything else
// (including malformed ObjectID strings).
func fail(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Food not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
}

func (fc *FoodController) Create(c *gin.Context) {
	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		fail(c, err)
		return
	}
	id, err := fc.Foods.Create(c.Request.Context(), &food)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "insertedId": id.Hex()})
}

func (fc *FoodController) List(c *gin.Context) {
	foods, err := fc.Foods.List(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) NearlyExpired(c *gin.Context) {
	foods, err := fc.Foods.NearlyExpired(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Expired(c *gin.Context) {
	foods, err := fc.Foods.Expired(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Stats(c *gin.Context) {
	stats, err := fc.Foods.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (fc *FoodController) ByUser(c *gin.Context) {
	foods, err := fc.Foods.ByUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Get(c *gin.Context) {
	food, err := fc.Foods.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Update(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, err)
		return
	}
	modified, err := fc.Foods.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "modifiedCount": modified})
}

func (fc *FoodController) Delete(c *gin.Context) {
	deleted, err := fc.Foods.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted})
}
