package controllers

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oohdesk/oohdesk_backend/models"
	"github.com/oohdesk/oohdesk_backend/utils"
)

type UserController struct {
	DB *mongo.Database
}

func NewUserController(db *mongo.Database) *UserController {
	return &UserController{DB: db}
}

// GetUsers lists end customers for the users table. Demographic filters are
// database predicates; free-text search runs post-fetch.
func (uc *UserController) GetUsers(c echo.Context) error {
	filter := bson.M{}

	if genders := utils.SplitCSV(c.QueryParam("gender")); len(genders) > 0 {
		filter["gender"] = bson.M{"$in": genders}
	}
	if ageBands := utils.SplitCSV(c.QueryParam("ageBand")); len(ageBands) > 0 {
		filter["ageBand"] = bson.M{"$in": ageBands}
	}
	if cities := utils.SplitCSV(c.QueryParam("city")); len(cities) > 0 {
		filter["city"] = bson.M{"$in": cities}
	}
	if isBlocked := c.QueryParam("isBlocked"); isBlocked != "" {
		filter["isBlocked"] = isBlocked == "true"
	}

	cursor, err := uc.DB.Collection("users").Find(context.Background(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	defer cursor.Close(context.Background())

	var users []models.AppUser
	if err = cursor.All(context.Background(), &users); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	search := c.QueryParam("search")

	filtered := make([]models.AppUser, 0, len(users))
	for _, user := range users {
		if !utils.MatchesQuery(search, user.Name, user.City, user.Email, user.Phone) {
			continue
		}
		filtered = append(filtered, user)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(filtered) {
			filtered = filtered[:limit]
		}
	}

	return c.JSON(http.StatusOK, models.UserListResponse{
		Success: true,
		Count:   len(filtered),
		Users:   filtered,
	})
}

// BlockUser sets the suspension flag to the submitted value. Each PATCH is an
// unconditional set, so toggling twice lands back on the original value.
func (uc *UserController) BlockUser(c echo.Context) error {
	var req models.BlockUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "User id is required",
		})
	}

	objectID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid user ID",
		})
	}

	result, err := uc.DB.Collection("users").UpdateOne(
		context.Background(),
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"isBlocked": req.IsBlocked, "updatedAt": time.Now()}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "User not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User suspension updated",
	})
}
