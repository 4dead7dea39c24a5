package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oohdesk/oohdesk_backend/models"
	"github.com/oohdesk/oohdesk_backend/repositories"
)

// AmbassadorController serves the derived ambassador views. An ambassador id
// is the id of the location carrying it.
type AmbassadorController struct {
	Repo *repositories.AmbassadorRepository
}

func NewAmbassadorController(repo *repositories.AmbassadorRepository) *AmbassadorController {
	return &AmbassadorController{Repo: repo}
}

// GetAmbassadors lists every location-embedded ambassador
func (ac *AmbassadorController) GetAmbassadors(c echo.Context) error {
	records, err := ac.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.AmbassadorListResponse{
		Success:     true,
		Count:       len(records),
		Ambassadors: records,
	})
}

// GetAmbassador returns the ambassador embedded on the given location
func (ac *AmbassadorController) GetAmbassador(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid ambassador ID",
		})
	}

	record, err := ac.Repo.Get(c.Request().Context(), objectID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Message: "Ambassador not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	if record == nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Ambassador not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    record,
	})
}

// UpdateAmbassador merges partial fields into the embedded ambassador object
func (ac *AmbassadorController) UpdateAmbassador(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid ambassador ID",
		})
	}

	updateData := make(map[string]interface{})
	if err := c.Bind(&updateData); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	delete(updateData, "createdAt")

	if len(updateData) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "No fields to update",
		})
	}

	matched, err := ac.Repo.Update(c.Request().Context(), objectID, bson.M(updateData))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	if matched == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Ambassador not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Ambassador updated successfully",
	})
}
