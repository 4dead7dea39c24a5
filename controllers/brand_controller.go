package controllers

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oohdesk/oohdesk_backend/models"
	"github.com/oohdesk/oohdesk_backend/utils"
)

type BrandController struct {
	DB *mongo.Database
}

func NewBrandController(db *mongo.Database) *BrandController {
	return &BrandController{DB: db}
}

// GetBrands lists brands. Structured filters become database predicates;
// free-text search and the targetLocation filter run post-fetch, and the sort
// is always newest-first.
func (bc *BrandController) GetBrands(c echo.Context) error {
	filter := bson.M{}

	if industryTypes := utils.SplitCSV(c.QueryParam("industryType")); len(industryTypes) > 0 {
		filter["industryType"] = bson.M{"$in": industryTypes}
	}
	if isVerified := c.QueryParam("isVerified"); isVerified != "" {
		filter["isVerified"] = isVerified == "true"
	}

	cursor, err := bc.DB.Collection("brands").Find(context.Background(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	defer cursor.Close(context.Background())

	var brands []models.Brand
	if err = cursor.All(context.Background(), &brands); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	search := c.QueryParam("search")
	targetLocation := c.QueryParam("targetLocation")

	filtered := make([]models.Brand, 0, len(brands))
	for _, brand := range brands {
		if !utils.MatchesQuery(search, brand.Name, brand.City, brand.POC.Email) {
			continue
		}
		if targetLocation != "" && !brand.TargetsLocation(targetLocation) {
			continue
		}
		brand.POC.Password = ""
		filtered = append(filtered, brand)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(filtered) {
			filtered = filtered[:limit]
		}
	}

	return c.JSON(http.StatusOK, models.BrandListResponse{
		Success: true,
		Count:   len(filtered),
		Brands:  filtered,
	})
}

// AddBrand creates a brand from the multipart form, with an optional logo.
// The POC email must be unique across brands; the check runs before any write.
func (bc *BrandController) AddBrand(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	pocEmail := strings.ToLower(strings.TrimSpace(c.FormValue("pocEmail")))

	if name == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Brand name is required",
		})
	}
	if pocEmail == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "POC email is required",
		})
	}

	var existing models.Brand
	err := bc.DB.Collection("brands").FindOne(
		context.Background(),
		bson.M{"poc.email": pocEmail},
	).Decode(&existing)
	if err == nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "A brand with this POC email already exists",
		})
	}

	status := c.FormValue("status")
	if status == "" {
		status = models.BrandStatusPilot
	}

	brand := models.Brand{
		Name:         name,
		IndustryType: c.FormValue("industryType"),
		Website:      c.FormValue("website"),
		City:         c.FormValue("city"),
		GSTNumber:    c.FormValue("gstNumber"),
		Status:       status,
		AdBudget:     utils.ParseFloat(c.FormValue("adBudget")),
		IsVerified:   c.FormValue("isVerified") == "true",
		POC: models.BrandPOC{
			Name:     c.FormValue("pocName"),
			Email:    pocEmail,
			Password: c.FormValue("pocPassword"),
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if file, err := c.FormFile("logo"); err == nil && file != nil {
		logoURL, err := utils.UploadFormFile(c.Request().Context(), file, "brands")
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Success: false,
				Message: "Failed to upload logo: " + err.Error(),
			})
		}
		brand.LogoURL = logoURL
	}

	result, err := bc.DB.Collection("brands").InsertOne(context.Background(), brand)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"uid":     result.InsertedID.(primitive.ObjectID).Hex(),
	})
}

// GetBrand retrieves one brand by id
func (bc *BrandController) GetBrand(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid brand ID",
		})
	}

	var brand models.Brand
	err = bc.DB.Collection("brands").FindOne(context.Background(), bson.M{"_id": objectID}).Decode(&brand)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Message: "Brand not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    brand,
	})
}

// EditBrand merges partial fields from the edit form. An absent logo file
// means keep the existing URL.
func (bc *BrandController) EditBrand(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid brand ID",
		})
	}

	updateData := bson.M{}

	stringFields := map[string]string{
		"name":         "name",
		"industryType": "industryType",
		"website":      "website",
		"city":         "city",
		"gstNumber":    "gstNumber",
		"status":       "status",
		"pocName":      "poc.name",
		"pocPassword":  "poc.password",
	}
	for formKey, docKey := range stringFields {
		if value := strings.TrimSpace(c.FormValue(formKey)); value != "" {
			updateData[docKey] = value
		}
	}

	if budget := c.FormValue("adBudget"); budget != "" {
		updateData["adBudget"] = utils.ParseFloat(budget)
	}
	if isVerified := c.FormValue("isVerified"); isVerified != "" {
		updateData["isVerified"] = isVerified == "true"
	}

	if pocEmail := strings.ToLower(strings.TrimSpace(c.FormValue("pocEmail"))); pocEmail != "" {
		var existing models.Brand
		err := bc.DB.Collection("brands").FindOne(
			context.Background(),
			bson.M{"poc.email": pocEmail, "_id": bson.M{"$ne": objectID}},
		).Decode(&existing)
		if err == nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: "A brand with this POC email already exists",
			})
		}
		updateData["poc.email"] = pocEmail
	}

	if file, err := c.FormFile("logo"); err == nil && file != nil {
		logoURL, err := utils.UploadFormFile(c.Request().Context(), file, "brands")
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Success: false,
				Message: "Failed to upload logo: " + err.Error(),
			})
		}
		updateData["logoUrl"] = logoURL
	}

	if len(updateData) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "No fields to update",
		})
	}

	updateData["updatedAt"] = time.Now()

	result, err := bc.DB.Collection("brands").UpdateOne(
		context.Background(),
		bson.M{"_id": objectID},
		bson.M{"$set": updateData},
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
			Message: "Brand not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Brand updated successfully",
	})
}

// buildCampaignUpdate expands a partial campaign payload into dotted $set keys
// under campaigns.<id>.
func buildCampaignUpdate(campaignID string, data map[string]interface{}) bson.M {
	prefix := "campaigns." + campaignID + "."
	set := bson.M{}
	for key, value := range data {
		set[prefix+key] = value
	}
	set[prefix+"updatedAt"] = time.Now()
	set["updatedAt"] = time.Now()
	return set
}

// UpdateCampaign merges partial campaign fields into campaigns.<id>.*. Status
// values are written as given; the UI is the only gatekeeper on transitions.
func (bc *BrandController) UpdateCampaign(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid brand ID",
		})
	}

	var req models.CampaignUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if req.CampaignID == "" || len(req.Data) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "campaignId and data are required",
		})
	}

	result, err := bc.DB.Collection("brands").UpdateOne(
		context.Background(),
		bson.M{"_id": objectID},
		bson.M{"$set": buildCampaignUpdate(req.CampaignID, req.Data)},
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
			Message: "Brand not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Campaign updated successfully",
	})
}

// CreateCampaign adds a draft campaign under a fresh id in the brand's
// campaign map
func (bc *BrandController) CreateCampaign(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid brand ID",
		})
	}

	var campaign models.Campaign
	if err := c.Bind(&campaign); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if campaign.Objective == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Campaign objective is required",
		})
	}

	campaignID := uuid.NewString()
	campaign.Status = models.CampaignStatusDraft
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()

	result, err := bc.DB.Collection("brands").UpdateOne(
		context.Background(),
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{
			"campaigns." + campaignID: campaign,
			"updatedAt":               time.Now(),
		}},
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
			Message: "Brand not found",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Campaign created",
		Data:    map[string]string{"campaignId": campaignID},
	})
}

// DeleteBrand removes the brand document
func (bc *BrandController) DeleteBrand(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid brand ID",
		})
	}

	result, err := bc.DB.Collection("brands").DeleteOne(context.Background(), bson.M{"_id": objectID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Brand not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Brand deleted successfully",
	})
}
