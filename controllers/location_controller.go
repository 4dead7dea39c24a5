package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oohdesk/oohdesk_backend/models"
	"github.com/oohdesk/oohdesk_backend/utils"
)

type LocationController struct {
	DB          *mongo.Database
	OptionCache *utils.OptionCache
}

func NewLocationController(db *mongo.Database, optionCache *utils.OptionCache) *LocationController {
	return &LocationController{DB: db, OptionCache: optionCache}
}

// GetLocations lists locations. Soft-deleted documents are excluded unless the
// status filter asks for them explicitly.
func (lc *LocationController) GetLocations(c echo.Context) error {
	filter := bson.M{}

	if types := utils.SplitCSV(c.QueryParam("type")); len(types) > 0 {
		filter["type"] = bson.M{"$in": types}
	}
	if cities := utils.SplitCSV(c.QueryParam("city")); len(cities) > 0 {
		filter["city"] = bson.M{"$in": cities}
	}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	} else {
		filter["status"] = bson.M{"$ne": models.LocationStatusDeleted}
	}

	cursor, err := lc.DB.Collection("locations").Find(context.Background(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	defer cursor.Close(context.Background())

	var locations []models.Location
	if err = cursor.All(context.Background(), &locations); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	search := c.QueryParam("search")

	filtered := make([]models.Location, 0, len(locations))
	for _, loc := range locations {
		if !utils.MatchesQuery(search, loc.Name, loc.City, loc.Area) {
			continue
		}
		filtered = append(filtered, loc)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(filtered) {
			filtered = filtered[:limit]
		}
	}

	return c.JSON(http.StatusOK, models.LocationListResponse{
		Success:   true,
		Count:     len(filtered),
		Locations: filtered,
	})
}

// AddLocation creates a location from a JSON body and invalidates the cached
// filter options so new types/cities show up immediately.
func (lc *LocationController) AddLocation(c echo.Context) error {
	var location models.Location
	if err := c.Bind(&location); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if location.Name == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Location name is required",
		})
	}

	if location.Slug == "" {
		location.Slug = utils.Slugify(location.Name)
	}
	if location.Status == "" {
		location.Status = models.LocationStatusActive
	}
	if location.Latitude != 0 || location.Longitude != 0 {
		location.Geo = models.NewGeoPoint(location.Latitude, location.Longitude)
	}
	if location.Ambassador != nil && location.Ambassador.CreatedAt.IsZero() {
		location.Ambassador.CreatedAt = time.Now()
	}
	location.ID = primitive.NilObjectID
	location.CreatedAt = time.Now()
	location.UpdatedAt = time.Now()

	result, err := lc.DB.Collection("locations").InsertOne(context.Background(), location)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	lc.OptionCache.Invalidate(c.Request().Context())

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"uid":     result.InsertedID.(primitive.ObjectID).Hex(),
	})
}

// GetLocation retrieves one location by id, including soft-deleted documents
func (lc *LocationController) GetLocation(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid location ID",
		})
	}

	var location models.Location
	err = lc.DB.Collection("locations").FindOne(context.Background(), bson.M{"_id": objectID}).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Message: "Location not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    location,
	})
}

// UpdateLocation merges partial JSON fields into the document. When both
// coordinates are present the geo object is rebuilt from them.
func (lc *LocationController) UpdateLocation(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid location ID",
		})
	}

	updateData := make(map[string]interface{})
	if err := c.Bind(&updateData); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	delete(updateData, "_id")
	delete(updateData, "id")
	delete(updateData, "createdAt")

	if len(updateData) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "No fields to update",
		})
	}

	lat, hasLat := updateData["latitude"].(float64)
	lon, hasLon := updateData["longitude"].(float64)
	if hasLat && hasLon {
		updateData["geo"] = models.NewGeoPoint(lat, lon)
	}

	updateData["updatedAt"] = time.Now()

	result, err := lc.DB.Collection("locations").UpdateOne(
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
			Message: "Location not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Location updated successfully",
	})
}

// DeleteLocation removes the document outright. The dashboard's delete button
// uses SoftDeleteLocation instead; this route backs the detail page.
func (lc *LocationController) DeleteLocation(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid location ID",
		})
	}

	result, err := lc.DB.Collection("locations").DeleteOne(context.Background(), bson.M{"_id": objectID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Location not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Location deleted successfully",
	})
}

// SoftDeleteLocation flips the status to Deleted and leaves every other field
// in place; the document stays retrievable by id.
func (lc *LocationController) SoftDeleteLocation(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid location ID",
		})
	}

	result, err := lc.DB.Collection("locations").UpdateOne(
		context.Background(),
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": models.LocationStatusDeleted}},
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
			Message: "Location not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Location deleted",
	})
}

// BulkImportLocations inserts a batch of locations in one write, deriving each
// document's geo object from its own coordinates. There is no partial-failure
// rollback; the batch either reports its insert count or a single error.
func (lc *LocationController) BulkImportLocations(c echo.Context) error {
	var req models.BulkLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Each location needs a name",
		})
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(req.Locations))
	for _, row := range req.Locations {
		status := row.Status
		if status == "" {
			status = models.LocationStatusActive
		}
		slug := row.Slug
		if slug == "" {
			slug = utils.Slugify(row.Name)
		}
		docs = append(docs, models.Location{
			Name:      row.Name,
			Slug:      slug,
			Type:      row.Type,
			City:      row.City,
			Area:      row.Area,
			Pincode:   row.Pincode,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Geo:       models.NewGeoPoint(row.Latitude, row.Longitude),
			Status:    status,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	result, err := lc.DB.Collection("locations").InsertMany(context.Background(), docs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	lc.OptionCache.Invalidate(c.Request().Context())

	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Locations imported",
		Data:    map[string]int{"inserted": len(result.InsertedIDs)},
	})
}

// GetFilterOptions returns the distinct type/city/area values used by the list
// filters. The payload is cached for five minutes and only invalidated on the
// location create paths.
func (lc *LocationController) GetFilterOptions(c echo.Context) error {
	ctx := c.Request().Context()

	if cached, ok := lc.OptionCache.Get(ctx); ok {
		return c.JSONBlob(http.StatusOK, cached)
	}

	filter := bson.M{"status": bson.M{"$ne": models.LocationStatusDeleted}}

	options := models.FilterOptions{
		Types:  []string{},
		Cities: []string{},
		Areas:  []string{},
	}
	fields := map[string]*[]string{
		"type": &options.Types,
		"city": &options.Cities,
		"area": &options.Areas,
	}
	for field, dest := range fields {
		values, err := lc.DB.Collection("locations").Distinct(context.Background(), field, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Success: false,
				Message: err.Error(),
			})
		}
		for _, value := range values {
			if s, ok := value.(string); ok && s != "" {
				*dest = append(*dest, s)
			}
		}
		sort.Strings(*dest)
	}

	payload, err := json.Marshal(map[string]interface{}{
		"success": true,
		"options": options,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	lc.OptionCache.Set(ctx, payload)

	return c.JSONBlob(http.StatusOK, payload)
}

// GetLocationQRCode renders a PNG QR code pointing at the location's public
// page, for printing on physical placements.
func (lc *LocationController) GetLocationQRCode(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid location ID",
		})
	}

	var location models.Location
	err = lc.DB.Collection("locations").FindOne(context.Background(), bson.M{"_id": objectID}).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Message: "Location not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	siteURL := os.Getenv("PUBLIC_SITE_URL")
	if siteURL == "" {
		siteURL = "https://oohdesk.in"
	}
	target := fmt.Sprintf("%s/l/%s", siteURL, location.Slug)

	qrCode, err := qr.Encode(target, qr.M, qr.Auto)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	qrCode, err = barcode.Scale(qrCode, 300, 300)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qrCode); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
