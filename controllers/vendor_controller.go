package controllers

import (
	"context"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oohdesk/oohdesk_backend/models"
	"github.com/oohdesk/oohdesk_backend/utils"
)

type VendorController struct {
	DB *mongo.Database
}

func NewVendorController(db *mongo.Database) *VendorController {
	return &VendorController{DB: db}
}

// GetVendors lists vendors with structured filters as database predicates and
// free-text search applied post-fetch. Legacy documents are normalized before
// matching so search sees the nested shape.
func (vc *VendorController) GetVendors(c echo.Context) error {
	filter := bson.M{}

	if categories := utils.SplitCSV(c.QueryParam("category")); len(categories) > 0 {
		filter["category"] = bson.M{"$in": categories}
	}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := vc.DB.Collection("vendors").Find(context.Background(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	defer cursor.Close(context.Background())

	var vendors []models.Vendor
	if err = cursor.All(context.Background(), &vendors); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	search := c.QueryParam("search")

	filtered := make([]models.Vendor, 0, len(vendors))
	for i := range vendors {
		vendors[i].Normalize()
		v := vendors[i]
		if !utils.MatchesQuery(search, v.BusinessName, v.OwnerName, v.Contact.Email, v.Contact.Phone) {
			continue
		}
		filtered = append(filtered, v)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(filtered) {
			filtered = filtered[:limit]
		}
	}

	return c.JSON(http.StatusOK, models.VendorListResponse{
		Success: true,
		Count:   len(filtered),
		Vendors: filtered,
	})
}

// AddVendor creates a vendor from the multipart form. Single-file fields are
// logo, interiorPhoto, idDocument and agreement; shopImages and menuImages
// accept multiple files.
func (vc *VendorController) AddVendor(c echo.Context) error {
	businessName := strings.TrimSpace(c.FormValue("businessName"))
	if businessName == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Business name is required",
		})
	}

	status := c.FormValue("status")
	if status == "" {
		status = models.VendorStatusPending
	}

	vendor := models.Vendor{
		BusinessName: businessName,
		OwnerName:    c.FormValue("ownerName"),
		Category:     c.FormValue("category"),
		SubCategory:  c.FormValue("subCategory"),
		Contact: models.VendorContact{
			Email:    strings.ToLower(strings.TrimSpace(c.FormValue("email"))),
			Phone:    c.FormValue("phone"),
			WhatsApp: c.FormValue("whatsapp"),
		},
		Location: models.VendorLocation{
			Address:   c.FormValue("address"),
			Latitude:  utils.ParseFloat(c.FormValue("latitude")),
			Longitude: utils.ParseFloat(c.FormValue("longitude")),
		},
		Documents: models.VendorDocuments{
			GSTNumber:          c.FormValue("gstNumber"),
			RegistrationNumber: c.FormValue("registrationNumber"),
		},
		Banking: models.VendorBanking{
			AccountNumber: c.FormValue("accountNumber"),
			IFSC:          c.FormValue("ifsc"),
			UPIID:         c.FormValue("upiId"),
		},
		Hours: models.VendorHours{
			OpeningTime:   c.FormValue("openingTime"),
			ClosingTime:   c.FormValue("closingTime"),
			OperatingDays: utils.SplitCSV(c.FormValue("operatingDays")),
		},
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := vc.attachMedia(c, &vendor.Media, &vendor.Documents); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	result, err := vc.DB.Collection("vendors").InsertOne(context.Background(), vendor)
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

// attachMedia uploads whichever files the form carries and fills the media and
// documents blocks. Absent fields are left untouched.
func (vc *VendorController) attachMedia(c echo.Context, media *models.VendorMedia, documents *models.VendorDocuments) error {
	ctx := c.Request().Context()

	if file, err := c.FormFile("logo"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return err
		}
		fileData, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return err
		}

		logoURL, err := utils.UploadFile(ctx, fileData, file.Filename, file.Header.Get("Content-Type"), "vendors")
		if err != nil {
			return err
		}
		media.Logo = logoURL

		// List views load the downscaled copy
		if thumbURL, err := utils.UploadImageThumbnail(ctx, fileData, file.Filename); err == nil {
			media.LogoThumb = thumbURL
		}
	}

	if file, err := c.FormFile("interiorPhoto"); err == nil && file != nil {
		url, err := utils.UploadFormFile(ctx, file, "vendors")
		if err != nil {
			return err
		}
		media.InteriorPhoto = url
	}

	if file, err := c.FormFile("idDocument"); err == nil && file != nil {
		url, err := utils.UploadFormFile(ctx, file, "vendors")
		if err != nil {
			return err
		}
		documents.IDDocumentURL = url
	}

	if file, err := c.FormFile("agreement"); err == nil && file != nil {
		url, err := utils.UploadFormFile(ctx, file, "vendors")
		if err != nil {
			return err
		}
		documents.AgreementURL = url
	}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	for _, file := range form.File["shopImages"] {
		url, err := utils.UploadFormFile(ctx, file, "vendors")
		if err != nil {
			return err
		}
		media.ShopImages = append(media.ShopImages, url)
	}
	for _, file := range form.File["menuImages"] {
		url, err := utils.UploadFormFile(ctx, file, "vendors")
		if err != nil {
			return err
		}
		media.MenuImages = append(media.MenuImages, url)
	}

	return nil
}

// GetVendor retrieves one vendor, folding legacy flat keys into the nested
// blocks before responding
func (vc *VendorController) GetVendor(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid vendor ID",
		})
	}

	var vendor models.Vendor
	err = vc.DB.Collection("vendors").FindOne(context.Background(), bson.M{"_id": objectID}).Decode(&vendor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Message: "Vendor not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	vendor.Normalize()

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    vendor,
	})
}

// EditVendor merges partial fields from the edit form. Writes always use the
// nested keys; absent file fields keep the stored URLs.
func (vc *VendorController) EditVendor(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid vendor ID",
		})
	}

	updateData := bson.M{}

	stringFields := map[string]string{
		"businessName":       "businessName",
		"ownerName":          "ownerName",
		"category":           "category",
		"subCategory":        "subCategory",
		"status":             "status",
		"email":              "contact.email",
		"phone":              "contact.phone",
		"whatsapp":           "contact.whatsapp",
		"address":            "location.address",
		"gstNumber":          "documents.gstNumber",
		"registrationNumber": "documents.registrationNumber",
		"accountNumber":      "banking.accountNumber",
		"ifsc":               "banking.ifsc",
		"upiId":              "banking.upiId",
		"openingTime":        "businessHours.openingTime",
		"closingTime":        "businessHours.closingTime",
	}
	for formKey, docKey := range stringFields {
		if value := strings.TrimSpace(c.FormValue(formKey)); value != "" {
			updateData[docKey] = value
		}
	}

	if lat := c.FormValue("latitude"); lat != "" {
		updateData["location.latitude"] = utils.ParseFloat(lat)
	}
	if lon := c.FormValue("longitude"); lon != "" {
		updateData["location.longitude"] = utils.ParseFloat(lon)
	}
	if days := utils.SplitCSV(c.FormValue("operatingDays")); len(days) > 0 {
		updateData["businessHours.operatingDays"] = days
	}

	var media models.VendorMedia
	var documents models.VendorDocuments
	if err := vc.attachMedia(c, &media, &documents); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	if media.Logo != "" {
		updateData["media.logo"] = media.Logo
	}
	if media.LogoThumb != "" {
		updateData["media.logoThumb"] = media.LogoThumb
	}
	if media.InteriorPhoto != "" {
		updateData["media.interiorPhoto"] = media.InteriorPhoto
	}
	if len(media.ShopImages) > 0 {
		updateData["media.shopImages"] = media.ShopImages
	}
	if len(media.MenuImages) > 0 {
		updateData["media.menuImages"] = media.MenuImages
	}
	if documents.IDDocumentURL != "" {
		updateData["documents.idDocumentUrl"] = documents.IDDocumentURL
	}
	if documents.AgreementURL != "" {
		updateData["documents.agreementUrl"] = documents.AgreementURL
	}

	if len(updateData) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "No fields to update",
		})
	}

	updateData["updatedAt"] = time.Now()

	result, err := vc.DB.Collection("vendors").UpdateOne(
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
			Message: "Vendor not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Vendor updated successfully",
	})
}

// UpdateVendorStatus writes the submitted status as-is. The dashboard offers
// only valid-looking buttons; the API does not check the prior state.
func (vc *VendorController) UpdateVendorStatus(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid vendor ID",
		})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Status is required",
		})
	}

	result, err := vc.DB.Collection("vendors").UpdateOne(
		context.Background(),
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}},
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
			Message: "Vendor not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Vendor status updated",
	})
}

// DeleteVendor removes the vendor document
func (vc *VendorController) DeleteVendor(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid vendor ID",
		})
	}

	result, err := vc.DB.Collection("vendors").DeleteOne(context.Background(), bson.M{"_id": objectID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Vendor not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Vendor deleted successfully",
	})
}
