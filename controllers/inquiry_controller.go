package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oohdesk/oohdesk_backend/models"
	"github.com/oohdesk/oohdesk_backend/utils"
	"github.com/oohdesk/oohdesk_backend/websocket"
)

type InquiryController struct {
	DB  *mongo.Database
	Hub *websocket.Hub
}

func NewInquiryController(db *mongo.Database, hub *websocket.Hub) *InquiryController {
	return &InquiryController{DB: db, Hub: hub}
}

// GetInquiries lists inquiries, optionally filtered by type and read state
func (ic *InquiryController) GetInquiries(c echo.Context) error {
	filter := bson.M{}

	if inquiryType := c.QueryParam("type"); inquiryType != "" {
		filter["type"] = inquiryType
	}
	if isRead := c.QueryParam("isRead"); isRead != "" {
		filter["isRead"] = isRead == "true"
	}

	cursor, err := ic.DB.Collection("inquiries").Find(context.Background(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	defer cursor.Close(context.Background())

	var inquiries []models.Inquiry
	if err = cursor.All(context.Background(), &inquiries); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	search := c.QueryParam("search")

	filtered := make([]models.Inquiry, 0, len(inquiries))
	for _, inquiry := range inquiries {
		if !utils.MatchesQuery(search, inquiry.Name, inquiry.Email, inquiry.Phone) {
			continue
		}
		filtered = append(filtered, inquiry)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return c.JSON(http.StatusOK, models.InquiryListResponse{
		Success:   true,
		Count:     len(filtered),
		Inquiries: filtered,
	})
}

// GetUnreadCounts returns the per-type unread totals behind the sidebar badges
func (ic *InquiryController) GetUnreadCounts(c echo.Context) error {
	counts := models.UnreadCounts{}
	buckets := map[string]*int64{
		models.InquiryTypeSponsorship: &counts.Sponsorship,
		models.InquiryTypeAmbassador:  &counts.Ambassador,
		models.InquiryTypeAdvertise:   &counts.Advertise,
		models.InquiryTypeContact:     &counts.Contact,
	}

	for inquiryType, dest := range buckets {
		count, err := ic.DB.Collection("inquiries").CountDocuments(
			context.Background(),
			bson.M{"type": inquiryType, "isRead": false},
		)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Success: false,
				Message: err.Error(),
			})
		}
		*dest = count
		counts.Total += count
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    counts,
	})
}

// MarkInquiryRead flips isRead and tells other open dashboards
func (ic *InquiryController) MarkInquiryRead(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid inquiry ID",
		})
	}

	result, err := ic.DB.Collection("inquiries").UpdateOne(
		context.Background(),
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"isRead": true}},
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
			Message: "Inquiry not found",
		})
	}

	if ic.Hub != nil {
		ic.Hub.NotifyInquiryRead(objectID.Hex())
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Inquiry marked as read",
	})
}

// CreateInquiry accepts a submission from the public website, stores it unread
// and fans out the notifications. This is the only unauthenticated write path.
func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	var inquiry models.Inquiry
	if err := c.Bind(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if inquiry.Type == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Inquiry type is required",
		})
	}

	inquiry.ID = primitive.NilObjectID
	inquiry.Name = utils.SanitizeInput(inquiry.Name)
	inquiry.IsRead = false
	inquiry.CreatedAt = time.Now()

	result, err := ic.DB.Collection("inquiries").InsertOne(context.Background(), inquiry)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}
	inquiry.ID = result.InsertedID.(primitive.ObjectID)

	if ic.Hub != nil {
		ic.Hub.NotifyInquiryCreated(inquiry)
	}
	go utils.NotifyAdminOfInquiry(&inquiry)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"uid":     inquiry.ID.Hex(),
	})
}
