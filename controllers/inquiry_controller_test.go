package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/oohdesk/oohdesk_backend/models"
)

func TestCreateInquiryMissingType(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing type", func(mt *mtest.T) {
		ic := NewInquiryController(mt.Client.Database(testDBName), nil)

		c, rec := newJSONContext(http.MethodPost, "/api/inquiries", `{"name":"Rahul"}`)
		require.NoError(mt, ic.CreateInquiry(c))

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
		assert.Equal(mt, "Inquiry type is required", decodeResponse(mt.T, rec).Message)
	})
}

func TestCreateInquiryStoredUnread(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("created unread", func(mt *mtest.T) {
		ic := NewInquiryController(mt.Client.Database(testDBName), nil)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c, rec := newJSONContext(http.MethodPost, "/api/inquiries",
			`{"type":"sponsorship","name":"  Rahul  ","email":"rahul@example.com","isRead":true}`)
		require.NoError(mt, ic.CreateInquiry(c))

		assert.Equal(mt, http.StatusCreated, rec.Code)

		var body map[string]interface{}
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(mt, true, body["success"])
		assert.NotEmpty(mt, body["uid"])

		// The submitted isRead flag is ignored; new inquiries always land unread
		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)

		doc := evt.Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.False(mt, doc.Lookup("isRead").Boolean())
		assert.Equal(mt, "Rahul", doc.Lookup("name").StringValue(), "name is trimmed")
	})
}

func TestMarkInquiryReadNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown id", func(mt *mtest.T) {
		ic := NewInquiryController(mt.Client.Database(testDBName), nil)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		c, rec := newJSONContext(http.MethodPatch, "/api/inquiries/:id/read", "")
		c.SetParamNames("id")
		c.SetParamValues(primitive.NewObjectID().Hex())
		require.NoError(mt, ic.MarkInquiryRead(c))

		assert.Equal(mt, http.StatusNotFound, rec.Code)
		assert.Equal(mt, "Inquiry not found", decodeResponse(mt.T, rec).Message)
	})
}

func TestGetUnreadCounts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sums per-type buckets", func(mt *mtest.T) {
		ic := NewInquiryController(mt.Client.Database(testDBName), nil)

		// CountDocuments runs an aggregate per type; the same count for every
		// bucket keeps the test independent of map iteration order.
		for i := 0; i < 4; i++ {
			mt.AddMockResponses(mtest.CreateCursorResponse(0, testDBName+".inquiries", mtest.FirstBatch,
				bson.D{{Key: "n", Value: int64(2)}},
			))
		}

		c, rec := newJSONContext(http.MethodGet, "/api/inquiries/unread-count", "")
		require.NoError(mt, ic.GetUnreadCounts(c))

		assert.Equal(mt, http.StatusOK, rec.Code)

		var body struct {
			Success bool                `json:"success"`
			Data    models.UnreadCounts `json:"data"`
		}
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(mt, body.Success)
		assert.Equal(mt, int64(2), body.Data.Sponsorship)
		assert.Equal(mt, int64(8), body.Data.Total)
	})
}
