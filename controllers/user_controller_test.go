package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/oohdesk/oohdesk_backend/models"
)

func TestGetUsersSearch(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("search over name city email phone", func(mt *mtest.T) {
		uc := NewUserController(mt.Client.Database(testDBName))

		matching := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Priya S"},
			{Key: "city", Value: "Bengaluru"},
			{Key: "email", Value: "priya@example.com"},
			{Key: "createdAt", Value: time.Now()},
		}
		other := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Arjun K"},
			{Key: "city", Value: "Mumbai"},
			{Key: "createdAt", Value: time.Now()},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDBName+".users", mtest.FirstBatch, matching, other))

		c, rec := newJSONContext(http.MethodGet, "/api/users?search=priya", "")
		require.NoError(mt, uc.GetUsers(c))

		assert.Equal(mt, http.StatusOK, rec.Code)

		var body models.UserListResponse
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(mt, 1, body.Count)
		assert.Equal(mt, "Priya S", body.Users[0].Name)
	})
}

func TestBlockUserMissingID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing id", func(mt *mtest.T) {
		uc := NewUserController(mt.Client.Database(testDBName))

		c, rec := newValidatedJSONContext(http.MethodPatch, "/api/users/block", `{"isBlocked":true}`)
		require.NoError(mt, uc.BlockUser(c))

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
		assert.Equal(mt, "User id is required", decodeResponse(mt.T, rec).Message)
	})
}

func TestBlockUserToggleIsUnconditional(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("toggle twice lands on original value", func(mt *mtest.T) {
		uc := NewUserController(mt.Client.Database(testDBName))
		userID := primitive.NewObjectID().Hex()

		wantBlocked := []bool{true, false}
		for _, blocked := range wantBlocked {
			mt.AddMockResponses(mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			))

			body := fmt.Sprintf(`{"id":%q,"isBlocked":%t}`, userID, blocked)
			c, rec := newValidatedJSONContext(http.MethodPatch, "/api/users/block", body)
			require.NoError(mt, uc.BlockUser(c))
			assert.Equal(mt, http.StatusOK, rec.Code)
		}

		// Each PATCH writes the submitted value as-is
		for _, blocked := range wantBlocked {
			evt := mt.GetStartedEvent()
			require.NotNil(mt, evt)
			assert.Equal(mt, "update", evt.CommandName)

			set := evt.Command.Lookup("updates").Array().
				Index(0).Value().Document().
				Lookup("u").Document().
				Lookup("$set").Document()
			assert.Equal(mt, blocked, set.Lookup("isBlocked").Boolean())
		}
	})
}

func TestBlockUserNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown id", func(mt *mtest.T) {
		uc := NewUserController(mt.Client.Database(testDBName))

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		body := fmt.Sprintf(`{"id":%q,"isBlocked":true}`, primitive.NewObjectID().Hex())
		c, rec := newValidatedJSONContext(http.MethodPatch, "/api/users/block", body)
		require.NoError(mt, uc.BlockUser(c))

		assert.Equal(mt, http.StatusNotFound, rec.Code)
		assert.Equal(mt, "User not found", decodeResponse(mt.T, rec).Message)
	})
}
