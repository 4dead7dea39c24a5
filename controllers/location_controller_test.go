package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/oohdesk/oohdesk_backend/models"
	"github.com/oohdesk/oohdesk_backend/utils"
)

type testValidator struct {
	validate *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validate.Struct(i)
}

func newValidatedJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetLocationsExcludesDeletedByDefault(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("default status filter", func(mt *mtest.T) {
		lc := NewLocationController(mt.Client.Database(testDBName), utils.NewOptionCache(nil, "test"))

		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDBName+".locations", mtest.FirstBatch))

		c, rec := newJSONContext(http.MethodGet, "/api/location", "")
		require.NoError(mt, lc.GetLocations(c))
		assert.Equal(mt, http.StatusOK, rec.Code)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)

		status := evt.Command.Lookup("filter").Document().Lookup("status").Document()
		assert.Equal(mt, models.LocationStatusDeleted, status.Lookup("$ne").StringValue())
	})
}

func TestGetLocationsExplicitStatusIncludesDeleted(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("explicit status filter", func(mt *mtest.T) {
		lc := NewLocationController(mt.Client.Database(testDBName), utils.NewOptionCache(nil, "test"))

		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDBName+".locations", mtest.FirstBatch))

		c, rec := newJSONContext(http.MethodGet, "/api/location?status=Deleted", "")
		require.NoError(mt, lc.GetLocations(c))
		assert.Equal(mt, http.StatusOK, rec.Code)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		status := evt.Command.Lookup("filter").Document().Lookup("status").StringValue()
		assert.Equal(mt, models.LocationStatusDeleted, status)
	})
}

func TestAddLocationMissingName(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing name", func(mt *mtest.T) {
		lc := NewLocationController(mt.Client.Database(testDBName), utils.NewOptionCache(nil, "test"))

		c, rec := newJSONContext(http.MethodPost, "/api/location", `{"city":"Bengaluru"}`)
		require.NoError(mt, lc.AddLocation(c))

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
		assert.Equal(mt, "Location name is required", decodeResponse(mt.T, rec).Message)
	})
}

func TestAddLocationInvalidatesFilterOptions(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("cache invalidated on create", func(mt *mtest.T) {
		cache := utils.NewOptionCache(nil, "test")
		cache.Set(context.Background(), []byte(`{"stale":true}`))

		lc := NewLocationController(mt.Client.Database(testDBName), cache)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c, rec := newJSONContext(http.MethodPost, "/api/location",
			`{"name":"Christ University Main Gate","type":"College","city":"Bengaluru","latitude":12.93,"longitude":77.6}`)
		require.NoError(mt, lc.AddLocation(c))

		assert.Equal(mt, http.StatusCreated, rec.Code)

		var body map[string]interface{}
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(mt, true, body["success"])
		assert.NotEmpty(mt, body["uid"])

		_, ok := cache.Get(context.Background())
		assert.False(mt, ok, "filter-options cache should be dropped after a create")
	})
}

func TestSoftDeleteLocationSetsOnlyStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("status only", func(mt *mtest.T) {
		lc := NewLocationController(mt.Client.Database(testDBName), utils.NewOptionCache(nil, "test"))

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		c, rec := newJSONContext(http.MethodDelete, "/api/location/:id", "")
		c.SetParamNames("id")
		c.SetParamValues(primitive.NewObjectID().Hex())
		require.NoError(mt, lc.SoftDeleteLocation(c))

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.True(mt, decodeResponse(mt.T, rec).Success)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "update", evt.CommandName)

		set := evt.Command.Lookup("updates").Array().
			Index(0).Value().Document().
			Lookup("u").Document().
			Lookup("$set").Document()
		elements, err := set.Elements()
		require.NoError(mt, err)
		require.Len(mt, elements, 1, "soft delete must not touch other fields")
		assert.Equal(mt, "status", elements[0].Key())
		assert.Equal(mt, models.LocationStatusDeleted, elements[0].Value().StringValue())
	})
}

func TestSoftDeleteLocationNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown id", func(mt *mtest.T) {
		lc := NewLocationController(mt.Client.Database(testDBName), utils.NewOptionCache(nil, "test"))

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		c, rec := newJSONContext(http.MethodDelete, "/api/location/:id", "")
		c.SetParamNames("id")
		c.SetParamValues(primitive.NewObjectID().Hex())
		require.NoError(mt, lc.SoftDeleteLocation(c))

		assert.Equal(mt, http.StatusNotFound, rec.Code)
		assert.Equal(mt, "Location not found", decodeResponse(mt.T, rec).Message)
	})
}

func TestBulkImportLocations(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("derives geo per row", func(mt *mtest.T) {
		cache := utils.NewOptionCache(nil, "test")
		cache.Set(context.Background(), []byte(`{"stale":true}`))

		lc := NewLocationController(mt.Client.Database(testDBName), cache)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}))

		c, rec := newValidatedJSONContext(http.MethodPost, "/api/location/bulk", `{"locations":[
			{"name":"Christ University Main Gate","type":"College","city":"Bengaluru","latitude":12.93,"longitude":77.6},
			{"name":"Phoenix Mall Atrium","type":"Retail","city":"Mumbai","latitude":19.08,"longitude":72.88}
		]}`)
		require.NoError(mt, lc.BulkImportLocations(c))

		assert.Equal(mt, http.StatusCreated, rec.Code)

		var body struct {
			Success bool           `json:"success"`
			Data    map[string]int `json:"data"`
		}
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(mt, body.Success)
		assert.Equal(mt, 2, body.Data["inserted"])

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)

		docs := evt.Command.Lookup("documents").Array()
		values, err := docs.Values()
		require.NoError(mt, err)
		require.Len(mt, values, 2)

		wantCoords := [][]float64{{77.6, 12.93}, {72.88, 19.08}}
		for i, value := range values {
			coords := value.Document().Lookup("geo").Document().Lookup("coordinates").Array()
			coordValues, err := coords.Values()
			require.NoError(mt, err)
			require.Len(mt, coordValues, 2)
			assert.Equal(mt, wantCoords[i][0], coordValues[0].Double(), "longitude first")
			assert.Equal(mt, wantCoords[i][1], coordValues[1].Double())
		}

		_, ok := cache.Get(context.Background())
		assert.False(mt, ok, "filter-options cache should be dropped after an import")
	})
}

func TestBulkImportLocationsRejectsEmptyBatch(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty batch", func(mt *mtest.T) {
		lc := NewLocationController(mt.Client.Database(testDBName), utils.NewOptionCache(nil, "test"))

		c, rec := newValidatedJSONContext(http.MethodPost, "/api/location/bulk", `{"locations":[]}`)
		require.NoError(mt, lc.BulkImportLocations(c))

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
	})
}

func TestGetFilterOptionsServedFromCache(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("cache hit skips the database", func(mt *mtest.T) {
		cache := utils.NewOptionCache(nil, "test")
		payload := []byte(`{"success":true,"options":{"types":["College"],"cities":[],"areas":[]}}`)
		cache.Set(context.Background(), payload)

		lc := NewLocationController(mt.Client.Database(testDBName), cache)

		c, rec := newJSONContext(http.MethodGet, "/api/location/filter-options", "")
		require.NoError(mt, lc.GetFilterOptions(c))

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.JSONEq(mt, string(payload), rec.Body.String())
	})
}

func TestGetFilterOptionsQueriesAndCaches(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("cache miss hits distinct and stores", func(mt *mtest.T) {
		cache := utils.NewOptionCache(nil, "test")
		lc := NewLocationController(mt.Client.Database(testDBName), cache)

		// One distinct call per field; the same values keep the test independent
		// of map iteration order.
		for i := 0; i < 3; i++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse(
				bson.E{Key: "values", Value: bson.A{"Retail", "College", ""}},
			))
		}

		c, rec := newJSONContext(http.MethodGet, "/api/location/filter-options", "")
		require.NoError(mt, lc.GetFilterOptions(c))

		assert.Equal(mt, http.StatusOK, rec.Code)

		var body struct {
			Success bool                 `json:"success"`
			Options models.FilterOptions `json:"options"`
		}
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(mt, body.Success)
		assert.Equal(mt, []string{"College", "Retail"}, body.Options.Types, "sorted, empties dropped")

		cached, ok := cache.Get(context.Background())
		require.True(mt, ok, "payload should be cached for the next call")
		assert.JSONEq(mt, rec.Body.String(), string(cached))
	})
}
