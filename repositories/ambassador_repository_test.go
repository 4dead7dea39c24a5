package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testDBName = "oohdesk_test"

func TestAmbassadorListSkipsEmptyNames(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("skips locations without a usable ambassador", func(mt *mtest.T) {
		repo := NewAmbassadorRepository(mt.Client.Database(testDBName))

		withAmbassador := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Christ University Main Gate"},
			{Key: "city", Value: "Bengaluru"},
			{Key: "ambassador", Value: bson.D{
				{Key: "name", Value: "Priya S"},
				{Key: "course", Value: "BBA"},
			}},
		}
		emptyName := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Phoenix Mall Atrium"},
			{Key: "ambassador", Value: bson.D{{Key: "name", Value: ""}}},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDBName+".locations", mtest.FirstBatch,
			withAmbassador, emptyName))

		records, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, records, 1)
		assert.Equal(mt, "Christ University Main Gate", records[0].LocationName)
		assert.Equal(mt, "Priya S", records[0].Ambassador.Name)
	})
}

func TestAmbassadorGetWithoutAmbassador(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("location without ambassador yields nil record", func(mt *mtest.T) {
		repo := NewAmbassadorRepository(mt.Client.Database(testDBName))

		locationID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDBName+".locations", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: locationID},
			{Key: "name", Value: "Phoenix Mall Atrium"},
		}))

		record, err := repo.Get(context.Background(), locationID)
		require.NoError(mt, err)
		assert.Nil(mt, record)
	})
}

func TestAmbassadorGetMissingLocation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing location", func(mt *mtest.T) {
		repo := NewAmbassadorRepository(mt.Client.Database(testDBName))

		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDBName+".locations", mtest.FirstBatch))

		_, err := repo.Get(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, mongo.ErrNoDocuments)
	})
}

func TestAmbassadorUpdatePrefixesFields(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("fields land under ambassador.", func(mt *mtest.T) {
		repo := NewAmbassadorRepository(mt.Client.Database(testDBName))

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		matched, err := repo.Update(context.Background(), primitive.NewObjectID(), bson.M{
			"phone":  "+919800000002",
			"status": "Inactive",
		})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), matched)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		set := evt.Command.Lookup("updates").Array().
			Index(0).Value().Document().
			Lookup("u").Document().
			Lookup("$set").Document()
		assert.Equal(mt, "+919800000002", set.Lookup("ambassador.phone").StringValue())
		assert.Equal(mt, "Inactive", set.Lookup("ambassador.status").StringValue())
		assert.NoError(mt, set.Lookup("updatedAt").Validate(), "location timestamp moves too")
	})
}
