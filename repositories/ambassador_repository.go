package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oohdesk/oohdesk_backend/models"
)

// AmbassadorRepository derives ambassador records from the locations
// collection. Ambassadors live embedded on location documents, so every read
// is a scan over locations carrying a non-empty ambassador field.
type AmbassadorRepository struct {
	locations *mongo.Collection
}

func NewAmbassadorRepository(db *mongo.Database) *AmbassadorRepository {
	return &AmbassadorRepository{
		locations: db.Collection("locations"),
	}
}

// List returns one record per location holding an ambassador. Soft-deleted
// locations are skipped.
func (r *AmbassadorRepository) List(ctx context.Context) ([]models.AmbassadorRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"ambassador": bson.M{"$exists": true, "$ne": nil},
		"status":     bson.M{"$ne": models.LocationStatusDeleted},
	}

	cursor, err := r.locations.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}

	records := make([]models.AmbassadorRecord, 0, len(locations))
	for _, loc := range locations {
		if loc.Ambassador == nil || loc.Ambassador.Name == "" {
			continue
		}
		records = append(records, models.AmbassadorRecord{
			LocationID:   loc.ID,
			LocationName: loc.Name,
			City:         loc.City,
			Ambassador:   *loc.Ambassador,
		})
	}
	return records, nil
}

// Get returns the ambassador embedded on the given location, or
// mongo.ErrNoDocuments when the location is missing. A location without an
// ambassador yields (nil, nil).
func (r *AmbassadorRepository) Get(ctx context.Context, locationID primitive.ObjectID) (*models.AmbassadorRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var location models.Location
	err := r.locations.FindOne(ctx, bson.M{"_id": locationID}).Decode(&location)
	if err != nil {
		return nil, err
	}

	if location.Ambassador == nil || location.Ambassador.Name == "" {
		return nil, nil
	}

	return &models.AmbassadorRecord{
		LocationID:   location.ID,
		LocationName: location.Name,
		City:         location.City,
		Ambassador:   *location.Ambassador,
	}, nil
}

// Update merges ambassador fields on the location document
func (r *AmbassadorRepository) Update(ctx context.Context, locationID primitive.ObjectID, fields bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for key, value := range fields {
		set["ambassador."+key] = value
	}

	result, err := r.locations.UpdateOne(ctx, bson.M{"_id": locationID}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
