// internal/repository/mongo/completion_repo.go
package mongo

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CompletionCollectionName = "completions"

// mongoCompletionRepository implements repository.CompletionRepository.
type mongoCompletionRepository struct {
	collection *mongo.Collection
}

func NewMongoCompletionRepository(db *mongo.Database) repository.CompletionRepository {
	return &mongoCompletionRepository{
		collection: db.Collection(CompletionCollectionName),
	}
}

// Create inserts one completion record. Records are never updated afterwards.
func (r *mongoCompletionRepository) Create(ctx context.Context, rec *domain.CompletionRecord) error {
	if rec.SessionID == "" || rec.WorkoutName == "" {
		return errors.New("completion record requires sessionId and workoutName")
	}

	if _, err := r.collection.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrInsertFailed, err)
	}
	return nil
}

// GetBySessionID returns a session's records, newest first.
func (r *mongoCompletionRepository) GetBySessionID(ctx context.Context, sessionID string) ([]domain.CompletionRecord, error) {
	filter := bson.M{"sessionId": sessionID}
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []domain.CompletionRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, repository.ErrNotFound
	}
	return records, nil
}

// EnsureCompletionIndexes creates the indexes used by GetBySessionID. Call during startup.
func EnsureCompletionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sessionId", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "goal", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
