// Package recorder notes that a contact message arrived. Only the sender's
// email and the arrival time are ever recorded.
package recorder

import (
	"context"
	"fmt"

	"agencysite/pkg/logger"
	"agencysite/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Recorder must be safe for concurrent use.
type Recorder interface {
	Record(ctx context.Context, submission model.ContactSubmission) error
}

type LogRecorder struct {
	log *logger.Logger
}

func NewLogRecorder(log *logger.Logger) *LogRecorder {
	return &LogRecorder{log: log}
}

func (r *LogRecorder) Record(_ context.Context, submission model.ContactSubmission) error {
	r.log.Info("Contact form submitted", "email", submission.Email, "id", submission.ID)
	return nil
}

// inserter is the part of *mongo.Collection the recorder needs.
type inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type MongoRecorder struct {
	collection inserter
	log        *logger.Logger
}

func NewMongoRecorder(db *mongo.Database, collection string, log *logger.Logger) *MongoRecorder {
	return newMongoRecorder(db.Collection(collection), log)
}

func newMongoRecorder(collection inserter, log *logger.Logger) *MongoRecorder {
	return &MongoRecorder{
		collection: collection,
		log:        log,
	}
}

func (r *MongoRecorder) Record(ctx context.Context, submission model.ContactSubmission) error {
	if _, err := r.collection.InsertOne(ctx, submission); err != nil {
		return fmt.Errorf("failed to record contact submission: %w", err)
	}
	r.log.Info("Contact form submitted", "email", submission.Email, "id", submission.ID)
	return nil
}
