// Package store keeps newsletter subscriptions, one per email address.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agencysite/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Outcome int

const (
	Subscribed Outcome = iota
	AlreadySubscribed
	Reactivated
)

func (o Outcome) String() string {
	switch o {
	case Subscribed:
		return "subscribed"
	case AlreadySubscribed:
		return "already_subscribed"
	case Reactivated:
		return "reactivated"
	default:
		return "unknown"
	}
}

// Store must be safe for concurrent use.
type Store interface {
	// Subscribe creates an active subscription, reactivates an inactive one,
	// or reports that email is already subscribed.
	Subscribe(ctx context.Context, email string, at time.Time) (Outcome, error)
	// Unsubscribe deactivates email and reports whether it was active.
	Unsubscribe(ctx context.Context, email string, at time.Time) (bool, error)
}

// collection is the part of *mongo.Collection the store needs.
type collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

// MongoStore relies on the email being the document _id, so concurrent
// subscribes of one address resolve through the unique index.
type MongoStore struct {
	collection collection
}

func NewMongoStore(db *mongo.Database, collectionName string) *MongoStore {
	return newMongoStore(db.Collection(collectionName))
}

func newMongoStore(c collection) *MongoStore {
	return &MongoStore{collection: c}
}

func (s *MongoStore) Subscribe(ctx context.Context, email string, at time.Time) (Outcome, error) {
	res, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": email, "active": false},
		bson.M{"$set": bson.M{"active": true, "updated_at": at}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reactivate newsletter subscription: %w", err)
	}
	if res.MatchedCount > 0 {
		return Reactivated, nil
	}

	_, err = s.collection.InsertOne(ctx, model.NewsletterSubscription{
		Email:        email,
		Active:       true,
		SubscribedAt: at,
		UpdatedAt:    at,
	})
	if mongo.IsDuplicateKeyError(err) {
		return AlreadySubscribed, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create newsletter subscription: %w", err)
	}
	return Subscribed, nil
}

func (s *MongoStore) Unsubscribe(ctx context.Context, email string, at time.Time) (bool, error) {
	res, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": email, "active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": at}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate newsletter subscription: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// MemoryStore keeps subscriptions for the life of the process.
type MemoryStore struct {
	mu   sync.Mutex
	subs map[string]*model.NewsletterSubscription
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{subs: make(map[string]*model.NewsletterSubscription)}
}

func (s *MemoryStore) Subscribe(_ context.Context, email string, at time.Time) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[email]
	switch {
	case !ok:
		s.subs[email] = &model.NewsletterSubscription{
			Email:        email,
			Active:       true,
			SubscribedAt: at,
			UpdatedAt:    at,
		}
		return Subscribed, nil
	case sub.Active:
		return AlreadySubscribed, nil
	default:
		sub.Active = true
		sub.UpdatedAt = at
		return Reactivated, nil
	}
}

func (s *MemoryStore) Unsubscribe(_ context.Context, email string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[email]
	if !ok || !sub.Active {
		return false, nil
	}
	sub.Active = false
	sub.UpdatedAt = at
	return true, nil
}
