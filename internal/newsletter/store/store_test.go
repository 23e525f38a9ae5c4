package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"agencysite/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection understands the _id/active filters MongoStore issues.
type fakeCollection struct {
	mu   sync.Mutex
	docs map[string]model.NewsletterSubscription
	err  error
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{docs: make(map[string]model.NewsletterSubscription)}
}

func (c *fakeCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}

	sub := document.(model.NewsletterSubscription)
	if _, ok := c.docs[sub.Email]; ok {
		return nil, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}}}
	}
	c.docs[sub.Email] = sub
	return &mongo.InsertOneResult{InsertedID: sub.Email}, nil
}

func (c *fakeCollection) UpdateOne(_ context.Context, filter interface{}, update interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}

	f := filter.(bson.M)
	set := update.(bson.M)["$set"].(bson.M)

	sub, ok := c.docs[f["_id"].(string)]
	if !ok || sub.Active != f["active"].(bool) {
		return &mongo.UpdateResult{}, nil
	}
	sub.Active = set["active"].(bool)
	sub.UpdatedAt = set["updated_at"].(time.Time)
	c.docs[sub.Email] = sub
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func stores() map[string]func() Store {
	return map[string]func() Store{
		"mongo":  func() Store { return newMongoStore(newFakeCollection()) },
		"memory": func() Store { return NewMemoryStore() },
	}
}

func TestStore_SubscriptionLifecycle(t *testing.T) {
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			ctx := context.Background()

			outcome, err := s.Subscribe(ctx, "jane@example.com", at)
			require.NoError(t, err)
			assert.Equal(t, Subscribed, outcome)

			outcome, err = s.Subscribe(ctx, "jane@example.com", at)
			require.NoError(t, err)
			assert.Equal(t, AlreadySubscribed, outcome)

			removed, err := s.Unsubscribe(ctx, "jane@example.com", at)
			require.NoError(t, err)
			assert.True(t, removed)

			removed, err = s.Unsubscribe(ctx, "jane@example.com", at)
			require.NoError(t, err)
			assert.False(t, removed)

			outcome, err = s.Subscribe(ctx, "jane@example.com", at.Add(time.Hour))
			require.NoError(t, err)
			assert.Equal(t, Reactivated, outcome)

			removed, err = s.Unsubscribe(ctx, "nobody@example.com", at)
			require.NoError(t, err)
			assert.False(t, removed)
		})
	}
}

func TestMongoStore_KeepsOriginalSubscriptionTime(t *testing.T) {
	c := newFakeCollection()
	s := newMongoStore(c)
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := first.AddDate(0, 6, 0)

	_, err := s.Subscribe(context.Background(), "jane@example.com", first)
	require.NoError(t, err)
	_, err = s.Unsubscribe(context.Background(), "jane@example.com", later)
	require.NoError(t, err)
	_, err = s.Subscribe(context.Background(), "jane@example.com", later)
	require.NoError(t, err)

	doc := c.docs["jane@example.com"]
	assert.True(t, doc.Active)
	assert.True(t, doc.SubscribedAt.Equal(first))
	assert.True(t, doc.UpdatedAt.Equal(later))
}

func TestMongoStore_WrapsErrors(t *testing.T) {
	dbErr := errors.New("connection reset")
	c := newFakeCollection()
	c.err = dbErr
	s := newMongoStore(c)

	_, err := s.Subscribe(context.Background(), "jane@example.com", time.Now())
	assert.ErrorIs(t, err, dbErr)

	_, err = s.Unsubscribe(context.Background(), "jane@example.com", time.Now())
	assert.ErrorIs(t, err, dbErr)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "subscribed", Subscribed.String())
	assert.Equal(t, "already_subscribed", AlreadySubscribed.String())
	assert.Equal(t, "reactivated", Reactivated.String())
}
