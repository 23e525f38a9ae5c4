package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"agencysite/internal/newsletter/store"
	"agencysite/pkg/config"
	apperrors "agencysite/pkg/errors"
	"agencysite/pkg/logger"
	"agencysite/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (f failingStore) Subscribe(context.Context, string, time.Time) (store.Outcome, error) {
	return 0, f.err
}

func (f failingStore) Unsubscribe(context.Context, string, time.Time) (bool, error) {
	return false, f.err
}

func newTestService(s store.Store) NewsletterService {
	return NewNewsletterService(s, &config.Config{Log: logger.Discard()})
}

func TestNewsletterService_Subscribe(t *testing.T) {
	svc := newTestService(store.NewMemoryStore())
	ctx := context.Background()

	result, err := svc.Subscribe(ctx, &model.NewsletterRequest{Email: " Jane@Example.com "})
	require.NoError(t, err)
	assert.Equal(t, "subscribed", result.Status)
	assert.Equal(t, SubscribedMessage, result.Message)
	assert.True(t, result.Created)

	result, err = svc.Subscribe(ctx, &model.NewsletterRequest{Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "already_subscribed", result.Status)
	assert.Equal(t, AlreadySubscribedMessage, result.Message)
	assert.False(t, result.Created)

	result, err = svc.Unsubscribe(ctx, &model.NewsletterRequest{Email: "JANE@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "unsubscribed", result.Status)

	result, err = svc.Subscribe(ctx, &model.NewsletterRequest{Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "reactivated", result.Status)
	assert.Equal(t, ReactivatedMessage, result.Message)
}

func TestNewsletterService_GmailAliasesShareOneSubscription(t *testing.T) {
	svc := newTestService(store.NewMemoryStore())

	_, err := svc.Subscribe(context.Background(), &model.NewsletterRequest{Email: "jane.doe@gmail.com"})
	require.NoError(t, err)

	result, err := svc.Subscribe(context.Background(), &model.NewsletterRequest{Email: "janedoe+news@googlemail.com"})
	require.NoError(t, err)
	assert.Equal(t, "already_subscribed", result.Status)
}

func TestNewsletterService_UnsubscribeUnknownEmail(t *testing.T) {
	svc := newTestService(store.NewMemoryStore())

	result, err := svc.Unsubscribe(context.Background(), &model.NewsletterRequest{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Equal(t, UnsubscribedMessage, result.Message)
}

func TestNewsletterService_Rejections(t *testing.T) {
	svc := newTestService(store.NewMemoryStore())

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := svc.Subscribe(context.Background(), &model.NewsletterRequest{Email: email})
		require.Error(t, err, email)

		appErr := apperrors.AsAppError(err)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		assert.Equal(t, []apperrors.FieldError{{Field: "email", Message: "Valid email required"}}, appErr.Fields)
	}

	_, err := svc.Subscribe(context.Background(), nil)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)
}

func TestNewsletterService_StoreFailure(t *testing.T) {
	svc := newTestService(failingStore{err: errors.New("connection reset")})

	_, err := svc.Subscribe(context.Background(), &model.NewsletterRequest{Email: "jane@example.com"})
	assert.Equal(t, apperrors.CodeInternal, apperrors.AsAppError(err).Code)

	_, err = svc.Unsubscribe(context.Background(), &model.NewsletterRequest{Email: "jane@example.com"})
	assert.Equal(t, apperrors.CodeInternal, apperrors.AsAppError(err).Code)
}
