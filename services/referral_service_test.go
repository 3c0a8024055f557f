package services

import (
	"context"
	"testing"

	"github.com/jayuttam/fitness-diet-recommendation-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReferral(t *testing.T) {
	db := newTestDB(t)
	referrer := newTestUser(t, db, "referrer@example.com")
	referred := newTestUser(t, db, "friend@example.com")
	svc := NewReferralService(db)

	ref, err := svc.Create(context.Background(), referrer.ID, "Friend@Example.com")
	require.NoError(t, err)
	assert.Equal(t, referrer.ID, ref.ReferrerID)
	assert.Equal(t, referred.ID, ref.ReferredUserID)
	assert.Equal(t, models.ReferralPending, ref.Status)
	assert.Len(t, ref.Code, 8)
	assert.Zero(t, ref.RewardPoints)
}

func TestCreateReferral_Rejections(t *testing.T) {
	db := newTestDB(t)
	referrer := newTestUser(t, db, "referrer@example.com")
	newTestUser(t, db, "friend@example.com")
	svc := NewReferralService(db)

	_, err := svc.Create(context.Background(), referrer.ID, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	var ve *ValidationError
	_, err = svc.Create(context.Background(), referrer.ID, "referrer@example.com")
	require.ErrorAs(t, err, &ve)

	_, err = svc.Create(context.Background(), referrer.ID, "friend@example.com")
	require.NoError(t, err)

	// Each user can be referred only once, by anyone.
	other := newTestUser(t, db, "other@example.com")
	_, err = svc.Create(context.Background(), other.ID, "friend@example.com")
	require.ErrorAs(t, err, &ve)
}

func TestCompleteReferral(t *testing.T) {
	db := newTestDB(t)
	referrer := newTestUser(t, db, "referrer@example.com")
	newTestUser(t, db, "friend@example.com")
	svc := NewReferralService(db)

	ref, err := svc.Create(context.Background(), referrer.ID, "friend@example.com")
	require.NoError(t, err)

	done, err := svc.Complete(context.Background(), referrer.ID, ref.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReferralCompleted, done.Status)
	assert.Equal(t, 100, done.RewardPoints)
	require.NotNil(t, done.CompletedAt)

	// Completing twice is rejected.
	var ve *ValidationError
	_, err = svc.Complete(context.Background(), referrer.ID, ref.ID)
	require.ErrorAs(t, err, &ve)

	refs, points, err := svc.ListByReferrer(context.Background(), referrer.ID)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, 100, points)
}

func TestCompleteReferral_OwnershipScoped(t *testing.T) {
	db := newTestDB(t)
	referrer := newTestUser(t, db, "referrer@example.com")
	newTestUser(t, db, "friend@example.com")
	intruder := newTestUser(t, db, "intruder@example.com")
	svc := NewReferralService(db)

	ref, err := svc.Create(context.Background(), referrer.ID, "friend@example.com")
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), intruder.ID, ref.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByReferrer_Empty(t *testing.T) {
	db := newTestDB(t)
	referrer := newTestUser(t, db, "referrer@example.com")
	svc := NewReferralService(db)

	refs, points, err := svc.ListByReferrer(context.Background(), referrer.ID)
	require.NoError(t, err)
	assert.Empty(t, refs)
	assert.Zero(t, points)
}
