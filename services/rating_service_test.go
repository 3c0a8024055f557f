package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRating(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "rater@example.com")
	svc := NewRatingService(db)

	r, err := svc.Create(context.Background(), user.ID, 4, "solid app")
	require.NoError(t, err)
	assert.Equal(t, 4, r.Rating)
	assert.Equal(t, "solid app", r.Review)

	// One rating per user.
	_, err = svc.Create(context.Background(), user.ID, 5, "changed my mind")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCreateRating_OutOfRange(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "rater@example.com")
	svc := NewRatingService(db)

	var ve *ValidationError
	_, err := svc.Create(context.Background(), user.ID, 0, "")
	require.ErrorAs(t, err, &ve)
	_, err = svc.Create(context.Background(), user.ID, 6, "")
	require.ErrorAs(t, err, &ve)
}

func TestListRatings(t *testing.T) {
	db := newTestDB(t)
	alice := newTestUser(t, db, "alice@example.com")
	bob := newTestUser(t, db, "bob@example.com")
	svc := NewRatingService(db)

	_, err := svc.Create(context.Background(), alice.ID, 5, "great")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob.ID, 3, "okay")
	require.NoError(t, err)

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	byRating := map[int]RatingView{}
	for _, v := range views {
		byRating[v.Rating] = v
	}
	assert.Equal(t, "Test User", byRating[5].UserName)
	assert.Equal(t, "great", byRating[5].Review)
	assert.Equal(t, "okay", byRating[3].Review)
}
