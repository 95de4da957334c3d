package service

import (
	"context"
	"testing"

	"skillswap-be/internal/apperr"
	"skillswap-be/internal/dto"

	"github.com/stretchr/testify/require"
)

func TestSubmitReviewRequiresCompletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newAcceptedRequest()

	_, err := f.reviews.Submit(ctx, f.requester, &dto.SubmitReviewRequest{
		SessionRequestId: id,
		Rating:           4,
	})
	require.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newAcceptedRequest()
	_, err := f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "complete"})
	require.NoError(t, err)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.reviews.Submit(ctx, f.requester, &dto.SubmitReviewRequest{
			SessionRequestId: id,
			Rating:           rating,
		})
		require.True(t, apperr.IsKind(err, apperr.KindValidation), "rating %d", rating)
	}
}

func TestSubmitReviewUpsert(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newAcceptedRequest()
	_, err := f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "complete"})
	require.NoError(t, err)

	res, err := f.reviews.Submit(ctx, f.requester, &dto.SubmitReviewRequest{
		SessionRequestId: id,
		Rating:           4,
		Comment:          "good session",
	})
	require.NoError(t, err)
	require.Equal(t, f.provider.UserId, res.ToUserId)

	// Resubmitting replaces the earlier review instead of adding a second row.
	res2, err := f.reviews.Submit(ctx, f.requester, &dto.SubmitReviewRequest{
		SessionRequestId: id,
		Rating:           5,
		Comment:          "even better in hindsight",
	})
	require.NoError(t, err)
	require.Equal(t, res.Id, res2.Id)
	require.Equal(t, 5, res2.Rating)

	reviews, err := f.reviews.ListForSession(ctx, f.requester, id)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, 5, reviews[0].Rating)
}

func TestSubmitReviewBothSides(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newAcceptedRequest()
	_, err := f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "complete"})
	require.NoError(t, err)

	_, err = f.reviews.Submit(ctx, f.requester, &dto.SubmitReviewRequest{SessionRequestId: id, Rating: 4})
	require.NoError(t, err)
	_, err = f.reviews.Submit(ctx, f.provider, &dto.SubmitReviewRequest{SessionRequestId: id, Rating: 5})
	require.NoError(t, err)

	reviews, err := f.reviews.ListForSession(ctx, f.provider, id)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	forProvider, err := f.reviews.ListForUser(ctx, f.provider.UserId)
	require.NoError(t, err)
	require.Len(t, forProvider, 1)
	require.Equal(t, 4, forProvider[0].Rating)
}

func TestReviewParticipantGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newAcceptedRequest()
	_, err := f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "complete"})
	require.NoError(t, err)

	outsider := f.newUser("lurker@example.com")
	_, err = f.reviews.Submit(ctx, outsider, &dto.SubmitReviewRequest{SessionRequestId: id, Rating: 3})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	_, err = f.reviews.ListForSession(ctx, outsider, id)
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))
}
