package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedVote(t *testing.T, repo *VoteRepository, guildID string) *model.Vote {
	t.Helper()
	opts, _ := json.Marshal([]model.VoteOption{{Text: "yes"}, {Text: "no"}})
	v := &model.Vote{
		GuildID:  guildID,
		Question: "ship it?",
		Options:  string(opts),
		EndTime:  time.Now().Add(time.Hour),
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func TestVoteCastIncrementsOnce(t *testing.T) {
	repo := &VoteRepository{DB: newTestDB(t)}
	ctx := context.Background()
	v := seedVote(t, repo, "g1")

	updated, err := repo.Cast(ctx, "g1", v.ID, "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.TotalVotes)

	var options []model.VoteOption
	require.NoError(t, json.Unmarshal([]byte(updated.Options), &options))
	assert.Equal(t, int64(0), options[0].Votes)
	assert.Equal(t, int64(1), options[1].Votes)
}

func TestVoteCastDuplicateIsConflictAndLeavesCountersAlone(t *testing.T) {
	repo := &VoteRepository{DB: newTestDB(t)}
	ctx := context.Background()
	v := seedVote(t, repo, "g1")

	_, err := repo.Cast(ctx, "g1", v.ID, "u1", 0)
	require.NoError(t, err)

	_, err = repo.Cast(ctx, "g1", v.ID, "u1", 1)
	require.Error(t, err)
	assert.Equal(t, pkg.KindConflict, pkg.KindOf(err))
	assert.EqualError(t, err, "already voted")

	got, err := repo.FindByID(ctx, "g1", v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TotalVotes)

	casts, err := repo.CountCasts(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), casts)
}

// A cast racing past the existence check lands on the unique index; the
// translated driver error is what Cast maps back to the conflict message.
func TestDuplicateCastRowHitsUniqueIndex(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&model.VoteCast{VoteID: 1, UserID: "u1", OptionIndex: 0}).Error)
	err := db.Create(&model.VoteCast{VoteID: 1, UserID: "u1", OptionIndex: 1}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestVoteCastOptionIndexOutOfRange(t *testing.T) {
	repo := &VoteRepository{DB: newTestDB(t)}
	ctx := context.Background()
	v := seedVote(t, repo, "g1")

	_, err := repo.Cast(ctx, "g1", v.ID, "u1", 2)
	assert.Equal(t, pkg.KindValidation, pkg.KindOf(err))

	_, err = repo.Cast(ctx, "g1", v.ID, "u1", -1)
	assert.Equal(t, pkg.KindValidation, pkg.KindOf(err))
}

func TestVoteCastEndedVote(t *testing.T) {
	repo := &VoteRepository{DB: newTestDB(t)}
	ctx := context.Background()
	opts, _ := json.Marshal([]model.VoteOption{{Text: "yes"}, {Text: "no"}})
	v := &model.Vote{
		GuildID:  "g1",
		Question: "too late?",
		Options:  string(opts),
		EndTime:  time.Now().Add(-time.Hour),
		IsActive: true,
	}
	require.NoError(t, repo.Create(ctx, v))

	_, err := repo.Cast(ctx, "g1", v.ID, "u1", 0)
	assert.Equal(t, pkg.KindConflict, pkg.KindOf(err))
}

func TestVoteCastWrongGuildIsNotFound(t *testing.T) {
	repo := &VoteRepository{DB: newTestDB(t)}
	ctx := context.Background()
	v := seedVote(t, repo, "g1")

	_, err := repo.Cast(ctx, "g2", v.ID, "u1", 0)
	assert.Equal(t, pkg.KindNotFound, pkg.KindOf(err))
}

func TestVoteDeleteRemovesCasts(t *testing.T) {
	repo := &VoteRepository{DB: newTestDB(t)}
	ctx := context.Background()
	v := seedVote(t, repo, "g1")

	_, err := repo.Cast(ctx, "g1", v.ID, "u1", 0)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "g1", v.ID))

	casts, err := repo.CountCasts(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), casts)
}
