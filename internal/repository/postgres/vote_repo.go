package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"

	"gorm.io/gorm"
)

type VoteRepository struct {
	DB *gorm.DB
}

func (r *VoteRepository) ListAll(ctx context.Context, guildID string) ([]model.Vote, error) {
	var list []model.Vote
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// ListActive filters on the stored flag only; callers still need ActiveNow
// because end_time may have passed since the flag was last updated.
func (r *VoteRepository) ListActive(ctx context.Context, guildID string) ([]model.Vote, error) {
	var list []model.Vote
	err := r.DB.WithContext(ctx).
		Where("guild_id = ? AND is_active = ?", guildID, true).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *VoteRepository) FindByID(ctx context.Context, guildID string, id uint64) (*model.Vote, error) {
	var v model.Vote
	err := r.DB.WithContext(ctx).
		Where("id = ? AND guild_id = ?", id, guildID).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFound("vote not found")
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VoteRepository) Create(ctx context.Context, v *model.Vote) error {
	return r.DB.WithContext(ctx).Create(v).Error
}

func (r *VoteRepository) Delete(ctx context.Context, guildID string, id uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND guild_id = ?", id, guildID).Delete(&model.Vote{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return pkg.NotFound("vote not found")
		}
		return tx.Where("vote_id = ?", id).Delete(&model.VoteCast{}).Error
	})
}

// Cast records one user's vote. Duplicate (vote_id, user_id) is a conflict
// and must not touch the counters; otherwise the cast row, the per-option
// tally and total_votes move together in one transaction.
func (r *VoteRepository) Cast(ctx context.Context, guildID string, voteID uint64, userID string, optionIndex int) (*model.Vote, error) {
	var out *model.Vote
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vote model.Vote
		if err := tx.Where("id = ? AND guild_id = ?", voteID, guildID).First(&vote).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkg.NotFound("vote not found")
			}
			return err
		}

		var options []model.VoteOption
		if err := json.Unmarshal([]byte(vote.Options), &options); err != nil {
			return err
		}
		if optionIndex < 0 || optionIndex >= len(options) {
			return pkg.Validation("optionIndex is out of range")
		}
		if !vote.ActiveNow(time.Now()) {
			return pkg.Conflict("vote has ended")
		}

		var existing model.VoteCast
		err := tx.Where("vote_id = ? AND user_id = ?", voteID, userID).First(&existing).Error
		if err == nil {
			return pkg.Conflict("already voted")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&model.VoteCast{
			VoteID:      voteID,
			UserID:      userID,
			OptionIndex: optionIndex,
		}).Error; err != nil {
			// A concurrent cast can slip past the existence check; the
			// unique index catches it and it is still the same conflict.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return pkg.Conflict("already voted")
			}
			return err
		}

		options[optionIndex].Votes++
		raw, err := json.Marshal(options)
		if err != nil {
			return err
		}
		if err := tx.Model(&model.Vote{}).
			Where("id = ?", voteID).
			Updates(map[string]any{
				"options":     string(raw),
				"total_votes": gorm.Expr("total_votes + 1"),
			}).Error; err != nil {
			return err
		}

		vote.Options = string(raw)
		vote.TotalVotes++
		out = &vote
		return nil
	})
	return out, err
}

func (r *VoteRepository) CountCasts(ctx context.Context, voteID uint64) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.VoteCast{}).
		Where("vote_id = ?", voteID).
		Count(&n).Error
	return n, err
}
