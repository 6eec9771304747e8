package service

import (
	"context"
	"encoding/json"
	"time"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"
	"aeon_dashboard/internal/repository/postgres"
)

// VoteView is the UI-facing vote shape with the derived activity flag.
type VoteView struct {
	ID         uint64             `json:"id"`
	GuildID    string             `json:"guild_id"`
	Question   string             `json:"question"`
	Options    []model.VoteOption `json:"options"`
	EndTime    time.Time          `json:"end_time"`
	IsActive   bool               `json:"is_active"`
	TotalVotes int64              `json:"total_votes"`
	CreatedAt  time.Time          `json:"created_at"`
}

type VoteService struct {
	repo *postgres.VoteRepository
}

func NewVoteService(repo *postgres.VoteRepository) *VoteService {
	return &VoteService{repo: repo}
}

func (s *VoteService) view(v *model.Vote, now time.Time) VoteView {
	var options []model.VoteOption
	if err := json.Unmarshal([]byte(v.Options), &options); err != nil {
		options = nil
	}
	return VoteView{
		ID:         v.ID,
		GuildID:    v.GuildID,
		Question:   v.Question,
		Options:    options,
		EndTime:    v.EndTime,
		IsActive:   v.ActiveNow(now),
		TotalVotes: v.TotalVotes,
		CreatedAt:  v.CreatedAt,
	}
}

func (s *VoteService) views(votes []model.Vote) []VoteView {
	now := time.Now()
	out := make([]VoteView, 0, len(votes))
	for i := range votes {
		out = append(out, s.view(&votes[i], now))
	}
	return out
}

func (s *VoteService) Active(ctx context.Context, guildID string) ([]VoteView, error) {
	votes, err := s.repo.ListActive(ctx, guildID)
	if err != nil {
		return nil, err
	}
	// Stored flag alone is not enough; drop votes whose end time passed.
	views := s.views(votes)
	active := views[:0]
	for _, v := range views {
		if v.IsActive {
			active = append(active, v)
		}
	}
	return active, nil
}

func (s *VoteService) All(ctx context.Context, guildID string) ([]VoteView, error) {
	votes, err := s.repo.ListAll(ctx, guildID)
	if err != nil {
		return nil, err
	}
	return s.views(votes), nil
}

func (s *VoteService) Create(ctx context.Context, guildID, question string, options []string, endTime time.Time) (*VoteView, error) {
	if question == "" {
		return nil, pkg.Validation("question is required")
	}
	if len(options) < 2 {
		return nil, pkg.Validation("at least two options are required")
	}
	opts := make([]model.VoteOption, 0, len(options))
	for _, text := range options {
		if text == "" {
			return nil, pkg.Validation("option text must not be empty")
		}
		opts = append(opts, model.VoteOption{Text: text})
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}
	if endTime.IsZero() {
		endTime = time.Now().Add(24 * time.Hour)
	}
	v := &model.Vote{
		GuildID:  guildID,
		Question: question,
		Options:  string(raw),
		EndTime:  endTime,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	view := s.view(v, time.Now())
	return &view, nil
}

func (s *VoteService) Delete(ctx context.Context, guildID string, id uint64) error {
	return s.repo.Delete(ctx, guildID, id)
}

// Cast rejects duplicates with "already voted" and leaves the counters
// untouched in that case; the repository does the two writes in one tx.
func (s *VoteService) Cast(ctx context.Context, guildID string, voteID uint64, userID string, optionIndex int) (*VoteView, error) {
	if userID == "" {
		return nil, pkg.Validation("userId is required")
	}
	v, err := s.repo.Cast(ctx, guildID, voteID, userID, optionIndex)
	if err != nil {
		return nil, err
	}
	view := s.view(v, time.Now())
	return &view, nil
}

func (s *VoteService) Results(ctx context.Context, guildID string, voteID uint64) (*VoteView, error) {
	v, err := s.repo.FindByID(ctx, guildID, voteID)
	if err != nil {
		return nil, err
	}
	view := s.view(v, time.Now())
	return &view, nil
}
