package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"
	"aeon_dashboard/internal/repository/postgres"

	"github.com/sirupsen/logrus"
)

// FlatWarn is one displayed warning, whether it came from the warnings table
// or was flattened out of a legacy JSON-array doc.
type FlatWarn struct {
	ID          string    `json:"id"`
	GuildID     string    `json:"guild_id"`
	UserID      string    `json:"user_id"`
	ModeratorID string    `json:"moderator_id"`
	Severity    string    `json:"severity"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

type WarnService struct {
	repo   *postgres.WarningRepository
	legacy *postgres.LegacyWarnRepository
	log    *logrus.Entry
}

func NewWarnService(repo *postgres.WarningRepository, legacy *postgres.LegacyWarnRepository, log *logrus.Entry) *WarnService {
	return &WarnService{repo: repo, legacy: legacy, log: log}
}

func (s *WarnService) Create(ctx context.Context, guildID, userID, moderatorID, severity, reason string) (*model.Warning, error) {
	if userID == "" {
		return nil, pkg.Validation("userId is required")
	}
	if reason == "" {
		return nil, pkg.Validation("reason is required")
	}
	if severity == "" {
		severity = model.SeverityMedium
	}
	if !model.ValidWarnSeverity(severity) {
		return nil, pkg.Validation("severity must be one of low, medium, high")
	}
	w := &model.Warning{
		GuildID:     guildID,
		UserID:      userID,
		ModeratorID: moderatorID,
		Severity:    severity,
		Reason:      reason,
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WarnService) Delete(ctx context.Context, guildID string, id uint64) error {
	return s.repo.Delete(ctx, guildID, id)
}

// List merges modern warning rows with flattened legacy docs, newest first.
func (s *WarnService) List(ctx context.Context, guildID, userID string) ([]FlatWarn, error) {
	rows, err := s.repo.List(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}
	docs, err := s.legacy.ListDocs(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}

	out := make([]FlatWarn, 0, len(rows)+len(docs))
	for _, w := range rows {
		out = append(out, FlatWarn{
			ID:          strconv.FormatUint(w.ID, 10),
			GuildID:     w.GuildID,
			UserID:      w.UserID,
			ModeratorID: w.ModeratorID,
			Severity:    w.Severity,
			Reason:      w.Reason,
			CreatedAt:   w.CreatedAt,
		})
	}
	out = append(out, FlattenWarnDocs(docs, s.log)...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// FlattenWarnDocs expands each legacy doc's embedded warn array into one
// record per entry. The synthetic id is parent row id plus the entry's own
// timestamp; entries without a timestamp get a random suffix instead (the
// non-determinism only affects the id, not the displayed data) and sort by
// the parent row's creation time.
func FlattenWarnDocs(docs []model.UserWarnDoc, log *logrus.Entry) []FlatWarn {
	var out []FlatWarn
	for _, doc := range docs {
		var entries []model.WarnEntry
		if err := json.Unmarshal([]byte(doc.Warns), &entries); err != nil {
			if log != nil {
				log.WithError(err).WithField("doc", doc.ID).Warn("skipping unreadable legacy warn doc")
			}
			continue
		}
		for _, e := range entries {
			flat := FlatWarn{
				GuildID:     doc.GuildID,
				UserID:      doc.UserID,
				ModeratorID: e.Moderator,
				Severity:    e.Severity,
				Reason:      e.Reason,
			}
			if ts, err := time.Parse(time.RFC3339, e.Timestamp); err == nil {
				flat.CreatedAt = ts
				flat.ID = fmt.Sprintf("%d-%d", doc.ID, ts.Unix())
			} else {
				flat.CreatedAt = doc.CreatedAt
				flat.ID = fmt.Sprintf("%d-r%06d", doc.ID, rand.Intn(1000000))
			}
			out = append(out, flat)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
