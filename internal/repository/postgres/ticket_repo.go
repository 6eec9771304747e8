package postgres

import (
	"context"
	"errors"
	"time"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"

	"gorm.io/gorm"
)

type TicketRepository struct {
	DB *gorm.DB
}

func (r *TicketRepository) List(ctx context.Context, guildID, status string) ([]model.Ticket, error) {
	q := r.DB.WithContext(ctx).Where("guild_id = ?", guildID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []model.Ticket
	err := q.Order("opened_at DESC").Find(&list).Error
	return list, err
}

// Claim moves an open ticket to in_progress. The status guard in the WHERE
// clause makes concurrent claims race safely: exactly one wins.
func (r *TicketRepository) Claim(ctx context.Context, guildID string, id uint64, assignee string) error {
	res := r.DB.WithContext(ctx).Model(&model.Ticket{}).
		Where("id = ? AND guild_id = ? AND status = ?", id, guildID, model.TicketOpen).
		Updates(map[string]any{"status": model.TicketInProgress, "assigned_to": assignee})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var t model.Ticket
		if err := r.DB.WithContext(ctx).Where("id = ? AND guild_id = ?", id, guildID).First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkg.NotFound("ticket not found")
			}
			return err
		}
		return pkg.Conflict("ticket is not open")
	}
	return nil
}

// Close resolves or closes a ticket. Only forward transitions are allowed;
// resolved/closed tickets never reopen from the dashboard.
func (r *TicketRepository) Close(ctx context.Context, guildID string, id uint64, status string, closedAt time.Time) error {
	res := r.DB.WithContext(ctx).Model(&model.Ticket{}).
		Where("id = ? AND guild_id = ? AND status IN ?", id, guildID,
			[]string{model.TicketOpen, model.TicketInProgress}).
		Updates(map[string]any{"status": status, "closed_at": closedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var t model.Ticket
		if err := r.DB.WithContext(ctx).Where("id = ? AND guild_id = ?", id, guildID).First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkg.NotFound("ticket not found")
			}
			return err
		}
		return pkg.Conflict("ticket is already closed")
	}
	return nil
}

func (r *TicketRepository) CountOpen(ctx context.Context, guildID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Ticket{}).
		Where("guild_id = ? AND status IN ?", guildID,
			[]string{model.TicketOpen, model.TicketInProgress}).
		Count(&n).Error
	return n, err
}

type PanelRepository struct {
	DB *gorm.DB
}

func (r *PanelRepository) List(ctx context.Context, guildID string) ([]model.TicketPanel, error) {
	var list []model.TicketPanel
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *PanelRepository) Create(ctx context.Context, p *model.TicketPanel) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// DeleteCascade removes a panel and every ticket referencing it. Tickets go
// first: the store is not guaranteed to enforce the foreign key, so the
// ordering is what keeps us from stranding orphans.
func (r *PanelRepository) DeleteCascade(ctx context.Context, guildID string, id uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var panel model.TicketPanel
		if err := tx.Where("id = ? AND guild_id = ?", id, guildID).First(&panel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkg.NotFound("ticket panel not found")
			}
			return err
		}
		if err := tx.Where("panel_id = ? AND guild_id = ?", id, guildID).
			Delete(&model.Ticket{}).Error; err != nil {
			return err
		}
		return tx.Delete(&panel).Error
	})
}
