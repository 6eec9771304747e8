package dispatch

import (
	"context"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"
)

func (d *Dispatcher) registerModerationActions() {
	d.register("getAuditLogs", d.getAuditLogs)
	d.register("getBlacklist", d.getBlacklist)
	d.register("createBlacklist", d.createBlacklist)
	d.register("getScans", d.getScans)
	d.register("createScan", d.createScan)
}

func (d *Dispatcher) getAuditLogs(ctx context.Context, p Params) (any, error) {
	return d.deps.Audit.List(ctx, d.guild(ctx, p), p.Int("limit", 50))
}

func (d *Dispatcher) getBlacklist(ctx context.Context, p Params) (any, error) {
	return d.deps.Blacklist.List(ctx, d.guild(ctx, p))
}

func (d *Dispatcher) createBlacklist(ctx context.Context, p Params) (any, error) {
	userID, err := p.RequireString("userId")
	if err != nil {
		return nil, err
	}
	guildID := d.guild(ctx, p)
	b := &model.Blacklist{
		GuildID:     guildID,
		UserID:      userID,
		ModeratorID: p.String("moderatorId"),
		Reason:      p.String("reason"),
	}
	if err := d.deps.Blacklist.Create(ctx, b); err != nil {
		return nil, err
	}
	d.deps.Events.Emit(ctx, "blacklist.added", guildID, map[string]any{
		"user_id": b.UserID,
		"reason":  b.Reason,
	})
	return b, nil
}

func (d *Dispatcher) getScans(ctx context.Context, p Params) (any, error) {
	return d.deps.Scans.List(ctx, d.guild(ctx, p), p.Int("limit", 50))
}

func (d *Dispatcher) createScan(ctx context.Context, p Params) (any, error) {
	verdict := p.String("verdict")
	if verdict == "" {
		verdict = "clean"
	}
	if verdict != "clean" && verdict != "flagged" {
		return nil, pkg.Validation("verdict must be clean or flagged")
	}
	guildID := d.guild(ctx, p)
	s := &model.Scan{
		GuildID:   guildID,
		UserID:    p.String("userId"),
		ChannelID: p.String("channelId"),
		Verdict:   verdict,
		Details:   p.String("details"),
	}
	if err := d.deps.Scans.Create(ctx, s); err != nil {
		return nil, err
	}
	d.deps.Events.Emit(ctx, "scan.recorded", guildID, map[string]any{
		"verdict": s.Verdict,
		"user_id": s.UserID,
	})
	return s, nil
}
