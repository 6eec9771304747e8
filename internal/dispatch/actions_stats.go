package dispatch

import "context"

func (d *Dispatcher) registerStatsActions() {
	d.register("getGuildStats", d.getGuildStats)
	d.register("getDashboardStats", d.getDashboardStats)
	d.register("getActivityAnalytics", d.getActivityAnalytics)
	d.register("getTopChannels", d.getTopChannels)
	d.register("getTopMembers", d.getTopMembers)
}

func (d *Dispatcher) getGuildStats(ctx context.Context, p Params) (any, error) {
	return d.deps.Stats.GuildStats(ctx, d.guild(ctx, p))
}

// getDashboardStats is the landing-page snapshot: the aggregate counters
// plus the freshest audit entries in one response.
func (d *Dispatcher) getDashboardStats(ctx context.Context, p Params) (any, error) {
	guildID := d.guild(ctx, p)
	stats, err := d.deps.Stats.GuildStats(ctx, guildID)
	if err != nil {
		return nil, err
	}
	recent, err := d.deps.Audit.List(ctx, guildID, 10)
	if err != nil {
		return nil, err
	}
	active, err := d.deps.Votes.Active(ctx, guildID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"stats":        stats,
		"recent_audit": recent,
		"active_votes": len(active),
	}, nil
}

func (d *Dispatcher) getActivityAnalytics(ctx context.Context, p Params) (any, error) {
	return d.deps.Stats.ActivityAnalytics(ctx, d.guild(ctx, p), p.Int("days", 14))
}

func (d *Dispatcher) getTopChannels(ctx context.Context, p Params) (any, error) {
	return d.deps.Stats.TopChannels(ctx, d.guild(ctx, p), p.Int("limit", 5))
}

func (d *Dispatcher) getTopMembers(ctx context.Context, p Params) (any, error) {
	return d.deps.Stats.TopMembers(ctx, d.guild(ctx, p), p.Int("limit", 10))
}
