package dispatch

import (
	"context"

	"aeon_dashboard/internal/model"
)

func (d *Dispatcher) registerSettingActions() {
	d.register("getBotSettings", d.getBotSettings)
	d.register("updateBotSettings", d.updateBotSettings)
}

func (d *Dispatcher) getBotSettings(ctx context.Context, p Params) (any, error) {
	return d.deps.Settings.Get(ctx, d.guild(ctx, p))
}

// updateBotSettings upserts the full settings row. Omitted fields fall back
// to the current (or default) values so a partial form submit cannot zero
// out unrelated toggles.
func (d *Dispatcher) updateBotSettings(ctx context.Context, p Params) (any, error) {
	guildID := d.guild(ctx, p)
	current, err := d.deps.Settings.Get(ctx, guildID)
	if err != nil {
		return nil, err
	}

	s := &model.GuildSetting{
		GuildID:          guildID,
		Prefix:           current.Prefix,
		LevelingEnabled:  p.Bool("levelingEnabled", current.LevelingEnabled),
		TicketsEnabled:   p.Bool("ticketsEnabled", current.TicketsEnabled),
		TriggersEnabled:  p.Bool("triggersEnabled", current.TriggersEnabled),
		WelcomeEnabled:   p.Bool("welcomeEnabled", current.WelcomeEnabled),
		GlobalCooldownMs: current.GlobalCooldownMs,
	}
	if p.Has("prefix") {
		prefix, err := p.RequireString("prefix")
		if err != nil {
			return nil, err
		}
		s.Prefix = prefix
	}
	if n, ok := p.Uint("globalCooldownMs"); ok {
		s.GlobalCooldownMs = int64(n)
	}

	if err := d.deps.Settings.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
