package dispatch

import "context"

func (d *Dispatcher) registerGuildActions() {
	d.register("getGuilds", d.getGuilds)
	d.register("detectGuild", d.detectGuild)
}

// getGuilds is the operator-triggered re-scan behind the guild picker.
func (d *Dispatcher) getGuilds(ctx context.Context, p Params) (any, error) {
	return d.deps.Discovery.ListGuilds(ctx), nil
}

func (d *Dispatcher) detectGuild(ctx context.Context, p Params) (any, error) {
	detected := d.deps.Resolver.Detected(ctx)
	return map[string]any{
		"detected": detected != "",
		"guild_id": d.deps.Resolver.Resolve(ctx, ""),
	}, nil
}
