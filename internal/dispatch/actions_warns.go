package dispatch

import "context"

func (d *Dispatcher) registerWarnActions() {
	d.register("getWarns", d.getWarns)
	d.register("createWarn", d.createWarn)
	d.register("deleteWarn", d.deleteWarn)
}

// getWarns merges current warning rows with entries flattened out of the
// legacy JSON-array docs, newest first.
func (d *Dispatcher) getWarns(ctx context.Context, p Params) (any, error) {
	return d.deps.Warns.List(ctx, d.guild(ctx, p), p.String("userId"))
}

func (d *Dispatcher) createWarn(ctx context.Context, p Params) (any, error) {
	guildID := d.guild(ctx, p)
	w, err := d.deps.Warns.Create(ctx, guildID,
		p.String("userId"), p.String("moderatorId"),
		p.String("severity"), p.String("reason"))
	if err != nil {
		return nil, err
	}
	d.deps.Events.Emit(ctx, "warn.created", guildID, map[string]any{
		"user_id":  w.UserID,
		"severity": w.Severity,
		"reason":   w.Reason,
	})
	return w, nil
}

func (d *Dispatcher) deleteWarn(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	if err := d.deps.Warns.Delete(ctx, d.guild(ctx, p), id); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true}, nil
}
