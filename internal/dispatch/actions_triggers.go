package dispatch

import (
	"context"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"
)

func (d *Dispatcher) registerTriggerActions() {
	d.register("getTriggers", d.getTriggers)
	d.register("createTrigger", d.createTrigger)
	d.register("updateTrigger", d.updateTrigger)
	d.register("deleteTrigger", d.deleteTrigger)
}

func (d *Dispatcher) getTriggers(ctx context.Context, p Params) (any, error) {
	return d.deps.Triggers.List(ctx, d.guild(ctx, p))
}

func (d *Dispatcher) createTrigger(ctx context.Context, p Params) (any, error) {
	triggerText, err := p.RequireString("trigger_text")
	if err != nil {
		return nil, err
	}
	response, err := p.RequireString("response")
	if err != nil {
		return nil, err
	}
	matchType := p.String("match_type")
	if matchType == "" {
		matchType = model.MatchContains
	}
	if !model.ValidMatchType(matchType) {
		return nil, pkg.Validation("match_type must be one of exact, contains, starts_with, ends_with, regex")
	}

	t := &model.Trigger{
		GuildID:     d.guild(ctx, p),
		TriggerText: triggerText,
		Response:    response,
		MatchType:   matchType,
		Enabled:     p.Bool("enabled", true),
	}
	if err := d.deps.Triggers.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (d *Dispatcher) updateTrigger(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if p.Has("trigger_text") {
		triggerText, err := p.RequireString("trigger_text")
		if err != nil {
			return nil, err
		}
		updates["trigger_text"] = triggerText
	}
	if p.Has("response") {
		response, err := p.RequireString("response")
		if err != nil {
			return nil, err
		}
		updates["response"] = response
	}
	if p.Has("match_type") {
		matchType := p.String("match_type")
		if !model.ValidMatchType(matchType) {
			return nil, pkg.Validation("match_type must be one of exact, contains, starts_with, ends_with, regex")
		}
		updates["match_type"] = matchType
	}
	if p.Has("enabled") {
		updates["enabled"] = p.Bool("enabled", true)
	}
	if len(updates) == 0 {
		return nil, errNoUpdatableFields
	}

	if err := d.deps.Triggers.Update(ctx, d.guild(ctx, p), id, updates); err != nil {
		return nil, err
	}
	return map[string]any{"updated": true}, nil
}

func (d *Dispatcher) deleteTrigger(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	if err := d.deps.Triggers.Delete(ctx, d.guild(ctx, p), id); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true}, nil
}
