package dispatch

import (
	"context"

	"aeon_dashboard/internal/model"
)

func (d *Dispatcher) registerCommandActions() {
	d.register("getCustomCommands", d.getCustomCommands)
	d.register("createCustomCommand", d.createCustomCommand)
	d.register("updateCustomCommand", d.updateCustomCommand)
	d.register("deleteCustomCommand", d.deleteCustomCommand)
}

func (d *Dispatcher) getCustomCommands(ctx context.Context, p Params) (any, error) {
	return d.deps.Commands.List(ctx, d.guild(ctx, p))
}

func (d *Dispatcher) createCustomCommand(ctx context.Context, p Params) (any, error) {
	trigger, err := p.RequireString("trigger")
	if err != nil {
		return nil, err
	}
	response, err := p.RequireString("response")
	if err != nil {
		return nil, err
	}

	cmd := &model.CustomCommand{
		GuildID:         d.guild(ctx, p),
		Trigger:         trigger,
		Response:        response,
		PermissionLevel: p.Int("permissionLevel", 0),
		CooldownSeconds: p.Int("cooldownSeconds", 0),
		IsEnabled:       p.Bool("isEnabled", true),
	}
	if err := d.deps.Commands.Create(ctx, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (d *Dispatcher) updateCustomCommand(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if p.Has("response") {
		response, err := p.RequireString("response")
		if err != nil {
			return nil, err
		}
		updates["response"] = response
	}
	if p.Has("permissionLevel") {
		updates["permission_level"] = p.Int("permissionLevel", 0)
	}
	if p.Has("cooldownSeconds") {
		updates["cooldown_seconds"] = p.Int("cooldownSeconds", 0)
	}
	if p.Has("isEnabled") {
		updates["is_enabled"] = p.Bool("isEnabled", true)
	}
	if len(updates) == 0 {
		return nil, errNoUpdatableFields
	}

	guildID := d.guild(ctx, p)
	if err := d.deps.Commands.Update(ctx, guildID, id, updates); err != nil {
		return nil, err
	}
	return map[string]any{"updated": true}, nil
}

func (d *Dispatcher) deleteCustomCommand(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	if err := d.deps.Commands.Delete(ctx, d.guild(ctx, p), id); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true}, nil
}
