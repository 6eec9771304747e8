package dispatch

import (
	"context"

	"aeon_dashboard/internal/model"
)

func (d *Dispatcher) registerRoleActions() {
	d.register("getReactionRoles", d.getReactionRoles)
	d.register("createReactionRole", d.createReactionRole)
	d.register("deleteReactionRole", d.deleteReactionRole)
	d.register("getButtonRoles", d.getButtonRoles)
	d.register("createButtonRole", d.createButtonRole)
	d.register("deleteButtonRole", d.deleteButtonRole)
}

func (d *Dispatcher) getReactionRoles(ctx context.Context, p Params) (any, error) {
	return d.deps.ReactionRoles.List(ctx, d.guild(ctx, p))
}

func (d *Dispatcher) createReactionRole(ctx context.Context, p Params) (any, error) {
	messageID, err := p.RequireString("messageId")
	if err != nil {
		return nil, err
	}
	channelID, err := p.RequireString("channelId")
	if err != nil {
		return nil, err
	}
	emoji, err := p.RequireString("emoji")
	if err != nil {
		return nil, err
	}
	roleID, err := p.RequireString("roleId")
	if err != nil {
		return nil, err
	}

	rr := &model.ReactionRole{
		GuildID:   d.guild(ctx, p),
		MessageID: messageID,
		ChannelID: channelID,
		Emoji:     emoji,
		RoleID:    roleID,
	}
	if err := d.deps.ReactionRoles.Create(ctx, rr); err != nil {
		return nil, err
	}
	return rr, nil
}

func (d *Dispatcher) deleteReactionRole(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	if err := d.deps.ReactionRoles.Delete(ctx, d.guild(ctx, p), id); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true}, nil
}

func (d *Dispatcher) getButtonRoles(ctx context.Context, p Params) (any, error) {
	return d.deps.ButtonRoles.List(ctx, d.guild(ctx, p))
}

func (d *Dispatcher) createButtonRole(ctx context.Context, p Params) (any, error) {
	messageID, err := p.RequireString("messageId")
	if err != nil {
		return nil, err
	}
	channelID, err := p.RequireString("channelId")
	if err != nil {
		return nil, err
	}
	buttonID, err := p.RequireString("buttonId")
	if err != nil {
		return nil, err
	}
	roleID, err := p.RequireString("roleId")
	if err != nil {
		return nil, err
	}

	style := p.String("style")
	if style == "" {
		style = "primary"
	}
	br := &model.ButtonRole{
		GuildID:   d.guild(ctx, p),
		MessageID: messageID,
		ChannelID: channelID,
		ButtonID:  buttonID,
		Label:     p.String("label"),
		Style:     style,
		RoleID:    roleID,
	}
	if err := d.deps.ButtonRoles.Create(ctx, br); err != nil {
		return nil, err
	}
	return br, nil
}

func (d *Dispatcher) deleteButtonRole(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	if err := d.deps.ButtonRoles.Delete(ctx, d.guild(ctx, p), id); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true}, nil
}
