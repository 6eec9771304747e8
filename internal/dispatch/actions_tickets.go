package dispatch

import "context"

func (d *Dispatcher) registerTicketActions() {
	d.register("getTickets", d.getTickets)
	d.register("claimTicket", d.claimTicket)
	d.register("closeTicket", d.closeTicket)
	d.register("getTicketPanels", d.getTicketPanels)
	d.register("createTicketPanel", d.createTicketPanel)
	d.register("deleteTicketPanel", d.deleteTicketPanel)
}

func (d *Dispatcher) getTickets(ctx context.Context, p Params) (any, error) {
	return d.deps.Tickets.List(ctx, d.guild(ctx, p), p.String("status"))
}

func (d *Dispatcher) claimTicket(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	assignee, err := p.RequireString("assignedTo")
	if err != nil {
		return nil, err
	}
	guildID := d.guild(ctx, p)
	if err := d.deps.Tickets.Claim(ctx, guildID, id, assignee); err != nil {
		return nil, err
	}
	d.deps.Events.Emit(ctx, "ticket.claimed", guildID, map[string]any{
		"ticket_id":   id,
		"assigned_to": assignee,
	})
	return map[string]any{"claimed": true}, nil
}

func (d *Dispatcher) closeTicket(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	guildID := d.guild(ctx, p)
	resolved := p.Bool("resolved", false)
	if err := d.deps.Tickets.Close(ctx, guildID, id, resolved); err != nil {
		return nil, err
	}
	d.deps.Events.Emit(ctx, "ticket.closed", guildID, map[string]any{
		"ticket_id": id,
		"resolved":  resolved,
	})
	return map[string]any{"closed": true}, nil
}

func (d *Dispatcher) getTicketPanels(ctx context.Context, p Params) (any, error) {
	return d.deps.Tickets.Panels(ctx, d.guild(ctx, p))
}

func (d *Dispatcher) createTicketPanel(ctx context.Context, p Params) (any, error) {
	name, err := p.RequireString("name")
	if err != nil {
		return nil, err
	}
	return d.deps.Tickets.CreatePanel(ctx, d.guild(ctx, p), name,
		p.String("channelId"), p.String("buttonLabel"))
}

func (d *Dispatcher) deleteTicketPanel(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	if err := d.deps.Tickets.DeletePanel(ctx, d.guild(ctx, p), id); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true}, nil
}
