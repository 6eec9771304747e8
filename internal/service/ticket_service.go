package service

import (
	"context"
	"time"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"
	"aeon_dashboard/internal/repository/postgres"
)

type TicketService struct {
	tickets *postgres.TicketRepository
	panels  *postgres.PanelRepository
}

func NewTicketService(tickets *postgres.TicketRepository, panels *postgres.PanelRepository) *TicketService {
	return &TicketService{tickets: tickets, panels: panels}
}

func (s *TicketService) List(ctx context.Context, guildID, status string) ([]model.Ticket, error) {
	if status != "" {
		switch status {
		case model.TicketOpen, model.TicketInProgress, model.TicketResolved, model.TicketClosed:
		default:
			return nil, pkg.Validation("status must be one of open, in_progress, resolved, closed")
		}
	}
	return s.tickets.List(ctx, guildID, status)
}

func (s *TicketService) Claim(ctx context.Context, guildID string, id uint64, assignee string) error {
	if assignee == "" {
		return pkg.Validation("assignedTo is required")
	}
	return s.tickets.Claim(ctx, guildID, id, assignee)
}

// Close ends a ticket as resolved or closed; there is no path back to open.
func (s *TicketService) Close(ctx context.Context, guildID string, id uint64, resolved bool) error {
	status := model.TicketClosed
	if resolved {
		status = model.TicketResolved
	}
	return s.tickets.Close(ctx, guildID, id, status, time.Now())
}

func (s *TicketService) Panels(ctx context.Context, guildID string) ([]model.TicketPanel, error) {
	return s.panels.List(ctx, guildID)
}

func (s *TicketService) CreatePanel(ctx context.Context, guildID, name, channelID, buttonLabel string) (*model.TicketPanel, error) {
	if name == "" {
		return nil, pkg.Validation("name is required")
	}
	p := &model.TicketPanel{
		GuildID:     guildID,
		Name:        name,
		ChannelID:   channelID,
		ButtonLabel: buttonLabel,
	}
	if err := s.panels.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePanel removes the panel and all of its tickets, tickets first.
func (s *TicketService) DeletePanel(ctx context.Context, guildID string, id uint64) error {
	return s.panels.DeleteCascade(ctx, guildID, id)
}
