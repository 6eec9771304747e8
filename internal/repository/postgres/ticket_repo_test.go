package postgres

import (
	"context"
	"testing"
	"time"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketClaimTransitions(t *testing.T) {
	db := newTestDB(t)
	repo := &TicketRepository{DB: db}
	ctx := context.Background()

	ticket := &model.Ticket{GuildID: "g1", PanelID: 1, UserID: "u1", Status: model.TicketOpen, OpenedAt: time.Now()}
	require.NoError(t, db.Create(ticket).Error)

	require.NoError(t, repo.Claim(ctx, "g1", ticket.ID, "mod1"))

	var got model.Ticket
	require.NoError(t, db.First(&got, ticket.ID).Error)
	assert.Equal(t, model.TicketInProgress, got.Status)
	assert.Equal(t, "mod1", got.AssignedTo)

	// A second claim finds the ticket no longer open.
	err := repo.Claim(ctx, "g1", ticket.ID, "mod2")
	assert.Equal(t, pkg.KindConflict, pkg.KindOf(err))

	err = repo.Claim(ctx, "g1", 9999, "mod1")
	assert.Equal(t, pkg.KindNotFound, pkg.KindOf(err))
}

func TestTicketCloseOnlyMovesForward(t *testing.T) {
	db := newTestDB(t)
	repo := &TicketRepository{DB: db}
	ctx := context.Background()

	ticket := &model.Ticket{GuildID: "g1", PanelID: 1, UserID: "u1", Status: model.TicketInProgress, OpenedAt: time.Now()}
	require.NoError(t, db.Create(ticket).Error)

	require.NoError(t, repo.Close(ctx, "g1", ticket.ID, model.TicketResolved, time.Now()))

	var got model.Ticket
	require.NoError(t, db.First(&got, ticket.ID).Error)
	assert.Equal(t, model.TicketResolved, got.Status)
	require.NotNil(t, got.ClosedAt)

	err := repo.Close(ctx, "g1", ticket.ID, model.TicketClosed, time.Now())
	assert.Equal(t, pkg.KindConflict, pkg.KindOf(err))
}

func TestCountOpenIncludesInProgress(t *testing.T) {
	db := newTestDB(t)
	repo := &TicketRepository{DB: db}
	ctx := context.Background()

	for _, status := range []string{model.TicketOpen, model.TicketInProgress, model.TicketClosed} {
		require.NoError(t, db.Create(&model.Ticket{
			GuildID: "g1", PanelID: 1, UserID: "u1", Status: status, OpenedAt: time.Now(),
		}).Error)
	}

	n, err := repo.CountOpen(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestPanelDeleteCascadeRemovesTickets(t *testing.T) {
	db := newTestDB(t)
	panels := &PanelRepository{DB: db}
	ctx := context.Background()

	panel := &model.TicketPanel{GuildID: "g1", Name: "support"}
	require.NoError(t, panels.Create(ctx, panel))
	other := &model.TicketPanel{GuildID: "g1", Name: "reports"}
	require.NoError(t, panels.Create(ctx, other))

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&model.Ticket{
			GuildID: "g1", PanelID: panel.ID, UserID: "u1", Status: model.TicketOpen, OpenedAt: time.Now(),
		}).Error)
	}
	require.NoError(t, db.Create(&model.Ticket{
		GuildID: "g1", PanelID: other.ID, UserID: "u2", Status: model.TicketOpen, OpenedAt: time.Now(),
	}).Error)

	require.NoError(t, panels.DeleteCascade(ctx, "g1", panel.ID))

	var orphans int64
	require.NoError(t, db.Model(&model.Ticket{}).Where("panel_id = ?", panel.ID).Count(&orphans).Error)
	assert.Equal(t, int64(0), orphans)

	// The other panel's tickets are untouched.
	var kept int64
	require.NoError(t, db.Model(&model.Ticket{}).Where("panel_id = ?", other.ID).Count(&kept).Error)
	assert.Equal(t, int64(1), kept)

	err := panels.DeleteCascade(ctx, "g1", panel.ID)
	assert.Equal(t, pkg.KindNotFound, pkg.KindOf(err))
}
