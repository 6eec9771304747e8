package service

import (
	"context"
	"sort"

	"aeon_dashboard/internal/repository/postgres"
)

// MergeGuildSources flattens per-table scan rows into one entry per guild:
// counts are summed across every table, the source label comes from
// whichever row showed up first. Sorted by total count descending.
func MergeGuildSources(rows []postgres.GuildSource) []postgres.GuildSource {
	totals := make(map[string]*postgres.GuildSource)
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		if entry, ok := totals[row.GuildID]; ok {
			entry.Count += row.Count
			continue
		}
		copied := row
		totals[row.GuildID] = &copied
		order = append(order, row.GuildID)
	}

	merged := make([]postgres.GuildSource, 0, len(order))
	for _, id := range order {
		merged = append(merged, *totals[id])
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Count > merged[j].Count
	})
	return merged
}

// DiscoveryService backs the guild picker. The fan-out scan is operator
// triggered only, so it stays sequential and uncapped.
type DiscoveryService struct {
	repo *postgres.DiscoveryRepository
}

func NewDiscoveryService(repo *postgres.DiscoveryRepository) *DiscoveryService {
	return &DiscoveryService{repo: repo}
}

func (s *DiscoveryService) ListGuilds(ctx context.Context) []postgres.GuildSource {
	return MergeGuildSources(s.repo.ScanTables(ctx))
}

// ScanTables exposes the raw per-table rows; the guild resolver merges them
// itself so auto-detection and ListGuilds share one merge path.
func (s *DiscoveryService) ScanTables(ctx context.Context) []postgres.GuildSource {
	return s.repo.ScanTables(ctx)
}
