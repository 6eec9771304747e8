package postgres

import (
	"context"

	"gorm.io/gorm"
)

// GuildSource is one (guild, table) aggregate row from a discovery scan.
type GuildSource struct {
	GuildID string `json:"guild_id"`
	Source  string `json:"source"`
	Count   int64  `json:"count"`
}

// Table names are never interpolated: parameterized templates cannot carry
// identifiers, so every known table gets its own literal query.
var discoveryQueries = []struct {
	source string
	query  string
}{
	{"guild_members", "SELECT guild_id, COUNT(*) AS count FROM guild_members GROUP BY guild_id"},
	{"guild_settings", "SELECT guild_id, COUNT(*) AS count FROM guild_settings GROUP BY guild_id"},
	{"custom_commands", "SELECT guild_id, COUNT(*) AS count FROM custom_commands GROUP BY guild_id"},
	{"triggers", "SELECT guild_id, COUNT(*) AS count FROM triggers GROUP BY guild_id"},
	{"tickets", "SELECT guild_id, COUNT(*) AS count FROM tickets GROUP BY guild_id"},
	{"ticket_panels", "SELECT guild_id, COUNT(*) AS count FROM ticket_panels GROUP BY guild_id"},
	{"audit_logs", "SELECT guild_id, COUNT(*) AS count FROM audit_logs GROUP BY guild_id"},
	{"warnings", "SELECT guild_id, COUNT(*) AS count FROM warnings GROUP BY guild_id"},
	{"votes", "SELECT guild_id, COUNT(*) AS count FROM votes GROUP BY guild_id"},
	{"message_stats", "SELECT guild_id, COUNT(*) AS count FROM message_stats GROUP BY guild_id"},
}

type DiscoveryRepository struct {
	DB *gorm.DB
}

// ScanTables fans out one aggregate query per known table. A table that is
// missing or unreadable contributes nothing; the scan never aborts for one
// broken source.
func (r *DiscoveryRepository) ScanTables(ctx context.Context) []GuildSource {
	var all []GuildSource
	for _, dq := range discoveryQueries {
		var rows []GuildSource
		if err := r.DB.WithContext(ctx).Raw(dq.query).Scan(&rows).Error; err != nil {
			continue
		}
		for i := range rows {
			rows[i].Source = dq.source
		}
		all = append(all, rows...)
	}
	return all
}
