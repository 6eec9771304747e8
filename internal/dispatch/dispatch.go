package dispatch

import (
	"context"
	"sort"

	"aeon_dashboard/internal/pkg"
	"aeon_dashboard/internal/repository/postgres"
	"aeon_dashboard/internal/service"

	"github.com/sirupsen/logrus"
)

// HandlerFunc executes one named action against already-validated params.
type HandlerFunc func(ctx context.Context, p Params) (any, error)

var errNoUpdatableFields = pkg.Validation("no updatable fields were provided")

// Deps is everything the action handlers reach for. Plain CRUD actions talk
// to repositories directly; composite operations go through services.
type Deps struct {
	Resolver  *service.GuildResolver
	Discovery *service.DiscoveryService
	Stats     *service.StatsService
	Votes     *service.VoteService
	Tickets   *service.TicketService
	Warns     *service.WarnService
	Audit     *service.AuditService
	Events    *service.EventPublisher

	Settings      *postgres.SettingRepository
	Commands      *postgres.CommandRepository
	Triggers      *postgres.TriggerRepository
	Templates     *postgres.TemplateRepository
	Topics        *postgres.InfoTopicRepository
	ReactionRoles *postgres.ReactionRoleRepository
	ButtonRoles   *postgres.ButtonRoleRepository
	Blacklist     *postgres.BlacklistRepository
	Scans         *postgres.ScanRepository
}

// Dispatcher maps action names onto handlers. The registry is built once at
// construction so an unknown name is detectable without running anything.
type Dispatcher struct {
	deps     Deps
	log      *logrus.Entry
	handlers map[string]HandlerFunc
}

func NewDispatcher(deps Deps, log *logrus.Entry) *Dispatcher {
	d := &Dispatcher{
		deps:     deps,
		log:      log,
		handlers: make(map[string]HandlerFunc),
	}
	d.registerGuildActions()
	d.registerStatsActions()
	d.registerSettingActions()
	d.registerCommandActions()
	d.registerTriggerActions()
	d.registerTicketActions()
	d.registerVoteActions()
	d.registerEmbedActions()
	d.registerTopicActions()
	d.registerRoleActions()
	d.registerWarnActions()
	d.registerModerationActions()
	return d
}

func (d *Dispatcher) register(name string, h HandlerFunc) {
	if _, dup := d.handlers[name]; dup {
		panic("dispatch: duplicate action " + name)
	}
	d.handlers[name] = h
}

// Dispatch runs the named action. Unknown names get their own error kind so
// the HTTP layer can answer 400 instead of a generic 500.
func (d *Dispatcher) Dispatch(ctx context.Context, action string, params map[string]any) (any, error) {
	h, ok := d.handlers[action]
	if !ok {
		return nil, pkg.UnknownAction(action)
	}
	if params == nil {
		params = map[string]any{}
	}
	return h(ctx, Params(params))
}

// Actions lists every registered action name, sorted.
func (d *Dispatcher) Actions() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// guild resolves the effective guild id for a request; every guild-scoped
// handler must go through here rather than trusting the raw param.
func (d *Dispatcher) guild(ctx context.Context, p Params) string {
	return d.deps.Resolver.Resolve(ctx, p.String("guildId"))
}
