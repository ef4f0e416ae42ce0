package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/org-directory/internal/directory"
	"github.com/spec-kit/org-directory/internal/domain"
	"github.com/spec-kit/org-directory/internal/events"
	"github.com/spec-kit/org-directory/internal/observability"
	"github.com/spec-kit/org-directory/internal/repository"
	"github.com/spec-kit/org-directory/internal/roster"
	apperrors "github.com/spec-kit/org-directory/pkg/util/errorutil"
)

const uploadSourceName = "upload"

// DirectoryService owns the loaded roster and answers searches against it.
// The dataset is replaced wholesale on every load; searches read whichever
// dataset is current without locking.
type DirectoryService struct {
	source     roster.Source
	employees  repository.EmployeeRepository
	opts       directory.Options
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time

	loadMu  sync.Mutex
	dataset atomic.Pointer[dataset]
	status  atomic.Pointer[domain.RosterStatus]
}

type dataset struct {
	groups []directory.Group
	stats  directory.Stats
}

// DirectoryDependencies bundles collaborators for the directory service.
// EmployeeRepo is optional; without it uploads are kept in memory only.
type DirectoryDependencies struct {
	Source       roster.Source
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
	Metrics      *observability.Metrics
	Logger       *zap.Logger
}

// SearchInput captures a directory query.
type SearchInput struct {
	Query     string
	ExpandAll bool
}

// SearchResult is a filtered view of the roster.
type SearchResult struct {
	Query    string
	Kind     directory.QueryKind
	Expanded bool
	Total    directory.Stats
	Matched  int
	Groups   []directory.Group
}

// NewDirectoryService constructs the service in the loading state.
func NewDirectoryService(opts directory.Options, deps DirectoryDependencies) *DirectoryService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &DirectoryService{
		source:     deps.Source,
		employees:  deps.EmployeeRepo,
		opts:       opts,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		now:        time.Now,
	}
	s.status.Store(&domain.RosterStatus{State: domain.RosterStateLoading, Source: s.sourceName()})
	return s
}

// Options returns the normalization options the roster is built with.
func (s *DirectoryService) Options() directory.Options {
	return s.opts
}

func (s *DirectoryService) sourceName() string {
	if s.source == nil {
		return ""
	}
	return s.source.Name()
}

// Load fetches the roster from the configured source and swaps it in.
// On failure the previous dataset, if any, keeps serving searches.
func (s *DirectoryService) Load(ctx context.Context) error {
	if s.source == nil {
		return apperrors.NewRosterUnavailable("no roster source configured")
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	name := s.source.Name()
	s.setStatus(domain.RosterStateLoading, "", name, s.Status().LoadedAt)

	data, err := s.source.Fetch(ctx)
	if err != nil {
		return s.fail(ctx, name, err)
	}
	groups, err := directory.Coerce(data, s.opts)
	if err != nil {
		return s.fail(ctx, name, err)
	}

	s.swap(ctx, groups, name)
	return nil
}

// Replace installs an uploaded roster document, persisting it first when an
// employee repository is configured.
func (s *DirectoryService) Replace(ctx context.Context, data []byte) (directory.Stats, error) {
	groups, err := directory.Coerce(data, s.opts)
	if err != nil {
		return directory.Stats{}, apperrors.NewValidationError("invalid roster document", map[string]any{"reason": err.Error()})
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.employees != nil {
		if err := s.employees.ReplaceAll(ctx, directory.Employees(groups)); err != nil {
			return directory.Stats{}, apperrors.NewInternalError(fmt.Errorf("persist roster: %w", err))
		}
	}

	return s.swap(ctx, groups, uploadSourceName), nil
}

func (s *DirectoryService) swap(ctx context.Context, groups []directory.Group, source string) directory.Stats {
	ds := &dataset{groups: groups, stats: directory.ComputeStats(groups)}
	s.dataset.Store(ds)

	loadedAt := s.now()
	s.setStatus(domain.RosterStateReady, fmt.Sprintf("ready · %d people", ds.stats.People), source, &loadedAt)
	s.metrics.RecordRosterLoad(string(domain.RosterStateReady))

	s.logger.Info("roster loaded",
		zap.String("source", source),
		zap.Int("organizations", ds.stats.Organizations),
		zap.Int("people", ds.stats.People))

	s.publish(ctx, events.EventRosterLoaded, events.RosterLoadedPayload{
		Source:        source,
		Organizations: ds.stats.Organizations,
		People:        ds.stats.People,
	})
	return ds.stats
}

func (s *DirectoryService) fail(ctx context.Context, source string, cause error) error {
	s.setStatus(domain.RosterStateFailed, cause.Error(), source, s.Status().LoadedAt)
	s.metrics.RecordRosterLoad(string(domain.RosterStateFailed))
	s.logger.Error("roster load failed", zap.String("source", source), zap.Error(cause))

	s.publish(ctx, events.EventRosterLoadFailed, events.RosterLoadFailedPayload{
		Source: source,
		Error:  cause.Error(),
	})
	return fmt.Errorf("load roster from %s: %w", source, cause)
}

func (s *DirectoryService) setStatus(state domain.RosterState, msg, source string, loadedAt *time.Time) {
	s.status.Store(&domain.RosterStatus{State: state, Message: msg, Source: source, LoadedAt: loadedAt})
}

func (s *DirectoryService) publish(ctx context.Context, typ events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	evt := events.Event{ID: uuid.NewString(), Type: typ, Timestamp: s.now().UTC(), Payload: payload}
	if err := s.dispatcher.Publish(ctx, evt); err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(typ)), zap.Error(err))
	}
}

// Status returns the latest load status.
func (s *DirectoryService) Status() domain.RosterStatus {
	return *s.status.Load()
}

// Stats returns dataset totals and whether a dataset is loaded.
func (s *DirectoryService) Stats() (directory.Stats, bool) {
	ds := s.dataset.Load()
	if ds == nil {
		return directory.Stats{}, false
	}
	return ds.stats, true
}

// Search filters the current dataset. Groups are expanded only for a
// non-empty query with ExpandAll set.
func (s *DirectoryService) Search(_ context.Context, in SearchInput) (*SearchResult, error) {
	ds := s.dataset.Load()
	if ds == nil {
		return nil, apperrors.NewRosterUnavailable(s.Status().Message)
	}

	query := strings.TrimSpace(in.Query)
	kind := directory.Classify(query)
	s.metrics.RecordSearch(string(kind))

	res := directory.Filter(ds.groups, query)
	return &SearchResult{
		Query:    query,
		Kind:     kind,
		Expanded: query != "" && in.ExpandAll,
		Total:    ds.stats,
		Matched:  res.Matched,
		Groups:   res.Groups,
	}, nil
}
