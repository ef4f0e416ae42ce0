package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/org-directory/internal/directory"
	"github.com/spec-kit/org-directory/internal/domain"
	"github.com/spec-kit/org-directory/internal/events"
	"github.com/spec-kit/org-directory/internal/observability"
	apperrors "github.com/spec-kit/org-directory/pkg/util/errorutil"
)

const testRoster = `{"data": [
	{"iid": "1", "name": "홍길동", "organization": "개발팀", "title": "팀장", "phone": "+82 10-1111-2222"},
	{"iid": "2", "name": "김하늘", "organization": "개발팀", "title": "매니저", "phone": "582 x400", "mobilePhone": "010-3333-4444"},
	{"iid": "3", "name": "Alice Park", "organization": "영업팀", "title": "Manager", "phone": "010-5555-6666"}
]}`

type stubSource struct {
	data []byte
	err  error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(context.Context) ([]byte, error) {
	return s.data, s.err
}

type recordingRepo struct {
	saved []domain.Employee
	err   error
}

func (r *recordingRepo) List(context.Context) ([]domain.Employee, error) { return r.saved, nil }

func (r *recordingRepo) ReplaceAll(_ context.Context, employees []domain.Employee) error {
	if r.err != nil {
		return r.err
	}
	r.saved = employees
	return nil
}

func newTestDirectoryService(src *stubSource, repo *recordingRepo) (*DirectoryService, events.Dispatcher, *observability.Metrics) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	deps := DirectoryDependencies{Source: src, Dispatcher: dispatcher, Metrics: metrics}
	if repo != nil {
		deps.EmployeeRepo = repo
	}
	return NewDirectoryService(directory.DefaultOptions(), deps), dispatcher, metrics
}

func TestDirectoryService_SearchBeforeLoad(t *testing.T) {
	svc, _, _ := newTestDirectoryService(&stubSource{}, nil)

	assert.Equal(t, domain.RosterStateLoading, svc.Status().State)
	_, err := svc.Search(context.Background(), SearchInput{Query: "x"})
	require.Error(t, err)
	assert.Equal(t, "ROSTER_UNAVAILABLE", apperrors.ToDomainError(err).Code)
}

func TestDirectoryService_LoadAndSearch(t *testing.T) {
	svc, dispatcher, metrics := newTestDirectoryService(&stubSource{data: []byte(testRoster)}, nil)

	var loaded []events.Event
	dispatcher.Subscribe(events.EventRosterLoaded, func(_ context.Context, e events.Event) error {
		loaded = append(loaded, e)
		return nil
	})

	require.NoError(t, svc.Load(context.Background()))
	require.Len(t, loaded, 1)
	assert.Equal(t, events.RosterLoadedPayload{Source: "stub", Organizations: 2, People: 3}, loaded[0].Payload)

	status := svc.Status()
	assert.Equal(t, domain.RosterStateReady, status.State)
	assert.NotNil(t, status.LoadedAt)

	res, err := svc.Search(context.Background(), SearchInput{Query: "  ㄱㅎ ", ExpandAll: true})
	require.NoError(t, err)
	assert.Equal(t, "ㄱㅎ", res.Query)
	assert.Equal(t, directory.QueryChosung, res.Kind)
	assert.True(t, res.Expanded)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, directory.Stats{Organizations: 2, People: 3}, res.Total)

	res, err = svc.Search(context.Background(), SearchInput{Query: "4444"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Matched)
	assert.Equal(t, "김하늘", res.Groups[0].Records[0].Employee.Name)

	res, err = svc.Search(context.Background(), SearchInput{ExpandAll: true})
	require.NoError(t, err)
	assert.False(t, res.Expanded, "blank query never expands")
	assert.Equal(t, 3, res.Matched)

	snap := metrics.Snapshot()
	assert.Equal(t, int64(1), snap.Searches["chosung"])
	assert.Equal(t, int64(1), snap.Searches["digits"])
	assert.Equal(t, int64(1), snap.RosterLoads["ready"])
}

func TestDirectoryService_FailedReloadKeepsDataset(t *testing.T) {
	src := &stubSource{data: []byte(testRoster)}
	svc, dispatcher, _ := newTestDirectoryService(src, nil)

	var failures int
	dispatcher.Subscribe(events.EventRosterLoadFailed, func(context.Context, events.Event) error {
		failures++
		return nil
	})

	require.NoError(t, svc.Load(context.Background()))

	src.err = errors.New("HTTP 500 Internal Server Error")
	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, failures)

	status := svc.Status()
	assert.Equal(t, domain.RosterStateFailed, status.State)
	assert.Equal(t, "HTTP 500 Internal Server Error", status.Message)
	assert.NotNil(t, status.LoadedAt)

	res, err := svc.Search(context.Background(), SearchInput{Query: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Matched)
}

func TestDirectoryService_LoadInvalidJSON(t *testing.T) {
	svc, _, _ := newTestDirectoryService(&stubSource{data: []byte("{")}, nil)

	require.Error(t, svc.Load(context.Background()))
	assert.Equal(t, domain.RosterStateFailed, svc.Status().State)
	_, ok := svc.Stats()
	assert.False(t, ok)
}

func TestDirectoryService_Replace(t *testing.T) {
	repo := &recordingRepo{}
	svc, _, _ := newTestDirectoryService(&stubSource{}, repo)

	stats, err := svc.Replace(context.Background(), []byte(testRoster))
	require.NoError(t, err)
	assert.Equal(t, directory.Stats{Organizations: 2, People: 3}, stats)
	assert.Len(t, repo.saved, 3)
	assert.Equal(t, "upload", svc.Status().Source)

	_, err = svc.Replace(context.Background(), []byte("not json"))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	repo.err = errors.New("db down")
	_, err = svc.Replace(context.Background(), []byte(testRoster))
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_ERROR", apperrors.ToDomainError(err).Code)
}
