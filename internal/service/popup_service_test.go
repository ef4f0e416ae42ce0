package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/org-directory/pkg/util/errorutil"
)

type memoryFlags struct {
	values map[string]string
	ttl    time.Duration
	err    error
}

func newMemoryFlags() *memoryFlags {
	return &memoryFlags{values: map[string]string{}}
}

func (m *memoryFlags) HiddenDates(_ context.Context, visitorID string, popupIDs []string) (map[string]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := map[string]string{}
	for _, id := range popupIDs {
		if v, ok := m.values[visitorID+"/"+id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (m *memoryFlags) Hide(_ context.Context, visitorID, popupID, date string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.values[visitorID+"/"+popupID] = date
	m.ttl = ttl
	return nil
}

func newTestPopupService(flags *memoryFlags, now time.Time) *PopupService {
	svc := NewPopupService([]string{"p1", "p2"}, time.UTC, PopupDependencies{Flags: flags})
	svc.now = func() time.Time { return now }
	return svc
}

func TestPopupService_HideToday(t *testing.T) {
	flags := newMemoryFlags()
	day := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	svc := newTestPopupService(flags, day)
	ctx := context.Background()

	vis, err := svc.Visible(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, vis.PopupIDs)
	assert.Equal(t, "2026-03-05", vis.Date)

	require.NoError(t, svc.HideToday(ctx, "v1", "p1"))
	assert.Equal(t, popupFlagTTL, flags.ttl)

	vis, err = svc.Visible(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, vis.PopupIDs)

	other, err := svc.Visible(ctx, "v2")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, other.PopupIDs, "flags are per visitor")

	svc.now = func() time.Time { return day.Add(24 * time.Hour) }
	vis, err = svc.Visible(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, vis.PopupIDs, "flag expires with the day")
}

func TestPopupService_Timezone(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	svc := NewPopupService([]string{"p1"}, seoul, PopupDependencies{Flags: newMemoryFlags()})
	svc.now = func() time.Time { return time.Date(2026, 3, 5, 20, 0, 0, 0, time.UTC) }

	assert.Equal(t, "2026-03-06", svc.Today())
}

func TestPopupService_Errors(t *testing.T) {
	flags := newMemoryFlags()
	svc := newTestPopupService(flags, time.Now())
	ctx := context.Background()

	err := svc.HideToday(ctx, "v1", "p9")
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	err = svc.HideToday(ctx, " ", "p1")
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	flags.err = errors.New("redis down")
	err = svc.HideToday(ctx, "v1", "p1")
	assert.Equal(t, "INTERNAL_ERROR", apperrors.ToDomainError(err).Code)

	vis, err := svc.Visible(ctx, "v1")
	require.NoError(t, err, "flag store outage shows every popup")
	assert.Equal(t, []string{"p1", "p2"}, vis.PopupIDs)
}
