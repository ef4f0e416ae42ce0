package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/org-directory/internal/domain"
	"github.com/spec-kit/org-directory/internal/events"
	"github.com/spec-kit/org-directory/internal/repository"
	apperrors "github.com/spec-kit/org-directory/pkg/util/errorutil"
)

const (
	dateLayout = "2006-01-02"
	// popupFlagTTL outlives any single day in any timezone.
	popupFlagTTL = 48 * time.Hour
)

// PopupService decides which notice popups a visitor still sees today.
type PopupService struct {
	flags      repository.PopupFlagRepository
	popupIDs   []string
	loc        *time.Location
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// PopupDependencies bundles collaborators for the popup service.
type PopupDependencies struct {
	Flags      repository.PopupFlagRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewPopupService constructs the service for the ordered popupIDs.
func NewPopupService(popupIDs []string, loc *time.Location, deps PopupDependencies) *PopupService {
	if loc == nil {
		loc = time.UTC
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PopupService{
		flags:      deps.Flags,
		popupIDs:   append([]string(nil), popupIDs...),
		loc:        loc,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// NewVisitorID mints an identifier for a first-time visitor.
func NewVisitorID() string {
	return uuid.NewString()
}

// Today returns the current date (YYYY-MM-DD) in the configured timezone.
func (s *PopupService) Today() string {
	return s.now().In(s.loc).Format(dateLayout)
}

func (s *PopupService) known(popupID string) bool {
	for _, id := range s.popupIDs {
		if id == popupID {
			return true
		}
	}
	return false
}

// Visible returns, in display order, the popups the visitor has not hidden
// today. When the flag store is unreachable every popup is shown.
func (s *PopupService) Visible(ctx context.Context, visitorID string) (domain.PopupVisibility, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return domain.PopupVisibility{}, apperrors.NewValidationError("visitor id required", nil)
	}

	today := s.Today()
	out := domain.PopupVisibility{VisitorID: visitorID, Date: today, PopupIDs: []string{}}

	hidden, err := s.flags.HiddenDates(ctx, visitorID, s.popupIDs)
	if err != nil {
		s.logger.Warn("popup flags unavailable", zap.Error(err))
		hidden = nil
	}
	for _, id := range s.popupIDs {
		if hidden[id] == today {
			continue
		}
		out.PopupIDs = append(out.PopupIDs, id)
	}
	return out, nil
}

// HideToday suppresses popupID for the visitor until the date changes.
func (s *PopupService) HideToday(ctx context.Context, visitorID, popupID string) error {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return apperrors.NewValidationError("visitor id required", nil)
	}
	if !s.known(popupID) {
		return apperrors.NewNotFound("popup", map[string]any{"popup_id": popupID})
	}

	today := s.Today()
	if err := s.flags.Hide(ctx, visitorID, popupID, today, popupFlagTTL); err != nil {
		return apperrors.NewInternalError(fmt.Errorf("store popup flag: %w", err))
	}

	if s.dispatcher != nil {
		evt := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPopupHidden,
			Timestamp: s.now().UTC(),
			Payload:   events.PopupHiddenPayload{VisitorID: visitorID, PopupID: popupID, Date: today},
		}
		if err := s.dispatcher.Publish(ctx, evt); err != nil {
			s.logger.Warn("event handler failed", zap.String("event", string(evt.Type)), zap.Error(err))
		}
	}
	return nil
}
