package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PopupFlagRepository stores per-visitor "hide for today" markers.
type PopupFlagRepository interface {
	// HiddenDates returns the stored hide date for each popup that has one.
	HiddenDates(ctx context.Context, visitorID string, popupIDs []string) (map[string]string, error)
	Hide(ctx context.Context, visitorID, popupID, date string, ttl time.Duration) error
}

type popupFlagRepository struct {
	client *redis.Client
}

// NewPopupFlagRepository builds a Redis-backed repository.
func NewPopupFlagRepository(client *redis.Client) PopupFlagRepository {
	return &popupFlagRepository{client: client}
}

func popupFlagKey(visitorID, popupID string) string {
	return fmt.Sprintf("popup:hide:%s:%s", visitorID, popupID)
}

func (r *popupFlagRepository) HiddenDates(ctx context.Context, visitorID string, popupIDs []string) (map[string]string, error) {
	out := make(map[string]string, len(popupIDs))
	if len(popupIDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(popupIDs))
	for i, id := range popupIDs {
		keys[i] = popupFlagKey(visitorID, id)
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	return hiddenDates(popupIDs, vals, err)
}

// hiddenDates maps an MGET reply back onto popupIDs by position. Missing keys
// and values that are not strings are skipped.
func hiddenDates(popupIDs []string, vals []interface{}, err error) (map[string]string, error) {
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	out := make(map[string]string, len(popupIDs))
	for i, v := range vals {
		if i >= len(popupIDs) {
			break
		}
		if s, ok := v.(string); ok && s != "" {
			out[popupIDs[i]] = s
		}
	}
	return out, nil
}

func (r *popupFlagRepository) Hide(ctx context.Context, visitorID, popupID, date string, ttl time.Duration) error {
	return r.client.Set(ctx, popupFlagKey(visitorID, popupID), date, ttl).Err()
}
