package repository

import (
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopupFlagKey(t *testing.T) {
	assert.Equal(t, "popup:hide:v-1:p1", popupFlagKey("v-1", "p1"))
}

func TestHiddenDates(t *testing.T) {
	ids := []string{"p1", "p2", "p3"}

	tests := []struct {
		name string
		vals []interface{}
		err  error
		want map[string]string
	}{
		{
			name: "values map back by position",
			vals: []interface{}{"2026-10-19", nil, "2026-10-18"},
			want: map[string]string{"p1": "2026-10-19", "p3": "2026-10-18"},
		},
		{
			name: "no flags stored",
			vals: []interface{}{nil, nil, nil},
			want: map[string]string{},
		},
		{
			name: "nil reply is not an error",
			err:  redis.Nil,
			want: map[string]string{},
		},
		{
			name: "non-string and empty values skipped",
			vals: []interface{}{int64(1), "", "2026-10-19"},
			want: map[string]string{"p3": "2026-10-19"},
		},
		{
			name: "extra values ignored",
			vals: []interface{}{"a", "b", "c", "d"},
			want: map[string]string{"p1": "a", "p2": "b", "p3": "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hiddenDates(ids, tt.vals, tt.err)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHiddenDates_Error(t *testing.T) {
	boom := errors.New("connection refused")

	got, err := hiddenDates([]string{"p1"}, nil, boom)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}
