package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocation(t *testing.T) {
	t.Run("valid identifier", func(t *testing.T) {
		loc, err := ResolveLocation("America/Los_Angeles")
		require.NoError(t, err)
		assert.Equal(t, "America/Los_Angeles", loc.String())
	})

	t.Run("empty identifier", func(t *testing.T) {
		_, err := ResolveLocation("")
		assert.Error(t, err)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := ResolveLocation("Mars/Olympus_Mons")
		assert.Error(t, err)
	})
}

func TestParseStamp(t *testing.T) {
	loc, err := ResolveLocation("America/Los_Angeles")
	require.NoError(t, err)

	tests := []struct {
		name       string
		value      string
		wantOffset bool
		wantRFC    string
		wantErr    bool
	}{
		{
			name:       "offset-bearing preserves instant",
			value:      "2025-07-06T19:00:00-04:00",
			wantOffset: true,
			wantRFC:    "2025-07-06T19:00:00-04:00",
		},
		{
			name:       "zulu counts as an offset",
			value:      "2025-07-06T19:00:00Z",
			wantOffset: true,
			wantRFC:    "2025-07-06T19:00:00Z",
		},
		{
			name:       "naive interpreted in location",
			value:      "2025-07-06T19:00:00",
			wantOffset: false,
			wantRFC:    "2025-07-06T19:00:00-07:00",
		},
		{
			name:       "naive without seconds",
			value:      "2025-07-06T19:00",
			wantOffset: false,
			wantRFC:    "2025-07-06T19:00:00-07:00",
		},
		{
			name:       "space separator",
			value:      "2025-07-06 19:00:00",
			wantOffset: false,
			wantRFC:    "2025-07-06T19:00:00-07:00",
		},
		{
			name:       "date only",
			value:      "2025-07-06",
			wantOffset: false,
			wantRFC:    "2025-07-06T00:00:00-07:00",
		},
		{
			name:    "garbage",
			value:   "next tuesday",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hadOffset, err := ParseStamp(tt.value, loc)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnparseable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, hadOffset)
			assert.Equal(t, tt.wantRFC, got.Format(time.RFC3339))
		})
	}
}
