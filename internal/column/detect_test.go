// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package column

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/polesplit/pkg/types"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name         string
		header       []string
		wantColumn   string
		wantStrategy string
	}{
		{
			name:         "exact default name",
			header:       []string{"Job", "Raw_Marker_Data"},
			wantColumn:   "Raw_Marker_Data",
			wantStrategy: "exact",
		},
		{
			name:         "exact name priority beats header order",
			header:       []string{"Marker", "Area Section Marker / Installation plan"},
			wantColumn:   "Area Section Marker / Installation plan",
			wantStrategy: "exact",
		},
		{
			name:         "keyword match is case-insensitive",
			header:       []string{"Job", "Pole MARKER text"},
			wantColumn:   "Pole MARKER text",
			wantStrategy: "keyword",
		},
		{
			name:         "keyword match takes first header",
			header:       []string{"raw notes", "installation details"},
			wantColumn:   "raw notes",
			wantStrategy: "keyword",
		},
		{
			name:         "exact match is case-sensitive",
			header:       []string{"Job", "marker"},
			wantColumn:   "marker",
			wantStrategy: "keyword",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.wantColumn, got.Column)
			assert.Equal(t, tt.wantStrategy, got.Strategy)
		})
	}
}

func TestDetect_NoMatch(t *testing.T) {
	_, err := Detect([]string{"Job", "Crew", "Date"})

	var cfgErr *types.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Empty(t, cfgErr.Column)
	assert.Equal(t, []string{"Job", "Crew", "Date"}, cfgErr.Available)
	assert.Contains(t, err.Error(), "--column")
}

func TestDetector_CustomStrategies(t *testing.T) {
	d := Detector{Strategies: []Strategy{Keyword{Keywords: []string{"pole"}}}}
	got, err := d.Detect([]string{"Raw_Marker_Data", "Pole Ref"})
	require.NoError(t, err)
	assert.Equal(t, "Pole Ref", got.Column)
}
