package params

import (
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseFieldList(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "names with widget flags",
			raw:      "SiteId VISIBLE NONE;SiteLocation VISIBLE RATIO",
			expected: []string{"SiteId", "SiteLocation"},
		},
		{
			name:     "bare names",
			raw:      "SiteId;SiteLocation",
			expected: []string{"SiteId", "SiteLocation"},
		},
		{
			name:     "stray separators and padding",
			raw:      " SiteId VISIBLE ;;  SiteLocation ;",
			expected: []string{"SiteId", "SiteLocation"},
		},
		{
			name:     "empty input",
			raw:      "",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.DeepEqual(t, tc.expected, ParseFieldList(tc.raw))
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	got := DefaultOutputPath("/scratch", "Monitoring Sites", "csv")
	assert.Equal(t, filepath.Join("/scratch", "Monitoring_Sites.csv"), got)

	// empty display name still yields a usable file name
	got = DefaultOutputPath("/scratch", "", "csv")
	assert.Equal(t, filepath.Join("/scratch", "export.csv"), got)
}
