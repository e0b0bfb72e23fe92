package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMosque(t *testing.T) {
	worship := []string{"place_of_worship", "point_of_interest"}

	cases := []struct {
		name  string
		types []string
		want  bool
	}{
		{"Masjid Al-Noor", worship, true},
		{"Islamic Center of San Francisco", worship, true},
		{"Downtown Mosque", worship, true},
		{"Muslim Community Center", worship, true},
		{"St. Mary's Church", worship, false},
		// mosque-ish name without the place_of_worship type
		{"Masjid Al-Noor", []string{"point_of_interest"}, false},
		// exclusion words beat the keyword match
		{"Islamic School of the Bay", worship, false},
		{"Halal Restaurant near Mosque", worship, false},
		{"Crescent Hotel", worship, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsMosque(tc.name, tc.types))
		})
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	c, err := New("")
	require.Error(t, err)
	assert.Nil(t, c)
}
