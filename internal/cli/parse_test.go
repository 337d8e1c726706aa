package cli

import (
	"testing"

	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantCoord da.Coordinate
		wantLevel float64
		wantErr   bool
	}{
		{"plain", "48.1,2.2,0", da.NewCoordinate(48.1, 2.2), 0, false},
		{"spaces and half level", " 48.1 , 2.2 , 1.5 ", da.NewCoordinate(48.1, 2.2), 1.5, false},
		{"negative level", "-33.9,151.2,-2", da.NewCoordinate(-33.9, 151.2), -2, false},
		{"missing level", "48.1,2.2", da.Coordinate{}, 0, true},
		{"not a number", "48.1,east,0", da.Coordinate{}, 0, true},
		{"latitude out of range", "91,2.2,0", da.Coordinate{}, 0, true},
		{"empty", "", da.Coordinate{}, 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			coord, level, err := parsePoint(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCoord, coord)
			assert.Equal(t, tc.wantLevel, level)
		})
	}
}

func TestParseAvoidList(t *testing.T) {
	sets, err := parseAvoidList([]string{"", "stairs", "elevator,stairs", "stairs,elevator"})
	require.NoError(t, err)
	assert.Equal(t, []da.AvoidSet{
		da.NewAvoidSet(),
		da.NewAvoidSet(da.TRANSITION_STAIRS),
		da.NewAvoidSet(da.TRANSITION_STAIRS, da.TRANSITION_ELEVATOR),
	}, sets)

	_, err = parseAvoidList([]string{"ramp"})
	assert.Error(t, err)
}
