package registry

import (
	"errors"
	"testing"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownCodes(t *testing.T) {
	tests := []struct {
		code   string
		values []float64
		want   domain.ActivityType
	}{
		{"RUN", []float64{15000, 1, 75}, domain.ActivityRunning},
		{"WLK", []float64{9000, 1, 75, 180}, domain.ActivityWalking},
		{"SWM", []float64{720, 1, 80, 25, 40}, domain.ActivitySwimming},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			construct, err := Lookup(tt.code)
			require.NoError(t, err)

			w, err := construct(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Type())
		})
	}
}

func TestLookup_UnknownCode(t *testing.T) {
	for _, code := range []string{"XYZ", "", "run", "RUNNING"} {
		t.Run(code, func(t *testing.T) {
			construct, err := Lookup(code)
			require.Error(t, err)
			assert.Nil(t, construct)
			assert.True(t, errors.Is(err, ErrUnknownType))

			var unknown *UnknownTypeError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, code, unknown.Code)
		})
	}
}

func TestLookup_UnknownCodeMessage(t *testing.T) {
	_, err := Lookup("XYZ")
	require.Error(t, err)
	assert.Equal(t, `unknown workout type "XYZ"`, err.Error())
}

func TestBuild_PropagatesArityError(t *testing.T) {
	_, err := Build("WLK", []float64{9000, 1, 75})
	require.Error(t, err)
	assert.ErrorIs(t, err, workout.ErrArity)
	assert.NotErrorIs(t, err, ErrUnknownType)
}

func TestBuild_UnknownCodeSkipsConstruction(t *testing.T) {
	_, err := Build("XYZ", []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestArity(t *testing.T) {
	for code, want := range map[string]int{"RUN": 3, "WLK": 4, "SWM": 5} {
		got, err := Arity(code)
		require.NoError(t, err)
		assert.Equal(t, want, got, code)
	}

	_, err := Arity("XYZ")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestCodes_StableOrder(t *testing.T) {
	assert.Equal(t, []string{"SWM", "RUN", "WLK"}, Codes())
	assert.Equal(t, Codes(), Codes())
}
