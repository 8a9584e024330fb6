package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestIntent_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rng  string
	}{
		{"react", "^16.4.2"},
		{"@scope/pkg", "^1.0.0"},
		{"@babel/core", "7.x || >=8.0.0-beta"},
		{"left-pad", ""},
		{"tarball", "https://example.com/t.tgz#abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := domain.NewIntent(tt.name, tt.rng)
			assert.Equal(t, tt.name+"@"+tt.rng, intent.String())
			assert.Equal(t, tt.name, intent.Name())
			assert.Equal(t, tt.rng, intent.Range())

			name, rng, err := intent.Split()
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.rng, rng)
		})
	}
}

func TestIntent_Split_Malformed(t *testing.T) {
	for _, raw := range []string{"", "lodash", "@scope/pkg", "@^1.0.0"} {
		t.Run(raw, func(t *testing.T) {
			_, _, err := domain.Intent(raw).Split()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedIntent))

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, raw, zErr.Metadata()["intent"])
		})
	}
}

func TestIntent_NameWithoutSeparator(t *testing.T) {
	assert.Equal(t, "", domain.Intent("lodash").Name())
	assert.Equal(t, "lodash", domain.Intent("lodash").Range())
}
