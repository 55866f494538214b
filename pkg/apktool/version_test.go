package apktool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errUtils "github.com/cloudposse/apkwrap/errors"
)

func TestParseToolVersion(t *testing.T) {
	v, err := ParseToolVersion("2.9.3\n")
	require.NoError(t, err)
	assert.Equal(t, "2.9.3", v.String())

	v, err = ParseToolVersion("2.10.0-dirty")
	require.NoError(t, err)
	assert.Equal(t, "dirty", v.Prerelease())

	_, err = ParseToolVersion("Apktool unknown")
	assert.ErrorIs(t, err, errUtils.ErrInvalidVersion)
}

func TestClient_CheckVersion(t *testing.T) {
	tests := []struct {
		name       string
		installed  string
		constraint string
		wantErr    error
	}{
		{name: "satisfied", installed: "2.9.3\n", constraint: ">= 2.9.0"},
		{name: "too old", installed: "2.4.1\n", constraint: ">= 2.9.0", wantErr: errUtils.ErrUnsupportedVersion},
		{name: "unparseable output", installed: "garbage\n", constraint: ">= 2.9.0", wantErr: errUtils.ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, runner, _ := newTestClient(t)
			runner.EXPECT().
				Run(gomock.Any(), "java", gomock.Any(), RunOptions{Capture: true}).
				Return(&Result{Stdout: tt.installed}, nil)

			_, err := c.CheckVersion(context.Background(), tt.constraint)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_CheckVersion_BadConstraint(t *testing.T) {
	c, _, _ := newTestClient(t)

	_, err := c.CheckVersion(context.Background(), "not a constraint !!")
	assert.ErrorIs(t, err, errUtils.ErrInvalidOption)
}
