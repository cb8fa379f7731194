package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *pflag.FlagSet {
	return pflag.NewFlagSet("test", pflag.ContinueOnError)
}

func TestBindFlags_Defaults(t *testing.T) {
	fs := newTestFlagSet()
	opts := BindFlags(fs)

	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &Options{}, opts)
}

func TestBindFlags_Parse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "long flags",
			args: []string{"--data-path", "/srv/miscord", "--log-level", "debug"},
			want: Options{DataPath: "/srv/miscord", LogLevel: "debug"},
		},
		{
			name: "short data path",
			args: []string{"-d", "./data"},
			want: Options{DataPath: "./data"},
		},
		{
			name: "equals syntax",
			args: []string{"--log-level=trace"},
			want: Options{LogLevel: "trace"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newTestFlagSet()
			opts := BindFlags(fs)

			require.NoError(t, fs.Parse(tt.args))

			assert.Equal(t, tt.want, *opts)
		})
	}
}

func TestBindFlags_UnknownFlag(t *testing.T) {
	fs := newTestFlagSet()
	BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"--token", "x"}))
}
