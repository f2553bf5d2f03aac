package inputs

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      UserInput
		wantErr   error
		anyErr    bool
		wantUsage bool
	}{
		{
			name: "Single directory",
			args: []string{"/music"},
			want: UserInput{Directory: "/music"},
		},
		{
			name: "Relative directory",
			args: []string{"library/albums"},
			want: UserInput{Directory: "library/albums"},
		},
		{
			name:      "No directory",
			args:      []string{},
			wantErr:   ErrMissingDirectory,
			wantUsage: true,
		},
		{
			name:      "Help flag",
			args:      []string{"--help"},
			wantErr:   pflag.ErrHelp,
			wantUsage: true,
		},
		{
			name:      "Short help flag",
			args:      []string{"-h"},
			wantErr:   pflag.ErrHelp,
			wantUsage: true,
		},
		{
			name:   "Unknown flag",
			args:   []string{"--output", "x.json", "/music"},
			anyErr: true,
		},
		{
			name:      "Too many directories",
			args:      []string{"/music", "/other"},
			anyErr:    true,
			wantUsage: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ParseArgs(tt.args, &out)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			if tt.wantUsage {
				assert.Contains(t, out.String(), "Usage: albumdir <directory>")
			}
		})
	}
}
