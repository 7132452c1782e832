package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		owned []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-a", "https://api.example"},
			owned: []string{"-c", "-config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "flag with equals",
			args:  []string{"-config=alt.json", "-a", "x"},
			owned: []string{"-c", "-config"},
			want:  []string{"-config=alt.json"},
		},
		{
			name:  "unknown flags and positionals ignored",
			args:  []string{"-x", "1", "-y=2", "positional"},
			owned: []string{"-c"},
			want:  []string{},
		},
		{
			name:  "flag without value at end is kept",
			args:  []string{"-c"},
			owned: []string{"-c"},
			want:  []string{"-c"},
		},
		{
			name:  "next dash token is not a value",
			args:  []string{"-t", "-l", "debug"},
			owned: []string{"-t", "-l"},
			want:  []string{"-t", "-l", "debug"},
		},
		{
			name:  "several owned flags keep order",
			args:  []string{"-a", "https://api", "-d", "smrc.db", "-other", "x", "-t", "5"},
			owned: []string{"-a", "-d", "-t"},
			want:  []string{"-a", "https://api", "-d", "smrc.db", "-t", "5"},
		},
		{
			name:  "empty args",
			args:  nil,
			owned: []string{"-c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.owned))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/smrc.json", ConfigPath([]string{"-c", "/etc/smrc.json"}))
	assert.Equal(t, "/etc/long.json", ConfigPath([]string{"-config", "/etc/long.json", "-a", "x"}))
	assert.Equal(t, "/b.json", ConfigPath([]string{"-c", "/a.json", "-config", "/b.json"}))
	assert.Empty(t, ConfigPath([]string{"-a", "https://api"}))
}
