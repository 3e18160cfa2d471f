package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "100", want: 100},
		{name: "decimal", input: "99.95", want: 99.95},
		{name: "zero", input: "0", want: 0},
		{name: "negative rejected", input: "-5", wantErr: true},
		{name: "text rejected", input: "abc", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "1500.00", money(1500))
	assert.Equal(t, "0.50", money(0.5))
	assert.Equal(t, "0.00", money(0))
}

func TestCommandTree(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"budgets", "categories", "suppliers", "users", "purchases",
		"dashboard", "browse", "settings", "export", "mock", "version",
	} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
