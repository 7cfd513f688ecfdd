package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteMonthShortcutArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"datepick"},
			want: []string{"datepick"},
		},
		{
			name: "month first token",
			in:   []string{"datepick", "2024-03"},
			want: []string{"datepick", "sheet", "--month", "2024-03"},
		},
		{
			name: "month after value flag",
			in:   []string{"datepick", "--locale", "de", "2024-03"},
			want: []string{"datepick", "--locale", "de", "sheet", "--month", "2024-03"},
		},
		{
			name: "month after equals flag",
			in:   []string{"datepick", "--locale=de", "2024-03"},
			want: []string{"datepick", "--locale=de", "sheet", "--month", "2024-03"},
		},
		{
			name: "month after bool flag",
			in:   []string{"datepick", "--pretty", "2024-03"},
			want: []string{"datepick", "--pretty", "sheet", "--month", "2024-03"},
		},
		{
			name: "month after double dash",
			in:   []string{"datepick", "--", "2024-03"},
			want: []string{"datepick", "sheet", "--month", "2024-03"},
		},
		{
			name: "value flag that looks like a month",
			in:   []string{"datepick", "--min", "2024-03"},
			want: []string{"datepick", "--min", "2024-03"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"datepick", "sheet", "--month", "2024-03"},
			want: []string{"datepick", "sheet", "--month", "2024-03"},
		},
		{
			name: "full date not rewritten",
			in:   []string{"datepick", "2024-03-05"},
			want: []string{"datepick", "2024-03-05"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rewriteMonthShortcutArgs(tt.in))
		})
	}
}
