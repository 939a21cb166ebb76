package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.revet.dev/revet/internal/core/domain"
)

func TestFresh(t *testing.T) {
	tests := []struct {
		name   string
		now    uint64
		stamp  uint64
		window uint64
		want   bool
	}{
		{
			name:   "within window",
			now:    10,
			stamp:  10,
			window: 1,
			want:   true,
		},
		{
			name:   "at window boundary",
			now:    11,
			stamp:  10,
			window: 1,
			want:   false,
		},
		{
			name:   "past window",
			now:    15,
			stamp:  10,
			window: 2,
			want:   false,
		},
		{
			name:   "zero window always revalidates",
			now:    10,
			stamp:  10,
			window: 0,
			want:   false,
		},
		{
			name:   "never refresh",
			now:    1 << 40,
			stamp:  0,
			window: domain.NeverRefresh,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Fresh(tt.now, tt.stamp, tt.window))
		})
	}
}
