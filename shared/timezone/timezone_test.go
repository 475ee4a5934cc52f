package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tasknest/shared/timezone"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { timezone.Init("UTC") })

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty falls back to utc", in: "", want: "UTC"},
		{name: "unknown falls back to utc", in: "Mars/Olympus", want: "UTC"},
		{name: "iana name", in: "Asia/Jakarta", want: "Asia/Jakarta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timezone.Init(tt.in)

			assert.Equal(t, tt.want, timezone.GetLocation().String())
			assert.Equal(t, tt.want, timezone.Now().Location().String())
		})
	}
}

func TestFormat(t *testing.T) {
	t.Cleanup(func() { timezone.Init("UTC") })
	timezone.Init("Asia/Jakarta")

	noon := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01T19:00:00+07:00", timezone.Format(noon, time.RFC3339))
}
