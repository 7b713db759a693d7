package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", in: "2024-03-05", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 keeps local day", in: "2024-03-05T23:00:00+07:00", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "without zone", in: "2024-03-05T08:30:00", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "date time", in: "2024-03-05 08:30:00", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "month first", in: "3/4/2024", want: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{name: "month first with time", in: " 12/31/2023 17:00:00 ", want: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "empty", in: "  ", wantErr: true},
		{name: "garbage", in: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := entity.ParseDate(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidDate)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2024-03-05", entity.NormalizeDate("2024-03-05"))
	require.Equal(t, "2024-03-04", entity.NormalizeDate("3/4/2024"))
	require.Equal(t, "2024-03-05", entity.NormalizeDate("2024-03-05T10:00:00Z"))
	require.Empty(t, entity.NormalizeDate("n/a"))
	require.Empty(t, entity.NormalizeDate(""))
}

func TestToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 22, 45, 10, 5, time.UTC)
	require.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), entity.Today(now))
}
