package gomail_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/backoffice/internal/clients/gomail"
	"github.com/samandr77/microservices/backoffice/internal/entity"
)

func TestDigest(t *testing.T) {
	t.Parallel()

	items := []entity.OverdueCare{
		{
			Key:      "CS1",
			Company:  "Công ty An Phát",
			Type:     "Gọi điện",
			Staff:    "Lan",
			Due:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			DaysLate: 14,
		},
		{Key: "CS2", Type: "Gặp mặt", Due: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), DaysLate: 5},
	}

	body := gomail.DigestBody(items)

	require.True(t, strings.HasPrefix(body, "Có 2 hoạt động"))
	require.Contains(t, body, "- CS1 | Công ty An Phát | Gọi điện | hạn 2024-03-01 (trễ 14 ngày) | phụ trách: Lan\n")
	require.Contains(t, body, "- CS2 |  | Gặp mặt | hạn 2024-03-10 (trễ 5 ngày)\n")

	msg := gomail.NewDigest("bot@example.com", "Back office", []string{"boss@example.com"}, items)
	require.Equal(t, []string{"boss@example.com"}, msg.GetHeader("To"))

	var buf bytes.Buffer

	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Subject:")
}
