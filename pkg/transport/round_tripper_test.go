package transport_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/backoffice/pkg/logger"
	"github.com/samandr77/microservices/backoffice/pkg/transport"
)

//nolint:paralleltest
func TestLoggingRoundTripper(t *testing.T) {
	buf := new(bytes.Buffer)
	now := time.Now().Format(time.DateOnly)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "time" {
				return slog.Attr{Key: a.Key, Value: slog.StringValue(now)}
			}
			return a
		},
	})))

	var gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		_, _ = fmt.Fprint(w, `[]`)
	}))
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 5,
		Transport: transport.NewLoggingRoundTripper(nil),
	}

	ctx := logger.SetRequestID(context.Background(), "req-1")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/tables/CSKH/Action", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "req-1", gotRequestID)
	require.Equal(t, fmt.Sprintf(`{"time":"%s","level":"INFO","msg":"outgoing request","request":"POST %s/tables/CSKH/Action"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"POST %s/tables/CSKH/Action","status":200}
`, now, server.URL, now, server.URL), buf.String())
}
