package imagehost_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/httpclients/imagehost"
	"github.com/samandr77/microservices/backoffice/internal/upload"
)

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	var gotName, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, header, err := r.FormFile("file")
		require.NoError(t, err)

		defer f.Close()

		b, err := io.ReadAll(f)
		require.NoError(t, err)

		gotName, gotBody = header.Filename, string(b)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"url":"https://cdn.local/a.png"}`))
	}))
	t.Cleanup(server.Close)

	c := imagehost.NewClient(server.URL, time.Second*5)

	res, err := c.Upload(context.Background(), upload.File{Name: "a.png", ContentType: "image/png", Data: []byte("img")})
	require.NoError(t, err)
	require.Equal(t, upload.Result{Success: true, URL: "https://cdn.local/a.png"}, res)
	require.Equal(t, "a.png", gotName)
	require.Equal(t, "img", gotBody)
}

func TestClient_Upload_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code int
		body string
	}{
		{"server error", http.StatusInternalServerError, `{"success":false}`},
		{"not successful", http.StatusOK, `{"success":false,"message":"quota"}`},
		{"no url", http.StatusOK, `{"success":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			c := imagehost.NewClient(server.URL, time.Second*5)

			_, err := c.Upload(context.Background(), upload.File{Name: "a.png", Data: []byte("img")})
			require.ErrorIs(t, err, entity.ErrUpload)
		})
	}
}
