package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, <-chan *url.URL) {
	t.Helper()
	seen := make(chan *url.URL, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.URL
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func TestFetch_ObjectBody(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `{"lyrics":"la la la"}`)

	got, err := New(srv.URL+"/", nil).Fetch(context.Background(), "So What")
	require.NoError(t, err)
	assert.Equal(t, "la la la", got)
	u := <-seen
	assert.Equal(t, "/lyrics", u.Path)
	assert.Equal(t, "So What", u.Query().Get("track"))
}

func TestFetch_StringBody(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `"hum"`)

	got, err := New(srv.URL, nil).Fetch(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "hum", got)
	assert.Empty(t, (<-seen).RawQuery)
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server_error", http.StatusInternalServerError, `{"lyrics":"x"}`, ErrUnexpectedStatus},
		{"not_found", http.StatusNotFound, ``, ErrUnexpectedStatus},
		{"number", http.StatusOK, `42`, ErrUnexpectedBody},
		{"empty_object", http.StatusOK, `{"lyrics":""}`, ErrUnexpectedBody},
		{"garbage", http.StatusOK, `not json`, ErrUnexpectedBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			_, err := New(srv.URL, nil).Fetch(context.Background(), "x")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFetch_HonoursContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := New(srv.URL, nil).Fetch(ctx, "slow")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFetch_Unreachable(t *testing.T) {
	_, err := New("http://127.0.0.1:1", nil).Fetch(context.Background(), "x")
	assert.Error(t, err)
}
