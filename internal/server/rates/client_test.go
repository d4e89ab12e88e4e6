package rates

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/expenso-app/expenso/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return NewClient(baseURL, time.Second, logging.NewJSON(io.Discard))
}

func TestGetRates_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/USD", r.URL.Path)
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92,"GBP":0.79}}`))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).GetRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Base)
	assert.Equal(t, 0.92, got.Rates["EUR"])
}

func TestGetRates_NormalizesBaseToUppercase(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetRates(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, "/latest/USD", gotPath)
}

func TestGetRates_UpstreamErrorPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`unsupported code`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetRates(context.Background(), "XYZ")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.Equal(t, "unsupported code", upstream.Body)
}

func TestGetRates_MissingFieldsIsMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no rates", body: `{"base":"USD"}`},
		{name: "no base", body: `{"rates":{"EUR":0.9}}`},
		{name: "not json", body: `<html>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).GetRates(context.Background(), "USD")
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestGetRates_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening any more

	_, err := newTestClient(t, srv.URL).GetRates(context.Background(), "USD")

	assert.ErrorIs(t, err, ErrProviderUnavailable)
	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream), "transport failure must not look like an upstream response")
}

// failOnceTransport fails the first round trip at the transport level and
// delegates afterwards.
type failOnceTransport struct {
	calls int
	next  http.RoundTripper
}

func (f *failOnceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.calls++
	if f.calls == 1 {
		return nil, errors.New("connection reset")
	}
	return f.next.RoundTrip(req)
}

func TestGetRates_RetriesOnceOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.9}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ft := &failOnceTransport{next: http.DefaultTransport}
	c.hc.Transport = ft

	got, err := c.GetRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Base)
	assert.Equal(t, 2, ft.calls)
}

func TestGetRates_NoRetryOnUpstreamStatus(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetRates(context.Background(), "USD")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 1, calls, "an upstream error response must not be retried")
}

func TestGetRates_HonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := newTestClient(t, srv.URL).GetRates(ctx, "USD")
	require.Error(t, err)
}
