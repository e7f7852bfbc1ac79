package explorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPartyID = "operator::1220abcdef"

func TestClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("successful fetch", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/stats", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.Equal(t, userAgent, r.Header.Get("User-Agent"))

				require.NoError(
					t,
					json.NewEncoder(w).Encode(
						map[string]any{"total_cc": 1000.5},
					),
				)
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, time.Second*5)

		res := c.Stats(context.Background())

		require.False(t, res.Failed())

		obj, ok := res.Object()
		require.True(t, ok)

		assert.InDelta(t, 1000.5, obj["total_cc"], 0.0001)
	})

	t.Run("invalid status code", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, time.Second*5)

		res := c.Stats(context.Background())

		require.True(t, res.Failed())
		assert.Equal(t, "invalid status code received: 502", res.Err)
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		c := NewClient("http://127.0.0.1:0", time.Second)

		res := c.Stats(context.Background())

		require.True(t, res.Failed())
		assert.Contains(t, res.Err, "unable to execute GET request")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, time.Second*5)

		res := c.Stats(context.Background())

		require.True(t, res.Failed())
		assert.Contains(t, res.Err, "unable to decode response")
	})

	t.Run("pagination query", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/rounds", r.URL.Path)
				assert.Equal(t, "2", r.URL.Query().Get("page"))
				assert.Equal(t, "5", r.URL.Query().Get("limit"))

				require.NoError(
					t,
					json.NewEncoder(w).Encode(map[string]any{"rounds": []any{}}),
				)
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, time.Second*5)

		res := c.Rounds(context.Background(), 2, 5)

		assert.False(t, res.Failed())
	})
}

func TestClient_PartyInfo(t *testing.T) {
	t.Parallel()

	t.Run("party ID percent encoded", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// The party ID must survive the round trip intact
				assert.Contains(t, r.URL.EscapedPath(), "operator::1220abcdef")

				require.NoError(
					t,
					json.NewEncoder(w).Encode(map[string]any{"id": 42.0}),
				)
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, time.Second*5)

		res := c.PartyInfo(context.Background(), testPartyID)

		assert.False(t, res.Failed())
	})
}

func TestClient_PartyTransactions(t *testing.T) {
	t.Parallel()

	t.Run("numeric ID resolved first", func(t *testing.T) {
		t.Parallel()

		var paths []string

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				paths = append(paths, r.URL.Path)

				if len(paths) == 1 {
					require.NoError(
						t,
						json.NewEncoder(w).Encode(map[string]any{"id": 42.0}),
					)

					return
				}

				assert.Equal(t, "20", r.URL.Query().Get("limit"))

				require.NoError(
					t,
					json.NewEncoder(w).Encode(
						map[string]any{"transactions": []any{}},
					),
				)
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, time.Second*5)

		res := c.PartyTransactions(context.Background(), testPartyID, 20)

		require.False(t, res.Failed())

		require.Len(t, paths, 2)
		assert.Equal(t, "/parties/42/tx", paths[1])
	})

	t.Run("failed lookup short circuits", func(t *testing.T) {
		t.Parallel()

		var calls int

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls++

				w.WriteHeader(http.StatusNotFound)
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, time.Second*5)

		res := c.PartyTransactions(context.Background(), testPartyID, 20)

		require.True(t, res.Failed())
		assert.Equal(t, "invalid status code received: 404", res.Err)
		assert.Equal(t, 1, calls)
	})

	t.Run("missing numeric ID", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				require.NoError(
					t,
					json.NewEncoder(w).Encode(
						map[string]any{"party_id": testPartyID},
					),
				)
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, time.Second*5)

		res := c.PartyTransfers(context.Background(), testPartyID, 20)

		require.True(t, res.Failed())
		assert.Equal(t, "numeric ID not found in party info", res.Err)
	})

	t.Run("zero numeric ID rejected", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				require.NoError(
					t,
					json.NewEncoder(w).Encode(map[string]any{"id": 0.0}),
				)
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, time.Second*5)

		res := c.PartyTransactions(context.Background(), testPartyID, 20)

		require.True(t, res.Failed())
		assert.Equal(t, "numeric ID not found in party info", res.Err)
	})
}
