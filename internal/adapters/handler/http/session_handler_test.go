package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/L-alam/amongyall-sub001/internal/adapters/random"
	"github.com/L-alam/amongyall-sub001/internal/adapters/repository/memory"
	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/L-alam/amongyall-sub001/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedZone struct{ start int }

func (z fixedZone) Generate(scale domain.Scale) (domain.GoalZone, error) {
	return domain.NewGoalZone(scale, z.start)
}

func newSessionTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.NewStore()
	svc := services.NewSessionService(store, store, fixedZone{start: 8}, random.NewPairPicker())
	server := httptest.NewServer(NewHandler(Handlers{Sessions: NewSessionHandler(svc)}, testSecret, []string{"*"}))
	t.Cleanup(server.Close)
	return server
}

func newJSONRequest(t *testing.T, method, url string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func do(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	resp, err := http.DefaultClient.Do(newJSONRequest(t, method, url, body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestSessionHandler_FullRound(t *testing.T) {
	server := newSessionTestServer(t)

	resp := do(t, http.MethodPost, server.URL+"/api/sessions", map[string]any{"players": []string{"Ana", "Bo"}})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[sessionView](t, resp)
	assert.Equal(t, domain.RoundAwaitingVotes, created.Round.State)
	assert.Nil(t, created.Round.Zone, "zone must stay hidden before reveal")
	assert.Equal(t, []string{"Ana", "Bo"}, created.Round.Pending)

	base := fmt.Sprintf("%s/api/sessions/%s", server.URL, created.ID)

	resp = do(t, http.MethodPost, base+"/reveal", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, http.MethodPut, base+"/votes", map[string]any{"player": "Ana", "position": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decode[sessionView](t, resp)
	assert.Equal(t, []string{"Ana"}, view.Round.Voted)
	assert.Nil(t, view.Round.Target)

	resp = do(t, http.MethodPut, base+"/votes", map[string]any{"player": "Bo", "position": 12})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.RoundAllVoted, decode[sessionView](t, resp).Round.State)

	resp = do(t, http.MethodPost, base+"/reveal", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	revealed := decode[revealView](t, resp)
	require.NotNil(t, revealed.Session.Round.Zone)
	require.NotNil(t, revealed.Session.Round.Target)
	assert.Equal(t, 10, *revealed.Session.Round.Target)
	assert.Equal(t, map[string]int{"Ana": 3, "Bo": 1}, revealed.Session.Totals)
	require.Len(t, revealed.Ranking, 2)
	assert.Equal(t, "Ana", revealed.Ranking[0].Player)
	assert.Equal(t, 1, revealed.Session.RoundsPlayed)

	resp = do(t, http.MethodPut, base+"/votes", map[string]any{"player": "Ana", "position": 11})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, http.MethodPost, base+"/rounds", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	next := decode[sessionView](t, resp)
	assert.Equal(t, 2, next.Round.Number)
	assert.Equal(t, map[string]int{"Ana": 3, "Bo": 1}, next.Totals)

	resp = do(t, http.MethodPost, base+"/restart", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	restarted := decode[sessionView](t, resp)
	assert.Equal(t, 1, restarted.Round.Number)
	assert.Equal(t, map[string]int{"Ana": 0, "Bo": 0}, restarted.Totals)

	resp = do(t, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionHandler_ClearVote(t *testing.T) {
	server := newSessionTestServer(t)

	resp := do(t, http.MethodPost, server.URL+"/api/sessions", map[string]any{"players": []string{"Ana", "Bo"}})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	base := fmt.Sprintf("%s/api/sessions/%s", server.URL, decode[sessionView](t, resp).ID)

	resp = do(t, http.MethodDelete, base+"/votes/Ana", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	do(t, http.MethodPut, base+"/votes", map[string]any{"player": "Ana", "position": 3})
	resp = do(t, http.MethodDelete, base+"/votes/Ana", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[sessionView](t, resp).Round.Voted)
}

func TestSessionHandler_Errors(t *testing.T) {
	server := newSessionTestServer(t)

	resp := do(t, http.MethodPost, server.URL+"/api/sessions", map[string]any{"players": []string{"Ana", "Bo"}})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	base := fmt.Sprintf("%s/api/sessions/%s", server.URL, decode[sessionView](t, resp).ID)

	tests := []struct {
		name   string
		method string
		url    string
		body   any
		want   int
	}{
		{"one player", http.MethodPost, server.URL + "/api/sessions", map[string]any{"players": []string{"Ana"}}, http.StatusBadRequest},
		{"duplicate players", http.MethodPost, server.URL + "/api/sessions", map[string]any{"players": []string{"Ana", "Ana"}}, http.StatusBadRequest},
		{"scale too small", http.MethodPost, server.URL + "/api/sessions", map[string]any{"players": []string{"Ana", "Bo"}, "scale_size": 2}, http.StatusBadRequest},
		{"unknown field", http.MethodPost, server.URL + "/api/sessions", map[string]any{"players": []string{"Ana", "Bo"}, "mode": "x"}, http.StatusBadRequest},
		{"bad session id", http.MethodGet, server.URL + "/api/sessions/nope", nil, http.StatusBadRequest},
		{"missing position", http.MethodPut, base + "/votes", map[string]any{"player": "Ana"}, http.StatusBadRequest},
		{"position out of range", http.MethodPut, base + "/votes", map[string]any{"player": "Ana", "position": 40}, http.StatusBadRequest},
		{"unknown player", http.MethodPut, base + "/votes", map[string]any{"player": "Zed", "position": 4}, http.StatusBadRequest},
		{"next before reveal", http.MethodPost, base + "/rounds", nil, http.StatusConflict},
		{"unknown route", http.MethodGet, server.URL + "/api/nothing", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, tt.url, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
			assert.NotEmpty(t, decode[errorResponse](t, resp).Error)
		})
	}
}

func TestSessionHandler_ContentRoutesOptional(t *testing.T) {
	server := newSessionTestServer(t)

	resp := do(t, http.MethodGet, server.URL+"/api/pairs", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodGet, server.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionHandler_StandingsInMemoryMode(t *testing.T) {
	server := newSessionTestServer(t)

	resp := do(t, http.MethodPost, server.URL+"/api/sessions", map[string]any{"players": []string{"Ana", "Bo"}})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	base := fmt.Sprintf("%s/api/sessions/%s", server.URL, decode[sessionView](t, resp).ID)

	do(t, http.MethodPut, base+"/votes", map[string]any{"player": "Ana", "position": 10})
	do(t, http.MethodPut, base+"/votes", map[string]any{"player": "Bo", "position": 11})
	resp = do(t, http.MethodPost, base+"/reveal", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, base+"/standings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	standings := decode[[]domain.Standing](t, resp)
	require.Len(t, standings, 2)
	assert.Equal(t, "Ana", standings[0].Player)
	assert.Equal(t, int64(3), standings[0].TotalPoints)
	assert.Equal(t, int64(2), standings[1].TotalPoints)
}

func TestSessionHandler_ClearVote_EscapedName(t *testing.T) {
	server := newSessionTestServer(t)

	players := []string{"AC/DC", "Ana Maria", "100%"}
	resp := do(t, http.MethodPost, server.URL+"/api/sessions", map[string]any{"players": players})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	base := fmt.Sprintf("%s/api/sessions/%s", server.URL, decode[sessionView](t, resp).ID)

	for _, p := range players {
		resp = do(t, http.MethodPut, base+"/votes", map[string]any{"player": p, "position": 5})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	for _, p := range players {
		resp = do(t, http.MethodDelete, base+"/votes/"+url.PathEscape(p), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, p)
		assert.Contains(t, decode[sessionView](t, resp).Round.Pending, p)
	}
}
