package http

import (
	"net/http"
	"net/url"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/L-alam/amongyall-sub001/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

type createSessionRequest struct {
	Players   []string `json:"players"`
	ScaleSize int      `json:"scale_size,omitempty"`
}

type castVoteRequest struct {
	Player   string `json:"player"`
	Position *int   `json:"position"`
}

type pairView struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type roundView struct {
	Number  int                  `json:"number"`
	State   domain.RoundState    `json:"state"`
	Pair    pairView             `json:"pair"`
	Voted   []string             `json:"voted"`
	Pending []string             `json:"pending"`
	Zone    *domain.GoalZone     `json:"zone,omitempty"`
	Target  *int                 `json:"target,omitempty"`
	Results []domain.RoundResult `json:"results,omitempty"`
}

type sessionView struct {
	ID           uuid.UUID            `json:"id"`
	Players      []string             `json:"players"`
	ScaleSize    int                  `json:"scale_size"`
	Totals       map[string]int       `json:"totals"`
	Round        roundView            `json:"round"`
	RoundsPlayed int                  `json:"rounds_played"`
	Ranking      []domain.RoundResult `json:"ranking"`
}

type revealView struct {
	Session sessionView          `json:"session"`
	Ranking []domain.RoundResult `json:"ranking"`
}

// newSessionView keeps the goal zone and vote positions sealed until the
// round is revealed.
func newSessionView(s *domain.Session) sessionView {
	round := roundView{
		Number:  s.Round.Number,
		State:   s.Round.State,
		Pair:    pairView{Left: s.Round.Pair.Left, Right: s.Round.Pair.Right},
		Voted:   []string{},
		Pending: s.Round.Pending(s.Players),
	}
	if round.Pending == nil {
		round.Pending = []string{}
	}
	for _, p := range s.Players {
		if _, ok := s.Round.Votes[p]; ok {
			round.Voted = append(round.Voted, p)
		}
	}
	if s.Round.State == domain.RoundRevealed {
		zone := s.Round.Zone
		target := zone.Center()
		round.Zone = &zone
		round.Target = &target
		round.Results = s.Round.Results
	}

	played := len(s.History)
	if s.Round.State == domain.RoundRevealed {
		played++
	}

	return sessionView{
		ID:           s.ID,
		Players:      s.Players,
		ScaleSize:    s.Scale.Size,
		Totals:       s.Totals,
		Round:        round,
		RoundsPlayed: played,
		Ranking:      s.Ranking(),
	}
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.Create(r.Context(), ports.CreateSessionInput{
		Players:   req.Players,
		ScaleSize: req.ScaleSize,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newSessionView(session))
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req castVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Position == nil {
		writeMessage(w, http.StatusBadRequest, "position is required")
		return
	}

	session, err := h.service.CastVote(r.Context(), ports.CastVoteInput{
		SessionID: id,
		Player:    req.Player,
		Position:  *req.Position,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

func (h *SessionHandler) ClearVote(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	player, err := pathParam(r, "player")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, domain.ErrInvalidPlayer.Error())
		return
	}

	session, err := h.service.ClearVote(r.Context(), id, player)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

func (h *SessionHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, ranking, err := h.service.Reveal(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, revealView{Session: newSessionView(session), Ranking: ranking})
}

func (h *SessionHandler) NextRound(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.NextRound(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSessionView(session))
}

func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Restart(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

func (h *SessionHandler) Standings(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	standings, err := h.service.Standings(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, standings)
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, domain.ErrInvalidSessionID.Error())
		return uuid.Nil, false
	}
	return id, true
}

// pathParam decodes a route parameter. chi matches on the raw path when the
// request carries escapes such as %2F, so the value may still be encoded.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}
