package http

import (
	"net/http"

	"github.com/L-alam/amongyall-sub001/internal/core/ports"
	"github.com/go-chi/chi/v5"
)

// ContentHandler exposes word pairs, themes and questions. Reads are public;
// writes need an authenticated user, who then owns the record.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{
		service: service,
	}
}

type createPairRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type createThemeRequest struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

type createQuestionRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

func (h *ContentHandler) CreatePair(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: missing user context")
		return
	}

	var req createPairRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.service.CreatePair(r.Context(), ports.CreatePairInput{Left: req.Left, Right: req.Right, OwnerID: userID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, pair)
}

func (h *ContentHandler) ListPairs(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.service.ListPairs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pairs)
}

func (h *ContentHandler) RandomPair(w http.ResponseWriter, r *http.Request) {
	pair, err := h.service.RandomPair(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

func (h *ContentHandler) GetPair(w http.ResponseWriter, r *http.Request) {
	pair, err := h.service.GetPair(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

func (h *ContentHandler) DeletePair(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: missing user context")
		return
	}

	if err := h.service.DeletePair(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) CreateTheme(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: missing user context")
		return
	}

	var req createThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	theme, err := h.service.CreateTheme(r.Context(), ports.CreateThemeInput{Name: req.Name, Words: req.Words, OwnerID: userID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, theme)
}

func (h *ContentHandler) ListThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := h.service.ListThemes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themes)
}

func (h *ContentHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.service.GetTheme(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, theme)
}

func (h *ContentHandler) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: missing user context")
		return
	}

	if err := h.service.DeleteTheme(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: missing user context")
		return
	}

	var req createQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.service.CreateQuestion(r.Context(), ports.CreateQuestionInput{Text: req.Text, Category: req.Category, OwnerID: userID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, question)
}

func (h *ContentHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.ListQuestions(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *ContentHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: missing user context")
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
