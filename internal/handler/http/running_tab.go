package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-tab-keeper/internal/state"
)

type topUpRequest struct {
	Amount int64 `json:"amount"`
}

type rejectExpenseRequest struct {
	Reason string `json:"reason"`
}

type attachmentRequest struct {
	URL string `json:"url"`
}

func (h *Handler) topUp(w http.ResponseWriter, r *http.Request) {
	var req topUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tab, err := h.state.TopUp(r.Context(), req.Amount, actingOwner(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tab)
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	var in state.NewExpense
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	if in.CreatedBy == nil {
		in.CreatedBy = actingOwner(r)
	}

	expense, err := h.state.AddExpense(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, expense)
}

func (h *Handler) approveExpense(w http.ResponseWriter, r *http.Request) {
	expense, err := h.state.ApproveExpense(r.Context(), chi.URLParam(r, "id"), actingOwner(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

func (h *Handler) rejectExpense(w http.ResponseWriter, r *http.Request) {
	var req rejectExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	expense, err := h.state.RejectExpense(r.Context(), chi.URLParam(r, "id"), req.Reason, actingOwner(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

func (h *Handler) setExpenseAttachment(w http.ResponseWriter, r *http.Request) {
	var req attachmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	expense, err := h.state.SetExpenseAttachment(r.Context(), chi.URLParam(r, "id"), req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expense)
}
