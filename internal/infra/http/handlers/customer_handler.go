package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/chatlink"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/http/middleware"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/phone"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/store"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/usecase"
)

type CustomerHandler struct {
	Store  *store.Store
	Mailer usecase.EmailSender
}

func NewCustomerHandler(s *store.Store, mailer usecase.EmailSender) *CustomerHandler {
	return &CustomerHandler{Store: s, Mailer: mailer}
}

// HandleList (GET /customers) returns the working set with a draft flag, so
// the review screen knows which leads still need generation.
func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	type item struct {
		entity.Customer
		HasDraft bool `json:"has_draft"`
	}

	customers := h.Store.Customers()
	items := make([]item, 0, len(customers))
	for _, c := range customers {
		_, hasDraft := h.Store.Draft(c.ID)
		items = append(items, item{Customer: c, HasDraft: hasDraft})
	}

	writeJSON(w, http.StatusOK, map[string]any{"customers": items})
}

// HandleDelete (DELETE /customers/{id}) removes a lead and its draft. Any
// generation still in flight for it completes into the void.
func (h *CustomerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.Store.Delete(id) {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: usecase.CodeCustomerNotFound, Message: "customer not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type numberLinks struct {
	Number     string `json:"number"`
	Normalized string `json:"normalized"`
	ChatLink   string `json:"chat_link"`
}

type linksResponse struct {
	Variant string        `json:"variant"`
	Numbers []numberLinks `json:"numbers"`
	Mailto  string        `json:"mailto,omitempty"`
}

// HandleLinks (GET /customers/{id}/links?variant=web|app|business) builds
// the outreach URIs for every number in the lead's phone field, plus the
// mailto link when a draft and an email address exist.
func (h *CustomerHandler) HandleLinks(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	customer, ok := h.Store.Customer(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: usecase.CodeCustomerNotFound, Message: "customer not found"})
		return
	}

	variant := chatlink.ParseVariant(r.URL.Query().Get("variant"))

	// The chat body falls back to the email body for drafts generated
	// before a chat variant existed; no draft means empty message links.
	var subject, body, chatBody string
	if msg, ok := h.Store.Draft(id); ok {
		subject = msg.Subject
		body = msg.Body
		chatBody = msg.ChatBody
		if chatBody == "" {
			chatBody = msg.Body
		}
	}

	resp := linksResponse{Variant: string(variant)}
	for _, number := range phone.Segment(customer.Phone) {
		resp.Numbers = append(resp.Numbers, numberLinks{
			Number:     number,
			Normalized: phone.Normalize(number),
			ChatLink:   chatlink.BuildLink(number, chatBody, variant),
		})
	}
	if customer.Email != "" {
		resp.Mailto = chatlink.BuildMailto(customer.Email, subject, body)
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDispatchEmail (POST /customers/{id}/dispatch/email) sends the
// reviewed draft over SMTP directly, for operators who skip the native
// mail client.
func (h *CustomerHandler) HandleDispatchEmail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	customer, ok := h.Store.Customer(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: usecase.CodeCustomerNotFound, Message: "customer not found"})
		return
	}

	msg, ok := h.Store.Draft(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: usecase.CodeDraftNotFound, Message: "no draft to dispatch"})
		return
	}
	if customer.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeInvalidInput, Message: "customer has no email address"})
		return
	}
	if h.Mailer == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Code: usecase.CodeDispatchFailed, Message: "smtp is not configured"})
		return
	}

	if err := h.Mailer.Send(customer.Email, msg.Subject, msg.Body); err != nil {
		middleware.RecordDispatch("error")
		writeJSON(w, http.StatusBadGateway, errorResponse{Code: usecase.CodeDispatchFailed, Message: err.Error()})
		return
	}

	middleware.RecordDispatch("sent")
	writeJSON(w, http.StatusOK, map[string]any{"dispatched": true})
}
