package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"cwdp/internal/models"
	"cwdp/internal/site"
)

const contactFailureMessage = "Não foi possível enviar o seu pedido. Por favor, tente novamente."

// SiteHandler serves the server-rendered public pages.
type SiteHandler struct {
	pages    *site.Builder
	renderer *site.Renderer
	contacts *ContactHandler
	decoder  *schema.Decoder
	v        *validator.Validate
}

func NewSiteHandler(pages *site.Builder, renderer *site.Renderer, contacts *ContactHandler) *SiteHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &SiteHandler{
		pages:    pages,
		renderer: renderer,
		contacts: contacts,
		decoder:  decoder,
		v:        newValidator(),
	}
}

func (h *SiteHandler) render(w http.ResponseWriter, status int, name string, page *site.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, name, page); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
	}
}

func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "home", h.pages.Build(r.Context(), r))
}

func (h *SiteHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "privacy", h.pages.Static(r.Context(), r))
}

func (h *SiteHandler) Terms(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "terms", h.pages.Static(r.Context(), r))
}

// SubmitContact handles the landing page form. Invalid input re-renders the
// page with field errors and nothing is stored; a stored request redirects so
// a reload does not submit twice.
func (h *SiteHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	var sub models.ContactSubmission
	if err := h.decoder.Decode(&sub, r.PostForm); err != nil {
		log.Printf("Error decoding contact form: %v", err)
	}
	sub.Normalize()

	if err := h.v.Struct(sub); err != nil {
		page := h.pages.Build(r.Context(), r)
		page.Contact.Values = sub
		page.Contact.Errors = fieldErrors(err)
		h.render(w, http.StatusBadRequest, "home", page)
		return
	}

	if _, err := h.contacts.submit(r.Context(), sub); err != nil {
		log.Printf("Error creating contact request: %v", err)
		page := h.pages.Build(r.Context(), r)
		page.Contact.Values = sub
		page.Contact.Failure = contactFailureMessage
		h.render(w, http.StatusInternalServerError, "home", page)
		return
	}

	http.Redirect(w, r, "/?contato=enviado#contato", http.StatusSeeOther)
}

// Consent stores the visitor's cookie choice and sends them back where they
// came from.
func (h *SiteHandler) Consent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	var form models.ConsentForm
	if err := h.decoder.Decode(&form, r.PostForm); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if err := h.v.Struct(form); err != nil {
		http.Error(w, "Invalid consent choice", http.StatusBadRequest)
		return
	}

	if err := site.WriteConsent(w, form.Preferences(), isSecure(r)); err != nil {
		log.Printf("Error writing consent cookie: %v", err)
	}
	http.Redirect(w, r, localRedirect(form.Redirect), http.StatusSeeOther)
}

func isSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// localRedirect only allows same-site paths.
func localRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
