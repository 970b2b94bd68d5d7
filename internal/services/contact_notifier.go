package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cwdp/internal/models"
)

const defaultContactEmail = "contato@cwdp.pt"

// ContactNotifier emails the company when a visitor submits the contact
// form. Delivery is best effort.
type ContactNotifier struct {
	sender  EmailSender
	content *Content
}

func NewContactNotifier(sender EmailSender, content *Content) *ContactNotifier {
	return &ContactNotifier{sender: sender, content: content}
}

// Notify sends the notification and only logs failures.
func (n *ContactNotifier) Notify(ctx context.Context, req *models.ContactRequest) {
	if n == nil || n.sender == nil {
		return
	}

	to := defaultContactEmail
	if n.content != nil {
		if settings, err := n.content.Settings(ctx); err == nil {
			to = settings.Get(models.SettingContactEmail, defaultContactEmail)
		} else {
			log.Printf("Failed to load settings for contact notification: %v", err)
		}
	}

	subject := fmt.Sprintf("Novo pedido de contacto: %s", req.Name)
	if err := n.sender.Send(ctx, to, subject, contactEmailBody(req)); err != nil {
		log.Printf("Failed to send contact notification for %s: %v", req.ID, err)
	}
}

func contactEmailBody(req *models.ContactRequest) string {
	var b strings.Builder
	line := func(label string, value *string) {
		if value != nil && *value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, *value)
		}
	}

	fmt.Fprintf(&b, "Nome: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	line("Telefone", req.Phone)
	line("Serviço", req.Service)
	line("Orçamento", req.BudgetRange)
	line("Prazo pretendido", req.DesiredTimeline)
	line("Localização da obra", req.ProjectLocation)
	line("Como nos conheceu", req.HowFoundUs)
	b.WriteString("\nMensagem:\n")
	b.WriteString(req.Message)
	b.WriteString("\n")
	return b.String()
}
