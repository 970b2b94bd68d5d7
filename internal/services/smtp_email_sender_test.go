package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cwdp/internal/models"
)

func headerLines(t *testing.T, msg []byte) []string {
	t.Helper()
	head, _, ok := strings.Cut(string(msg), "\r\n\r\n")
	require.True(t, ok, "message has no header terminator")
	return strings.Split(head, "\r\n")
}

func TestSMTPMessageKeepsSubjectOnOneLine(t *testing.T) {
	s := &SMTPSender{From: "site@cwdp.pt"}
	msg := s.message("obras@cwdp.pt", "Novo pedido de contacto: Ana\r\nBcc: victim@example.com\r\nX-Injected: yes", "corpo")

	lines := headerLines(t, msg)
	assert.Len(t, lines, 6)
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, "Bcc:"), line)
		assert.False(t, strings.HasPrefix(line, "X-Injected:"), line)
	}
	assert.Equal(t, "Subject: Novo pedido de contacto: Ana Bcc: victim@example.com X-Injected: yes", lines[2])
}

func TestSMTPMessageEncodesNonASCIISubject(t *testing.T) {
	s := &SMTPSender{From: "site@cwdp.pt"}
	lines := headerLines(t, s.message("obras@cwdp.pt", "Pedido de João", "corpo"))

	assert.True(t, strings.HasPrefix(lines[2], "Subject: =?utf-8?q?"), lines[2])
}

func TestContactNotifierSubjectCannotAddHeaders(t *testing.T) {
	sender := &fakeSender{}
	NewContactNotifier(sender, nil).Notify(context.Background(), &models.ContactRequest{
		ID: "c1", Name: "Ana\r\nBcc: victim@example.com", Email: "ana@example.pt", Message: "Olá",
	})
	require.Equal(t, defaultContactEmail, sender.to)

	s := &SMTPSender{From: "site@cwdp.pt"}
	for _, line := range headerLines(t, s.message(sender.to, sender.subject, sender.body)) {
		assert.False(t, strings.HasPrefix(line, "Bcc:"), line)
	}
}
