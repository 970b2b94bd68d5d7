package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cwdp/internal/models"
)

func TestContactNotifierUsesContactEmailSetting(t *testing.T) {
	to := "obras@cwdp.pt"
	settings := &fakeSettingRepo{settings: []models.Setting{{Key: models.SettingContactEmail, Value: &to}}}
	content := NewContent(nil, nil, nil, nil, settings, NewQueryCache(time.Minute))
	sender := &fakeSender{}

	phone := "910000000"
	NewContactNotifier(sender, content).Notify(context.Background(), &models.ContactRequest{
		ID: "c1", Name: "Ana", Email: "ana@example.pt", Phone: &phone, Message: "Olá",
	})

	assert.Equal(t, "obras@cwdp.pt", sender.to)
	assert.Contains(t, sender.subject, "Ana")
	assert.Contains(t, sender.body, "Telefone: 910000000")
	assert.NotContains(t, sender.body, "Serviço")
}

func TestContactNotifierSwallowsErrors(t *testing.T) {
	settings := &fakeSettingRepo{err: errBoom}
	content := NewContent(nil, nil, nil, nil, settings, NewQueryCache(time.Minute))
	sender := &fakeSender{err: errBoom}

	NewContactNotifier(sender, content).Notify(context.Background(), &models.ContactRequest{Name: "Ana", Message: "x"})
	assert.Equal(t, defaultContactEmail, sender.to)
}
