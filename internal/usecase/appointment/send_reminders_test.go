package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReminders(repo *memRepo, sender *fakeSender) *SendReminders {
	uc := NewSendReminders(repo, repo, NewNotifier(sender, repo, brt), brt)
	uc.now = fixedNow
	return uc
}

func TestSendReminders_TomorrowOnlyAndOnce(t *testing.T) {
	noPhone := booked(0, at("2024-05-02", "11:00"), "Bruno")
	noPhone.ClientPhone = ""

	repo := newMemRepo(
		booked(0, at("2024-05-01", "17:30"), "Hoje"),
		booked(0, at("2024-05-02", "09:00"), "Ana"),
		noPhone,
		booked(0, at("2024-05-03", "09:00"), "Depois"),
	)
	sender := &fakeSender{}
	uc := newReminders(repo, sender)

	res, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-05-02", res.Date)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 0, res.Failed)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Body, "Ana")
	assert.Contains(t, sender.sent[0].Body, "amanhã, 02/05 às 09:00")

	res, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, 2, res.Skipped)
	assert.Len(t, sender.sent, 1)
}

func TestSendReminders_FailuresAreCounted(t *testing.T) {
	repo := newMemRepo(booked(0, at("2024-05-02", "09:00"), "Ana"))
	sender := &fakeSender{err: errDisk}

	res, err := newReminders(repo, sender).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Empty(t, repo.notes)
}

func TestSendReminders_UnreadableStorage(t *testing.T) {
	repo := newMemRepo()
	repo.readErr = errDisk

	_, err := newReminders(repo, &fakeSender{}).Execute(context.Background())
	assert.Error(t, err)
}

func TestNotifyClient(t *testing.T) {
	noPhone := booked(0, at("2024-05-02", "10:00"), "Bruno")
	noPhone.ClientPhone = ""
	repo := newMemRepo(booked(0, at("2024-05-02", "09:00"), "Ana"), noPhone)
	sender := &fakeSender{}
	uc := NewNotifyClient(repo, NewNotifier(sender, repo, brt), nil)

	require.NoError(t, uc.Execute(context.Background(), admin, 1, ""))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "11987654321", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Body, "R$ 35,00")

	// Confirmations may be resent.
	require.NoError(t, uc.Execute(context.Background(), admin, 1, KindConfirmation))
	assert.Len(t, sender.sent, 2)

	assert.ErrorContains(t, uc.Execute(context.Background(), admin, 2, ""), "client_phone_missing")
	assert.ErrorContains(t, uc.Execute(context.Background(), admin, 1, "sms"), "invalid_notification_kind")
	assert.ErrorContains(t, uc.Execute(context.Background(), admin, 42, ""), "appointment_not_found")

	sender.err = errDisk
	assert.ErrorContains(t, uc.Execute(context.Background(), admin, 1, KindReminder), "integration_failed")
}

func TestNotifier_RecordsLog(t *testing.T) {
	repo := newMemRepo()
	n := NewNotifier(&fakeSender{}, repo, brt)

	ap := booked(7, at("2024-05-02", "09:00"), "Ana")
	require.NoError(t, n.Notify(context.Background(), &ap, KindReminder))

	require.Len(t, repo.notes, 1)
	got := repo.notes[0]
	assert.Equal(t, uint(7), got.AppointmentID)
	assert.Equal(t, "5511987654321", got.Recipient)
	assert.Equal(t, "fake", got.Provider)
	assert.Len(t, got.ID, 36)
	assert.Equal(t, KindReminder, got.Kind)
}
