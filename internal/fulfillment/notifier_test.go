package fulfillment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func TestNotifyDigitalPurchase(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewNotifier(sender, "Maggie Mistal <onboarding@resend.dev>", zap.NewNop())

	err := notifier.Notify(context.Background(), "ada@example.com", Confirmation{
		BuyerName:   "Ada",
		ProductName: "Soul Search Workbook",
		DownloadURL: "https://example.com/api/download/soul-search-workbook?session_id=cs_123",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "Maggie Mistal <onboarding@resend.dev>", msg.From)
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, "Your purchase is confirmed!", msg.Subject)
	assert.Contains(t, msg.HTML, "Hi Ada,")
	assert.Contains(t, msg.HTML, "Soul Search Workbook")
	assert.Contains(t, msg.HTML, "session_id=cs_123")
	assert.Contains(t, msg.HTML, "This link expires in 7 days.")
	assert.NotContains(t, msg.HTML, "ship within 5-7 business days")
}

func TestNotifyPhysicalPurchase(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewNotifier(sender, "shop@example.com", zap.NewNop())

	err := notifier.Notify(context.Background(), "ada@example.com", Confirmation{
		BuyerName:   "Ada",
		ProductName: "Career Journal",
		Physical:    true,
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Contains(t, msg.HTML, "ship within 5-7 business days")
	assert.NotContains(t, msg.HTML, "Download Now")
}

func TestNotifyDigitalWithoutDownloadURLOmitsButton(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewNotifier(sender, "shop@example.com", zap.NewNop())

	err := notifier.Notify(context.Background(), "ada@example.com", Confirmation{
		BuyerName:   "Ada",
		ProductName: "Audio Course",
	})
	require.NoError(t, err)
	assert.NotContains(t, sender.sent[0].HTML, "Download Now")
}

func TestNotifyDefaultsMissingFields(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewNotifier(sender, "shop@example.com", zap.NewNop())

	err := notifier.Notify(context.Background(), "ada@example.com", Confirmation{})
	require.NoError(t, err)

	msg := sender.sent[0]
	assert.Contains(t, msg.HTML, "Hi there,")
	assert.Contains(t, msg.HTML, "your product")
}

func TestNotifySenderFailurePropagates(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider rejected")}
	notifier := NewNotifier(sender, "shop@example.com", zap.NewNop())

	err := notifier.Notify(context.Background(), "ada@example.com", Confirmation{ProductName: "Workbook"})
	assert.Error(t, err)
}
