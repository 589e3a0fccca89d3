package fulfillment

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const confirmationSubject = "Your purchase is confirmed!"

// Confirmation is everything the purchase email needs. DownloadURL is empty for
// physical goods; Physical picks which of the two mutually exclusive bodies the
// buyer gets. The email does not distinguish bundles, the success page does.
type Confirmation struct {
	BuyerName   string
	ProductName string
	DownloadURL string
	Physical    bool
}

// Notifier composes and sends the purchase-confirmation email.
type Notifier struct {
	sender Sender
	from   string
	logger *zap.Logger
}

func NewNotifier(sender Sender, from string, logger *zap.Logger) *Notifier {
	return &Notifier{sender: sender, from: from, logger: logger}
}

// Notify renders the type-specific body and sends it. A provider error goes back
// to the caller for logging; it is never retried here.
func (n *Notifier) Notify(ctx context.Context, to string, c Confirmation) error {
	if c.BuyerName == "" {
		c.BuyerName = "there"
	}
	if c.ProductName == "" {
		c.ProductName = "your product"
	}

	html, err := renderConfirmation(c)
	if err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	n.logger.Info("sending purchase confirmation",
		zap.String("product", c.ProductName),
		zap.Bool("physical", c.Physical),
	)

	return n.sender.Send(ctx, Message{
		From:    n.from,
		To:      to,
		Subject: confirmationSubject,
		HTML:    html,
	})
}
