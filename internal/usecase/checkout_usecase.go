package usecase

import "context"

// CheckoutUsecase builds the WhatsApp handoff artifacts for the current
// cart, discount and identity.
type CheckoutUsecase interface {
	// Message renders the plain-text order message.
	Message(ctx context.Context) (string, error)

	// Link renders the wa.me URL carrying the encoded message.
	Link(ctx context.Context) (string, error)

	// QRCodePNG renders the wa.me URL as a PNG QR code.
	QRCodePNG(ctx context.Context) ([]byte, error)
}
