package service

// QRCodeService renders arbitrary content as a PNG QR code. Used to
// hand the WhatsApp checkout link to a phone camera.
type QRCodeService interface {
	GeneratePNG(content string) ([]byte, error)
}
