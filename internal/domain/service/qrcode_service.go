package service

// QRCodeService defines the interface for generating QR codes.
type QRCodeService interface {
	// Generate encodes the given content as a QR code PNG.
	Generate(content string) ([]byte, error)
}
