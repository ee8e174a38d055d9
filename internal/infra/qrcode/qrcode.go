// Package qrcode renders share links as PNG QR codes.
package qrcode

import (
	"strings"

	"shopfront/internal/domain/service"

	"github.com/pkg/errors"
	qrc "github.com/skip2/go-qrcode"
)

type qrCodeService struct {
	size     int
	recovery qrc.RecoveryLevel
}

// NewQRCodeService builds a generator with the given image size in pixels
// and error correction level (low, medium, high, highest). Unknown levels
// fall back to medium.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = 256
	}

	return &qrCodeService{
		size:     size,
		recovery: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// GeneratePNG encodes the content into a PNG image.
func (s *qrCodeService) GeneratePNG(content string) ([]byte, error) {
	png, err := qrc.Encode(content, s.recovery, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode qr code")
	}

	return png, nil
}

func parseRecoveryLevel(level string) qrc.RecoveryLevel {
	switch strings.ToLower(level) {
	case "low", "l":
		return qrc.Low
	case "high", "q":
		return qrc.High
	case "highest", "h":
		return qrc.Highest
	default:
		return qrc.Medium
	}
}
