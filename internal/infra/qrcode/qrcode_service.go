package qrcode

import (
	"net/url"

	"waitlist/internal/domain/service"
	"waitlist/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize  = 256
	minimumSize  = 64
	maxURLLength = 2048
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size < minimumSize {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateInviteQR renders an absolute invite URL as a PNG
func (s *qrcodeService) GenerateInviteQR(inviteURL string) ([]byte, error) {
	if len(inviteURL) > maxURLLength {
		return nil, errors.Errorf("invite URL exceeds %d bytes", maxURLLength)
	}

	parsed, err := url.Parse(inviteURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("invite URL must be absolute: %q", inviteURL)
	}

	qrCode, err := qrcode.New(inviteURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
