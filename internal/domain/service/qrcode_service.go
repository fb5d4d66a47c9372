package service

// QRCodeService renders invite links as QR codes
type QRCodeService interface {
	// GenerateInviteQR renders the invite link as a PNG image
	GenerateInviteQR(inviteURL string) ([]byte, error)
}
