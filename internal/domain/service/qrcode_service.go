package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateStationQR generates a PNG QR code linking to routes ending at the station
	GenerateStationQR(stationName string) ([]byte, error)

	// ParseStationQR parses QR code data and returns the station name
	ParseStationQR(qrData string) (string, error)
}
