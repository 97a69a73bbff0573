package qrcode

import (
	"net/url"
	"strings"

	"transitflow/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const routePath = "/route"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
// baseURL is the public address of the route endpoint's host, e.g. https://transit.example.com
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateStationQR encodes a route link whose destination is the station
// and whose origin is resolved from the scanner's position
func (s *qrcodeService) GenerateStationQR(stationName string) ([]byte, error) {
	if strings.TrimSpace(stationName) == "" {
		return nil, errors.New("station name is required")
	}

	query := url.Values{}
	query.Set("from", "auto")
	query.Set("to", stationName)
	link := s.baseURL + routePath + "?" + query.Encode()

	// Generate QR code
	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseStationQR extracts the destination station from a scanned route link
func (s *qrcodeService) ParseStationQR(qrData string) (string, error) {
	link, err := url.Parse(qrData)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code data")
	}

	if !strings.HasSuffix(link.Path, routePath) {
		return "", errors.Errorf("invalid QR code path: %s", link.Path)
	}

	station := link.Query().Get("to")
	if station == "" {
		return "", errors.New("QR code has no destination station")
	}

	return station, nil
}
