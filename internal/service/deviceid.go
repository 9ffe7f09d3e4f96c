package service

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidDeviceID indicates the scanned code is neither a MAC nor a UUID
	ErrInvalidDeviceID = errors.New("invalid device identifier")
)

// NormalizeDeviceID validates a toy identifier from a QR code and returns its
// canonical form. Toys report a 6-byte MAC address, written upper case with
// colons; newer units use a UUID, written lower case.
func NormalizeDeviceID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDeviceID)
	}

	if hw, err := net.ParseMAC(id); err == nil {
		if len(hw) != 6 {
			return "", fmt.Errorf("%w: MAC address must be 6 bytes, got %d", ErrInvalidDeviceID, len(hw))
		}
		return strings.ToUpper(hw.String()), nil
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDeviceID, id)
	}
	return parsed.String(), nil
}
