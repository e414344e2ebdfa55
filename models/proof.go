package models

import "strings"

// PaymentProof is the customer-supplied payment screenshot, either selected
// in the wizard or recovered by the gateway from an incoming request.
type PaymentProof struct {
	Name string
	MIME string
	Data []byte
}

// Size returns the proof size in bytes.
func (p *PaymentProof) Size() int64 {
	return int64(len(p.Data))
}

// IsImage reports whether the proof claims an image MIME type.
func (p *PaymentProof) IsImage() bool {
	return strings.HasPrefix(p.MIME, "image/")
}
