package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muniras-delights/bakery-app/models"
)

// WizardStep identifies one screen of the five-step order flow.
type WizardStep int

const (
	StepItems WizardStep = iota + 1
	StepCustomerInfo
	StepPaymentInstructions
	StepProofUpload
	StepConfirmation
)

// maxSelectedProofBytes caps the screenshot at selection time. The gateway
// applies its own, larger cap on arrival.
const maxSelectedProofBytes = 5 << 20

// inAppBrowserMarker is the user-agent fragment of Telegram's embedded
// browser, where the proof upload is optional.
const inAppBrowserMarker = "Telegram"

// phonePattern is the loose check applied in step two: at least ten
// characters of digits and common phone punctuation.
var phonePattern = regexp.MustCompile(`^[0-9()+\-\s]{10,}$`)

// WizardSession accumulates one order across the wizard steps. It lives in
// the caller's hands only; nothing outlives Close.
type WizardSession struct {
	ID        string
	Step      WizardStep
	UserAgent string
	Cart      models.Cart
	Customer  models.CustomerInfo
	Proof     *models.PaymentProof

	toasts []models.Toast
}

func (s *WizardSession) pushToast(message string, level models.ToastLevel) {
	s.toasts = append(s.toasts, models.Toast{Message: message, Level: level})
}

// ConsumeToasts returns pending toasts and clears them. Each toast
// auto-dismisses after models.ToastTTL on screen.
func (s *WizardSession) ConsumeToasts() []models.Toast {
	toasts := s.toasts
	s.toasts = nil
	return toasts
}

// WizardService validates and advances wizard sessions. It holds no session
// state itself, matching the one-request-one-flow model of the storefront.
type WizardService struct {
	catalog *CatalogService
	now     func() time.Time
}

func NewWizardService(catalog *CatalogService) *WizardService {
	return &WizardService{catalog: catalog, now: time.Now}
}

// NewSession starts a wizard at the item-selection step. Initial cart lines
// with non-positive quantities are dropped.
func (ws *WizardService) NewSession(userAgent string, initial []models.CartLine) *WizardSession {
	s := &WizardSession{
		ID:        uuid.NewString(),
		Step:      StepItems,
		UserAgent: userAgent,
	}
	for _, line := range initial {
		if line.Qty > 0 {
			s.Cart.Lines = append(s.Cart.Lines, line)
		}
	}
	return s
}

// Total prices the session's cart against the catalog.
func (ws *WizardService) Total(s *WizardSession) float64 {
	return s.Cart.Total(ws.catalog)
}

// SelectProof validates and stores a screenshot chosen in step four.
// Rejections surface as error toasts and leave any earlier selection intact.
func (ws *WizardService) SelectProof(s *WizardSession, proof *models.PaymentProof) bool {
	if !proof.IsImage() {
		s.pushToast("Please select an image file (JPEG, PNG, etc.)", models.ToastError)
		return false
	}
	if proof.Size() > maxSelectedProofBytes {
		s.pushToast("File size must be less than 5MB", models.ToastError)
		return false
	}
	s.Proof = proof
	s.pushToast("File selected successfully!", models.ToastSuccess)
	return true
}

// RemoveProof discards the selected screenshot.
func (ws *WizardService) RemoveProof(s *WizardSession) {
	s.Proof = nil
}

// proofOptional reports whether step four may be submitted without a
// screenshot. Telegram's in-app browser cannot reliably open the gallery,
// so the upload is optional there.
func (ws *WizardService) proofOptional(s *WizardSession) bool {
	return strings.Contains(s.UserAgent, inAppBrowserMarker)
}

// ValidateStep runs the gate for the given step, emitting a warning toast on
// the first violation. It never errors; a failed gate just keeps the wizard
// where it is.
func (ws *WizardService) ValidateStep(s *WizardSession, step WizardStep) bool {
	switch step {
	case StepItems:
		if s.Cart.IsEmpty() {
			s.pushToast("Please select at least one item", models.ToastWarning)
			return false
		}
	case StepCustomerInfo:
		if strings.TrimSpace(s.Customer.Name) == "" {
			s.pushToast("Please enter your name", models.ToastWarning)
			return false
		}
		if strings.TrimSpace(s.Customer.Phone) == "" {
			s.pushToast("Please enter your phone number", models.ToastWarning)
			return false
		}
		if !phonePattern.MatchString(strings.TrimSpace(s.Customer.Phone)) {
			s.pushToast("Please enter a valid phone number", models.ToastWarning)
			return false
		}
		if s.Customer.DeliveryDate == "" {
			s.pushToast("Please select a delivery date", models.ToastWarning)
			return false
		}
		date, err := time.Parse("2006-01-02", s.Customer.DeliveryDate)
		if err != nil {
			s.pushToast("Please select a valid delivery date", models.ToastWarning)
			return false
		}
		// compare calendar days in the server's local zone; Truncate would
		// cut at UTC epoch boundaries and shift "today" near midnight
		y, m, d := ws.now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if date.Before(today) {
			s.pushToast("Delivery date cannot be in the past", models.ToastWarning)
			return false
		}
	case StepProofUpload:
		if s.Proof == nil && !ws.proofOptional(s) {
			s.pushToast("Please upload payment screenshot", models.ToastWarning)
			return false
		}
	}
	return true
}

// Advance moves forward one step when the current gate passes. Step four
// advances through Submit, and the confirmation step is terminal.
func (ws *WizardService) Advance(s *WizardSession) bool {
	if s.Step >= StepProofUpload {
		return false
	}
	if !ws.ValidateStep(s, s.Step) {
		return false
	}
	s.Step++
	return true
}

// Back returns to the immediately preceding step. Allowed from steps two
// through four only.
func (ws *WizardService) Back(s *WizardSession) bool {
	if s.Step <= StepItems || s.Step >= StepConfirmation {
		return false
	}
	s.Step--
	return true
}

// Close discards all wizard state.
func (ws *WizardService) Close(s *WizardSession) {
	*s = WizardSession{}
}

// BuildPayload assembles the transient order payload sent to the gateway.
func (ws *WizardService) BuildPayload(s *WizardSession) models.OrderPayload {
	return models.OrderPayload{
		Items:         s.Cart.Items(),
		Customer:      s.Customer,
		PaymentMethod: models.PaymentMethodBankTransfer,
		Total:         ws.Total(s),
		Timestamp:     ws.now().Format(time.RFC3339),
	}
}

// Submit runs the step-four gate, posts the order exactly once, and moves to
// the confirmation step regardless of what the gateway answered. A failed
// submission only surfaces as a warning toast; the visitor still sees the
// order complete.
func (ws *WizardService) Submit(s *WizardSession, client *SubmissionClient) bool {
	if !ws.ValidateStep(s, StepProofUpload) {
		return false
	}

	payload := ws.BuildPayload(s)
	outcome := client.Submit(payload, s.Proof, s.UserAgent)
	if outcome.OK {
		s.pushToast("Order submitted successfully! Munira will contact you soon.", models.ToastSuccess)
	} else {
		s.pushToast("Order submitted. "+outcome.Err, models.ToastWarning)
	}

	s.Step = StepConfirmation
	return true
}
