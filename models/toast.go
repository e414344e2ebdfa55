package models

import "time"

// ToastLevel classifies a transient wizard notification.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastWarning ToastLevel = "warning"
	ToastError   ToastLevel = "error"
)

// ToastTTL is how long a toast stays visible before auto-dismissing.
const ToastTTL = 4 * time.Second

// Toast is a transient, auto-dismissing notification banner. Validation
// failures surface as toasts; they never abort the wizard.
type Toast struct {
	Message string     `json:"message"`
	Level   ToastLevel `json:"level"`
}
