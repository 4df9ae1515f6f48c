package usecase

import "context"

// RequestResetInput carries the address that asked for a password reset.
type RequestResetInput struct {
	Email string `json:"email" validate:"required,email"`
	// BaseURL is the externally visible origin used to build the reset link.
	BaseURL string `json:"-"`
}

// ConfirmResetInput carries the signed token together with the new secret.
type ConfirmResetInput struct {
	Token           string `json:"-"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// RecoveryUsecase drives the password-reset lifecycle: issuing a reset
// message for a known address and consuming the token it carried.
type RecoveryUsecase interface {
	// RequestReset mails a time-limited reset link to the given address.
	// An unknown address is reported as success so the endpoint cannot be
	// used to probe which emails are registered.
	RequestReset(ctx context.Context, input *RequestResetInput) error

	// ConfirmReset verifies the token and replaces the account's secret.
	// Any verification failure surfaces the same generic outcome.
	ConfirmReset(ctx context.Context, input *ConfirmResetInput) error
}
