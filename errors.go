package hjembank

import "errors"

// Domain errors surfaced to the view layer. Validation failures on the
// payment path abort the operation before any state change; persistence
// failures are logged and never surfaced here.
var (
	// ErrInvalidAmount rejects malformed, zero, or negative amounts.
	ErrInvalidAmount = errors.New("beløpet må være et gyldig tall større enn null")

	// ErrUnknownAccount reports a lookup miss for an id that must resolve.
	ErrUnknownAccount = errors.New("ukjent konto")

	// ErrInsufficientFunds reports a source balance lower than the amount.
	ErrInsufficientFunds = errors.New("ikke nok dekning på konto")

	// ErrSameAccount rejects a transfer where source and destination are the same.
	ErrSameAccount = errors.New("fra- og til-konto er den samme")

	// ErrNoDraft reports a payment submission without a started payment flow.
	ErrNoDraft = errors.New("ingen betaling er påbegynt")
)
