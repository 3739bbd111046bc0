package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrNotFound        = fmt.Errorf("not found")
	ErrInvalidState    = fmt.Errorf("invalid state")
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	ErrMessageNotFound      = fmt.Errorf("message %w", ErrNotFound)
	ErrRecipientNotFound    = fmt.Errorf("recipient %w", ErrNotFound)
	ErrSearchStrategyNotSet = fmt.Errorf("%w: search strategy is not set", ErrInvalidState)
	ErrDuplicateMessage     = fmt.Errorf("%w: message already stored", ErrInvalidState)

	ErrUnknownSearchStrategy = fmt.Errorf("unknown search strategy")
	ErrUnknownOfflinePolicy  = fmt.Errorf("unknown offline policy")
)
