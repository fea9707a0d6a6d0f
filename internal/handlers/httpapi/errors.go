package httpapi

// HandlerError is a custom error type for handler wiring errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        HandlerError = "config cannot be nil"
	ErrNilRoundService  HandlerError = "round service cannot be nil"
	ErrNilPlayerRepo    HandlerError = "player repository cannot be nil"
	ErrNilCourseRepo    HandlerError = "course repository cannot be nil"
	ErrNilUserRepo      HandlerError = "user repository cannot be nil"
	ErrNilAuth          HandlerError = "auth manager cannot be nil"
	ErrNilHub           HandlerError = "hub cannot be nil"
	ErrNilClock         HandlerError = "clock cannot be nil"
	ErrNilUUIDGenerator HandlerError = "UUID generator cannot be nil"
)
