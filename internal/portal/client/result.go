package client

// Kind tells the three outcomes of a backend call apart.
type Kind int

const (
	// Success means the backend answered with success=true.
	Success Kind = iota
	// Failure means the backend answered with success=false and a message meant for the user.
	Failure
	// Transport means no usable envelope arrived: network error, timeout or unparsable body.
	Transport
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "transport"
	}
}

// Result is the outcome of one backend call. Data is only meaningful on Success, Message carries the
// server message (on success for mutations, on failure always) and Err the cause of a Transport result.
type Result[T any] struct {
	Kind    Kind
	Data    T
	Message string
	Err     error
}

// OK reports a Success result.
func (r Result[T]) OK() bool {
	return r.Kind == Success
}

func succeeded[T any](data T, message string) Result[T] {
	return Result[T]{Kind: Success, Data: data, Message: message}
}

func failed[T any](message string) Result[T] {
	return Result[T]{Kind: Failure, Message: message}
}

func broken[T any](err error) Result[T] {
	return Result[T]{Kind: Transport, Err: err}
}
