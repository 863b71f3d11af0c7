package dto

// Envelope is the uniform response wrapper every endpoint returns:
// {success, message, data, total?}. Per-entity response types embed it and
// add the server-assigned identifier field for create operations.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Total   *int   `json:"total,omitempty"`
}

// NewEnvelope builds a success envelope around data.
func NewEnvelope[T any](message string, data T) Envelope[T] {
	return Envelope[T]{Success: true, Message: message, Data: data}
}

// FailEnvelope builds a failure envelope; data stays at T's zero value so a
// pointer marshals as null and a slice as its empty form.
func FailEnvelope[T any](message string) Envelope[T] {
	return Envelope[T]{Success: false, Message: message}
}

// WithTotal attaches the total count to the envelope.
func (e Envelope[T]) WithTotal(total int) Envelope[T] {
	e.Total = &total
	return e
}
