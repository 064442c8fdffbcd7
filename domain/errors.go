package domain

import "errors"

// ErrInvalidInput marks validation failures. The HTTP layer surfaces the
// wrapped message as a 400 so the form can display it; it is never an
// uncaught fault mid-computation.
var ErrInvalidInput = errors.New("invalid input")
