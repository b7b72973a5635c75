package service

import "errors"

// ErrInvalidCredentials covers both an unknown email and a wrong password so
// login failures are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")
