package auth

import "errors"

// ErrInvalidCredentials is returned for every authentication failure,
// whether the username is unknown or the password is wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")
