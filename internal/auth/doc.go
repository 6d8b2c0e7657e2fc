// Package auth verifies the admin credential against the local database.
// Login failures are deliberately indistinguishable: an unknown username
// and a wrong password both surface as ErrInvalidCredentials.
package auth
