package app

import (
	"crypto/subtle"
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
	"golang.org/x/crypto/bcrypt"
)

// credentials is the single account the login endpoint accepts. Only a hash
// of the password is kept in memory.
type credentials struct {
	username     string
	passwordHash []byte
}

func newCredentials(cfg AuthConfig) (credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return credentials{}, err
	}

	return credentials{username: cfg.Username, passwordHash: hash}, nil
}

func (c credentials) matches(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1

	// the hash is compared even on a username mismatch to keep timing uniform
	passwordErr := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password))

	return usernameMatch && passwordErr == nil
}

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.errorResponse(w, r, http.StatusBadRequest, ErrMissingCredentials)
		return
	}

	if !app.credentials.matches(input.Username, input.Password) {
		logger.Warn("login failed due to invalid credentials")
		app.invalidCredentialsResponse(w, r)
		return
	}

	// To help prevent session fixation attacks we should renew the session token after any privilege level change.
	// https://github.com/OWASP/CheatSheetSeries/blob/master/cheatsheets/Session_Management_Cheat_Sheet.md#renew-the-session-id-after-any-privilege-level-change
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyUsername.String(), input.Username)

	logger.Info("login succeeded")

	resp := api.LoginResponse{Message: "Login successful"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
