package controllers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// AuthController implements the session surface. There is no real
// credential verification: any non-empty username with a long-enough
// password signs in, per the single-user client model.
type AuthController struct {
	logger providers.Logger
	store  services.StoreServiceInterface
}

func NewAuthController(logger providers.Logger, store services.StoreServiceInterface) *AuthController {
	return &AuthController{logger: logger, store: store}
}

type credentialsPayload struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (p *credentialsPayload) validate(signup bool) error {
	if strings.TrimSpace(p.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if len(p.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if signup {
		if strings.TrimSpace(p.Email) == "" {
			return fmt.Errorf("email is required")
		}
		if !emailPattern.MatchString(p.Email) {
			return fmt.Errorf("email is invalid")
		}
		if p.Password != p.ConfirmPassword {
			return fmt.Errorf("passwords do not match")
		}
	}
	return nil
}

func (ac *AuthController) signIn(w http.ResponseWriter, r *http.Request, signup bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := payload.validate(signup); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	email := payload.Email
	if email == "" {
		email = payload.Username + "@example.com"
	}
	user := &models.User{
		ID:         uuid.NewString(),
		Username:   payload.Username,
		Email:      email,
		IsLoggedIn: true,
	}

	ac.store.Dispatch(models.SetUser{User: user})
	ac.logger.Infof(providers.TypePost, "User %s signed in", user.Username)

	writeJSON(w, http.StatusOK, user)
}

func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ac.signIn(w, r, false)
}

func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	ac.signIn(w, r, true)
}

func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ac.store.Dispatch(models.Logout{})
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	user := ac.store.User()
	if user == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}
