package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/artifexgroup/artifex-site-backend/errs"
	"github.com/artifexgroup/artifex-site-backend/models"
)

// tokenTTL is how long an issued session token stays valid.
const tokenTTL = 24 * time.Hour

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  UserStore
	jwtSecret []byte
}

func newAuthHandler(userRepo UserStore, jwtSecret string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// LoginRequest carries credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string           `json:"token"`
	User  models.AuthorRef `json:"user"`
}

// login validates credentials against the user table and issues a signed
// session token carrying the user's real row ID and role.
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Session token and user"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing credentials"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid credentials"
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		user, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		// The failure response never distinguishes an unknown email from a
		// wrong password.
		if user == nil || user.Password == nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		now := time.Now()
		claims := jwt.MapClaims{
			"sub":   user.ID.String(),
			"email": user.Email,
			"role":  user.Role,
			"iat":   now.Unix(),
			"exp":   now.Add(tokenTTL).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign token", err))
			return
		}

		h.responder.WriteJSON(w, LoginResponse{
			Token: token,
			User:  user.Ref(),
		})
	}
}
