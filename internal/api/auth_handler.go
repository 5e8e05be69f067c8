package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taskflow/taskflow-api/internal/api/shared"
	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/platform/logger"
	"github.com/taskflow/taskflow-api/internal/redact"
	"github.com/taskflow/taskflow-api/internal/service/auth"
	"github.com/taskflow/taskflow-api/internal/store"
)

// AuthHandler handles registration, login, logout, and the
// current-user endpoint.
type AuthHandler struct {
	userStore     store.UserStore
	sessions      auth.SessionService
	hasher        auth.PasswordHasher
	sessionCookie *SessionCookie
	validator     *validator.Validate
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	sessions auth.SessionService,
	hasher auth.PasswordHasher,
	sessionCookie *SessionCookie,
) *AuthHandler {
	return &AuthHandler{
		userStore:     userStore,
		sessions:      sessions,
		hasher:        hasher,
		sessionCookie: sessionCookie,
		validator:     newValidator(),
	}
}

// Register handles POST /api/auth/register. On success the session
// cookie is set alongside the 201 body.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Trim before validation so bounds apply to the meaningful content,
	// matching what gets stored.
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithFieldErrors(w, r, "Validation failed", validationFieldErrors(err))
		return
	}

	user, err := domain.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		shared.RespondWithFieldErrors(w, r, "Validation failed", validationFieldErrors(err))
		return
	}

	// Advisory pre-check for a friendlier conflict response. The unique
	// index remains the authority: two registrations racing past this
	// check still resolve to a single winner at the insert.
	if _, err := h.userStore.GetByEmail(r.Context(), req.Email); err == nil {
		respondWithMappedError(w, r, store.ErrEmailExists, "")
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		respondWithMappedError(w, r, err, "Failed to create account")
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			shared.RespondWithFieldErrors(w, r, "Validation failed", validationFieldErrors(err))
			return
		}
		respondWithMappedError(w, r, err, "Failed to create account")
		return
	}

	token, err := h.sessions.Issue(r.Context(), user.ID, user.Email)
	if err != nil {
		respondWithMappedError(w, r, err, "Failed to create session")
		return
	}
	h.sessionCookie.Attach(w, token)

	log.Info("user registered", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		User:    NewUserResponse(user),
		Message: "Account created successfully",
	})
}

// Login handles POST /api/auth/login. Unknown email and wrong password
// produce byte-identical responses so credentials cannot be enumerated.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithFieldErrors(w, r, "Validation failed", validationFieldErrors(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same mapped outcome as a failed password comparison.
			respondWithMappedError(w, r, auth.ErrInvalidCredentials, "")
			return
		}
		respondWithMappedError(w, r, err, "Failed to authenticate")
		return
	}

	if err := h.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		respondWithMappedError(w, r, err, "")
		return
	}

	token, err := h.sessions.Issue(r.Context(), user.ID, user.Email)
	if err != nil {
		respondWithMappedError(w, r, err, "Failed to create session")
		return
	}
	h.sessionCookie.Attach(w, token)

	log.Info("user logged in", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		User:    NewUserResponse(user),
		Message: "Logged in successfully",
	})
}

// Logout handles POST /api/auth/logout by clearing the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessionCookie.Clear(w)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Logged out successfully",
	})
}

// Me handles GET /api/auth/me. The identity comes from the verified
// session; if the account no longer exists the session is worthless and
// the response is 401.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("session references missing user", "error", redact.Error(err))
			respondWithMappedError(w, r, auth.ErrInvalidSession, "")
			return
		}
		respondWithMappedError(w, r, err, "Failed to load user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}
