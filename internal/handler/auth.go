package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/searchproxy/internal/domain"
	"github.com/msomdec/searchproxy/internal/service"
)

// AuthHandler handles registration and token issuance.
type AuthHandler struct {
	auth   *service.AuthService
	tokens *service.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

// HandleRegister processes a JSON registration request.
// POST /register
// Request:  {"username":"...","password":"...","email":"...","full_name":"..."}
// Response: 201 {"message":"User created successfully"}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}
	if err := readJSON(r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	_, err := h.auth.Register(r.Context(), req.Username, req.Password, req.Email, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			writeDetail(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			writeDetail(w, http.StatusUnprocessableEntity, "Username and password are required")
		case errors.Is(err, domain.ErrStoreUnavailable):
			slog.Error("register store failure", "error", err)
			writeDetail(w, http.StatusServiceUnavailable, "Storage unavailable")
		default:
			slog.Error("register user", "error", err)
			writeDetail(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

// HandleToken exchanges a username/password form for a bearer token.
// POST /token
// Request:  form fields username, password
// Response: 200 {"access_token":"...","token_type":"bearer"}
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			slog.Error("token store failure", "error", err)
			writeDetail(w, http.StatusServiceUnavailable, "Storage unavailable")
			return
		}
		rejectBearer(w, "Incorrect username or password")
		return
	}

	token, err := h.tokens.Issue(username)
	if err != nil {
		slog.Error("issue token", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, TokenDTO{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// HandleMe returns the authenticated user resolved by the guard in
// front of this handler. The password hash is not part of the DTO.
// GET /me
func HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		rejectBearer(w, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}
