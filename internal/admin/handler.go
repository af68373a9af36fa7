package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/devarsh/admin-user-portal/internal/models"
	"github.com/devarsh/admin-user-portal/internal/store"
	"github.com/devarsh/admin-user-portal/internal/validate"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// UserStore defines the interface for user persistence.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
}

// Handler holds the admin user-management HTTP handlers.
type Handler struct {
	users UserStore
}

func NewHandler(users UserStore) *Handler {
	return &Handler{users: users}
}

// List returns every user. Password hashes are never serialized.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		log.Printf("list users error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// Get returns a single user, so the edit form can prefill without any
// secret material ever passing through a URL.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("get user %d error: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Update applies a partial update. Only fields present and non-empty in
// the body are changed; an empty string leaves the column untouched.
// A supplied password is policy-checked and bcrypt-hashed before it is
// written.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" && req.Email == "" && req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "No fields to update")
		return
	}
	if req.Email != "" && !validate.Email(req.Email) {
		writeMessage(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	upd := models.UserUpdate{Name: req.Name, Email: req.Email}
	if req.Password != "" {
		if msg := validate.NewPassword(req.Password); msg != "" {
			writeMessage(w, http.StatusBadRequest, msg)
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "Internal error")
			return
		}
		upd.Password = string(hashed)
	}

	if err := h.users.UpdateUser(r.Context(), id, upd); err != nil {
		switch {
		case errors.Is(err, store.ErrNoFields):
			writeMessage(w, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, store.ErrDuplicateEmail):
			writeMessage(w, http.StatusConflict, "Email already registered")
		default:
			log.Printf("update user %d error: %v", id, err)
			writeMessage(w, http.StatusInternalServerError, "Database error")
		}
		return
	}
	writeMessage(w, http.StatusOK, "User updated")
}

// Delete removes a user. Deleting an id that no longer exists reports
// success all the same; callers only care that the row is gone.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		log.Printf("delete user %d error: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeMessage(w, http.StatusOK, "User deleted")
}

func userID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
