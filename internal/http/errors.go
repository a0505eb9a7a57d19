package http

import (
	"net/http"

	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/httpx"
)

// APIError is the wire shape for every non-2xx response.
type APIError struct {
	Status      int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func (e APIError) write(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.Status, e)
}

// withDescription returns a copy of the error with a request-specific
// description, keeping the catalog values immutable.
func (e APIError) withDescription(desc string) APIError {
	e.Description = desc
	return e
}

var (
	errInvalidRequest = APIError{
		Status: http.StatusBadRequest,
		Code:   "invalid_request",
	}
	errWeakPassword = APIError{
		Status: http.StatusBadRequest,
		Code:   "weak_password",
	}
	errInvalidCredentials = APIError{
		Status:      http.StatusUnauthorized,
		Code:        "invalid_credentials",
		Description: "incorrect email or password",
	}
	errInactiveAccount = APIError{
		Status:      http.StatusUnauthorized,
		Code:        "inactive_account",
		Description: "account is inactive",
	}
	errInvalidToken = APIError{
		Status:      http.StatusUnauthorized,
		Code:        "invalid_token",
		Description: "missing, invalid or expired token",
	}
	errInsufficientRole = APIError{
		Status:      http.StatusForbidden,
		Code:        "insufficient_role",
		Description: "role not permitted for this operation",
	}
	errNotFound = APIError{
		Status: http.StatusNotFound,
		Code:   "not_found",
	}
	errConflict = APIError{
		Status: http.StatusConflict,
		Code:   "conflict",
	}
	errServer = APIError{
		Status:      http.StatusInternalServerError,
		Code:        "server_error",
		Description: "something went wrong",
	}
)
