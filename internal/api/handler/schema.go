package handler

// errorResponse is the envelope used by the centralized error handler and the
// auth gate: {"errors": "<message>"}.
type errorResponse struct {
	Errors string `json:"errors"`
}

// failureResponse is the envelope for business failures surfaced by handlers:
// {"success": false, "errors": "<message>"}.
type failureResponse struct {
	Success bool   `json:"success"`
	Errors  string `json:"errors"`
}

// --- Auth ---

// signupRequest matches the storefront contract: the display name is
// submitted under the "username" key.
type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Token   string `json:"token"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// --- Cart ---

// cartItemRequest references a catalog item by its slot index. Any
// non-negative index is accepted; the cart mapping is sparse.
type cartItemRequest struct {
	ItemID int `json:"itemId" validate:"gte=0"`
}

type cartAckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Catalog ---

type addProductRequest struct {
	Name     string  `json:"name"      validate:"required"`
	Image    string  `json:"image"     validate:"required"`
	Category string  `json:"category"  validate:"required"`
	NewPrice float64 `json:"new_price" validate:"required,gt=0"`
	OldPrice float64 `json:"old_price" validate:"required,gt=0"`
}

type removeProductRequest struct {
	ID int64 `json:"id" validate:"required"`
}

type productAckResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}
