package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wishshop/wish-backend/internal/core/ports"
)

// CartHandler handles the authenticated cart endpoints. All routes sit
// behind the Auth middleware; the user identity comes from the context.
type CartHandler struct {
	cartService ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddToCart increments the quantity at the submitted slot by one.
//
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        auth-token  header    string           true  "Signed identity token"
// @Param        body        body      cartItemRequest  true  "Item slot index"
// @Success      200         {object}  cartAckResponse
// @Failure      400         {object}  failureResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /addtocart [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: err.Error()})
	}

	if err := h.cartService.AddItem(c.Request().Context(), userID, req.ItemID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartAckResponse{Success: true, Message: "Added"})
}

// RemoveFromCart decrements the quantity at the submitted slot by one,
// never below zero.
//
// @Summary      Remove an item from the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        auth-token  header    string           true  "Signed identity token"
// @Param        body        body      cartItemRequest  true  "Item slot index"
// @Success      200         {object}  cartAckResponse
// @Failure      400         {object}  failureResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /removefromcart [post]
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: err.Error()})
	}

	if err := h.cartService.RemoveItem(c.Request().Context(), userID, req.ItemID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartAckResponse{Success: true, Message: "Removed"})
}

// GetCart returns the stored cart mapping verbatim: a JSON object keyed by
// string slot indices.
//
// @Summary      Get the cart
// @Tags         cart
// @Produce      json
// @Param        auth-token  header    string  true  "Signed identity token"
// @Success      200         {object}  map[string]int
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /getcart [post]
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartService.GetCart(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cart)
}

// ClearCart zeroes every slot in the cart.
//
// @Summary      Clear the cart
// @Tags         cart
// @Produce      json
// @Param        auth-token  header    string  true  "Signed identity token"
// @Success      200         {object}  cartAckResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /clearcart [post]
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.cartService.ClearCart(c.Request().Context(), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartAckResponse{Success: true, Message: "Cart cleared"})
}
