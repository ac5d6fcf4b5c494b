package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wishshop/wish-backend/internal/core/domain"
	"github.com/wishshop/wish-backend/internal/core/ports"
)

// CatalogHandler handles product catalog endpoints.
type CatalogHandler struct {
	catalogService ports.CatalogService
}

func NewCatalogHandler(catalogService ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// AddProduct creates a catalog product with the next sequential id.
//
// @Summary      Add a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      addProductRequest  true  "Product details"
// @Success      200   {object}  productAckResponse
// @Failure      400   {object}  failureResponse
// @Failure      500   {object}  errorResponse
// @Router       /addproduct [post]
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: err.Error()})
	}

	product, err := h.catalogService.AddProduct(c.Request().Context(), ports.AddProductInput{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		NewPrice: req.NewPrice,
		OldPrice: req.OldPrice,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productAckResponse{Success: true, Name: product.Name})
}

// RemoveProduct deletes a product by id.
//
// @Summary      Remove a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      removeProductRequest  true  "Product id"
// @Success      200   {object}  productAckResponse
// @Failure      400   {object}  failureResponse
// @Failure      404   {object}  errorResponse
// @Router       /removeproduct [post]
func (h *CatalogHandler) RemoveProduct(c echo.Context) error {
	var req removeProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: err.Error()})
	}

	removed, err := h.catalogService.RemoveProduct(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productAckResponse{Success: true, Name: removed.Name})
}

// AllProducts returns the full catalog.
//
// @Summary      List all products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /allproducts [get]
func (h *CatalogHandler) AllProducts(c echo.Context) error {
	products, err := h.catalogService.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// NewCollection returns the newest catalog additions.
//
// @Summary      List the new collection
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /newcollection [get]
func (h *CatalogHandler) NewCollection(c echo.Context) error {
	products, err := h.catalogService.NewCollection(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// PopularInWomen returns the curated women's listing.
//
// @Summary      List popular products in the women category
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /popularinwomen [get]
func (h *CatalogHandler) PopularInWomen(c echo.Context) error {
	products, err := h.catalogService.PopularInCategory(c.Request().Context(), domain.CategoryWomen)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
