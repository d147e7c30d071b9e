package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fashionstore/internal/cart"
	"fashionstore/internal/domain"
	"fashionstore/internal/service/catalog"
)

type cartItemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type cartResponse struct {
	Items    []cartItemResponse `json:"items"`
	Count    int                `json:"count"`
	Subtotal float64            `json:"subtotal"`
}

func sessionCart(c *gin.Context) *cart.Store {
	return c.MustGet(cartStoreCtxKey).(*cart.Store)
}

func toCartResponse(lines []cart.Line) cartResponse {
	resp := cartResponse{Items: make([]cartItemResponse, 0, len(lines))}
	var subtotal int64
	for _, l := range lines {
		resp.Items = append(resp.Items, cartItemResponse{
			ID:       l.ProductID,
			Name:     l.Name,
			ImageURL: l.ImageURL,
			Price:    centsToDollars(l.UnitPriceCents),
			Size:     l.Size,
			Color:    l.Color,
			Quantity: l.Quantity,
			Total:    centsToDollars(l.TotalCents()),
		})
		resp.Count += l.Quantity
		subtotal += l.TotalCents()
	}
	resp.Subtotal = centsToDollars(subtotal)
	return resp
}

func getCartHandler(c *gin.Context) {
	c.JSON(http.StatusOK, toCartResponse(sessionCart(c).Lines()))
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	// A pointer so an omitted quantity defaults to 1 while an explicit
	// zero reaches the store and is rejected there.
	Quantity *int `json:"quantity"`
}

func addCartItemHandler(products *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid request body")
			return
		}
		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		p, err := products.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				errorJSON(c, http.StatusNotFound, "product not found")
				return
			}
			errorJSON(c, http.StatusInternalServerError, "failed to load product")
			return
		}
		store := sessionCart(c)
		err = store.AddItem(c.Request.Context(), cart.Product{
			ID:         p.ID,
			Name:       p.Name,
			ImageURL:   p.ImageURL,
			PriceCents: p.PriceCents,
			Size:       p.Size,
			Color:      p.Color,
		}, quantity)
		if err != nil {
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, toCartResponse(store.Lines()))
	}
}

func cartProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || id <= 0 {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return 0, false
	}
	return id, true
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(c *gin.Context) {
	id, ok := cartProductID(c)
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	store := sessionCart(c)
	store.UpdateQuantity(c.Request.Context(), id, req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(store.Lines()))
}

func removeCartItemHandler(c *gin.Context) {
	id, ok := cartProductID(c)
	if !ok {
		return
	}
	store := sessionCart(c)
	store.RemoveItem(c.Request.Context(), id)
	c.JSON(http.StatusOK, toCartResponse(store.Lines()))
}

func clearCartHandler(c *gin.Context) {
	store := sessionCart(c)
	store.Clear(c.Request.Context())
	c.JSON(http.StatusOK, toCartResponse(store.Lines()))
}
