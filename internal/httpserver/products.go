package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fashionstore/internal/domain"
	"fashionstore/internal/service/catalog"
)

type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       centsToDollars(p.PriceCents),
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Stock:       p.Stock,
		Size:        p.Size,
		Color:       p.Color,
	}
}

func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, "failed to list products")
			return
		}
		out := make([]productResponse, 0, len(products))
		for _, p := range products {
			out = append(out, toProductResponse(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

func productID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return 0, false
	}
	return id, true
}

func getProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c, "id")
		if !ok {
			return
		}
		p, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				errorJSON(c, http.StatusNotFound, "product not found")
				return
			}
			errorJSON(c, http.StatusInternalServerError, "failed to load product")
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*p))
	}
}

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
}

func createProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid request body")
			return
		}
		created, err := svc.Create(c.Request.Context(), catalog.CreateInput{
			Name:        req.Name,
			Description: req.Description,
			PriceCents:  dollarsToCents(req.Price),
			ImageURL:    req.ImageURL,
			Category:    req.Category,
			Stock:       req.Stock,
			Size:        req.Size,
			Color:       req.Color,
		})
		if err != nil {
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product created", "id": created.ID})
	}
}

type updateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

func updateProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c, "id")
		if !ok {
			return
		}
		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid request body")
			return
		}
		in := catalog.UpdateInput{Name: req.Name, Stock: req.Stock}
		if req.Price != nil {
			cents := dollarsToCents(*req.Price)
			in.PriceCents = &cents
		}
		if _, err := svc.Update(c.Request.Context(), id, in); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				errorJSON(c, http.StatusNotFound, "product not found")
				return
			}
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}
