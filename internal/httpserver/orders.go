package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fashionstore/internal/domain"
	"fashionstore/internal/service/order"
)

type orderItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

type createOrderRequest struct {
	UserID          int64              `json:"user_id"`
	Total           float64            `json:"total"`
	ShippingAddress string             `json:"shipping_address" binding:"required"`
	PaymentMethod   string             `json:"payment_method"`
	Items           []orderItemRequest `json:"items" binding:"required"`
}

func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid request body")
			return
		}
		items := make([]order.ItemInput, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, order.ItemInput{
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				PriceCents: dollarsToCents(item.Price),
			})
		}
		created, err := svc.Create(c.Request.Context(), order.CreateInput{
			UserID:          req.UserID,
			TotalCents:      dollarsToCents(req.Total),
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			Items:           items,
		})
		if err != nil {
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		// The storefront starts fresh after checkout.
		sessionCart(c).Clear(c.Request.Context())
		c.JSON(http.StatusCreated, gin.H{"message": "Order created", "order_id": created.ID})
	}
}

type orderItemResponse struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"user_id"`
	Total           float64             `json:"total"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	CreatedAt       time.Time           `json:"created_at"`
	Items           []orderItemResponse `json:"items"`
}

func toOrderResponse(o domain.Order) orderResponse {
	resp := orderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Total:           centsToDollars(o.TotalCents),
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
		Items:           make([]orderItemResponse, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     centsToDollars(item.PriceCents),
		})
	}
	return resp
}

func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, "failed to list orders")
			return
		}
		out := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, out)
	}
}
