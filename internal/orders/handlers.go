package orders

import (
	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/orders/create-order
func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	var body struct {
		BuyerID         string  `json:"buyer_id"`
		FarmerID        string  `json:"farmer_id"`
		CropID          string  `json:"crop_id"`
		PricePerKg      float64 `json:"price_per_kg"`
		Quantity        float64 `json:"quantity"`
		Unit            string  `json:"unit"`
		PaymentMethod   string  `json:"payment_method"`
		DeliveryAddress string  `json:"delivery_address"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	buyerID, err := uuid.Parse(body.BuyerID)
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid buyer_id format"))
	}
	farmerID, err := uuid.Parse(body.FarmerID)
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid farmer_id format"))
	}
	cropID, err := uuid.Parse(body.CropID)
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid crop_id format"))
	}
	order, err := h.Service.CreateOrder(c.Context(), CreateOrderInput{
		BuyerID:         buyerID,
		FarmerID:        farmerID,
		CropID:          cropID,
		PricePerKg:      body.PricePerKg,
		Quantity:        body.Quantity,
		Unit:            body.Unit,
		PaymentMethod:   body.PaymentMethod,
		DeliveryAddress: body.DeliveryAddress,
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Created(c, "Order confirmed successfully", order, nil)
}

// GET /api/v1/orders/get-all-orders
func (h *Handlers) GetAllOrders(c *fiber.Ctx) error {
	orderList, err := h.Service.GetAllOrders(c.Context())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Orders fetched successfully", orderList, nil)
}

// GET /api/v1/orders/get-order/:order_id
func (h *Handlers) GetOrderByID(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("order_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid order_id format"))
	}
	order, err := h.Service.GetOrderByID(c.Context(), orderID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Order fetched successfully", order, nil)
}

// GET /api/v1/orders/buyer-orders/:buyer_id
func (h *Handlers) GetBuyerOrders(c *fiber.Ctx) error {
	buyerID, err := uuid.Parse(c.Params("buyer_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid buyer_id format"))
	}
	orderList, err := h.Service.GetBuyerOrders(c.Context(), buyerID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Buyer orders fetched successfully", orderList, nil)
}

// GET /api/v1/orders/farmer-orders/:farmer_id
func (h *Handlers) GetFarmerOrders(c *fiber.Ctx) error {
	farmerID, err := uuid.Parse(c.Params("farmer_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid farmer_id format"))
	}
	orderList, err := h.Service.GetFarmerOrders(c.Context(), farmerID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Farmer orders fetched successfully", orderList, nil)
}

// PUT /api/v1/orders/update-order/:order_id
func (h *Handlers) UpdateOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("order_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid order_id format"))
	}
	var body struct {
		PricePerKg      *float64 `json:"price_per_kg"`
		Quantity        *float64 `json:"quantity"`
		DeliveryAddress *string  `json:"delivery_address"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	order, err := h.Service.UpdateOrder(c.Context(), UpdateOrderInput{
		OrderID:         orderID,
		PricePerKg:      body.PricePerKg,
		Quantity:        body.Quantity,
		DeliveryAddress: body.DeliveryAddress,
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Order updated successfully", order, nil)
}

// DELETE /api/v1/orders/delete-order/:order_id
func (h *Handlers) DeleteOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("order_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid order_id format"))
	}
	if err := h.Service.DeleteOrder(c.Context(), orderID); err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Order deleted successfully", nil, nil)
}
