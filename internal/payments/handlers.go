package payments

import (
	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/payments/create-payment
func (h *Handlers) CreatePayment(c *fiber.Ctx) error {
	var body struct {
		PaymentRef    string  `json:"payment_id"`
		CompanyName   string  `json:"company_name"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"payment_method"`
		BankReceipt   string  `json:"bank_receipt"`
		OrderDocument string  `json:"order_pdf"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	payment, err := h.Service.CreatePayment(c.Context(), CreatePaymentInput{
		PaymentRef:    body.PaymentRef,
		CompanyName:   body.CompanyName,
		Amount:        body.Amount,
		PaymentMethod: body.PaymentMethod,
		BankReceipt:   body.BankReceipt,
		OrderDocument: body.OrderDocument,
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Created(c, "Payment created successfully", payment, nil)
}

// GET /api/v1/payments/get-payments
func (h *Handlers) GetPayments(c *fiber.Ctx) error {
	paymentList, err := h.Service.GetPayments(c.Context())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Payments fetched successfully", paymentList, nil)
}

// GET /api/v1/payments/get-payment/:payment_id
func (h *Handlers) GetPaymentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("payment_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid payment_id format"))
	}
	payment, err := h.Service.GetPaymentByID(c.Context(), id)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Payment fetched successfully", payment, nil)
}

// PUT /api/v1/payments/update-payment/:payment_id
func (h *Handlers) UpdatePayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("payment_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid payment_id format"))
	}
	var body struct {
		CompanyName   *string  `json:"company_name"`
		Amount        *float64 `json:"amount"`
		PaymentMethod *string  `json:"payment_method"`
		BankReceipt   *string  `json:"bank_receipt"`
		OrderDocument *string  `json:"order_pdf"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	payment, err := h.Service.UpdatePayment(c.Context(), UpdatePaymentInput{
		ID:            id,
		CompanyName:   body.CompanyName,
		Amount:        body.Amount,
		PaymentMethod: body.PaymentMethod,
		BankReceipt:   body.BankReceipt,
		OrderDocument: body.OrderDocument,
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Payment updated successfully", payment, nil)
}

// DELETE /api/v1/payments/delete-payment/:payment_id
func (h *Handlers) DeletePayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("payment_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid payment_id format"))
	}
	if err := h.Service.DeletePayment(c.Context(), id); err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Payment deleted successfully", nil, nil)
}
