package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/dinoxe/internal/middleware"
	"github.com/example/dinoxe/internal/models"
	"github.com/example/dinoxe/internal/services"
	"github.com/example/dinoxe/internal/utils"
)

// OrderHandler manages checkout, the cooldown probe and public order
// tracking.
type OrderHandler struct {
	db       *gorm.DB
	gate     *services.AdmissionGate
	telegram *services.TelegramService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, gate *services.AdmissionGate, telegram *services.TelegramService) *OrderHandler {
	return &OrderHandler{db: db, gate: gate, telegram: telegram}
}

type orderItemRequest struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
}

type createOrderRequest struct {
	FullName             string             `json:"full_name"`
	PhoneNumber          string             `json:"phone_number"`
	Email                string             `json:"email"`
	DeliveryAddress      string             `json:"delivery_address"`
	AlternatePhone       string             `json:"alternate_phone"`
	DeliveryInstructions string             `json:"delivery_instructions"`
	Items                []orderItemRequest `json:"items"`
}

func validationError(c *fiber.Ctx, field, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"field":   field,
		"error":   message,
	})
}

func rateLimited(c *fiber.Ctx, e *services.RateLimitedError) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"success":     false,
		"error":       e.Error(),
		"retry_after": e.RetryAfter,
	})
}

// CreateOrder validates the checkout form, runs the admission gate and
// persists the order with its items.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !utils.ValidName(req.FullName) {
		return validationError(c, "full_name", "name must be 3-100 letters")
	}
	if !utils.ValidPhone(req.PhoneNumber) {
		return validationError(c, "phone_number", "enter a valid 10-digit mobile number")
	}
	if req.Email != "" && !utils.ValidEmail(req.Email) {
		return validationError(c, "email", "enter a valid email address")
	}
	if !utils.ValidAddress(req.DeliveryAddress) {
		return validationError(c, "delivery_address", "address must be at least 20 characters and include a 6-digit pincode")
	}
	if req.AlternatePhone != "" && !utils.ValidPhone(req.AlternatePhone) {
		return validationError(c, "alternate_phone", "enter a valid 10-digit mobile number")
	}
	if len(req.Items) == 0 {
		return validationError(c, "items", "cart is empty")
	}

	order := models.Order{
		CustomerName:         req.FullName,
		CustomerPhone:        req.PhoneNumber,
		CustomerEmail:        req.Email,
		DeliveryAddress:      req.DeliveryAddress,
		AlternatePhone:       req.AlternatePhone,
		DeliveryInstructions: req.DeliveryInstructions,
		PaymentMethod:        "COD",
		PaymentStatus:        "Pending",
		OrderStatus:          models.StatusPending,
	}

	var total float64
	for _, p := range req.Items {
		if p.Quantity < 1 || p.Quantity > 5 {
			return validationError(c, "items", "quantity must be between 1 and 5")
		}
		if p.ProductPrice <= 0 {
			return validationError(c, "items", "invalid product price")
		}

		item := models.OrderItem{
			ProductName:  p.ProductName,
			ProductPrice: p.ProductPrice,
			Quantity:     p.Quantity,
			Subtotal:     p.ProductPrice * float64(p.Quantity),
		}
		if p.ProductID != "" {
			if id, err := uuid.Parse(p.ProductID); err == nil {
				item.ProductID = &id
			}
		}

		total += item.Subtotal
		order.Items = append(order.Items, item)
	}
	order.TotalAmount = total

	if err := h.gate.Admit(&order); err != nil {
		var rl *services.RateLimitedError
		if errors.As(err, &rl) {
			middleware.CountOrderOperation("create", "rate_limited")
			return rateLimited(c, rl)
		}
		middleware.CountOrderOperation("create", "failed")
		return err
	}
	middleware.CountOrderOperation("create", "success")

	if h.telegram != nil {
		go func(order models.Order) {
			if err := h.telegram.NotifyNewOrder(order); err != nil {
				log.Printf("[Order] Telegram notification failed: %v", err)
			}
		}(order)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    order,
	})
}

type checkCooldownRequest struct {
	Phone string `json:"phone"`
}

// CheckCooldown is the pre-flight probe the checkout page calls before
// submitting the full form.
func (h *OrderHandler) CheckCooldown(c *fiber.Ctx) error {
	var req checkCooldownRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.gate.Check(req.Phone); err != nil {
		var rl *services.RateLimitedError
		if errors.As(err, &rl) {
			return rateLimited(c, rl)
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetOrder returns an order by its human-facing identifier together with the
// derived tracking state.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	var order models.Order
	if err := h.db.Preload("Items").Preload("Refund").
		First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	tracking := fiber.Map{
		"current_step":  models.StatusStep(order.OrderStatus),
		"refund_branch": models.InRefundBranch(order.OrderStatus),
		"steps":         models.StatusSteps,
	}
	if models.InRefundBranch(order.OrderStatus) {
		tracking["refund_note"] = "Your refund will be settled within 3-5 business days"
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"data":     order,
		"tracking": tracking,
	})
}
