package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/dinoxe/internal/middleware"
	"github.com/example/dinoxe/internal/models"
	"github.com/example/dinoxe/internal/services"
	"github.com/example/dinoxe/internal/utils"
)

// AdminHandler manages the back-office endpoints behind admin auth.
type AdminHandler struct {
	db       *gorm.DB
	telegram *services.TelegramService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB, telegram *services.TelegramService) *AdminHandler {
	return &AdminHandler{db: db, telegram: telegram}
}

// DashboardStats returns aggregate statistics for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	var totalOrders int64
	if err := h.db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		return err
	}

	var totalRevenue float64
	if err := h.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return err
	}

	type statusCount struct {
		OrderStatus string
		Count       int64
	}
	var statusCounts []statusCount
	if err := h.db.Model(&models.Order{}).
		Select("order_status, count(*) as count").
		Group("order_status").
		Scan(&statusCounts).Error; err != nil {
		return err
	}

	ordersByStatus := make(map[string]int64)
	for _, sc := range statusCounts {
		ordersByStatus[sc.OrderStatus] = sc.Count
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_orders":     totalOrders,
			"total_revenue":    totalRevenue,
			"pending_orders":   ordersByStatus[models.StatusPending],
			"delivered_orders": ordersByStatus[models.StatusDelivered],
			"orders_by_status": ordersByStatus,
		},
	})
}

// ListAllOrders returns all orders with pagination, status filtering and
// search.
func (h *AdminHandler) ListAllOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{})

	if status := c.Query("status"); status != "" && status != "All" {
		query = query.Where("order_status = ?", status)
	}

	if search := c.Query("search"); search != "" {
		q := "%" + search + "%"
		query = query.Where(
			"order_id ILIKE ? OR customer_name ILIKE ? OR customer_phone ILIKE ?",
			q, q, q,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").Preload("Refund").
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// RecentOrders returns the most recent 5 orders for the dashboard.
func (h *AdminHandler) RecentOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := h.db.Preload("Items").
		Order("created_at desc").
		Limit(5).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
	})
}

type updateOrderStatusRequest struct {
	OrderStatus string `json:"order_status"`
	Reason      string `json:"reason"`
}

// UpdateOrderStatus sets an order's status to any requested value. No
// transition table is enforced: support staff deliberately keep the ability
// to move an order backward or jump straight into the refund branch. Moving
// an order to "Refund Pending" also creates its refund record when it does
// not have one yet.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.OrderStatus == "" {
		return fiber.NewError(fiber.StatusBadRequest, "order_status is required")
	}

	var order models.Order
	var createdRefund *models.Refund

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Refund").First(&order, "id = ?", id).Error; err != nil {
			return err
		}

		order.OrderStatus = req.OrderStatus
		if err := tx.Model(&models.Order{}).Where("id = ?", id).
			Update("order_status", req.OrderStatus).Error; err != nil {
			return err
		}

		if req.OrderStatus == models.StatusRefundPending && order.Refund == nil {
			refund := models.Refund{
				OrderID: order.ID,
				Amount:  order.TotalAmount,
				Reason:  req.Reason,
				Status:  models.RefundPending,
			}
			if err := tx.Create(&refund).Error; err != nil {
				return err
			}
			order.Refund = &refund
			createdRefund = &refund
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if adminID, ok := middleware.GetCurrentAdminID(c); ok {
		log.Printf("[Admin] %s set order %s status to %s", adminID, order.OrderID, req.OrderStatus)
	}

	if createdRefund != nil && h.telegram != nil {
		go func(order models.Order, refund models.Refund) {
			if err := h.telegram.NotifyRefundInitiated(order, refund); err != nil {
				log.Printf("[Admin] Telegram notification failed: %v", err)
			}
		}(order, *createdRefund)
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// ListRefunds returns all refunds, newest first, with their orders.
func (h *AdminHandler) ListRefunds(c *fiber.Ctx) error {
	var refunds []models.Refund
	if err := h.db.Preload("Order").
		Order("created_at desc").
		Find(&refunds).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": refunds})
}

type updateRefundRequest struct {
	Status string `json:"status"`
}

// UpdateRefund sets a refund's status. Transitioning to Processed stamps the
// processed timestamp; the order status itself is left to the admin to set.
func (h *AdminHandler) UpdateRefund(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateRefundRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var refund models.Refund
	if err := h.db.First(&refund, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "refund not found")
		}
		return err
	}

	refund.Status = req.Status
	if req.Status == models.RefundProcessed && refund.ProcessedAt == nil {
		now := time.Now()
		refund.ProcessedAt = &now
	}

	if err := h.db.Save(&refund).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": refund})
}
