package service

import (
	"strings"

	"github.com/shivamstore/storefront/database"
	"github.com/shivamstore/storefront/database/model"
	"github.com/shivamstore/storefront/web/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct{}

// PlaceOrder materializes the cart into an Order with structured line
// snapshots. Order and lines are written in one transaction: either the
// order exists with all its lines, or nothing was persisted. The caller
// clears the session cart only after a nil return.
func (s *OrderService) PlaceOrder(userName string, cart session.Cart, paymentMethod string) (*model.Order, error) {
	names := make([]string, 0, len(cart.Items))
	lines := make([]model.OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		names = append(names, item.Name)
		lines = append(lines, model.OrderLine{
			ProductId: item.ProductId,
			Name:      item.Name,
			Price:     item.Price,
		})
	}

	order := &model.Order{
		RefNo:         uuid.NewString(),
		UserName:      userName,
		Items:         strings.Join(names, ", "),
		Total:         cart.Total(),
		PaymentMethod: paymentMethod,
		Status:        model.OrderStatusPending,
		Lines:         lines,
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrders returns all orders, newest first.
func (s *OrderService) GetOrders() ([]model.Order, error) {
	var orders []model.Order
	err := database.GetDB().
		Preload("Lines").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) GetOrder(id int) (*model.Order, error) {
	order := &model.Order{}
	err := database.GetDB().Preload("Lines").First(order, id).Error
	if err != nil {
		return nil, err
	}
	return order, nil
}

// MarkDelivered transitions Pending -> Delivered. One-way, no reversal.
func (s *OrderService) MarkDelivered(id int) error {
	result := database.GetDB().Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", model.OrderStatusDelivered)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// DeleteOrder removes the order and, via the FK cascade, its lines.
func (s *OrderService) DeleteOrder(id int) error {
	result := database.GetDB().Delete(&model.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
