package services

import (
	"errors"

	"ecom/models"
	"ecom/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

type OrderItemInput struct {
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  uint            `json:"quantity"`
}

type CreateOrderInput struct {
	TotalPrice    decimal.Decimal
	PaymentMethod string
	AddressJSON   string
	Items         []OrderItemInput
}

// 建立訂單。商品名稱與價格在此複製為快照，之後商品異動不影響已成立訂單
func (s *OrderService) Create(userID uint, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, &ValidationError{Message: "Order must contain at least one item"}
	}

	order := models.Order{
		OrderNumber:   "ORD-" + uuid.NewString(),
		UserID:        userID,
		TotalPrice:    in.TotalPrice,
		Status:        models.OrderStatusPlaced,
		AddressJSON:   in.AddressJSON,
		PaymentMethod: in.PaymentMethod,
	}
	for _, item := range in.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	if err := s.orders.Create(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	return s.orders.FindByUserID(userID)
}

func (s *OrderService) GetByUser(userID, orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByIDAndUserID(orderID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "Order not found"}
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// 取消訂單。不存在或非本人的訂單視為查無資料，已取消的訂單則視為衝突
func (s *OrderService) Cancel(userID, orderID uint) (*models.Order, error) {
	order, err := s.GetByUser(userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == models.OrderStatusCancelled {
		return nil, &ConflictError{Message: "Order is already cancelled"}
	}

	order.Status = models.OrderStatusCancelled
	if err := s.orders.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) AdminGet(orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "Order not found"}
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// 管理端更新訂單，只覆寫有提供的欄位。
// 狀態在此視為開放列舉，不套用Placed/Cancelled狀態機檢查。
func (s *OrderService) AdminUpdate(orderID uint, status, deliveryDate *string) (*models.Order, error) {
	order, err := s.AdminGet(orderID)
	if err != nil {
		return nil, err
	}

	if status != nil {
		order.Status = *status
	}
	if deliveryDate != nil {
		order.DeliveryDate = *deliveryDate
	}

	if err := s.orders.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}
