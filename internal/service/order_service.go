package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"campus-canteen/internal/catalog"
	"campus-canteen/internal/domain"
)

var (
	ErrMissingLocation     = errors.New("no delivery location selected")
	ErrInvalidLocation     = errors.New("delivery location id is not valid")
	ErrLocationUnavailable = errors.New("delivery location does not exist or is inactive")
	ErrEmptyOrder          = errors.New("order contains no items")
)

// Submission is the raw form input for a new order. Quantities is keyed by
// catalog.FieldKey; anything absent, zero or non-numeric means "not ordered".
type Submission struct {
	Name       string
	StudentID  string
	Phone      string
	LocationID string
	Quantities map[string]string
}

type OrderService struct {
	repo      OrderRepository
	locations LocationRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, locations LocationRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repo:      repo,
		locations: locations,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// BuildDraft prices and validates a submission against the restaurant's menu.
// It has no side effects; the caller persists the draft with Create.
func (s *OrderService) BuildDraft(restaurant catalog.Restaurant, submission Submission) (*domain.Order, error) {
	if strings.TrimSpace(submission.LocationID) == "" {
		return nil, ErrMissingLocation
	}
	locationID, err := strconv.Atoi(strings.TrimSpace(submission.LocationID))
	if err != nil {
		return nil, ErrInvalidLocation
	}
	location, err := s.locations.GetLocation(locationID)
	if err != nil || location == nil || !location.IsActive {
		return nil, ErrLocationUnavailable
	}

	items := map[string]domain.LineItem{}
	var total float64
	for _, category := range restaurant.Menu {
		for _, item := range category.Items {
			raw := submission.Quantities[catalog.FieldKey(category.Name, item.Name)]
			quantity, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil || quantity <= 0 {
				continue
			}
			subtotal := item.Price * float64(quantity)
			items[item.Name] = domain.LineItem{
				Quantity: quantity,
				Price:    item.Price,
				Subtotal: subtotal,
			}
			total += subtotal
		}
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	return &domain.Order{
		Restaurant:   restaurant.Name,
		Name:         submission.Name,
		StudentID:    submission.StudentID,
		Phone:        submission.Phone,
		Items:        items,
		Total:        total,
		Status:       domain.StatusReceived,
		LocationID:   &location.ID,
		LocationName: location.Name,
	}, nil
}

func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if err := s.repo.CreateOrder(order); err != nil {
		return err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	s.publish(ctx, "order_created", order.ID, order.Restaurant, order.Status, order.Total)
	return nil
}

func (s *OrderService) ListFor(studentID, phone string) ([]domain.Order, error) {
	return s.repo.ListOrdersFor(studentID, phone)
}

func (s *OrderService) ListAll() ([]domain.Order, error) {
	return s.repo.ListAllOrders()
}

// UpdateStatus overwrites the status unconditionally. Any string is a valid
// status, and an unknown order id updates zero rows without complaint.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) error {
	if err := s.repo.UpdateOrderStatus(orderID, status); err != nil {
		return err
	}
	s.publish(ctx, "status_updated", orderID, "", status, 0)
	return nil
}

func (s *OrderService) Delete(ctx context.Context, orderID int) error {
	if err := s.repo.DeleteOrder(orderID); err != nil {
		return err
	}
	s.publish(ctx, "order_deleted", orderID, "", "", 0)
	return nil
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) Stats() (domain.OrderStats, error) {
	return s.repo.OrderStats()
}

func (s *OrderService) publish(ctx context.Context, eventType string, orderID int, restaurant, status string, total float64) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:       eventType,
		OrderID:    orderID,
		Restaurant: restaurant,
		Status:     status,
		Total:      total,
		Timestamp:  time.Now(),
	})
	if err != nil {
		log.Printf("[order-svc] failed to publish %s for order %d: %v", eventType, orderID, err)
	}
}
