package service

import (
	"context"

	"campus-canteen/internal/catalog"
	"campus-canteen/internal/domain"
)

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	ListOrdersFor(studentID, phone string) ([]domain.Order, error)
	ListAllOrders() ([]domain.Order, error)
	UpdateOrderStatus(orderID int, status string) error
	DeleteOrder(orderID int) error
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
	OrderStats() (domain.OrderStats, error)
}

type LocationRepository interface {
	CreateLocation(loc *domain.Location) error
	GetLocation(id int) (*domain.Location, error)
	ListActiveLocations() ([]domain.Location, error)
	ListAllLocations() ([]domain.Location, error)
	ToggleLocation(id int) error
	DeleteLocation(id int) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type SessionStore interface {
	Create(ctx context.Context) (string, error)
	Exists(ctx context.Context, token string) (bool, error)
}

type OrderServiceInterface interface {
	BuildDraft(restaurant catalog.Restaurant, submission Submission) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	ListFor(studentID, phone string) ([]domain.Order, error)
	ListAll() ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
	Delete(ctx context.Context, orderID int) error
	GetQRCode(orderID int) ([]byte, error)
	Stats() (domain.OrderStats, error)
}

type LocationServiceInterface interface {
	Create(name, shortCode string) (CreateLocationResult, error)
	ListActive() ([]domain.Location, error)
	ListAll() ([]domain.Location, error)
	ToggleActive(id int) error
	Delete(id int) error
}

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (string, error)
	Validate(ctx context.Context, token string) bool
}

var _ OrderServiceInterface = (*OrderService)(nil)
var _ LocationServiceInterface = (*LocationService)(nil)
var _ AuthServiceInterface = (*AuthService)(nil)
