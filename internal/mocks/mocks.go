package mocks

import (
	"context"

	"campus-canteen/internal/domain"

	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderRepository) ListOrdersFor(studentID, phone string) ([]domain.Order, error) {
	args := m.Called(studentID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) ListAllOrders() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(orderID int, status string) error {
	args := m.Called(orderID, status)
	return args.Error(0)
}

func (m *OrderRepository) DeleteOrder(orderID int) error {
	args := m.Called(orderID)
	return args.Error(0)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	args := m.Called(orderID, qr)
	return args.Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *OrderRepository) OrderStats() (domain.OrderStats, error) {
	args := m.Called()
	return args.Get(0).(domain.OrderStats), args.Error(1)
}

type LocationRepository struct {
	mock.Mock
}

func (m *LocationRepository) CreateLocation(loc *domain.Location) error {
	args := m.Called(loc)
	return args.Error(0)
}

func (m *LocationRepository) GetLocation(id int) (*domain.Location, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *LocationRepository) ListActiveLocations() ([]domain.Location, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *LocationRepository) ListAllLocations() ([]domain.Location, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *LocationRepository) ToggleLocation(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *LocationRepository) DeleteLocation(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Create(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *SessionStore) Exists(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
