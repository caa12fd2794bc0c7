package tests

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	httpapi "campus-canteen/internal/api/http"
	"campus-canteen/internal/domain"
	"campus-canteen/internal/mocks"
	"campus-canteen/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loadTestTemplates(t *testing.T) *template.Template {
	t.Helper()
	templates, err := httpapi.LoadTemplates("../../templates")
	require.NoError(t, err)
	return templates
}

type handlerMocks struct {
	orders    *mocks.OrderRepository
	locations *mocks.LocationRepository
	sessions  *mocks.SessionStore
}

func newTestRouter(t *testing.T) (http.Handler, *handlerMocks) {
	t.Helper()
	m := &handlerMocks{
		orders:    new(mocks.OrderRepository),
		locations: new(mocks.LocationRepository),
		sessions:  new(mocks.SessionStore),
	}
	orderSvc := service.NewOrderService(m.orders, m.locations, nil, nil)
	locationSvc := service.NewLocationService(m.locations)
	authSvc := service.NewAuthService("admin", "admin123", m.sessions)
	handler := httpapi.NewHandler(orderSvc, locationSvc, authSvc, loadTestTemplates(t))

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMenuHandler(t *testing.T) {
	router, m := newTestRouter(t)
	m.locations.On("ListActiveLocations").Return([]domain.Location{
		{ID: 1, Name: "Hostel A", ShortCode: "HA", IsActive: true},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/menu/main_canteen", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nalambagam Canteen")
	assert.Contains(t, w.Body.String(), "Hostel A")
}

func TestMenuHandler_UnknownRestaurantRedirectsHome(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/menu/nowhere", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestPlaceOrder_MissingLocation(t *testing.T) {
	router, m := newTestRouter(t)
	m.locations.On("ListActiveLocations").Return([]domain.Location{}, nil).Once()

	w := postForm(router, "/order/main_canteen", url.Values{
		"name":          {"Arun"},
		"student_id":    {"S123"},
		"phone":         {"9999"},
		"beverages_Tea": {"2"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please select a delivery location")
	m.orders.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestPlaceOrder_UnavailableLocation(t *testing.T) {
	router, m := newTestRouter(t)
	m.locations.On("GetLocation", 5).Return(&domain.Location{ID: 5, IsActive: false}, nil).Once()
	m.locations.On("ListActiveLocations").Return([]domain.Location{}, nil).Once()

	w := postForm(router, "/order/main_canteen", url.Values{
		"location_id":   {"5"},
		"beverages_Tea": {"2"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Selected delivery location is not available.")
	m.orders.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestPlaceOrder_EmptyOrderRedirectsHome(t *testing.T) {
	router, m := newTestRouter(t)
	m.locations.On("GetLocation", 5).Return(&domain.Location{ID: 5, Name: "Hostel A", IsActive: true}, nil).Once()

	w := postForm(router, "/order/main_canteen", url.Values{
		"location_id":   {"5"},
		"beverages_Tea": {"0"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	m.orders.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestPlaceOrder_Success(t *testing.T) {
	router, m := newTestRouter(t)
	m.locations.On("GetLocation", 5).Return(&domain.Location{ID: 5, Name: "Hostel A", IsActive: true}, nil).Once()
	m.orders.On("CreateOrder", mock.MatchedBy(func(order *domain.Order) bool {
		item, ok := order.Items["Tea"]
		return ok && item.Quantity == 2 && item.Subtotal == 20 && order.Total == 20 &&
			order.Status == domain.StatusReceived
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 7
	}).Return(nil).Once()

	w := postForm(router, "/order/main_canteen", url.Values{
		"name":          {"Arun"},
		"student_id":    {"S123"},
		"phone":         {"9999"},
		"location_id":   {"5"},
		"beverages_Tea": {"2"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Order #7 received")
	assert.Contains(t, w.Body.String(), "Hostel A")
	m.orders.AssertExpectations(t)
}

func TestOrderStatusLookup(t *testing.T) {
	router, m := newTestRouter(t)
	m.orders.On("ListOrdersFor", "S123", "9999").Return([]domain.Order{
		{ID: 2, Restaurant: "Nalambagam Canteen", Status: "Preparing",
			Items: map[string]domain.LineItem{"Tea": {Quantity: 2, Price: 10, Subtotal: 20}}, Total: 20},
	}, nil).Once()

	w := postForm(router, "/api/order_status", url.Values{
		"student_id": {"S123"},
		"phone":      {"9999"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Order #2")
	assert.Contains(t, w.Body.String(), "Preparing")
	m.orders.AssertExpectations(t)
}

func TestAdminLogin_InvalidCredentials(t *testing.T) {
	router, m := newTestRouter(t)

	w := postForm(router, "/admin/dashboard", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	m.sessions.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAdminLogin_Success(t *testing.T) {
	router, m := newTestRouter(t)
	m.sessions.On("Create", mock.Anything).Return("tok-1", nil).Once()
	m.orders.On("ListAllOrders").Return([]domain.Order{}, nil).Once()
	m.locations.On("ListAllLocations").Return([]domain.Location{
		{ID: 1, Name: "Hostel A", IsActive: true},
	}, nil).Once()
	m.orders.On("OrderStats").Return(domain.OrderStats{TotalOrders: 3}, nil).Once()

	w := postForm(router, "/admin/dashboard", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin Dashboard")
	assert.Contains(t, w.Body.String(), "Hostel A")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "admin_session", cookies[0].Name)
	assert.Equal(t, "tok-1", cookies[0].Value)
}

func TestAdminDashboard_RequiresSession(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestAdminDashboard_WithSession(t *testing.T) {
	router, m := newTestRouter(t)
	m.sessions.On("Exists", mock.Anything, "tok-1").Return(true, nil).Once()
	m.orders.On("ListAllOrders").Return([]domain.Order{}, nil).Once()
	m.locations.On("ListAllLocations").Return([]domain.Location{}, nil).Once()
	m.orders.On("OrderStats").Return(domain.OrderStats{}, nil).Once()

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "tok-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin Dashboard")
}

func TestUpdateOrderStatus_RedirectsToDashboard(t *testing.T) {
	router, m := newTestRouter(t)
	m.sessions.On("Exists", mock.Anything, "tok-1").Return(true, nil).Once()
	m.orders.On("UpdateOrderStatus", 42, "Delivered").Return(nil).Once()

	form := url.Values{"order_id": {"42"}, "status": {"Delivered"}}
	req := httptest.NewRequest("POST", "/admin/update_status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "tok-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	m.orders.AssertExpectations(t)
}

func TestToggleLocation_RedirectsToDashboard(t *testing.T) {
	router, m := newTestRouter(t)
	m.sessions.On("Exists", mock.Anything, "tok-1").Return(true, nil).Once()
	m.locations.On("ToggleLocation", 5).Return(nil).Once()

	req := httptest.NewRequest("POST", "/admin/location/5/toggle", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "tok-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	m.locations.AssertExpectations(t)
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "campus-canteen")
}
