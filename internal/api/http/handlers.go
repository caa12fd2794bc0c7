package httpapi

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"campus-canteen/internal/catalog"
	"campus-canteen/internal/domain"
	"campus-canteen/internal/service"

	"github.com/gorilla/mux"
)

const sessionCookie = "admin_session"

type Handler struct {
	Orders    service.OrderServiceInterface
	Locations service.LocationServiceInterface
	Auth      service.AuthServiceInterface
	Templates *template.Template
}

func NewHandler(orderSvc service.OrderServiceInterface, locationSvc service.LocationServiceInterface, authSvc service.AuthServiceInterface, templates *template.Template) *Handler {
	return &Handler{
		Orders:    orderSvc,
		Locations: locationSvc,
		Auth:      authSvc,
		Templates: templates,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/", h.home).Methods("GET")
	r.HandleFunc("/menu/{restaurantId}", h.menu).Methods("GET")
	r.HandleFunc("/order/{restaurantId}", h.placeOrder).Methods("POST")
	r.HandleFunc("/order_status", h.orderStatusPage).Methods("GET")
	r.HandleFunc("/api/order_status", h.orderStatusLookup).Methods("POST")
	r.HandleFunc("/orders/{id}/qrcode", h.orderQRCode).Methods("GET")

	r.HandleFunc("/admin", h.adminLogin).Methods("GET")
	r.HandleFunc("/admin/dashboard", h.adminDashboardLogin).Methods("POST")
	r.HandleFunc("/admin/dashboard", h.adminDashboard).Methods("GET")
	r.HandleFunc("/admin/add_location", h.addLocation).Methods("POST")
	r.HandleFunc("/admin/location/{id}/toggle", h.toggleLocation).Methods("POST")
	r.HandleFunc("/admin/location/{id}/delete", h.deleteLocation).Methods("POST")
	r.HandleFunc("/admin/update_status", h.updateOrderStatus).Methods("POST")
	r.HandleFunc("/admin/delete_order", h.deleteOrder).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "campus-canteen",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

type menuView struct {
	Restaurant catalog.Restaurant
	Locations  []domain.Location
	Error      string
}

type statusView struct {
	Orders    []domain.Order
	StudentID string
	Phone     string
	Searched  bool
}

type loginView struct {
	Error string
}

type dashboardView struct {
	Orders    []domain.Order
	Locations []domain.Location
	Stats     domain.OrderStats
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[web] render %s: %v", name, err)
	}
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", catalog.All())
}

func (h *Handler) menu(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := catalog.Get(mux.Vars(r)["restaurantId"])
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderMenu(w, restaurant, "")
}

func (h *Handler) renderMenu(w http.ResponseWriter, restaurant catalog.Restaurant, errMsg string) {
	locations, err := h.Locations.ListActive()
	if err != nil {
		log.Printf("[web] listing active locations: %v", err)
	}
	h.render(w, "menu.html", menuView{Restaurant: restaurant, Locations: locations, Error: errMsg})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := catalog.Get(mux.Vars(r)["restaurantId"])
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	quantities := map[string]string{}
	for key, values := range r.PostForm {
		if len(values) > 0 {
			quantities[key] = values[0]
		}
	}
	submission := service.Submission{
		Name:       r.PostFormValue("name"),
		StudentID:  r.PostFormValue("student_id"),
		Phone:      r.PostFormValue("phone"),
		LocationID: r.PostFormValue("location_id"),
		Quantities: quantities,
	}

	draft, err := h.Orders.BuildDraft(restaurant, submission)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, service.ErrMissingLocation):
			h.renderMenu(w, restaurant, "Please select a delivery location (admin-approved).")
		case errors.Is(err, service.ErrInvalidLocation):
			h.renderMenu(w, restaurant, "Invalid delivery location selected.")
		case errors.Is(err, service.ErrLocationUnavailable):
			h.renderMenu(w, restaurant, "Selected delivery location is not available.")
		default:
			h.renderMenu(w, restaurant, "Something went wrong. Please try again.")
		}
		return
	}

	if err := h.Orders.Create(r.Context(), draft); err != nil {
		log.Printf("[web] creating order: %v", err)
		h.renderMenu(w, restaurant, "Could not save your order. Please try again.")
		return
	}

	h.render(w, "order.html", draft)
}

func (h *Handler) orderStatusPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "order_status.html", statusView{})
}

func (h *Handler) orderStatusLookup(w http.ResponseWriter, r *http.Request) {
	studentID := r.PostFormValue("student_id")
	phone := r.PostFormValue("phone")

	orders, err := h.Orders.ListFor(studentID, phone)
	if err != nil {
		log.Printf("[web] order status lookup: %v", err)
	}
	h.render(w, "order_status.html", statusView{
		Orders:    orders,
		StudentID: studentID,
		Phone:     phone,
		Searched:  true,
	})
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.GetQRCode(orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, "admin_login.html", loginView{})
}

func (h *Handler) adminDashboardLogin(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.Auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.render(w, "admin_login.html", loginView{Error: "Invalid credentials"})
		} else {
			log.Printf("[web] admin login: %v", err)
			h.render(w, "admin_login.html", loginView{Error: "Database error occurred"})
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	h.renderDashboard(w)
}

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	h.renderDashboard(w)
}

func (h *Handler) renderDashboard(w http.ResponseWriter) {
	orders, err := h.Orders.ListAll()
	if err != nil {
		log.Printf("[web] admin dashboard orders: %v", err)
		h.render(w, "admin_login.html", loginView{Error: "Database error occurred"})
		return
	}
	locations, err := h.Locations.ListAll()
	if err != nil {
		log.Printf("[web] admin dashboard locations: %v", err)
		h.render(w, "admin_login.html", loginView{Error: "Database error occurred"})
		return
	}
	stats, err := h.Orders.Stats()
	if err != nil {
		log.Printf("[web] admin dashboard stats: %v", err)
	}
	h.render(w, "admin_dashboard.html", dashboardView{Orders: orders, Locations: locations, Stats: stats})
}

// requireAdmin redirects to the login page unless the request carries a live
// session cookie.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || !h.Auth.Validate(r.Context(), cookie.Value) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return false
	}
	return true
}

func (h *Handler) addLocation(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	result, err := h.Locations.Create(r.PostFormValue("name"), r.PostFormValue("short_code"))
	if err != nil {
		log.Printf("[web] adding location: %v", err)
	} else if result != service.LocationCreated {
		log.Printf("[web] location not added (result %d)", result)
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handler) toggleLocation(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Locations.ToggleActive(id); err != nil {
		log.Printf("[web] toggling location %d: %v", id, err)
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handler) deleteLocation(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Locations.Delete(id); err != nil {
		log.Printf("[web] deleting location %d: %v", id, err)
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	orderID, _ := strconv.Atoi(r.PostFormValue("order_id"))
	if err := h.Orders.UpdateStatus(r.Context(), orderID, r.PostFormValue("status")); err != nil {
		log.Printf("[web] updating order %d status: %v", orderID, err)
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	orderID, _ := strconv.Atoi(r.PostFormValue("order_id"))
	if err := h.Orders.Delete(r.Context(), orderID); err != nil {
		log.Printf("[web] deleting order %d: %v", orderID, err)
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}
