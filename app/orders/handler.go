// Package orders serves the admin orders table. The order set is static
// illustrative data; search, status filtering, and sorting run
// server-side over it.
package orders

import (
	"net/http"
	"sort"
	"strings"

	"github.com/nikhil748/munch-admin-portal/app/api"
)

type Order struct {
	ID            string  `json:"id"`
	Customer      string  `json:"customer"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	Items         int     `json:"items"`
	PaymentMethod string  `json:"payment_method"`
}

type Response struct {
	Total  int     `json:"total"`
	Orders []Order `json:"orders"`
}

var sampleOrders = []Order{
	{ID: "#ORD-1001", Customer: "John Doe", Email: "john@example.com", Amount: 45.99, Status: "completed", Date: "2024-01-15", Items: 3, PaymentMethod: "Credit Card"},
	{ID: "#ORD-1002", Customer: "Jane Smith", Email: "jane@example.com", Amount: 32.50, Status: "pending", Date: "2024-01-15", Items: 2, PaymentMethod: "PayPal"},
	{ID: "#ORD-1003", Customer: "Bob Johnson", Email: "bob@example.com", Amount: 78.25, Status: "processing", Date: "2024-01-14", Items: 5, PaymentMethod: "Credit Card"},
	{ID: "#ORD-1004", Customer: "Alice Brown", Email: "alice@example.com", Amount: 55.00, Status: "completed", Date: "2024-01-14", Items: 4, PaymentMethod: "Debit Card"},
	{ID: "#ORD-1005", Customer: "Charlie Wilson", Email: "charlie@example.com", Amount: 29.99, Status: "cancelled", Date: "2024-01-13", Items: 1, PaymentMethod: "Credit Card"},
	{ID: "#ORD-1006", Customer: "Diana Prince", Email: "diana@example.com", Amount: 67.75, Status: "processing", Date: "2024-01-13", Items: 3, PaymentMethod: "PayPal"},
	{ID: "#ORD-1007", Customer: "Edward Smith", Email: "edward@example.com", Amount: 41.25, Status: "completed", Date: "2024-01-12", Items: 2, PaymentMethod: "Credit Card"},
	{ID: "#ORD-1008", Customer: "Fiona Green", Email: "fiona@example.com", Amount: 89.50, Status: "pending", Date: "2024-01-12", Items: 6, PaymentMethod: "Debit Card"},
}

type OrdersHandler struct {
	orders []Order
}

func NewOrdersHandler() *OrdersHandler {
	return &OrdersHandler{orders: sampleOrders}
}

// HandleList supports ?q= (case-insensitive match on id, customer, or
// email), ?status=, ?sort_by=date|amount|customer and
// ?sort_order=asc|desc. Defaults mirror the admin table: newest first.
func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))
	status := r.URL.Query().Get("status")

	sortBy := r.URL.Query().Get("sort_by")
	if sortBy == "" {
		sortBy = "date"
	}
	sortOrder := r.URL.Query().Get("sort_order")
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	var filtered []Order
	for _, o := range h.orders {
		if q != "" &&
			!strings.Contains(strings.ToLower(o.Customer), q) &&
			!strings.Contains(strings.ToLower(o.ID), q) &&
			!strings.Contains(strings.ToLower(o.Email), q) {
			continue
		}
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		filtered = append(filtered, o)
	}

	sortOrders(filtered, sortBy, sortOrder)

	if filtered == nil {
		filtered = []Order{}
	}
	api.WriteJSON(w, http.StatusOK, Response{
		Total:  len(filtered),
		Orders: filtered,
	})
}

func sortOrders(orders []Order, by, order string) {
	less := func(a, b Order) bool {
		switch by {
		case "amount":
			return a.Amount < b.Amount
		case "customer":
			return strings.ToLower(a.Customer) < strings.ToLower(b.Customer)
		case "date":
			return a.Date < b.Date
		default:
			return a.ID < b.ID
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if order == "asc" {
			return less(orders[i], orders[j])
		}
		return less(orders[j], orders[i])
	})
}
