// Package dashboard serves the admin dashboard. The figures are static
// illustrative data; the dashboard has never been wired to live order
// aggregation.
package dashboard

import (
	"net/http"

	"github.com/nikhil748/munch-admin-portal/app/api"
)

type Stat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

type RecentOrder struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Amount   string `json:"amount"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

type Response struct {
	Stats        []Stat        `json:"stats"`
	RecentOrders []RecentOrder `json:"recent_orders"`
}

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

func (h *DashboardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, Response{
		Stats: []Stat{
			{Title: "Total Revenue", Value: "$12,345", Change: "+12.5%", Trend: "up"},
			{Title: "Total Orders", Value: "1,234", Change: "+8.2%", Trend: "up"},
			{Title: "Total Customers", Value: "567", Change: "+15.3%", Trend: "up"},
			{Title: "Products Sold", Value: "2,345", Change: "-3.1%", Trend: "down"},
		},
		RecentOrders: []RecentOrder{
			{ID: "#1234", Customer: "John Doe", Amount: "$45.99", Status: "completed", Date: "2024-01-15"},
			{ID: "#1235", Customer: "Jane Smith", Amount: "$32.50", Status: "pending", Date: "2024-01-15"},
			{ID: "#1236", Customer: "Bob Johnson", Amount: "$78.25", Status: "processing", Date: "2024-01-14"},
			{ID: "#1237", Customer: "Alice Brown", Amount: "$55.00", Status: "completed", Date: "2024-01-14"},
			{ID: "#1238", Customer: "Charlie Wilson", Amount: "$29.99", Status: "cancelled", Date: "2024-01-13"},
		},
	})
}
