package dto

// SaveClosureRequest persists the closure of one store-local day.
// The server recomputes the summary; the client never sends totals.
type SaveClosureRequest struct {
	StoreID string `json:"store_id" validate:"required,uuid"`
	Date    string `json:"date"     validate:"required,datetime=2006-01-02"`
}

type ClosureSavedResponse struct {
	ID          string `json:"id"`
	StoreID     string `json:"store_id"`
	Day         string `json:"day"`
	TotalAmount string `json:"total_amount"`
	Tickets     int    `json:"tickets"`
	NetCash     string `json:"net_cash"`
	CreatedAt   string `json:"created_at"`
}
