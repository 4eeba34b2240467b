package models

// BookingInput carries the fields a customer submits when creating a
// booking. WorkerID, Date, Time and Address are required; everything else
// is optional.
type BookingInput struct {
	ClerkID      string  `json:"clerkId"`
	CustomerName string  `json:"customerName"`
	WorkerID     string  `json:"workerId"`
	Service      string  `json:"service"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Duration     string  `json:"duration"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Notes        string  `json:"notes"`
	Amount       float64 `json:"amount"`
}

// BookingPatch is the partial-update object for a booking. A nil field is
// left untouched; presence, not truthiness, decides whether a field is
// written.
type BookingPatch struct {
	Status *string `json:"status"`
	Rating *int    `json:"rating"`
	Review *string `json:"review"`
}
