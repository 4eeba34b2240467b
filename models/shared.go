package models

// ReminderPayload is the asynq task payload for a booking reminder.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	WorkerID     string `json:"workerId"`
	CustomerName string `json:"customerName"`
	Service      string `json:"service"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Address      string `json:"address"`
}
