package notifyservice

// Notification is the payload posted to the notification gateway.
// A nil UserID broadcasts to all staff accounts.
type Notification struct {
	UserID  *int64 `json:"userId,omitempty"`
	Message string `json:"message"`
}
