package domain

// User is a telegram chat subscribed to order notifications.
type User struct {
	ChatID int64
}
