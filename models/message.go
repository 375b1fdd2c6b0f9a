package models

// Message is one chat message in a crop's thread. Threads are
// append-only and rendered in the order the server returns them.
type Message struct {
	ID           string `json:"_id"`
	CropID       string `json:"crop_id"`
	SenderID     string `json:"sender_id"`
	SenderName   string `json:"sender_name"`
	ReceiverID   string `json:"receiver_id"`
	ReceiverName string `json:"receiver_name"`
	Body         string `json:"message"`
	Timestamp    string `json:"timestamp"`
}

// User is the session user persisted locally. A non-empty ID gates
// access to the bidder and chat views.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// LoggedIn reports whether u represents an authenticated session.
func (u User) LoggedIn() bool {
	return u.ID != ""
}
