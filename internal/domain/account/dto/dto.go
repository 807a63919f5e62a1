package dto

// RegisterInput enumerates the fields a caller may set on a new user.
// Anything else on the user row is derived or defaulted.
type RegisterInput struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile,omitempty"`
	IsSuperadmin bool   `json:"is_superadmin,omitempty"`
	IsAdmin      bool   `json:"is_admin,omitempty"`
	IsPublisher  bool   `json:"is_publisher,omitempty"`
	IsSubscriber bool   `json:"is_subscriber,omitempty"`
}

// SubscriberResponse is the read-endpoint shape of a subscriber
type SubscriberResponse struct {
	ID       uint `json:"id"`
	UserID   uint `json:"user_id"`
	IsActive bool `json:"is_active"`
}
