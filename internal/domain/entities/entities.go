package entities

import "time"

// NotificationType enumerates the delivery mediums a notification can use
type NotificationType string

const (
	NotificationInApp NotificationType = "in-app"
	NotificationSMS   NotificationType = "sms"
	NotificationMail  NotificationType = "mail"
	NotificationPush  NotificationType = "push"
)

// Valid reports whether the type is one of the known delivery mediums
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInApp, NotificationSMS, NotificationMail, NotificationPush:
		return true
	}
	return false
}

// User represents a platform account. Username and email are stored
// lowercase with whitespace stripped.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"not null;uniqueIndex"`
	Password     string    `gorm:"not null"`
	Email        string    `gorm:"not null;uniqueIndex"`
	Mobile       string    `gorm:""`
	IsSuperadmin bool      `gorm:"not null;default:false"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	IsPublisher  bool      `gorm:"not null;default:false"`
	IsSubscriber bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// Subscriber is the 1:1 subscriber record owned by a user, created by the
// cascade engine on user creation. Profile data stays on the user.
type Subscriber struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex"`
	IsActive  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

// Publisher is the publishing organization owned by a user
type Publisher struct {
	ID                        uint      `gorm:"primaryKey"`
	UserID                    uint      `gorm:"not null;uniqueIndex"`
	Name                      string    `gorm:"not null"`
	CIF                       string    `gorm:""`
	Address                   string    `gorm:""`
	City                      string    `gorm:""`
	PostalCode                string    `gorm:""`
	MaxPrivateSubscribersPlan int       `gorm:"not null;default:0"`
	IsActive                  bool      `gorm:"not null;default:false"`
	CreatedAt                 time.Time `gorm:"autoCreateTime"`
	UpdatedAt                 time.Time `gorm:"autoUpdateTime"`
	User                      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Publisher) TableName() string {
	return "publishers"
}

// PublisherList is a named list subscribers can join. Name is unique per
// publisher.
type PublisherList struct {
	ID          uint       `gorm:"primaryKey"`
	PublisherID uint       `gorm:"not null;index:idx_publisher_list_name,unique"`
	Name        string     `gorm:"not null;index:idx_publisher_list_name,unique"`
	Description string     `gorm:""`
	IsPrivate   bool       `gorm:"not null;default:false"`
	IsActive    bool       `gorm:"not null;default:true"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
	Publisher   *Publisher `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
}

func (PublisherList) TableName() string {
	return "publisher_lists"
}

// ServiceChannel is a delivery medium identity provider (e.g. "discord")
type ServiceChannel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ServiceChannel) TableName() string {
	return "service_channels"
}

// SubscriberServiceChannel is the per-subscriber identity on one service
// channel. Exactly one row per (subscriber, channel) pair; rows start
// unverified and inactive.
type SubscriberServiceChannel struct {
	ID                     uint            `gorm:"primaryKey"`
	SubscriberID           uint            `gorm:"not null;index:idx_subscriber_channel,unique"`
	ServiceChannelID       uint            `gorm:"not null;index:idx_subscriber_channel,unique"`
	ServiceChannelUsername *string         `gorm:""`
	VerificationToken      *string         `gorm:""`
	VerifiedAt             *time.Time      `gorm:""`
	IsActive               bool            `gorm:"not null;default:false"`
	CreatedAt              time.Time       `gorm:"autoCreateTime"`
	UpdatedAt              time.Time       `gorm:"autoUpdateTime"`
	Subscriber             *Subscriber     `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE"`
	ServiceChannel         *ServiceChannel `gorm:"foreignKey:ServiceChannelID;constraint:OnDelete:CASCADE"`
}

func (SubscriberServiceChannel) TableName() string {
	return "subscriber_service_channels"
}

// Verified reports whether the channel identity has been confirmed
func (c *SubscriberServiceChannel) Verified() bool {
	return c.VerifiedAt != nil
}

// Subscription links a subscriber to a publisher list over one channel
type Subscription struct {
	ID               uint      `gorm:"primaryKey"`
	SubscriberID     uint      `gorm:"not null;index"`
	PublisherListID  uint      `gorm:"not null;index"`
	ServiceChannelID uint      `gorm:"not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// AuthorizedSender whitelists a sender for a receiver over one verified
// channel row. Unique per (receiver, sender).
type AuthorizedSender struct {
	ID                         uint      `gorm:"primaryKey"`
	ReceiverID                 uint      `gorm:"not null;index:idx_receiver_sender,unique"`
	SenderID                   uint      `gorm:"not null;index:idx_receiver_sender,unique"`
	SubscriberServiceChannelID uint      `gorm:"not null"`
	CreatedAt                  time.Time `gorm:"autoCreateTime"`
	UpdatedAt                  time.Time `gorm:"autoUpdateTime"`
}

func (AuthorizedSender) TableName() string {
	return "authorized_senders"
}

// DirectMessageLog is the append-only audit trail of direct message
// attempts. Status records the authorization outcome.
type DirectMessageLog struct {
	ID         uint      `gorm:"primaryKey"`
	ReceiverID uint      `gorm:"not null;index"`
	SenderID   uint      `gorm:"not null;index"`
	SentAt     time.Time `gorm:"not null"`
	Status     bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (DirectMessageLog) TableName() string {
	return "direct_message_logs"
}

// Notification is a message published to a list
type Notification struct {
	ID              uint             `gorm:"primaryKey"`
	PublisherListID uint             `gorm:"not null;index"`
	Type            NotificationType `gorm:"type:varchar(20);not null"`
	Title           string           `gorm:"not null"`
	Message         string           `gorm:"type:text;not null"`
	CreatedAt       time.Time        `gorm:"autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
