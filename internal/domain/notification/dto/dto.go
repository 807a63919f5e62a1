package dto

import "time"

// DeliveryIntent is emitted per eligible recipient during fan-out. Actual
// transport delivery is handled downstream.
type DeliveryIntent struct {
	NotificationID   uint   `json:"notification_id"`
	PublisherListID  uint   `json:"publisher_list_id"`
	SubscriberID     uint   `json:"subscriber_id"`
	ServiceChannelID uint   `json:"service_channel_id"`
	Type             string `json:"type"`
	Title            string `json:"title"`
	Timestamp        int64  `json:"timestamp,omitempty"`
}

// NewDeliveryIntent creates a DeliveryIntent with current timestamp
func NewDeliveryIntent(notificationID, listID, subscriberID, channelID uint, notifType, title string) *DeliveryIntent {
	return &DeliveryIntent{
		NotificationID:   notificationID,
		PublisherListID:  listID,
		SubscriberID:     subscriberID,
		ServiceChannelID: channelID,
		Type:             notifType,
		Title:            title,
		Timestamp:        time.Now().Unix(),
	}
}

// Tally summarizes a fan-out resolution
type Tally struct {
	Attempted int `json:"attempted"`
	Skipped   int `json:"skipped"`
}
