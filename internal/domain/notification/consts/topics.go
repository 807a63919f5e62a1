package consts

const (
	TopicNotificationDelivery = "notification.delivery"
)
