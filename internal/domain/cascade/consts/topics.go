package consts

const (
	TopicUserCreated           = "entity.user.created"
	TopicSubscriberCreated     = "entity.subscriber.created"
	TopicServiceChannelCreated = "entity.service_channel.created"
)

var ConsumerTopics = []string{
	TopicUserCreated,
	TopicSubscriberCreated,
	TopicServiceChannelCreated,
}
