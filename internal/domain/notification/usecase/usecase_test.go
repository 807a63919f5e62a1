package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"github.com/hexanotify/notifier-service/internal/domain/notification/dto"
	notiferrors "github.com/hexanotify/notifier-service/internal/domain/notification/errors"
	"github.com/hexanotify/notifier-service/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
)

type pairKey struct {
	subscriberID uint
	channelID    uint
}

type subKey struct {
	subscriberID uint
	listID       uint
	channelID    uint
}

type fakeRepo struct {
	notifications []entities.Notification
	subscriptions map[subKey]*entities.Subscription
	byList        map[uint][]entities.Subscription
	rows          map[pairKey]*entities.SubscriberServiceChannel
	nextID        uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		subscriptions: make(map[subKey]*entities.Subscription),
		byList:        make(map[uint][]entities.Subscription),
		rows:          make(map[pairKey]*entities.SubscriberServiceChannel),
	}
}

func (f *fakeRepo) CreateNotification(_ context.Context, notification *entities.Notification) error {
	f.nextID++
	notification.ID = f.nextID
	f.notifications = append(f.notifications, *notification)
	return nil
}

func (f *fakeRepo) CreateSubscription(_ context.Context, subscription *entities.Subscription) error {
	key := subKey{subscription.SubscriberID, subscription.PublisherListID, subscription.ServiceChannelID}
	if _, ok := f.subscriptions[key]; ok {
		return notiferrors.ErrSubscriptionExists
	}
	f.nextID++
	subscription.ID = f.nextID
	f.subscriptions[key] = subscription
	f.byList[subscription.PublisherListID] = append(f.byList[subscription.PublisherListID], *subscription)
	return nil
}

func (f *fakeRepo) ListSubscriptionsByList(_ context.Context, listID uint) ([]entities.Subscription, error) {
	return f.byList[listID], nil
}

func (f *fakeRepo) GetChannelPair(_ context.Context, subscriberID, channelID uint) (*entities.SubscriberServiceChannel, error) {
	return f.rows[pairKey{subscriberID, channelID}], nil
}

// addRecipient wires a subscription to list 1 over channel 1 with the
// given channel row state
func (f *fakeRepo) addRecipient(subscriberID uint, active, verified bool) {
	f.byList[1] = append(f.byList[1], entities.Subscription{
		SubscriberID:     subscriberID,
		PublisherListID:  1,
		ServiceChannelID: 1,
	})
	row := &entities.SubscriberServiceChannel{
		SubscriberID:     subscriberID,
		ServiceChannelID: 1,
		IsActive:         active,
	}
	if verified {
		now := time.Now()
		row.VerifiedAt = &now
	}
	f.rows[pairKey{subscriberID, 1}] = row
}

type fakeProducer struct {
	intents []*dto.DeliveryIntent
	err     error
}

func (f *fakeProducer) SendDeliveryIntent(_ context.Context, intent *dto.DeliveryIntent) error {
	if f.err != nil {
		return f.err
	}
	f.intents = append(f.intents, intent)
	return nil
}

func newFanout(repo *fakeRepo, producer *fakeProducer) *Fanout {
	return NewFanout(repo, producer, metrics.Default(), zerolog.Nop())
}

func TestPublish_InvalidTypeWritesNothing(t *testing.T) {
	repo := newFakeRepo()
	fanout := newFanout(repo, &fakeProducer{})

	_, _, err := fanout.Publish(context.Background(), 1, "carrier-pigeon", "t", "m")
	if !errors.Is(err, notiferrors.ErrInvalidNotificationType) {
		t.Fatalf("expected ErrInvalidNotificationType, got %v", err)
	}
	if len(repo.notifications) != 0 {
		t.Fatal("invalid type must not persist a notification")
	}
}

func TestPublish_TalliesEligibleAndSkipped(t *testing.T) {
	repo := newFakeRepo()
	repo.addRecipient(1, true, true)
	repo.addRecipient(2, true, true)
	repo.addRecipient(3, true, true)
	repo.addRecipient(4, false, true) // deactivated
	repo.addRecipient(5, true, false) // never verified
	producer := &fakeProducer{}
	fanout := newFanout(repo, producer)

	notification, tally, err := fanout.Publish(context.Background(), 1, entities.NotificationMail, "digest", "hello")
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if tally.Attempted != 3 || tally.Skipped != 2 {
		t.Fatalf("expected tally {3 2}, got {%d %d}", tally.Attempted, tally.Skipped)
	}
	if len(producer.intents) != 3 {
		t.Fatalf("expected 3 delivery intents, got %d", len(producer.intents))
	}
	for _, intent := range producer.intents {
		if intent.NotificationID != notification.ID {
			t.Errorf("intent references notification %d, want %d", intent.NotificationID, notification.ID)
		}
		if intent.Type != string(entities.NotificationMail) {
			t.Errorf("unexpected intent type %q", intent.Type)
		}
	}
}

func TestPublish_MissingChannelRowSkipped(t *testing.T) {
	repo := newFakeRepo()
	repo.byList[1] = append(repo.byList[1], entities.Subscription{
		SubscriberID:     9,
		PublisherListID:  1,
		ServiceChannelID: 1,
	})
	producer := &fakeProducer{}
	fanout := newFanout(repo, producer)

	_, tally, err := fanout.Publish(context.Background(), 1, entities.NotificationPush, "t", "m")
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if tally.Attempted != 0 || tally.Skipped != 1 {
		t.Fatalf("expected tally {0 1}, got {%d %d}", tally.Attempted, tally.Skipped)
	}
}

func TestPublish_EmptyListIsNotAnError(t *testing.T) {
	repo := newFakeRepo()
	fanout := newFanout(repo, &fakeProducer{})

	notification, tally, err := fanout.Publish(context.Background(), 7, entities.NotificationInApp, "t", "m")
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if notification.ID == 0 {
		t.Error("notification not persisted")
	}
	if tally.Attempted != 0 || tally.Skipped != 0 {
		t.Fatalf("expected empty tally, got {%d %d}", tally.Attempted, tally.Skipped)
	}
}

func TestPublish_ProduceFailureStillAttempted(t *testing.T) {
	repo := newFakeRepo()
	repo.addRecipient(1, true, true)
	producer := &fakeProducer{err: errors.New("broker down")}
	fanout := newFanout(repo, producer)

	_, tally, err := fanout.Publish(context.Background(), 1, entities.NotificationSMS, "t", "m")
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if tally.Attempted != 1 {
		t.Fatalf("produce failure must still count as attempted, got %d", tally.Attempted)
	}
}

func TestSubscribe_DuplicateTriple(t *testing.T) {
	repo := newFakeRepo()
	fanout := newFanout(repo, &fakeProducer{})

	if _, err := fanout.Subscribe(context.Background(), 1, 2, 3); err != nil {
		t.Fatalf("first Subscribe failed: %v", err)
	}

	_, err := fanout.Subscribe(context.Background(), 1, 2, 3)
	if !errors.Is(err, notiferrors.ErrSubscriptionExists) {
		t.Fatalf("expected ErrSubscriptionExists, got %v", err)
	}
}
