package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	channelerrors "github.com/hexanotify/notifier-service/internal/domain/channel/errors"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"github.com/rs/zerolog"
)

type pairKey struct {
	subscriberID uint
	channelID    uint
}

type fakeRepo struct {
	channels map[string]*entities.ServiceChannel
	rows     map[pairKey]*entities.SubscriberServiceChannel
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		channels: make(map[string]*entities.ServiceChannel),
		rows:     make(map[pairKey]*entities.SubscriberServiceChannel),
	}
}

func (f *fakeRepo) CreateServiceChannel(_ context.Context, channel *entities.ServiceChannel) error {
	if _, ok := f.channels[channel.Name]; ok {
		return channelerrors.ErrChannelExists
	}
	f.nextID++
	channel.ID = f.nextID
	f.channels[channel.Name] = channel
	return nil
}

func (f *fakeRepo) GetPair(_ context.Context, subscriberID, channelID uint) (*entities.SubscriberServiceChannel, error) {
	row, ok := f.rows[pairKey{subscriberID, channelID}]
	if !ok {
		return nil, channelerrors.ErrChannelNotFound
	}
	return row, nil
}

func (f *fakeRepo) Update(_ context.Context, row *entities.SubscriberServiceChannel) error {
	f.rows[pairKey{row.SubscriberID, row.ServiceChannelID}] = row
	return nil
}

func (f *fakeRepo) FirstActiveBySubscriber(_ context.Context, subscriberID uint) (*entities.SubscriberServiceChannel, error) {
	var candidates []*entities.SubscriberServiceChannel
	for _, row := range f.rows {
		if row.SubscriberID == subscriberID && row.IsActive && row.VerifiedAt != nil {
			candidates = append(candidates, row)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ServiceChannelID < candidates[j].ServiceChannelID
	})
	return candidates[0], nil
}

func (f *fakeRepo) addRow(subscriberID, channelID uint, token string) *entities.SubscriberServiceChannel {
	f.nextID++
	row := &entities.SubscriberServiceChannel{
		ID:               f.nextID,
		SubscriberID:     subscriberID,
		ServiceChannelID: channelID,
	}
	if token != "" {
		row.VerificationToken = &token
	}
	f.rows[pairKey{subscriberID, channelID}] = row
	return row
}

type fakeCascade struct {
	channelCalls []uint
}

func (f *fakeCascade) OnUserCreated(_ context.Context, userID uint) (*entities.Subscriber, error) {
	return &entities.Subscriber{UserID: userID}, nil
}

func (f *fakeCascade) OnSubscriberCreated(_ context.Context, _ uint) error {
	return nil
}

func (f *fakeCascade) OnServiceChannelCreated(_ context.Context, channelID uint) error {
	f.channelCalls = append(f.channelCalls, channelID)
	return nil
}

type fakeProducer struct {
	events []string
}

func (f *fakeProducer) SendEntityCreated(_ context.Context, eventType string, _ uint) error {
	f.events = append(f.events, eventType)
	return nil
}

func newTracker(repo *fakeRepo) (*Tracker, *fakeCascade, *fakeProducer) {
	cascade := &fakeCascade{}
	producer := &fakeProducer{}
	return NewTracker(repo, cascade, producer, zerolog.Nop()), cascade, producer
}

func TestCreateServiceChannel_DispatchesCascade(t *testing.T) {
	repo := newFakeRepo()
	tracker, cascade, producer := newTracker(repo)

	channel, err := tracker.CreateServiceChannel(context.Background(), " Discord ")
	if err != nil {
		t.Fatalf("CreateServiceChannel failed: %v", err)
	}

	if channel.Name != "discord" {
		t.Errorf("expected normalized name discord, got %q", channel.Name)
	}
	if len(cascade.channelCalls) != 1 || cascade.channelCalls[0] != channel.ID {
		t.Errorf("cascade not dispatched for channel %d", channel.ID)
	}
	if len(producer.events) != 1 {
		t.Errorf("expected 1 published event, got %d", len(producer.events))
	}
}

func TestCreateServiceChannel_EmptyName(t *testing.T) {
	tracker, _, _ := newTracker(newFakeRepo())

	_, err := tracker.CreateServiceChannel(context.Background(), "   ")
	if !errors.Is(err, channelerrors.ErrInvalidChannelName) {
		t.Fatalf("expected ErrInvalidChannelName, got %v", err)
	}
}

func TestVerify_CorrectToken(t *testing.T) {
	repo := newFakeRepo()
	repo.addRow(1, 2, "tok-123")
	tracker, _, _ := newTracker(repo)

	row, err := tracker.Verify(context.Background(), 1, 2, "alice#42", "tok-123")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if row.VerifiedAt == nil {
		t.Fatal("verified_at not stamped")
	}
	if row.ServiceChannelUsername == nil || *row.ServiceChannelUsername != "alice#42" {
		t.Error("username not stored")
	}
	if row.IsActive {
		t.Error("verify must not change the active flag")
	}
}

func TestVerify_WrongToken(t *testing.T) {
	repo := newFakeRepo()
	repo.addRow(1, 2, "tok-123")
	tracker, _, _ := newTracker(repo)

	_, err := tracker.Verify(context.Background(), 1, 2, "alice", "wrong")
	if !errors.Is(err, channelerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_NoTokenIssued(t *testing.T) {
	repo := newFakeRepo()
	repo.addRow(1, 2, "")
	tracker, _, _ := newTracker(repo)

	_, err := tracker.Verify(context.Background(), 1, 2, "alice", "anything")
	if !errors.Is(err, channelerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestActivate_RequiresVerification(t *testing.T) {
	repo := newFakeRepo()
	repo.addRow(1, 2, "tok-123")
	tracker, _, _ := newTracker(repo)

	if _, err := tracker.Activate(context.Background(), 1, 2); !errors.Is(err, channelerrors.ErrNotVerified) {
		t.Fatalf("expected ErrNotVerified before verification, got %v", err)
	}

	if _, err := tracker.Verify(context.Background(), 1, 2, "alice", "tok-123"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	row, err := tracker.Activate(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Activate after verify failed: %v", err)
	}
	if !row.IsActive {
		t.Error("row not activated")
	}
}

func TestDeactivate_KeepsVerification(t *testing.T) {
	repo := newFakeRepo()
	repo.addRow(1, 2, "tok-123")
	tracker, _, _ := newTracker(repo)

	if _, err := tracker.Verify(context.Background(), 1, 2, "alice", "tok-123"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if _, err := tracker.Activate(context.Background(), 1, 2); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	if err := tracker.Deactivate(context.Background(), 1, 2); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	row, _ := repo.GetPair(context.Background(), 1, 2)
	if row.IsActive {
		t.Error("row still active")
	}
	if row.VerifiedAt == nil {
		t.Error("deactivate must not clear verification")
	}
}

func TestFirstActiveChannel_LowestChannelIDWins(t *testing.T) {
	repo := newFakeRepo()
	now := time.Now()
	for _, channelID := range []uint{30, 10, 20} {
		row := repo.addRow(1, channelID, "")
		row.IsActive = true
		row.VerifiedAt = &now
	}
	// inactive and unverified rows never win
	repo.addRow(1, 5, "")
	unverified := repo.addRow(1, 7, "")
	unverified.IsActive = true

	tracker, _, _ := newTracker(repo)

	for i := 0; i < 3; i++ {
		row, err := tracker.FirstActiveChannel(context.Background(), 1)
		if err != nil {
			t.Fatalf("FirstActiveChannel failed: %v", err)
		}
		if row == nil || row.ServiceChannelID != 10 {
			t.Fatalf("expected channel 10 to win, got %+v", row)
		}
	}
}

func TestFirstActiveChannel_NoneIsNotAnError(t *testing.T) {
	tracker, _, _ := newTracker(newFakeRepo())

	row, err := tracker.FirstActiveChannel(context.Background(), 99)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if row != nil {
		t.Fatalf("expected nil row, got %+v", row)
	}
}

func TestRequestVerification_IssuesToken(t *testing.T) {
	repo := newFakeRepo()
	repo.addRow(1, 2, "")
	tracker, _, _ := newTracker(repo)

	token, err := tracker.RequestVerification(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("RequestVerification failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token issued")
	}

	if _, err := tracker.Verify(context.Background(), 1, 2, "alice", token); err != nil {
		t.Fatalf("Verify with issued token failed: %v", err)
	}
}
