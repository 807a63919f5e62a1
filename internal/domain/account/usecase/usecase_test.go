package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/hexanotify/notifier-service/internal/domain/account/dto"
	accounterrors "github.com/hexanotify/notifier-service/internal/domain/account/errors"
	cascadeerrors "github.com/hexanotify/notifier-service/internal/domain/cascade/errors"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	usersByName map[string]*entities.User
	subscribers []entities.Subscriber
	nextID      uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{usersByName: make(map[string]*entities.User)}
}

func (f *fakeRepo) CreateUser(_ context.Context, user *entities.User) error {
	if _, ok := f.usersByName[user.Username]; ok {
		return accounterrors.ErrUserExists
	}
	f.nextID++
	user.ID = f.nextID
	f.usersByName[user.Username] = user
	return nil
}

func (f *fakeRepo) ListSubscribers(_ context.Context) ([]entities.Subscriber, error) {
	return f.subscribers, nil
}

type fakeCascade struct {
	userCalls []uint
	err       error
}

func (f *fakeCascade) OnUserCreated(_ context.Context, userID uint) (*entities.Subscriber, error) {
	f.userCalls = append(f.userCalls, userID)
	if f.err != nil {
		return nil, f.err
	}
	return &entities.Subscriber{UserID: userID}, nil
}

func (f *fakeCascade) OnSubscriberCreated(_ context.Context, _ uint) error {
	return nil
}

func (f *fakeCascade) OnServiceChannelCreated(_ context.Context, _ uint) error {
	return nil
}

type fakeProducer struct {
	events []string
}

func (f *fakeProducer) SendEntityCreated(_ context.Context, eventType string, _ uint) error {
	f.events = append(f.events, eventType)
	return nil
}

func newRegistry(repo *fakeRepo) (*Registry, *fakeCascade, *fakeProducer) {
	cascade := &fakeCascade{}
	producer := &fakeProducer{}
	return NewRegistry(repo, cascade, producer, zerolog.Nop()), cascade, producer
}

func validInput() dto.RegisterInput {
	return dto.RegisterInput{
		Username:     "alice",
		Email:        "alice@example.com",
		Password:     "correct-horse",
		IsSubscriber: true,
	}
}

func TestRegister_DispatchesCascadeAndEvent(t *testing.T) {
	repo := newFakeRepo()
	registry, cascade, producer := newRegistry(repo)

	user, err := registry.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if len(cascade.userCalls) != 1 || cascade.userCalls[0] != user.ID {
		t.Errorf("cascade not dispatched for user %d", user.ID)
	}
	if len(producer.events) != 1 || producer.events[0] != "user_created" {
		t.Errorf("expected one user_created event, got %v", producer.events)
	}
}

func TestRegister_NormalizesUsernameAndEmail(t *testing.T) {
	registry, _, _ := newRegistry(newFakeRepo())

	input := validInput()
	input.Username = "  John Doe "
	input.Email = " John.Doe@Example.COM "

	user, err := registry.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.Username != "johndoe" {
		t.Errorf("expected username johndoe, got %q", user.Username)
	}
	if user.Email != "john.doe@example.com" {
		t.Errorf("expected lowercased email, got %q", user.Email)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	registry, _, _ := newRegistry(newFakeRepo())

	input := validInput()
	user, err := registry.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.Password == input.Password {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	registry, _, _ := newRegistry(newFakeRepo())

	tests := []struct {
		name    string
		mutate  func(*dto.RegisterInput)
		wantErr error
	}{
		{"blank username", func(in *dto.RegisterInput) { in.Username = "   " }, accounterrors.ErrInvalidUsername},
		{"email without at sign", func(in *dto.RegisterInput) { in.Email = "not-an-email" }, accounterrors.ErrInvalidEmail},
		{"short password", func(in *dto.RegisterInput) { in.Password = "short" }, accounterrors.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := registry.Register(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRegister_DuplicateSubscriberTolerated(t *testing.T) {
	repo := newFakeRepo()
	cascade := &fakeCascade{err: cascadeerrors.ErrDuplicateSubscriber}
	registry := NewRegistry(repo, cascade, &fakeProducer{}, zerolog.Nop())

	if _, err := registry.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("replayed cascade must not fail registration: %v", err)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	registry, _, _ := newRegistry(newFakeRepo())

	if _, err := registry.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := registry.Register(context.Background(), validInput())
	if !errors.Is(err, accounterrors.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestListSubscribers(t *testing.T) {
	repo := newFakeRepo()
	repo.subscribers = []entities.Subscriber{
		{ID: 1, UserID: 10, IsActive: true},
		{ID: 2, UserID: 11},
	}
	registry, _, _ := newRegistry(repo)

	subscribers, err := registry.ListSubscribers(context.Background())
	if err != nil {
		t.Fatalf("ListSubscribers failed: %v", err)
	}
	if len(subscribers) != 2 {
		t.Fatalf("expected 2 subscribers, got %d", len(subscribers))
	}
}
