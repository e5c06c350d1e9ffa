package chat

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shivamk23/cafe-meet-up-backend/internal/models"
	"github.com/shivamk23/cafe-meet-up-backend/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrNotAuthorized = errors.New("not a participant of this match")
)

// EventProducer publishes stored messages for downstream consumers. A nil
// producer disables publishing.
type EventProducer interface {
	Publish(key string, event any) error
}

// Notifier pushes the live copy of a stored message to its receiver.
type Notifier interface {
	Notify(userID string, n ws.Notification)
}

type ChatService struct {
	repo     ChatRepository
	producer EventProducer
	notifier Notifier
}

func NewChatService(repo ChatRepository, producer EventProducer, notifier Notifier) *ChatService {
	return &ChatService{repo: repo, producer: producer, notifier: notifier}
}

// History returns a match's messages for one of its participants.
func (s *ChatService) History(ctx context.Context, userID, matchID string) (*HistoryResponse, error) {
	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, ErrMatchNotFound
	}
	if match.UserAID != userID && match.UserBID != userID {
		return nil, ErrNotAuthorized
	}

	messages, err := s.repo.ListMessages(ctx, matchID)
	if err != nil {
		return nil, err
	}

	otherID := match.UserAID
	if otherID == userID {
		otherID = match.UserBID
	}

	resp := &HistoryResponse{
		CurrentUserID: userID,
		Messages:      messages,
	}
	if other, err := s.repo.GetUser(ctx, otherID); err == nil {
		resp.OtherUser = &ChatUser{
			ID:             other.ID,
			FirstName:      other.FirstName,
			ProfilePicture: other.ProfilePicture,
		}
	}
	return resp, nil
}

// Send stores a message durably, then publishes it to Kafka and pushes a
// live copy to the receiver. Durable storage is the source of truth: the
// publish and the push are both best effort and never fail the send.
func (s *ChatService) Send(ctx context.Context, senderID string, req SendMessageRequest) (*models.Message, error) {
	match, err := s.repo.GetMatch(ctx, req.MatchID)
	if err != nil {
		return nil, ErrMatchNotFound
	}
	if match.UserAID != senderID && match.UserBID != senderID {
		return nil, ErrNotAuthorized
	}

	msg := &models.Message{
		ID:         uuid.New().String(),
		MatchID:    req.MatchID,
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Text:       req.Text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	if s.producer != nil {
		event := MessageEvent{
			ID:         msg.ID,
			MatchID:    msg.MatchID,
			SenderID:   msg.SenderID,
			ReceiverID: msg.ReceiverID,
			Text:       msg.Text,
			CreatedAt:  msg.CreatedAt,
		}
		if err := s.producer.Publish(msg.MatchID, event); err != nil {
			slog.Error("failed to publish message event", "messageID", msg.ID, "error", err)
		}
	}

	if s.notifier != nil {
		s.notifier.Notify(req.ReceiverID, ws.Notification{
			Type:      models.NotificationMessage,
			From:      senderID,
			Message:   msg.Text,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		})
	}

	return msg, nil
}
