package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
)

// MessageInput is the payload of a sent message.
type MessageInput struct {
	ReceiverID  primitive.ObjectID `json:"receiverId"`
	Message     string             `json:"message"`
	SenderName  string             `json:"senderName"`
	SenderEmail string             `json:"senderEmail"`
}

// MessageView is a message with the sender's account attached.
type MessageView struct {
	*model.Message
	SenderInfo *model.Summary `json:"senderInfo,omitempty"`
}

func (s *Service) SendMessage(ctx context.Context, actor policy.Actor, in MessageInput) (*model.Message, error) {
	if err := policy.Check(actor, policy.SendMessage); err != nil {
		return nil, err
	}
	m := &model.Message{
		Sender:      actor.ID,
		Receiver:    in.ReceiverID,
		Message:     strings.TrimSpace(in.Message),
		SenderName:  strings.TrimSpace(in.SenderName),
		SenderEmail: model.NormalizeEmail(in.SenderEmail),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if _, err := query(ctx, s, "receiver", func(ctx context.Context) (*model.User, error) {
		return s.store.Users.FindByID(ctx, m.Receiver)
	}); err != nil {
		return nil, err
	}
	if err := s.exec(ctx, "message", func(ctx context.Context) error { return s.store.Messages.Insert(ctx, m) }); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessagesToAdmin returns the messages received by the calling admin
// whose sender has the given role, newest first.
func (s *Service) ListMessagesToAdmin(ctx context.Context, actor policy.Actor, senderRole model.Role) ([]MessageView, error) {
	if err := policy.Check(actor, policy.ListMessagesToAdmin); err != nil {
		return nil, err
	}
	if senderRole != model.RoleAttendee && senderRole != model.RoleExhibitor {
		return nil, apperr.Validation("sender role must be attendee or exhibitor")
	}
	msgs, err := query(ctx, s, "message", func(ctx context.Context) ([]*model.Message, error) {
		return s.store.Messages.ListByReceiver(ctx, actor.ID)
	})
	if err != nil {
		return nil, err
	}
	senders := map[primitive.ObjectID]*model.Summary{}
	out := []MessageView{}
	for _, m := range msgs {
		sum, ok := senders[m.Sender]
		if !ok {
			sum, err = s.summaryOf(ctx, m.Sender)
			if err != nil {
				return nil, err
			}
			senders[m.Sender] = sum
		}
		if sum == nil || sum.Role != senderRole {
			continue
		}
		out = append(out, MessageView{Message: m, SenderInfo: sum})
	}
	return out, nil
}

func (s *Service) DeleteMessage(ctx context.Context, actor policy.Actor, id primitive.ObjectID) error {
	if err := policy.Check(actor, policy.DeleteMessage); err != nil {
		return err
	}
	return s.exec(ctx, "message", func(ctx context.Context) error { return s.store.Messages.Delete(ctx, id) })
}
