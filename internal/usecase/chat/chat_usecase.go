package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/passportpals/passportpals-backend/internal/clock"
	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/random"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/responder"
	"github.com/passportpals/passportpals-backend/internal/scheduler"
)

const (
	autoReplyMin = 1 * time.Second
	autoReplyMax = 2 * time.Second
)

// ChatUseCase handles conversation threads, including the simulated
// counterparty who replies to each message after a short delay.
type ChatUseCase struct {
	profiles  repository.ProfileStore
	state     repository.StateRepository
	matches   repository.MatchRepository
	messages  repository.MessageRepository
	responder responder.Responder
	sched     scheduler.Scheduler
	rng       random.Source
	clk       clock.Clock
}

func NewChatUseCase(
	profiles repository.ProfileStore,
	state repository.StateRepository,
	matches repository.MatchRepository,
	messages repository.MessageRepository,
	resp responder.Responder,
	sched scheduler.Scheduler,
	rng random.Source,
	clk clock.Clock,
) *ChatUseCase {
	return &ChatUseCase{
		profiles:  profiles,
		state:     state,
		matches:   matches,
		messages:  messages,
		responder: resp,
		sched:     sched,
		rng:       rng,
		clk:       clk,
	}
}

// SendMessage appends the viewer's message to a thread, updates the thread
// preview and schedules the counterparty's reply 1-2 seconds out.
func (uc *ChatUseCase) SendMessage(ctx context.Context, matchID, text string) (*domain.Message, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	match, ok := uc.matches.ByID(ctx, matchID)
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	if !match.HasUser(viewer.ID) {
		return nil, domain.ErrNotMatchParticipant
	}

	now := uc.clk.Now()
	msg := &domain.Message{
		ID:        uuid.New().String(),
		MatchID:   matchID,
		SenderID:  viewer.ID,
		Text:      text,
		CreatedAt: now,
	}
	if err := uc.messages.Append(ctx, msg); err != nil {
		return nil, err
	}
	if err := uc.matches.SetLastMessage(ctx, matchID, text, now); err != nil {
		return nil, err
	}

	delay := uc.rng.DurationBetween(autoReplyMin, autoReplyMax)
	uc.sched.Schedule(replyTaskKey(msg.ID), delay, func() {
		uc.autoReply(context.Background(), matchID, viewer.ID, text)
	})
	return msg, nil
}

func replyTaskKey(messageID string) string {
	return "reply:" + messageID
}

// autoReply is the delayed counterparty response. The session and the thread
// are re-checked when it fires; a logout or vanished match drops the reply.
func (uc *ChatUseCase) autoReply(ctx context.Context, matchID, senderID, incoming string) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok || viewer.ID != senderID {
		return
	}
	match, ok := uc.matches.ByID(ctx, matchID)
	if !ok {
		return
	}
	otherID, ok := match.OtherUserID(senderID)
	if !ok {
		return
	}
	other, ok := uc.profiles.ByID(otherID)
	if !ok {
		return
	}

	text := uc.responder.Reply(ctx, incoming, other.Name, other.City)
	now := uc.clk.Now()
	reply := &domain.Message{
		ID:        uuid.New().String(),
		MatchID:   matchID,
		SenderID:  other.ID,
		Text:      text,
		CreatedAt: now,
	}
	if err := uc.messages.Append(ctx, reply); err != nil {
		fmt.Printf("Failed to record reply in match %s: %v\n", matchID, err)
		return
	}
	if err := uc.matches.SetLastMessage(ctx, matchID, text, now); err != nil {
		fmt.Printf("Failed to update match preview for %s: %v\n", matchID, err)
	}
}

// MessagesForMatch returns a thread's messages ordered by creation time.
func (uc *ChatUseCase) MessagesForMatch(ctx context.Context, matchID string) ([]*domain.Message, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	match, ok := uc.matches.ByID(ctx, matchID)
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	if !match.HasUser(viewer.ID) {
		return nil, domain.ErrNotMatchParticipant
	}
	return uc.messages.ForMatch(ctx, matchID), nil
}
