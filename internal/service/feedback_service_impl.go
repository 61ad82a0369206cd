package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/alexanderramin/lexiplay/internal/feedback"
)

type feedbackService struct {
	client   feedback.Client
	observer UseCaseObserver
}

// NewFeedbackService scores with client when it is non-nil and falls back to
// feedback.Local on any remote error.
func NewFeedbackService(client feedback.Client, observers ...UseCaseObserver) FeedbackService {
	return &feedbackService{client: client, observer: useCaseObserverOrNoop(observers)}
}

// TierFor builds the tier context of a curriculum level. Levels outside
// 1..20 yield a zero context.
func TierFor(level int) feedback.TierContext {
	if level < 1 || level > curriculum.LevelCount {
		return feedback.TierContext{}
	}
	std := curriculum.StandardizedLevel(level)
	return feedback.TierContext{
		Level:             level,
		LiteracyStage:     string(std.LiteracyStage),
		MaxSentenceLength: std.MaxSentenceLength,
	}
}

func (s *feedbackService) Feedback(ctx context.Context, req feedback.Request) feedback.Response {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"language_function": req.LanguageFunction,
	}

	if req.FeedbackMode == "" {
		req.FeedbackMode = feedback.ModeSingle
		if req.Sentence1 != "" && req.Sentence2 != "" {
			req.FeedbackMode = feedback.ModeCompare
		}
	}
	fields["mode"] = req.FeedbackMode
	if req.TierContext.MaxSentenceLength == 0 {
		req.TierContext = TierFor(req.TierContext.Level)
	}

	if s.client != nil {
		resp, err := s.client.Score(ctx, req)
		if err == nil {
			fields["source"] = resp.Source
			observe(ctx, s.observer, "feedback", startedAt, fields, nil)
			return *resp
		}
		fields["remote_error"] = err.Error()
	}

	resp := feedback.Local(req)
	fields["source"] = resp.Source
	observe(ctx, s.observer, "feedback", startedAt, fields, nil)
	return resp
}
