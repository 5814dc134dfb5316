package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"assistente-agenda/internal/assistant"
)

// strategy is one step of the reply policy. A non-nil error hands over to the next one.
type strategy struct {
	name string
	run  func(ctx context.Context, text string, creds assistant.CredentialProvider) (assistant.HandleOutput, error)
}

// strategies returns the reply policy in the order it is applied.
func (uc *implUseCase) strategies() []strategy {
	return []strategy{
		{name: StrategyPipeline, run: uc.runPipeline},
		{name: StrategyPlainCompletion, run: uc.runPlainCompletion},
		{name: StrategyStatic, run: uc.runStatic},
	}
}

// Handle turns one message into one reply.
func (uc *implUseCase) Handle(ctx context.Context, input assistant.HandleInput) assistant.HandleOutput {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.HandleOutput{Reply: MsgEmptyInput, Kind: assistant.ReplyEmptyInput}
	}

	for _, s := range uc.strategies() {
		out, err := s.run(ctx, text, input.Credentials)
		if err != nil {
			uc.l.Warnf(ctx, "assistant.usecase.Handle: strategy %s failed: %v", s.name, err)
			continue
		}
		out.Strategy = s.name
		return out
	}

	// runStatic never fails.
	return assistant.HandleOutput{Reply: MsgStaticError, Kind: assistant.ReplyError, Strategy: StrategyStatic}
}

// runPipeline classifies, resolves and submits. Ambiguous timing and missing
// credentials are replies, not failures.
func (uc *implUseCase) runPipeline(ctx context.Context, text string, creds assistant.CredentialProvider) (assistant.HandleOutput, error) {
	ref := uc.referenceInstant()

	judgment, err := uc.classifier.Classify(ctx, text, ref)
	if err != nil {
		return assistant.HandleOutput{}, fmt.Errorf("classify: %w", err)
	}

	if !judgment.IsEvent {
		return assistant.HandleOutput{Reply: judgment.Reply, Kind: assistant.ReplyConversation}, nil
	}

	desc, timing, err := uc.resolveEvent(judgment, text, ref)
	if err != nil {
		if errors.Is(err, assistant.ErrAmbiguousTiming) {
			uc.l.Infof(ctx, "assistant.usecase.runPipeline: ambiguous timing proposed=%q", judgment.ProposedTimestamp)
			return assistant.HandleOutput{Reply: MsgAmbiguousTiming, Kind: assistant.ReplyClarification}, nil
		}
		return assistant.HandleOutput{}, err
	}

	uc.l.Infof(ctx, "assistant.usecase.runPipeline: resolved %s source=%s heuristic=%v proposed=%v all_day=%t",
		desc.Kind, timing.Source, timing.Heuristic, timing.Proposed, timing.IsAllDay)

	cred, err := uc.credential(ctx, creds)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.runPipeline: %v", err)
		return assistant.HandleOutput{Reply: MsgUnauthenticated, Kind: assistant.ReplyUnauthenticated}, nil
	}

	outcome := uc.submit(ctx, desc, cred)
	out := assistant.HandleOutput{
		Reply:   outcome.UserMessage,
		Kind:    assistant.ReplyEventFailed,
		EventID: outcome.ExternalEventID,
		Link:    outcome.Link,
	}
	if outcome.Success {
		out.Kind = assistant.ReplyEventCreated
	}
	return out, nil
}

// runPlainCompletion asks for a free-form reply with no structure requirement.
func (uc *implUseCase) runPlainCompletion(ctx context.Context, text string, _ assistant.CredentialProvider) (assistant.HandleOutput, error) {
	reply, err := uc.completer.GenerateText(ctx, fmt.Sprintf(plainCompletionPrompt, text))
	if err != nil {
		return assistant.HandleOutput{}, fmt.Errorf("%w: %v", assistant.ErrBackendUnavailable, err)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return assistant.HandleOutput{}, fmt.Errorf("%w: empty completion", assistant.ErrMalformedResponse)
	}
	return assistant.HandleOutput{Reply: reply, Kind: assistant.ReplyFallback}, nil
}

func (uc *implUseCase) runStatic(context.Context, string, assistant.CredentialProvider) (assistant.HandleOutput, error) {
	return assistant.HandleOutput{Reply: MsgStaticError, Kind: assistant.ReplyError}, nil
}

// credential fetches the caller's credential; any failure reads as unauthenticated.
func (uc *implUseCase) credential(ctx context.Context, creds assistant.CredentialProvider) (assistant.Credential, error) {
	if creds == nil {
		return assistant.Credential{}, assistant.ErrUnauthenticated
	}
	cred, err := creds.Credential(ctx)
	if err != nil {
		if errors.Is(err, assistant.ErrUnauthenticated) {
			return assistant.Credential{}, err
		}
		return assistant.Credential{}, fmt.Errorf("%w: %v", assistant.ErrUnauthenticated, err)
	}
	if cred.AccessToken == "" {
		return assistant.Credential{}, assistant.ErrUnauthenticated
	}
	return cred, nil
}
