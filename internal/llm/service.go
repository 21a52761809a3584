// Package llm implements the generation port on top of the OpenAI chat
// completions API. Every call is a single attempt with no retry and no
// timeout; failure handling belongs to the response validator, not here.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"dungeonexplorer/internal/debug"
	"dungeonexplorer/internal/observability"
)

// ErrServiceUnavailable is the uniform failure for the generation port.
// Transport, authentication, and quota errors all wrap it; callers never
// inspect the origin.
var ErrServiceUnavailable = errors.New("generation service unavailable")

const systemPrompt = "You are a helpful assistant for a text-based adventure game."

type Service struct {
	client *openai.Client
	model  string
	debug  *debug.Logger
	tracer trace.Tracer
}

func NewService(apiKey, model string, debugLogger *debug.Logger) *Service {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Service{
		client: &client,
		model:  model,
		debug:  debugLogger,
		tracer: otel.Tracer("llm-service"),
	}
}

// Generate sends one prompt and returns the raw reply text. Any failure is
// reported as ErrServiceUnavailable; the reply is not parsed or validated
// here.
func (s *Service) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	spanName := OperationFromContext(ctx)
	if spanName == "" {
		spanName = "llm.generate"
	}

	ctx, span := s.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			observability.GenAIAttributes("openai", s.model, temperature)...,
		),
	)
	defer span.End()

	span.SetAttributes(
		attribute.Int("gen_ai.request.max_tokens", maxTokens),
		attribute.String("game.operation", spanName),
	)

	if s.debug != nil {
		s.debug.Printf("Generate op=%s maxTokens=%d temp=%.2f promptLen=%d",
			spanName, maxTokens, temperature, len(prompt))
	}

	start := time.Now()

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		MaxCompletionTokens: openai.Int(int64(maxTokens)),
		Temperature:         openai.Float(temperature),
	})
	if err != nil {
		span.SetAttributes(attribute.String("error.type", "generation_error"))
		span.RecordError(err)
		if s.debug != nil {
			s.debug.Printf("Generate error: %v", err)
		}
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("%w: no completion choices returned", ErrServiceUnavailable)
		span.RecordError(err)
		return "", err
	}

	content := resp.Choices[0].Message.Content
	duration := time.Since(start)

	span.SetAttributes(
		attribute.Int64("gen_ai.usage.input_tokens", resp.Usage.PromptTokens),
		attribute.Int64("gen_ai.usage.output_tokens", resp.Usage.CompletionTokens),
		attribute.Int64("response_time_ms", duration.Milliseconds()),
	)
	span.AddEvent("gen_ai.choice", trace.WithAttributes(
		attribute.String("gen_ai.system", "openai"),
		attribute.String("content", content),
	))

	if s.debug != nil {
		s.debug.Printf("Generate response op=%s len=%d tokens=%d/%d duration=%v",
			spanName, len(content), resp.Usage.PromptTokens, resp.Usage.CompletionTokens, duration)
	}

	return content, nil
}

// Model returns the configured model name, for logging metadata.
func (s *Service) Model() string {
	return s.model
}
