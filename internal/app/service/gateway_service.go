package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"learnpath_backend/internal/app/prompt"
	"learnpath_backend/internal/common"
)

// noTextSentinel is returned as a successful summary when an uploaded
// document extracts to blank text; the provider is not called for it.
const noTextSentinel = "This PDF contains no text to summarize."

// Generator is the external text-generation provider.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ExtractFunc converts an uploaded binary document into plain text.
type ExtractFunc func(data []byte) (string, error)

// GatewayResult is a completion shaped for the wire: the raw provider text
// under the feature's JSON key.
type GatewayResult struct {
	Key  string
	Text string
}

// GatewayService is the single validation + dispatch chokepoint for every
// AI-backed endpoint. Authorization happens upstream in middleware; here a
// request is validated, turned into a prompt, sent to the provider once, and
// the completion wrapped under the feature's response key. No retries.
type GatewayService struct {
	gen     Generator
	extract ExtractFunc
	log     *zap.SugaredLogger
}

func NewGatewayService(gen Generator, extract ExtractFunc, log *zap.SugaredLogger) *GatewayService {
	return &GatewayService{gen: gen, extract: extract, log: log}
}

// Run validates a prompt request, builds its prompt, and dispatches it.
// Validation failures return ErrBadRequest before any provider call.
func (s *GatewayService) Run(ctx context.Context, req prompt.Request) (*GatewayResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	text, err := s.gen.GenerateText(ctx, req.Prompt())
	if err != nil {
		s.log.Errorw("generation call failed", "key", req.ResponseKey(), "error", err)
		return nil, common.WithMessage(common.ErrUpstream, err.Error())
	}

	return &GatewayResult{Key: req.ResponseKey(), Text: text}, nil
}

// SummarizeDocument extracts text from an uploaded PDF and summarizes it.
// A document with no extractable text short-circuits with a sentinel
// summary instead of calling the provider.
func (s *GatewayService) SummarizeDocument(ctx context.Context, data []byte) (*GatewayResult, error) {
	text, err := s.extract(data)
	if err != nil {
		s.log.Errorw("document extraction failed", "error", err)
		return nil, common.WithMessage(common.ErrUpstream, "Error processing PDF: "+err.Error())
	}

	if strings.TrimSpace(text) == "" {
		return &GatewayResult{Key: "summary", Text: noTextSentinel}, nil
	}

	return s.Run(ctx, prompt.SummarizeDocument{Text: text})
}
