package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
	"github.com/custodia-labs/quizbank/internal/core/ports/driving"
	"github.com/custodia-labs/quizbank/internal/logger"
	"github.com/custodia-labs/quizbank/internal/reconstruct"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// ExtractionService runs the extraction pipeline:
// decode, normalise, reconstruct, finalise, save.
type ExtractionService struct {
	decoder       driven.Decoder
	normalisers   driven.NormaliserRegistry
	finalizer     driven.Finalizer
	bankStore     driven.BankStore
	runStore      driven.RunStore
	reconstructor *reconstruct.Reconstructor
}

// NewExtractionService creates a new extraction service.
// runStore may be nil to disable history.
func NewExtractionService(
	decoder driven.Decoder,
	normalisers driven.NormaliserRegistry,
	finalizer driven.Finalizer,
	bankStore driven.BankStore,
	runStore driven.RunStore,
) *ExtractionService {
	return &ExtractionService{
		decoder:       decoder,
		normalisers:   normalisers,
		finalizer:     finalizer,
		bankStore:     bankStore,
		runStore:      runStore,
		reconstructor: reconstruct.New(),
	}
}

// Parse extracts questions from document bytes. Nothing is written.
func (s *ExtractionService) Parse(ctx context.Context, name string, data []byte) (*domain.Extraction, error) {
	logger.Section("Extraction")

	mimeType, err := s.normalisers.DetectMIMEType(name)
	if err != nil {
		return nil, err
	}

	var decoding domain.Decoding
	if domain.IsBinaryMIMEType(mimeType) {
		// Office Open XML parts are UTF-8.
		decoding = domain.Decoding{Encoding: "utf-8"}
	} else {
		decoding = s.decoder.Decode(data)
		logger.Debug("Decoded %d bytes as %s (fallback=%t)", len(data), decoding.Encoding, decoding.Fallback)
	}

	normalised, err := s.normalisers.Normalise(ctx, &domain.RawDocument{
		URI:      name,
		MIMEType: mimeType,
		Text:     decoding.Text,
		Content:  data,
		Encoding: decoding.Encoding,
	})
	if err != nil {
		return nil, fmt.Errorf("normalise %s: %w", name, err)
	}
	logger.Debug("Found %d paragraphs", len(normalised.Paragraphs))

	result, err := s.reconstructor.Run(ctx, normalised.Paragraphs, s.finalizer)
	if err != nil {
		return nil, fmt.Errorf("reconstruct %s: %w", name, err)
	}
	logger.Info("Parsed %d questions, discarded %d lines", len(result.Questions), result.DiscardedLines)

	questions := make([]domain.Question, len(result.Questions))
	for i, q := range result.Questions {
		questions[i] = *q
	}

	return &domain.Extraction{
		Questions:      questions,
		Decoding:       decoding,
		Paragraphs:     len(normalised.Paragraphs),
		DiscardedLines: result.DiscardedLines,
	}, nil
}

// Extract reads inputPath and writes its questions to outputPath.
// Nothing is written on a dry run or when no question was found, so an
// existing bank is never replaced by an empty one.
func (s *ExtractionService) Extract(
	ctx context.Context, inputPath, outputPath string, opts driving.ExtractOptions,
) (*driving.ExtractResult, error) {
	started := time.Now()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, inputPath)
		}
		return nil, fmt.Errorf("read input: %w", err)
	}

	extraction, err := s.Parse(ctx, inputPath, data)
	if err != nil {
		return nil, err
	}

	result := &driving.ExtractResult{
		Extraction: *extraction,
		OutputPath: outputPath,
	}

	if !opts.DryRun && len(extraction.Questions) > 0 {
		if err := s.bankStore.Save(ctx, outputPath, extraction.Questions); err != nil {
			return nil, fmt.Errorf("save bank: %w", err)
		}
		result.Written = true
		logger.Debug("Saved %d questions to %s", len(extraction.Questions), outputPath)
	}

	if s.runStore != nil {
		run := domain.ExtractionRun{
			ID:             uuid.New().String(),
			InputPath:      inputPath,
			OutputPath:     outputPath,
			Encoding:       extraction.Decoding.Encoding,
			Fallback:       extraction.Decoding.Fallback,
			Paragraphs:     extraction.Paragraphs,
			Questions:      len(extraction.Questions),
			DiscardedLines: extraction.DiscardedLines,
			Written:        result.Written,
			StartedAt:      started,
			Duration:       time.Since(started),
		}
		if err := s.runStore.SaveExtraction(ctx, run); err != nil {
			logger.Warn("failed to record extraction run: %v", err)
		} else {
			result.RunID = run.ID
		}
	}

	return result, nil
}
