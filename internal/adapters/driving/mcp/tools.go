package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driving"
)

// ExtractInput is the input schema for the extract_questions tool.
type ExtractInput struct {
	Input  string `json:"input" jsonschema:"path of the exported HTML, .docx or text document"`
	Output string `json:"output,omitempty" jsonschema:"question bank file name (default questions_full.json)"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"parse and report without writing the bank"`
}

// ExtractOutput is the output schema for the extract_questions tool.
type ExtractOutput struct {
	InputPath      string   `json:"input_path"`
	OutputPath     string   `json:"output_path"`
	Encoding       string   `json:"encoding"`
	Fallback       bool     `json:"fallback"`
	Paragraphs     int      `json:"paragraphs"`
	Count          int      `json:"count"`
	DiscardedLines int      `json:"discarded_lines"`
	Written        bool     `json:"written"`
	RunID          string   `json:"run_id,omitempty"`
	QuestionIDs    []string `json:"question_ids"`
}

// ValidateInput is the input schema for the validate_bank tool.
type ValidateInput struct {
	File        string `json:"file,omitempty" jsonschema:"question bank file name (default questions_full.json)"`
	WriteHidden string `json:"write_hidden,omitempty" jsonschema:"file name to write the suggested hide list to"`
}

// ValidateOutput is the output schema for the validate_bank tool.
type ValidateOutput struct {
	Path                string                  `json:"path"`
	Total               int                     `json:"total"`
	CriticalCount       int                     `json:"critical_count"`
	ImageWarningCount   int                     `json:"image_warning_count"`
	ContentWarningCount int                     `json:"content_warning_count"`
	Issues              []domain.QuestionIssues `json:"issues"`
	HideSuggestions     []string                `json:"hide_suggestions"`
	HiddenPath          string                  `json:"hidden_path,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolExtract,
		Description: "Extract quiz questions from an exported Word document (HTML or .docx) into a JSON question bank",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolValidate,
		Description: "Check a JSON question bank for structural problems and suggest ids to hide",
	}, s.handleValidate)
}

// handleExtract handles the extract_questions tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	output := input.Output
	if output == "" {
		output = domain.DefaultBankFile
	}

	inputPath := s.ports.resolveInput(input.Input)
	outputPath := s.ports.resolveBank(output)

	result, err := s.ports.Extraction.Extract(ctx, inputPath, outputPath, driving.ExtractOptions{
		DryRun: input.DryRun,
	})
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	ids := make([]string, len(result.Questions))
	for i := range result.Questions {
		ids[i] = result.Questions[i].ID
	}

	return nil, ExtractOutput{
		InputPath:      inputPath,
		OutputPath:     result.OutputPath,
		Encoding:       result.Decoding.Encoding,
		Fallback:       result.Decoding.Fallback,
		Paragraphs:     result.Paragraphs,
		Count:          len(result.Questions),
		DiscardedLines: result.DiscardedLines,
		Written:        result.Written,
		RunID:          result.RunID,
		QuestionIDs:    ids,
	}, nil
}

// handleValidate handles the validate_bank tool invocation.
func (s *Server) handleValidate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ValidateInput,
) (*mcp.CallToolResult, ValidateOutput, error) {
	file := input.File
	if file == "" {
		file = domain.DefaultBankFile
	}
	path := s.ports.resolveBank(file)

	report, err := s.ports.Validation.ValidateFile(ctx, path)
	if err != nil {
		return nil, ValidateOutput{}, err
	}

	output := ValidateOutput{
		Path:                path,
		Total:               report.Total,
		CriticalCount:       report.CriticalCount,
		ImageWarningCount:   report.ImageWarningCount,
		ContentWarningCount: report.ContentWarningCount,
		Issues:              report.PerQuestionIssues,
		HideSuggestions:     report.HideSuggestions,
	}

	if input.WriteHidden != "" {
		hiddenPath := s.ports.resolveBank(input.WriteHidden)
		if err := s.ports.Validation.WriteHidden(ctx, hiddenPath, report.HideSuggestions); err != nil {
			return nil, ValidateOutput{}, err
		}
		output.HiddenPath = hiddenPath
	}

	return nil, output, nil
}
