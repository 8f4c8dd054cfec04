package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// URIScheme is the custom URI scheme for quizbank resources.
	uriScheme = "quizbank://"

	historyExtractions = "extractions"
	historyValidations = "validations"

	// historyLimit bounds the runs a history resource returns.
	historyLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the effective settings.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Effective extraction and validation settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	// Template for run history.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{kind}",
		Name:        "run-history",
		Description: "Recent extraction or validation runs (kind is extractions or validations)",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleSettingsResource returns the effective settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return jsonResource(req.Params.URI, "{}"), nil
	}

	settings := s.ports.Settings.Get()
	info := struct {
		ProjectRoot     string   `json:"project_root"`
		DataDir         string   `json:"data_dir"`
		Encodings       []string `json:"encodings"`
		EncodingMarkers []string `json:"markers"`
		ImageMarkers    []string `json:"image_markers"`
		MaxImages       int      `json:"max_images"`
		KeepImages      int      `json:"keep_images"`
		HistoryEnabled  bool     `json:"history_enabled"`
	}{
		ProjectRoot:     settings.ProjectRoot,
		DataDir:         settings.DataPath(),
		Encodings:       settings.Encodings,
		EncodingMarkers: settings.EncodingMarkers,
		ImageMarkers:    settings.ImageMarkers,
		MaxImages:       settings.MaxImages,
		KeepImages:      settings.KeepImages,
		HistoryEnabled:  settings.HistoryEnabled,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

// handleHistoryResource returns recent runs of one kind.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	kind := extractHistoryKind(req.Params.URI)
	if kind != historyExtractions && kind != historyValidations {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	if s.ports.History == nil {
		return jsonResource(req.Params.URI, "[]"), nil
	}

	var (
		runs any
		err  error
	)
	if kind == historyExtractions {
		runs, err = s.ports.History.Extractions(ctx, historyLimit)
	} else {
		runs, err = s.ports.History.Validations(ctx, historyLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind, err)
	}

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", kind, err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

func jsonResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractHistoryKind extracts the kind from a URI like quizbank://history/{kind}.
func extractHistoryKind(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
