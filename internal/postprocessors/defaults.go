package postprocessors

import (
	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
	"github.com/custodia-labs/quizbank/internal/postprocessors/imagecap"
	"github.com/custodia-labs/quizbank/internal/postprocessors/judgment"
)

// DefaultOrder is the processor order of the default pipeline.
var DefaultOrder = []string{judgment.Name, imagecap.Name}

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register(judgment.Name, buildJudgment)
	r.Register(imagecap.Name, buildImageCap)
}

// BuildDefaultPipeline builds the standard finaliser: type classification
// followed by image capping with the limits from settings.
func BuildDefaultPipeline(settings domain.Settings) (*Pipeline, error) {
	r := NewRegistry()
	RegisterDefaults(r)

	configs := map[string]map[string]any{
		imagecap.Name: {
			"max_images":  settings.MaxImages,
			"keep_images": settings.KeepImages,
		},
	}

	p := NewPipeline()
	for _, name := range DefaultOrder {
		processor, err := r.Build(name, configs[name])
		if err != nil {
			return nil, err
		}
		p.Add(processor)
	}
	return p, nil
}

func buildJudgment(_ map[string]any) (driven.QuestionProcessor, error) {
	return judgment.New(), nil
}

// buildImageCap creates an image cap processor from generic config.
// Supported config keys:
//   - max_images (int): Longest image list left untouched (default: 3)
//   - keep_images (int): Images kept when the list is longer (default: 2)
func buildImageCap(cfg map[string]any) (driven.QuestionProcessor, error) {
	var opts []imagecap.Option

	if cfg != nil {
		if limit := getIntFromConfig(cfg, "max_images"); limit > 0 {
			opts = append(opts, imagecap.WithLimit(limit))
		}
		if keep := getIntFromConfig(cfg, "keep_images"); keep > 0 {
			opts = append(opts, imagecap.WithKeep(keep))
		}
	}

	return imagecap.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
