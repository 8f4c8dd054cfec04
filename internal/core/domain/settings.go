package domain

import "path/filepath"

// Default settings values.
const (
	DefaultProjectRoot = "."
	DefaultDataDir     = "driving-test/public/data"
	DefaultBankFile    = "questions_full.json"
	DefaultMaxImages   = 3
	DefaultKeepImages  = 2
)

// DefaultEncodings is the ordered candidate list for the encoding resolver.
var DefaultEncodings = []string{"utf-8", "gb18030", "gbk", "cp936"}

// DefaultEncodingMarkers are substrings a correct decoding is expected to contain
// ("answer", "question", "correct").
var DefaultEncodingMarkers = []string{"答案", "题目", "正确"}

// DefaultImageMarkers are path substrings identifying exported question images.
var DefaultImageMarkers = []string{"full_output.files", "sample_output.files"}

// Settings holds the typed application configuration.
type Settings struct {
	// ProjectRoot anchors relative input paths.
	ProjectRoot string

	// DataDir holds question banks; relative values are joined to ProjectRoot.
	DataDir string

	// Encodings is the ordered encoding candidate list.
	Encodings []string

	// EncodingMarkers must appear in an accepted decoding.
	EncodingMarkers []string

	// ImageMarkers filter image references by path substring.
	ImageMarkers []string

	// MaxImages is the largest image list a question keeps unchanged.
	MaxImages int

	// KeepImages is how many images survive when MaxImages is exceeded.
	KeepImages int

	// HistoryEnabled turns run history recording on.
	HistoryEnabled bool

	// HistoryDir holds the history database; empty means the default location.
	HistoryDir string
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		ProjectRoot:     DefaultProjectRoot,
		DataDir:         DefaultDataDir,
		Encodings:       append([]string(nil), DefaultEncodings...),
		EncodingMarkers: append([]string(nil), DefaultEncodingMarkers...),
		ImageMarkers:    append([]string(nil), DefaultImageMarkers...),
		MaxImages:       DefaultMaxImages,
		KeepImages:      DefaultKeepImages,
		HistoryEnabled:  true,
	}
}

// DataPath returns the resolved data directory.
func (s Settings) DataPath() string {
	if filepath.IsAbs(s.DataDir) {
		return s.DataDir
	}
	return filepath.Join(s.ProjectRoot, s.DataDir)
}

// ResolveInput resolves a document path against the project root.
func (s Settings) ResolveInput(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.ProjectRoot, path)
}

// ResolveBank resolves a question bank name against the data directory.
// Absolute paths are used as given.
func (s Settings) ResolveBank(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.DataPath(), name)
}
