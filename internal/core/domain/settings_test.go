package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, []string{"utf-8", "gb18030", "gbk", "cp936"}, s.Encodings)
	assert.Equal(t, []string{"答案", "题目", "正确"}, s.EncodingMarkers)
	assert.Equal(t, []string{"full_output.files", "sample_output.files"}, s.ImageMarkers)
	assert.Equal(t, 3, s.MaxImages)
	assert.Equal(t, 2, s.KeepImages)
	assert.True(t, s.HistoryEnabled)
}

// TestDefaultSettings_Independent tests that defaults are not shared slices
func TestDefaultSettings_Independent(t *testing.T) {
	s := DefaultSettings()
	s.Encodings[0] = "latin1"

	assert.Equal(t, "utf-8", DefaultEncodings[0])
}

func TestSettings_Resolve(t *testing.T) {
	s := Settings{ProjectRoot: "/project", DataDir: "driving-test/public/data"}

	assert.Equal(t, "/project/driving-test/public/data", s.DataPath())
	assert.Equal(t, "/project/docs/full.html", s.ResolveInput("docs/full.html"))
	assert.Equal(t, "/abs/full.html", s.ResolveInput("/abs/full.html"))
	assert.Equal(t, "/project/driving-test/public/data/q.json", s.ResolveBank("q.json"))
	assert.Equal(t, "/tmp/q.json", s.ResolveBank("/tmp/q.json"))
}

func TestSettings_AbsoluteDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := Settings{ProjectRoot: "/project", DataDir: dir}

	assert.Equal(t, dir, s.DataPath())
	assert.Equal(t, filepath.Join(dir, "q.json"), s.ResolveBank("q.json"))
}
