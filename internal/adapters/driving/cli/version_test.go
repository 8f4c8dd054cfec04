package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Output(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"release build", "1.4.0"},
		{"development build", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := version
			version = tt.version
			defer func() { version = original }()

			out, err := executeCommand("version")

			require.NoError(t, err)
			assert.Contains(t, out, "quizbank version "+tt.version+"\n")
			assert.Contains(t, out, "MCP server: ")
			assert.Contains(t, out, "text/html")
			assert.Contains(t, out, "text/plain")
			assert.Contains(t, out, domain.MIMETypeDOCX)
		})
	}
}

func TestVersionCmd_NeedsNoServices(t *testing.T) {
	saved := appServices
	appServices = nil
	defer func() { appServices = saved }()

	_, err := executeCommand("version")

	require.NoError(t, err)
	assert.Nil(t, appServices)
}
