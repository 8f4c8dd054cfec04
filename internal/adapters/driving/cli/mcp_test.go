package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_Flags(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestNewMCPServer(t *testing.T) {
	s, _ := setupTestServices(t)

	server, err := newMCPServer(s)

	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewMCPServer_MissingServices(t *testing.T) {
	_, err := newMCPServer(&Services{})

	assert.Error(t, err)
}
