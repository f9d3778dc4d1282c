package jsonutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePretty(&buf, map[string]any{"pam": "NGG", "size": 20}))
	assert.Equal(t, "{\n  \"pam\": \"NGG\",\n  \"size\": 20\n}\n", buf.String())
}

func TestEncodePrettyKeepsMotifsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePretty(&buf, map[string]string{"pam": "(?P<site>NGG)&"}))
	assert.Equal(t, "{\n  \"pam\": \"(?P<site>NGG)&\"\n}\n", buf.String())
}
