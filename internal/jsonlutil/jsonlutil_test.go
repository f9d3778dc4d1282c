package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func never(error) bool { return false }

func TestStartWritesOneLinePerValue(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[int](&buf, 1, func(enc *json.Encoder, v int) error {
		return enc.Encode(map[string]int{"n": v})
	}, never)
	for i := 0; i < 3; i++ {
		in <- i
	}
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "{\"n\":0}\n{\"n\":1}\n{\"n\":2}\n", buf.String())
}

func TestStartDoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[string](&buf, 1, func(enc *json.Encoder, v string) error {
		return enc.Encode(v)
	}, never)
	in <- "<NGG>&"
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "\"<NGG>&\"\n", buf.String())
}

func TestStartDrainsAfterError(t *testing.T) {
	boom := errors.New("boom")
	var buf bytes.Buffer
	in, done := Start[int](&buf, 1, func(enc *json.Encoder, v int) error {
		if v == 1 {
			return boom
		}
		return enc.Encode(v)
	}, never)
	// sends past the failure must not block
	for i := 0; i < 10; i++ {
		in <- i
	}
	close(in)
	assert.ErrorIs(t, <-done, boom)
}

func TestStartSuppressesBrokenPipe(t *testing.T) {
	pipe := errors.New("pipe")
	in, done := Start[int](&bytes.Buffer{}, 1, func(*json.Encoder, int) error { return pipe },
		func(err error) bool { return errors.Is(err, pipe) })
	in <- 1
	close(in)
	assert.NoError(t, <-done)
}
