package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarnfAndErrorf(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	Warnf(&buf, false, "reference has %d extra records", 2)
	Warnf(&buf, true, "hidden")
	Errorf(&buf, "bad %s", "input")
	assert.Equal(t, "warning: reference has 2 extra records\nerror: bad input\n", buf.String())
}

func collector(buf *[]int) (chan<- int, <-chan error) {
	in := make(chan int)
	done := make(chan error, 1)
	go func() {
		for v := range in {
			*buf = append(*buf, v)
		}
		done <- nil
	}()
	return in, done
}

func TestStreamSendsAll(t *testing.T) {
	var got []int
	in, done := collector(&got)
	n, err := Stream(context.Background(), []int{1, 2, 3}, in, done)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestStreamCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := make(chan int) // never read; only cancellation can unblock
	done := make(chan error, 1)
	done <- nil
	n, err := Stream(ctx, []int{1, 2}, in, done)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreamWriterErrorWins(t *testing.T) {
	boom := errors.New("boom")
	in := make(chan int, 4)
	done := make(chan error, 1)
	done <- boom
	_, err := Stream(context.Background(), []int{1}, in, done)
	assert.ErrorIs(t, err, boom)
}
