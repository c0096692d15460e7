package intcode_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/gointcode"
	"github.com/jcorbin/gointcode/internal/flushio"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrive(t *testing.T) {
	t.Run("print output", func(t *testing.T) {
		var buf bytes.Buffer
		out := intcode.NewPrintOutput(&buf)
		err := intcode.MustParse("104,1,104,-2,104,1125899906842624,99").RunWithIO(intcode.NewScriptedInput(), out)
		require.NoError(t, err)
		assert.Equal(t, "1\n-2\n1125899906842624\n", buf.String())
	})

	t.Run("ascii output", func(t *testing.T) {
		var buf bytes.Buffer
		out := intcode.NewASCIIOutput(&buf)
		err := intcode.MustParse("104,72,104,105,104,10,104,1000,99").RunWithIO(intcode.NewScriptedInput(), out)
		require.NoError(t, err)
		assert.Equal(t, "Hi\n1000\n", buf.String())
	})

	t.Run("input func", func(t *testing.T) {
		n := intcode.Word(0)
		in := intcode.InputFunc(func() (intcode.Word, error) {
			if n >= 3 {
				return 0, io.EOF
			}
			n++
			return n, nil
		})
		var outs intcode.CollectOutput
		err := intcode.MustParse("3,100,4,100,1105,1,0").RunWithIO(in, &outs)
		assert.True(t, errors.Is(err, intcode.ErrNoMoreInput), "expected EOF to become ErrNoMoreInput, got %v", err)
		assert.Equal(t, intcode.CollectOutput{1, 2, 3}, outs)
	})

	t.Run("output error", func(t *testing.T) {
		boom := errors.New("boom")
		out := intcode.OutputFunc(func(intcode.Word) error { return boom })
		err := intcode.MustParse("104,1,99").RunWithIO(intcode.NewScriptedInput(), out)
		assert.True(t, errors.Is(err, boom), "expected output error, got %v", err)
	})

	t.Run("flush before input", func(t *testing.T) {
		var (
			sink    bytes.Buffer
			flushes []string
		)
		out := intcode.NewPrintOutput(recordingFlusher{&sink, &flushes})
		in := intcode.InputFunc(func() (intcode.Word, error) {
			flushes = append(flushes, "read after "+strings.TrimSpace(sink.String()))
			return 5, nil
		})
		err := intcode.MustParse("104,1,3,0,4,0,99").RunWithIO(in, out)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"flush",
			"read after 1",
			"flush",
		}, flushes)
		assert.Equal(t, "1\n5\n", sink.String())
	})

	t.Run("scripted remaining", func(t *testing.T) {
		in := intcode.NewScriptedInput(1, 2, 3)
		err := intcode.MustParse("3,0,99").RunWithIO(in, intcode.Discard)
		require.NoError(t, err)
		assert.Equal(t, []intcode.Word{2, 3}, in.Remaining())
	})
}

// recordingFlusher notes every flush; its writes go straight to the sink
type recordingFlusher struct {
	io.Writer
	flushes *[]string
}

var _ flushio.WriteFlusher = recordingFlusher{}

func (rf recordingFlusher) Flush() error {
	*rf.flushes = append(*rf.flushes, "flush")
	return nil
}
