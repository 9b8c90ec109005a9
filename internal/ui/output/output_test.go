package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/loom/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_NilWriterDefaults(t *testing.T) {
	out := output.New(nil)
	assert.NotNil(t, out)
}

func TestNew_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	_, err := out.WriteString("hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}
