package skiing_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fbleibel/redmart-ski/skiing"
)

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	err := skiing.WriteResult(&buf, skiing.Result{Distance: 4, Drop: 115})
	assert.NoError(t, err)
	assert.Equal(t, "Length: 5\nDrop: 115\n", buf.String())
}

func TestWriteResult_ZeroValue(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, skiing.WriteResult(&buf, skiing.Result{}))
	assert.Equal(t, "Length: 1\nDrop: 0\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteResult_WriterError(t *testing.T) {
	err := skiing.WriteResult(failingWriter{}, skiing.Result{})
	assert.EqualError(t, err, "disk full")
}
