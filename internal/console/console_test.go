package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := New(strings.NewReader("aapl\r\n10\nlast"), &out)

	line, err := c.Ask("symbol: ")
	require.NoError(t, err)
	assert.Equal(t, "aapl", line)

	line, err = c.Ask("qty: ")
	require.NoError(t, err)
	assert.Equal(t, "10", line)

	line, err = c.Ask("more: ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = c.Ask("again: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "symbol: qty: more: again: ", out.String())
}

func TestPrint(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	c.Printf("%s=%d\n", "a", 1)
	c.Println("done")
	assert.Equal(t, "a=1\ndone\n", out.String())
	assert.Same(t, &out, c.Writer())
}
