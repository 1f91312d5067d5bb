package infrastructure

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_Backends(t *testing.T) {
	r, closeFn, err := NewRenderer("chromedp", "", time.Second)
	require.NoError(t, err)
	assert.IsType(t, &ChromedpRenderer{}, r)
	assert.NoError(t, closeFn())

	r, closeFn, err = NewRenderer("rod", "/usr/bin/chromium", 0)
	require.NoError(t, err)
	rod, ok := r.(*RodRenderer)
	require.True(t, ok)
	assert.Equal(t, defaultRenderTimeout, rod.timeout)
	// no browser was launched, so closing is a no-op
	assert.NoError(t, closeFn())
}

func TestNewRenderer_Unknown(t *testing.T) {
	_, _, err := NewRenderer("wkhtmltopdf", "", 0)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestRodRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRodRenderer("", time.Second).RenderHTMLToPDF(ctx, "<html></html>")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteTempHTML(t *testing.T) {
	path, cleanup, err := writeTempHTML("<p>hi</p>")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(b))

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNewJobsPool_EmptyDSN(t *testing.T) {
	pool, err := NewJobsPool(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, pool)
}
