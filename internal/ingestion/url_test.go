package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPage = `<!DOCTYPE html>
<html><body>
<nav>Careers home</nav>
<div class="job-description">
<h2>Backend Engineer</h2>
<p>Requirements:</p>
<ul><li>3+ years of Python</li><li>AWS</li></ul>
</div>
<form>Apply</form>
<footer>Footer</footer>
</body></html>`

func TestIngestFromURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPage))
	}))
	defer server.Close()

	text, meta, err := IngestFromURL(context.Background(), server.URL, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer\nRequirements:\n- 3+ years of Python\n- AWS", text)
	assert.Equal(t, server.URL, meta.URL)
	assert.Equal(t, "generic", meta.Platform)
	assert.Equal(t, ComputeHash(text), meta.Hash)
}

func TestIngestFromURL_Errors(t *testing.T) {
	t.Run("invalid URL", func(t *testing.T) {
		_, _, err := IngestFromURL(context.Background(), "not-a-url", nil, nil)
		assert.ErrorIs(t, err, ErrHTTPRequestFailed)
	})

	t.Run("HTTP error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, _, err := IngestFromURL(context.Background(), server.URL, nil, nil)
		assert.ErrorIs(t, err, ErrHTTPRequestFailed)
	})

	t.Run("empty page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html><body><script>x()</script></body></html>"))
		}))
		defer server.Close()

		_, _, err := IngestFromURL(context.Background(), server.URL, nil, nil)
		assert.ErrorIs(t, err, ErrContentExtractionFailed)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})
}

func TestIngest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Go developer"), 0o644))

	text, _, err := Ingest(context.Background(), path, "http://ignored.invalid", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Go developer", text)

	_, _, err = Ingest(context.Background(), "", "", nil, nil)
	assert.Error(t, err)
}
