package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>Backend Engineer wanted</main></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Backend Engineer wanted")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestExtractJobText_PrefersJobSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Site navigation</nav>
		<div class="job-description">Senior Go developer. Docker and Kubernetes required.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractJobText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go developer")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractJobText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting with no recognizable container.</p></body></html>`

	text, err := ExtractJobText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting with no recognizable container.")
}

func TestExtractJobText_NormalizesWhitespace(t *testing.T) {
	html := "<html><body><main>  line one  \n\n\n   line two   </main></body></html>"

	text, err := ExtractJobText(html)

	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short stub"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("job requirements ", 50)))
}

func TestJobDescription_StaticPage(t *testing.T) {
	posting := strings.Repeat("We are hiring a Go engineer with SQL and AWS experience. ", 20)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><main>" + posting + "</main></body></html>"))
	}))
	defer server.Close()

	text, err := JobDescription(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Contains(t, text, "Go engineer with SQL")
}

func TestError_Unwrap(t *testing.T) {
	cause := context.DeadlineExceeded
	err := &Error{URL: "http://example.com", Message: "HTTP request failed", Cause: cause}

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "http://example.com")
}
