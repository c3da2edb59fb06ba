package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

const naverPage = `<!DOCTYPE html>
<html><head><title>뉴스</title><script>var x = 1;</script></head>
<body>
<nav>메뉴</nav>
<div id="dic_area" class="newsct_article _article_body">
  <span class="end_photo_org"><img src="a.jpg"><em class="img_desc">사진 설명</em></span>
  정부는 오늘 새 예산안을 발표했습니다.<br><br>
  예산 규모는 &quot;역대 최대&quot;인   600조 원입니다.
  <script>track();</script>
</div>
<footer>저작권</footer>
</body></html>`

const blogPage = `<!DOCTYPE html>
<html><head><title>Budget announced</title></head>
<body>
<header>Site header</header>
<article>
<h1>Budget announced</h1>
<p>The government announced a new budget today. It is the largest budget in the history of the country and includes spending on welfare, defence and education.</p>
<p>Officials said the plan would be debated in parliament next week, and opposition parties have already signalled objections to several line items.</p>
<p>Economists expect the budget to raise growth forecasts for the coming year, although inflation remains a concern for many analysts.</p>
</article>
<footer>Footer</footer>
</body></html>`

func newTestFetcher(opts Options) Fetcher {
	if opts.Selector == "" {
		opts.Selector = "div.newsct_article._article_body"
	}
	return New(nil, opts, logger.Nop())
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchExtractsContainer(t *testing.T) {
	srv := serve(t, http.StatusOK, naverPage)

	text, err := newTestFetcher(Options{Timeout: 5 * time.Second}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "정부는 오늘 새 예산안을 발표했습니다.\n\n예산 규모는 \"역대 최대\"인 600조 원입니다.", text)
	assert.NotContains(t, text, "사진 설명")
	assert.NotContains(t, text, "track()")
	assert.NotContains(t, text, "메뉴")
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		url    string
	}{
		{name: "missing container", status: http.StatusOK, body: blogPage},
		{name: "server error", status: http.StatusInternalServerError, body: naverPage},
		{name: "not found", status: http.StatusNotFound, body: ""},
		{name: "invalid url", url: "not a url"},
		{name: "unsupported scheme", url: "ftp://example.com/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.url
			if target == "" {
				target = serve(t, tt.status, tt.body).URL
			}

			text, err := newTestFetcher(Options{}).Fetch(context.Background(), target)
			require.Error(t, err)
			assert.Empty(t, text)
			assert.True(t, apperr.Is(err, apperr.KindFetch), "want fetch error, got %v", err)
		})
	}
}

func TestFetchContainerErrorIsWrapped(t *testing.T) {
	srv := serve(t, http.StatusOK, blogPage)

	_, err := newTestFetcher(Options{}).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestFetchReadabilityFallback(t *testing.T) {
	srv := serve(t, http.StatusOK, blogPage)

	text, err := newTestFetcher(Options{ReadabilityFallback: true}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "The government announced a new budget today.")
}

func TestFetchSendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(naverPage))
	}))
	defer srv.Close()

	_, err := newTestFetcher(Options{UserAgent: "briefcast-test"}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "briefcast-test", got)
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses spaces", "a   b\t c", "a b c"},
		{"trims lines", "  a  \n  b  ", "a\nb"},
		{"caps blank lines", "a\n\n\n\n\nb", "a\n\nb"},
		{"crlf", "a\r\nb", "a\nb"},
		{"empty", "   \n  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeWhitespace(tt.in))
		})
	}
}

func TestPlainTextDecodesEntities(t *testing.T) {
	got := plainText(`<p>A &amp; B</p> <b>&lt;속보&gt;</b>`)
	assert.True(t, strings.HasPrefix(got, "A & B"))
	assert.Contains(t, got, "<속보>")
}
