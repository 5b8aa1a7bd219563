package translate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/hupe1980/convokit/logging"
)

// DefaultEndpoint is the public Google translate endpoint.
const DefaultEndpoint = "https://translate.googleapis.com/translate_a/single"

// codePattern matches fenced code blocks and inline code spans. Matched
// segments are swapped for placeholders before translation and restored
// afterwards so the provider never sees them.
var codePattern = regexp.MustCompile("(?s)```.*?```|`[^`\n]+`")

// GoogleOptions configure a GoogleTranslator.
type GoogleOptions struct {
	// Endpoint overrides the translation endpoint (tests point this at a local server).
	Endpoint string
	// Timeout bounds one translation round trip. Defaults to 10s.
	Timeout time.Duration
	// HTTPClient overrides the underlying client. Timeout is ignored when set.
	HTTPClient *http.Client
	// Logger receives degradation warnings. Defaults to NoOpLogger.
	Logger logging.Logger
}

// GoogleTranslator implements core.Translator over the public translate
// endpoint. Every failure path returns the input text so callers can treat
// the result as usable regardless of the error.
type GoogleTranslator struct {
	client   *http.Client
	endpoint string
	logger   logging.Logger
}

// NewGoogleTranslator builds a translator with optional overrides.
func NewGoogleTranslator(optFns ...func(o *GoogleOptions)) *GoogleTranslator {
	opts := GoogleOptions{
		Endpoint: DefaultEndpoint,
		Timeout:  10 * time.Second,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &GoogleTranslator{client: client, endpoint: opts.Endpoint, logger: opts.Logger}
}

// Translate converts text into targetLang. Unsupported targets and identity
// translations (sourceLang == targetLang) return the input unchanged with no
// error; transport failures return the input unchanged with the underlying
// error for callers that want to log it.
func (t *GoogleTranslator) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	if !IsSupported(targetLang) {
		return text, nil
	}
	if sourceLang == targetLang {
		return text, nil
	}

	translated, err := t.translateMarkdown(ctx, text, targetLang, sourceLang)
	if err != nil {
		t.logger.Warn("translation failed, returning original text", "target_lang", targetLang, "error", err)
		return text, err
	}
	return translated, nil
}

// translateMarkdown shields code blocks and inline code behind placeholders,
// translates the remainder and restores the originals.
func (t *GoogleTranslator) translateMarkdown(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	var snippets []string
	shielded := codePattern.ReplaceAllStringFunc(text, func(code string) string {
		placeholder := fmt.Sprintf("XYZCODEBLOCK%dXYZ", len(snippets))
		snippets = append(snippets, code)
		return placeholder
	})

	translated, err := t.request(ctx, shielded, targetLang, sourceLang)
	if err != nil {
		return "", err
	}

	for i, code := range snippets {
		translated = strings.Replace(translated, fmt.Sprintf("XYZCODEBLOCK%dXYZ", i), code, 1)
	}
	return translated, nil
}

func (t *GoogleTranslator) request(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	if sourceLang == "" {
		sourceLang = "auto"
	}
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build translation request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read translation response: %w", err)
	}

	// The endpoint answers with nested arrays: the first element holds
	// [translatedSegment, originalSegment, ...] tuples.
	segments := gjson.GetBytes(body, "0")
	if !segments.Exists() {
		return "", fmt.Errorf("unexpected translation response shape")
	}
	var sb strings.Builder
	for _, seg := range segments.Array() {
		sb.WriteString(seg.Get("0").String())
	}
	return sb.String(), nil
}
