package form

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"
)

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient injects the HTTP client used for URL sources. When omitted,
// URL sources are rejected so purely local setups stay offline.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		l.http = client
	}
}

// WithRequestTimeout bounds each URL load.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(l *Loader) {
		l.timeout = timeout
	}
}

// Loader fetches form definition documents from files, URLs, or memory.
type Loader struct {
	http    *http.Client
	timeout time.Duration
}

// NewLoader constructs a Loader applying the provided options.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load fetches the raw bytes of a definition document.
func (l *Loader) Load(ctx context.Context, src Source) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("form loader: context is required")
	}
	if src == nil {
		return nil, errors.New("form loader: source is nil")
	}

	switch src.Kind() {
	case SourceKindFile:
		data, err := os.ReadFile(src.Location())
		if err != nil {
			return nil, fmt.Errorf("form loader: read %s: %w", src.Location(), err)
		}
		return data, nil
	case SourceKindURL:
		return l.loadHTTP(ctx, src.Location())
	case SourceKindBytes:
		bs, ok := src.(byteSource)
		if !ok {
			return nil, errors.New("form loader: malformed byte source")
		}
		return bs.data, nil
	default:
		return nil, fmt.Errorf("form loader: unsupported source kind %q", src.Kind())
	}
}

// LoadDefinition loads and parses a definition document, sniffing the format:
// documents carrying an OpenAPI marker go through FromOpenAPI using the given
// operation ID, everything else is treated as a YAML definition.
func (l *Loader) LoadDefinition(ctx context.Context, src Source, operationID string) (Definition, error) {
	data, err := l.Load(ctx, src)
	if err != nil {
		return Definition{}, err
	}

	if isOpenAPIDocument(src, data) {
		return FromOpenAPI(ctx, data, operationID)
	}
	return ParseYAML(data)
}

func (l *Loader) loadHTTP(ctx context.Context, url string) ([]byte, error) {
	if l.http == nil {
		return nil, errors.New("form loader: http support disabled")
	}

	reqCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("form loader: build request: %w", err)
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("form loader: fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("form loader: unexpected status %s for %s", resp.Status, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("form loader: read body: %w", err)
	}
	return data, nil
}

func isOpenAPIDocument(src Source, data []byte) bool {
	ext := strings.ToLower(path.Ext(src.Location()))
	if ext == ".yaml" || ext == ".yml" {
		return false
	}
	return bytes.Contains(data, []byte(`"openapi"`)) || bytes.Contains(data, []byte("openapi:"))
}
