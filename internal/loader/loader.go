// Package loader resolves field.Source values into descriptor documents.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-formdecor/pkg/field"
)

// Loader reads descriptor payloads from disk, an fs.FS or HTTP.
type Loader struct {
	files   fs.FS
	client  *http.Client
	timeout time.Duration
}

var _ field.Loader = (*Loader)(nil)

// New constructs a Loader. URL sources stay disabled unless options carry an
// HTTP client or enable the fallback client.
func New(options field.LoaderOptions) *Loader {
	l := &Loader{
		files:   options.FileSystem,
		timeout: options.RequestTimeout,
	}
	switch {
	case options.HTTPClient != nil:
		client := *options.HTTPClient
		if l.timeout > 0 && client.Timeout == 0 {
			client.Timeout = l.timeout
		}
		l.client = &client
	case options.AllowHTTPFallback:
		l.client = &http.Client{Timeout: l.timeout}
	}
	return l
}

// Load fetches the payload behind src and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src field.Source) (field.Document, error) {
	if src == nil {
		return field.Document{}, errors.New("field loader: source is nil")
	}

	var (
		data []byte
		err  error
	)
	switch kind := src.Kind(); kind {
	case field.SourceKindFile:
		data, err = readFile(ctx, src.Location())
	case field.SourceKindFS:
		data, err = readFS(ctx, l.files, src.Location())
	case field.SourceKindURL:
		if l.client == nil {
			return field.Document{}, errors.New("field loader: http support disabled")
		}
		data, err = fetch(ctx, l.client, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("field loader: unsupported source kind %q", kind)
	}
	if err != nil {
		return field.Document{}, err
	}
	return field.NewDocument(src, data)
}
