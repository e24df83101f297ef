package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"time"
)

// MaxDescriptorBytes caps every descriptor payload regardless of origin.
const MaxDescriptorBytes = 1 << 20

// ErrTooLarge reports a payload above MaxDescriptorBytes.
var ErrTooLarge = errors.New("field loader: descriptor payload too large")

const acceptDescriptor = "application/json, application/yaml;q=0.9, text/yaml;q=0.9, */*;q=0.1"

func readFile(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("field loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("field loader: open %s: %w", name, err)
	}
	defer file.Close()
	return readCapped(file, name)
}

func readFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if files == nil {
		return nil, errors.New("field loader: no filesystem configured")
	}
	name = path.Clean(name)
	if name == "" || !fs.ValidPath(name) {
		return nil, fmt.Errorf("field loader: invalid fs path %q", name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := files.Open(name)
	if err != nil {
		return nil, fmt.Errorf("field loader: open %s: %w", name, err)
	}
	defer file.Close()
	return readCapped(file, name)
}

func fetch(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if url == "" {
		return nil, errors.New("field loader: url is required")
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("field loader: build request: %w", err)
	}
	req.Header.Set("Accept", acceptDescriptor)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("field loader: fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("field loader: fetch %s: unexpected status %s", url, resp.Status)
	}
	return readCapped(resp.Body, url)
}

func readCapped(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDescriptorBytes+1))
	if err != nil {
		return nil, fmt.Errorf("field loader: read %s: %w", name, err)
	}
	if len(data) > MaxDescriptorBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, name, MaxDescriptorBytes)
	}
	return data, nil
}
