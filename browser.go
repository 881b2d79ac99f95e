package kargo

import (
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// downloadBrowser returns the path of a cached Chromium build, fetching it
// first if needed. The cache lives in ~/.cache/rod/browser on Unix.
func downloadBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("kargo: downloading browser: %w", err)
	}
	return path, nil
}

// browserPath decides which executable the converter starts. An explicit
// path wins; otherwise chromedp searches the usual locations unless auto
// download was requested.
func (c converterConfig) browserPath() (string, error) {
	if c.chromePath != "" || !c.autoDownload {
		return c.chromePath, nil
	}
	return downloadBrowser()
}
