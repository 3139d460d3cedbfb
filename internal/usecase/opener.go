package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maintainhq/maintain/internal/domain"
)

// BrowserLauncher opens a URL in the user's browser.
type BrowserLauncher interface {
	Open(ctx context.Context, url string) error
}

// PageOpener opens the GitHub page of every configured repository.
type PageOpener struct {
	launcher BrowserLauncher
	logger   *zap.Logger
}

// NewPageOpener creates a new PageOpener instance.
func NewPageOpener(launcher BrowserLauncher, logger *zap.Logger) *PageOpener {
	return &PageOpener{
		launcher: launcher,
		logger:   logger,
	}
}

// OpenAll opens one browser tab per repository, optionally pointing at a
// sub-page such as "actions". Tabs are opened sequentially so window order
// matches the configured repository order. The opened URLs are returned for
// rendering.
func (o *PageOpener) OpenAll(ctx context.Context, repos []domain.Repository, suffix string) ([]string, error) {
	urls := make([]string, 0, len(repos))
	for _, repo := range repos {
		url := repo.PageURL(suffix)
		o.logger.Debug("opening repository page", zap.String("url", url))
		if err := o.launcher.Open(ctx, url); err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", url, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}
