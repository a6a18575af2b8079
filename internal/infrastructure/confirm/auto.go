package confirm

import (
	"context"

	"CiteScanner/internal/domain"
	"CiteScanner/internal/ports"
)

// Auto grants every confirmation request. The workflow never consults a
// Confirmer in noconfirm mode, so Auto only matters as a safe default
// wiring when no terminal is attached.
type Auto struct{}

var _ ports.Confirmer = Auto{}

// Request always confirms.
func (Auto) Request(ctx context.Context, _ domain.ScrapedRecord) (bool, error) {
	return true, ctx.Err()
}
