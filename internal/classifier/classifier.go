package classifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/cybercyclones/oceanscan/internal/config"
	"github.com/cybercyclones/oceanscan/pkg/clients"
)

// ErrClassification covers every transport or parse failure of the external
// vision provider. Callers get no retry; the scan fails closed.
var ErrClassification = errors.New("image classification failed")

// Classifier labels a base64-encoded photo with the most basic generic name
// of the object it shows.
type Classifier interface {
	Classify(ctx context.Context, encodedImage string) (string, error)
}

// New selects the provider implementation by its configured name.
func New(cfg *config.Config, client clients.HTTPClientI) (Classifier, error) {
	switch cfg.ClassifierProvider {
	case "openai":
		return NewOpenAI(cfg, client), nil
	default:
		return nil, fmt.Errorf("unsupported classification provider: %s", cfg.ClassifierProvider)
	}
}
