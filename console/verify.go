package console

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/pitabwire/fabconsole/internal/catalog"
	"github.com/pitabwire/fabconsole/internal/openapi"
)

// Drift is one difference between the catalog and the console's OpenAPI document.
type Drift = openapi.Drift

// DriftKind classifies a Drift.
type DriftKind = openapi.DriftKind

// Drift kinds.
const (
	DriftMissing      = openapi.DriftMissing
	DriftMethod       = openapi.DriftMethod
	DriftPath         = openapi.DriftPath
	DriftRequired     = openapi.DriftRequired
	DriftUndocumented = openapi.DriftUndocumented
)

// VerifyOpenAPI downloads the console's OpenAPI document and compares it
// with the operation catalog. An empty result means no drift.
func (s *Service) VerifyOpenAPI(ctx context.Context) ([]Drift, error) {
	resp, err := s.GetSwagger(ctx, nil)
	if err != nil {
		return nil, err
	}

	data := resp.RawBody
	if len(data) == 0 {
		switch v := resp.Result.(type) {
		case string:
			data = []byte(v)
		case nil:
		default:
			if data, err = json.Marshal(v); err != nil {
				return nil, fmt.Errorf("console: openapi document: %w", err)
			}
		}
	}

	idx, err := openapi.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	drifts := idx.Verify(catalog.All())
	s.logger.Debug("openapi verified",
		zap.String("document_version", idx.Version),
		zap.Int("drifts", len(drifts)),
	)
	return drifts, nil
}
