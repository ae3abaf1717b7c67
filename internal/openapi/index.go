// Package openapi loads the console's OpenAPI document and compares it
// with the operation catalog.
package openapi

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/pitabwire/fabconsole/model"
)

// IndexedOperation holds a resolved OpenAPI operation.
type IndexedOperation struct {
	OperationID  string
	Method       string
	PathTemplate string
	Parameters   []*openapi3.Parameter
	RequestBody  *openapi3.RequestBody
}

// RequiredWireNames returns the names of required path and query
// parameters followed by required JSON body properties.
func (op IndexedOperation) RequiredWireNames() []string {
	var names []string
	for _, p := range op.Parameters {
		if p.Required && (p.In == openapi3.ParameterInPath || p.In == openapi3.ParameterInQuery) {
			names = append(names, p.Name)
		}
	}
	if op.RequestBody == nil {
		return names
	}
	ct := op.RequestBody.Content.Get("application/json")
	if ct == nil || ct.Schema == nil || ct.Schema.Value == nil {
		return names
	}
	return append(names, ct.Schema.Value.Required...)
}

// Index is an in-memory index of OpenAPI operations keyed by operationId.
type Index struct {
	Version    string
	operations map[string]IndexedOperation
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{operations: make(map[string]IndexedOperation)}
}

// LoadFile parses the document at path.
func LoadFile(path string) (*Index, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: loading %s: %w", path, err)
	}
	return fromDoc(doc), nil
}

// LoadFromData parses a JSON or YAML document. Documents served by a
// console are not validated, only indexed: drift is reported by Verify.
func LoadFromData(data []byte) (*Index, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: parsing document: %w", err)
	}
	return fromDoc(doc), nil
}

// Validate parses data and checks it against the OpenAPI 3 schema.
func Validate(ctx context.Context, data []byte) error {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("openapi: parsing document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("openapi: validating document: %w", err)
	}
	return nil
}

func fromDoc(doc *openapi3.T) *Index {
	idx := NewIndex()
	if doc.Info != nil {
		idx.Version = doc.Info.Version
	}
	if doc.Paths == nil {
		return idx
	}

	for path, pathItem := range doc.Paths.Map() {
		for method, op := range pathItem.Operations() {
			if op.OperationID == "" {
				continue
			}

			// Merge path-level and operation-level parameters.
			params := make([]*openapi3.Parameter, 0)
			for _, ref := range pathItem.Parameters {
				if ref.Value != nil {
					params = append(params, ref.Value)
				}
			}
			for _, ref := range op.Parameters {
				if ref.Value != nil {
					params = append(params, ref.Value)
				}
			}

			var reqBody *openapi3.RequestBody
			if op.RequestBody != nil && op.RequestBody.Value != nil {
				reqBody = op.RequestBody.Value
			}

			idx.operations[op.OperationID] = IndexedOperation{
				OperationID:  op.OperationID,
				Method:       strings.ToUpper(method),
				PathTemplate: path,
				Parameters:   params,
				RequestBody:  reqBody,
			}
		}
	}
	return idx
}

// GetOperation returns the indexed operation with the given operationId.
func (idx *Index) GetOperation(operationID string) (IndexedOperation, bool) {
	op, ok := idx.operations[operationID]
	return op, ok
}

// AllOperationIDs returns every indexed operationId, sorted.
func (idx *Index) AllOperationIDs() []string {
	ids := make([]string, 0, len(idx.operations))
	for id := range idx.operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DriftKind classifies a difference between the catalog and the document.
type DriftKind string

const (
	// DriftMissing means a catalog operation is absent from the document.
	DriftMissing DriftKind = "missing"
	// DriftMethod means the HTTP methods differ.
	DriftMethod DriftKind = "method"
	// DriftPath means the path templates differ.
	DriftPath DriftKind = "path"
	// DriftRequired means the document requires a field the catalog does not map.
	DriftRequired DriftKind = "required"
	// DriftUndocumented means the document has an operation the catalog lacks.
	DriftUndocumented DriftKind = "undocumented"
)

// Drift is one difference found by Verify.
type Drift struct {
	OperationID string    `json:"operation_id"`
	Kind        DriftKind `json:"kind"`
	Detail      string    `json:"detail"`
}

func (d Drift) String() string {
	return fmt.Sprintf("%s: %s: %s", d.OperationID, d.Kind, d.Detail)
}

var placeholder = regexp.MustCompile(`\{[^}]*\}`)

// normalizePath drops placeholder names so /a/{id} and /a/{component_id}
// compare equal.
func normalizePath(p string) string {
	return strings.TrimRight(placeholder.ReplaceAllString(p, "{}"), "/")
}

// samePath accepts document paths relative to a server base path.
func samePath(descriptor, document string) bool {
	d, o := normalizePath(descriptor), normalizePath(document)
	return d == o || (o != "" && strings.HasSuffix(d, o))
}

// Verify compares descriptors with the index. Results are ordered by
// descriptor order, then by operationId for undocumented operations.
func (idx *Index) Verify(descriptors []model.OperationDescriptor) []Drift {
	var drifts []Drift
	known := make(map[string]bool, len(descriptors))

	for _, desc := range descriptors {
		known[desc.ID] = true
		op, ok := idx.operations[desc.ID]
		if !ok {
			drifts = append(drifts, Drift{OperationID: desc.ID, Kind: DriftMissing, Detail: "not in document"})
			continue
		}
		if op.Method != desc.Method {
			drifts = append(drifts, Drift{
				OperationID: desc.ID,
				Kind:        DriftMethod,
				Detail:      fmt.Sprintf("catalog %s, document %s", desc.Method, op.Method),
			})
		}
		if !samePath(desc.PathTemplate, op.PathTemplate) {
			drifts = append(drifts, Drift{
				OperationID: desc.ID,
				Kind:        DriftPath,
				Detail:      fmt.Sprintf("catalog %s, document %s", desc.PathTemplate, op.PathTemplate),
			})
		}

		wire := make(map[string]bool, len(desc.Fields))
		for _, f := range desc.Fields {
			wire[f.WireName] = true
		}
		for _, name := range op.RequiredWireNames() {
			if !wire[name] {
				drifts = append(drifts, Drift{
					OperationID: desc.ID,
					Kind:        DriftRequired,
					Detail:      fmt.Sprintf("document requires %q", name),
				})
			}
		}
	}

	for _, id := range idx.AllOperationIDs() {
		if !known[id] {
			drifts = append(drifts, Drift{OperationID: id, Kind: DriftUndocumented, Detail: "not in catalog"})
		}
	}
	return drifts
}
