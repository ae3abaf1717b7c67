// Package catalog is the static table of console operations. Each row is
// one endpoint; descriptors are built once at package init and handed out
// as copies.
package catalog

import (
	"fmt"
	"net/http"

	"github.com/pitabwire/fabconsole/model"
)

// Operation identifiers.
const (
	GetComponent           = "getComponent"
	RemoveComponent        = "removeComponent"
	DeleteComponent        = "deleteComponent"
	CreateCa               = "createCa"
	ImportCa               = "importCa"
	UpdateCa               = "updateCa"
	EditCa                 = "editCa"
	CaAction               = "caAction"
	CreatePeer             = "createPeer"
	ImportPeer             = "importPeer"
	EditPeer               = "editPeer"
	PeerAction             = "peerAction"
	UpdatePeer             = "updatePeer"
	CreateOrderer          = "createOrderer"
	ImportOrderer          = "importOrderer"
	EditOrderer            = "editOrderer"
	OrdererAction          = "ordererAction"
	UpdateOrderer          = "updateOrderer"
	SubmitBlock            = "submitBlock"
	ImportMsp              = "importMsp"
	EditMsp                = "editMsp"
	GetMspCertificate      = "getMspCertificate"
	EditAdminCerts         = "editAdminCerts"
	ListComponents         = "listComponents"
	GetComponentsByType    = "getComponentsByType"
	GetComponentsByTag     = "getComponentsByTag"
	RemoveComponentsByTag  = "removeComponentsByTag"
	DeleteComponentsByTag  = "deleteComponentsByTag"
	DeleteAllComponents    = "deleteAllComponents"
	GetSettings            = "getSettings"
	EditSettings           = "editSettings"
	GetFabVersions         = "getFabVersions"
	GetHealth              = "getHealth"
	ListNotifications      = "listNotifications"
	DeleteSigTx            = "deleteSigTx"
	ArchiveNotifications   = "archiveNotifications"
	Restart                = "restart"
	DeleteAllSessions      = "deleteAllSessions"
	DeleteAllNotifications = "deleteAllNotifications"
	ClearCaches            = "clearCaches"
	GetPostman             = "getPostman"
	GetSwagger             = "getSwagger"
)

const (
	base = "/ak/api/v3"
	kube = base + "/kubernetes"
)

var componentQuery = []string{"deployment_attrs", "parsed_certs", "cache", "ca_attrs"}
var listQuery = []string{"deployment_attrs", "parsed_certs", "cache"}

// row is one endpoint as written in the table. Path fields come from the
// template placeholders; query and body hold wire names. Caller names are
// the camelCase form of wire names.
type row struct {
	id       string
	method   string
	path     string
	required []string
	query    []string
	body     []string
	accept   string
}

var rows = []row{
	{id: GetComponent, method: http.MethodGet, path: base + "/components/{id}", required: []string{"id"}, query: componentQuery},
	{id: RemoveComponent, method: http.MethodDelete, path: base + "/components/{id}", required: []string{"id"}},
	{id: DeleteComponent, method: http.MethodDelete, path: kube + "/components/{id}", required: []string{"id"}},

	{id: CreateCa, method: http.MethodPost, path: kube + "/components/fabric-ca",
		required: []string{"displayName", "configOverride"},
		body: []string{"display_name", "config_override", "id", "resources", "storage", "zone",
			"replicas", "tags", "hsm", "region", "version"}},
	{id: ImportCa, method: http.MethodPost, path: base + "/components/fabric-ca",
		required: []string{"displayName", "apiUrl", "msp"},
		body: []string{"display_name", "api_url", "msp", "id", "location", "operations_url",
			"tags", "tls_cert"}},
	{id: UpdateCa, method: http.MethodPut, path: kube + "/components/fabric-ca/{id}",
		required: []string{"id"},
		body:     []string{"config_override", "replicas", "resources", "version", "zone"}},
	{id: EditCa, method: http.MethodPut, path: base + "/components/fabric-ca/{id}",
		required: []string{"id"},
		body:     []string{"display_name", "api_url", "operations_url", "ca_name", "location", "tags"}},
	{id: CaAction, method: http.MethodPost, path: kube + "/components/fabric-ca/{id}/actions",
		required: []string{"id"},
		body:     []string{"restart", "renew"}},

	{id: CreatePeer, method: http.MethodPost, path: kube + "/components/fabric-peer",
		required: []string{"mspId", "displayName", "crypto"},
		body: []string{"msp_id", "display_name", "crypto", "id", "config_override", "resources",
			"storage", "zone", "state_db", "tags", "hsm", "region", "version"}},
	{id: ImportPeer, method: http.MethodPost, path: base + "/components/fabric-peer",
		required: []string{"displayName", "grpcwpUrl", "msp", "mspId"},
		body: []string{"display_name", "grpcwp_url", "msp", "msp_id", "id", "api_url", "location",
			"operations_url", "tags"}},
	{id: EditPeer, method: http.MethodPut, path: base + "/components/fabric-peer/{id}",
		required: []string{"id"},
		body: []string{"display_name", "api_url", "operations_url", "grpcwp_url", "msp_id",
			"location", "tags"}},
	{id: PeerAction, method: http.MethodPost, path: kube + "/components/fabric-peer/{id}/actions",
		required: []string{"id"},
		body:     []string{"restart", "reenroll", "enroll", "upgrade_dbs"}},
	{id: UpdatePeer, method: http.MethodPut, path: kube + "/components/fabric-peer/{id}",
		required: []string{"id"},
		body: []string{"admin_certs", "config_override", "crypto", "node_ou", "replicas",
			"resources", "version", "zone"}},

	{id: CreateOrderer, method: http.MethodPost, path: kube + "/components/fabric-orderer",
		required: []string{"ordererType", "mspId", "displayName", "crypto"},
		body: []string{"orderer_type", "msp_id", "display_name", "crypto", "cluster_name", "id",
			"cluster_id", "external_append", "config_override", "resources", "storage",
			"system_channel_id", "zone", "tags", "region", "hsm", "version"}},
	{id: ImportOrderer, method: http.MethodPost, path: base + "/components/fabric-orderer",
		required: []string{"clusterName", "displayName", "grpcwpUrl", "msp", "mspId"},
		body: []string{"cluster_name", "display_name", "grpcwp_url", "msp", "msp_id", "api_url",
			"cluster_id", "id", "location", "operations_url", "system_channel_id", "tags"}},
	{id: EditOrderer, method: http.MethodPut, path: base + "/components/fabric-orderer/{id}",
		required: []string{"id"},
		body: []string{"cluster_name", "display_name", "api_url", "operations_url", "grpcwp_url",
			"msp_id", "consenter_proposal_fin", "location", "system_channel_id", "tags"}},
	{id: OrdererAction, method: http.MethodPost, path: kube + "/components/fabric-orderer/{id}/actions",
		required: []string{"id"},
		body:     []string{"restart", "reenroll", "enroll"}},
	{id: UpdateOrderer, method: http.MethodPut, path: kube + "/components/fabric-orderer/{id}",
		required: []string{"id"},
		body: []string{"admin_certs", "config_override", "crypto", "node_ou", "replicas",
			"resources", "version", "zone"}},

	{id: SubmitBlock, method: http.MethodPut, path: kube + "/components/{id}/config",
		required: []string{"id"},
		body:     []string{"b64_block"}},

	{id: ImportMsp, method: http.MethodPost, path: base + "/components/msp",
		required: []string{"mspId", "displayName", "rootCerts"},
		body: []string{"msp_id", "display_name", "root_certs", "intermediate_certs", "admins",
			"tls_root_certs"}},
	{id: EditMsp, method: http.MethodPut, path: base + "/components/msp/{id}",
		required: []string{"id"},
		body: []string{"msp_id", "display_name", "root_certs", "intermediate_certs", "admins",
			"tls_root_certs"}},
	{id: GetMspCertificate, method: http.MethodGet, path: base + "/components/msps/{msp_id}",
		required: []string{"mspId"},
		query:    []string{"cache"}},
	{id: EditAdminCerts, method: http.MethodPut, path: kube + "/components/{id}/certs",
		required: []string{"id"},
		body:     []string{"append_admin_certs", "remove_admin_certs"}},

	{id: ListComponents, method: http.MethodGet, path: base + "/components", query: componentQuery},
	{id: GetComponentsByType, method: http.MethodGet, path: base + "/components/types/{type}",
		required: []string{"type"}, query: listQuery},
	{id: GetComponentsByTag, method: http.MethodGet, path: base + "/components/tags/{tag}",
		required: []string{"tag"}, query: listQuery},
	{id: RemoveComponentsByTag, method: http.MethodDelete, path: base + "/components/tags/{tag}",
		required: []string{"tag"}},
	{id: DeleteComponentsByTag, method: http.MethodDelete, path: kube + "/components/tags/{tag}",
		required: []string{"tag"}},
	{id: DeleteAllComponents, method: http.MethodDelete, path: kube + "/components/purge"},

	{id: GetSettings, method: http.MethodGet, path: base + "/settings"},
	{id: EditSettings, method: http.MethodPut, path: base + "/settings",
		body: []string{"inactivity_timeouts", "file_logging", "max_req_per_min", "max_req_per_min_ak",
			"fabric_get_block_timeout_ms", "fabric_instantiate_timeout_ms",
			"fabric_join_channel_timeout_ms", "fabric_install_cc_timeout_ms",
			"fabric_lc_install_cc_timeout_ms", "fabric_lc_get_cc_timeout_ms",
			"fabric_general_timeout_ms"}},
	{id: GetFabVersions, method: http.MethodGet, path: kube + "/fabric/versions", query: []string{"cache"}},
	{id: GetHealth, method: http.MethodGet, path: base + "/health"},

	{id: ListNotifications, method: http.MethodGet, path: base + "/notifications",
		query: []string{"limit", "skip", "component_id"}},
	{id: DeleteSigTx, method: http.MethodDelete, path: base + "/signature_collections/{id}",
		required: []string{"id"}},
	{id: ArchiveNotifications, method: http.MethodPost, path: base + "/notifications/bulk",
		required: []string{"notificationIds"},
		body:     []string{"notification_ids"}},
	{id: Restart, method: http.MethodPost, path: base + "/restart"},
	{id: DeleteAllSessions, method: http.MethodDelete, path: base + "/sessions"},
	{id: DeleteAllNotifications, method: http.MethodDelete, path: base + "/notifications/purge"},
	{id: ClearCaches, method: http.MethodPost, path: base + "/cache"},
	{id: GetPostman, method: http.MethodGet, path: base + "/postman",
		required: []string{"authType"},
		query:    []string{"auth_type", "token", "api_key", "username", "password"}},
	{id: GetSwagger, method: http.MethodGet, path: base + "/openapi", accept: "text/plain"},
}

var (
	operations []model.OperationDescriptor
	byID       map[string]int
)

func init() {
	ops, err := build(rows)
	if err != nil {
		panic(err)
	}
	operations = ops
	byID = make(map[string]int, len(ops))
	for i, op := range ops {
		byID[op.ID] = i
	}
}

// build turns table rows into descriptors, checking that every required
// field is mapped somewhere and that no id repeats.
func build(rs []row) ([]model.OperationDescriptor, error) {
	seen := make(map[string]bool, len(rs))
	out := make([]model.OperationDescriptor, 0, len(rs))
	for _, r := range rs {
		if seen[r.id] {
			return nil, fmt.Errorf("catalog: duplicate operation %q", r.id)
		}
		seen[r.id] = true

		d := model.OperationDescriptor{
			ID:           r.id,
			Method:       r.method,
			PathTemplate: r.path,
			Required:     append([]string(nil), r.required...),
			Accept:       r.accept,
		}
		for _, p := range d.PathParams() {
			d.Fields = append(d.Fields, mapping(p, model.InPath))
		}
		for _, q := range r.query {
			d.Fields = append(d.Fields, mapping(q, model.InQuery))
		}
		for _, b := range r.body {
			d.Fields = append(d.Fields, mapping(b, model.InBody))
		}
		for _, req := range d.Required {
			if _, ok := d.Field(req); !ok {
				return nil, fmt.Errorf("catalog: %s: required field %q has no mapping", r.id, req)
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func mapping(wire string, in model.Location) model.FieldMapping {
	return model.FieldMapping{Name: model.CamelCase(wire), WireName: wire, In: in}
}

// Lookup returns a copy of the descriptor for id.
func Lookup(id string) (model.OperationDescriptor, bool) {
	i, ok := byID[id]
	if !ok {
		return model.OperationDescriptor{}, false
	}
	return operations[i].Clone(), true
}

// MustLookup is Lookup for ids known at compile time.
func MustLookup(id string) model.OperationDescriptor {
	d, ok := Lookup(id)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown operation %q", id))
	}
	return d
}

// All returns copies of every descriptor in table order.
func All() []model.OperationDescriptor {
	out := make([]model.OperationDescriptor, len(operations))
	for i, op := range operations {
		out[i] = op.Clone()
	}
	return out
}

// IDs returns every operation id in table order.
func IDs() []string {
	ids := make([]string, len(operations))
	for i, op := range operations {
		ids[i] = op.ID
	}
	return ids
}
