package model

// Cache controls whether the console may answer from its cache.
type Cache string

const (
	CacheSkip Cache = "skip"
	CacheUse  Cache = "use"
)

// Valid reports whether c is one of the known values.
func (c Cache) Valid() bool { return c == CacheSkip || c == CacheUse }

// Attrs toggles optional attribute blocks (deployment_attrs, parsed_certs, ca_attrs).
type Attrs string

const (
	AttrsIncluded Attrs = "included"
	AttrsOmitted  Attrs = "omitted"
)

// Valid reports whether a is one of the known values.
func (a Attrs) Valid() bool { return a == AttrsIncluded || a == AttrsOmitted }

// ComponentType is a console component kind.
type ComponentType string

const (
	ComponentPeer    ComponentType = "fabric-peer"
	ComponentOrderer ComponentType = "fabric-orderer"
	ComponentCA      ComponentType = "fabric-ca"
	ComponentMSP     ComponentType = "msp"
)

// Valid reports whether t is one of the known values.
func (t ComponentType) Valid() bool {
	switch t {
	case ComponentPeer, ComponentOrderer, ComponentCA, ComponentMSP:
		return true
	}
	return false
}

// OrdererType is the consensus type of an ordering service.
type OrdererType string

const OrdererRaft OrdererType = "raft"

// Valid reports whether t is one of the known values.
func (t OrdererType) Valid() bool { return t == OrdererRaft }

// StateDB is the peer world state database.
type StateDB string

const (
	StateDBCouch StateDB = "couchdb"
	StateDBLevel StateDB = "leveldb"
)

// Valid reports whether s is one of the known values.
func (s StateDB) Valid() bool { return s == StateDBCouch || s == StateDBLevel }

// PostmanAuthType selects the credentials embedded in a generated Postman collection.
type PostmanAuthType string

const (
	PostmanBearer PostmanAuthType = "bearer"
	PostmanAPIKey PostmanAuthType = "api_key"
	PostmanBasic  PostmanAuthType = "basic"
)

// Valid reports whether t is one of the known values.
func (t PostmanAuthType) Valid() bool {
	switch t {
	case PostmanBearer, PostmanAPIKey, PostmanBasic:
		return true
	}
	return false
}
