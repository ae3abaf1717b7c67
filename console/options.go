package console

import "github.com/pitabwire/fabconsole/model"

// Options structs map one-to-one onto catalog operations. Fields tagged
// param carry the caller field name. Empty strings, nil slices, nil maps
// and nil pointers are left out of the request; pointers are used where
// zero or false is a meaningful value. Headers override default headers.

// GetComponentOptions holds the parameters of GetComponent.
type GetComponentOptions struct {
	ID              string            `param:"id"`
	DeploymentAttrs model.Attrs       `param:"deploymentAttrs"`
	ParsedCerts     model.Attrs       `param:"parsedCerts"`
	Cache           model.Cache       `param:"cache"`
	CaAttrs         model.Attrs       `param:"caAttrs"`
	Headers         map[string]string `param:"-"`
}

// RemoveComponentOptions holds the parameters of RemoveComponent.
type RemoveComponentOptions struct {
	ID      string            `param:"id"`
	Headers map[string]string `param:"-"`
}

// DeleteComponentOptions holds the parameters of DeleteComponent.
type DeleteComponentOptions struct {
	ID      string            `param:"id"`
	Headers map[string]string `param:"-"`
}

// CreateCaOptions holds the parameters of CreateCa.
type CreateCaOptions struct {
	DisplayName    string            `param:"displayName"`
	ConfigOverride map[string]any    `param:"configOverride"`
	ID             string            `param:"id"`
	Resources      map[string]any    `param:"resources"`
	Storage        map[string]any    `param:"storage"`
	Zone           string            `param:"zone"`
	Replicas       *int              `param:"replicas"`
	Tags           []string          `param:"tags"`
	Hsm            map[string]any    `param:"hsm"`
	Region         string            `param:"region"`
	Version        string            `param:"version"`
	Headers        map[string]string `param:"-"`
}

// ImportCaOptions holds the parameters of ImportCa.
type ImportCaOptions struct {
	DisplayName   string            `param:"displayName"`
	APIURL        string            `param:"apiUrl"`
	Msp           map[string]any    `param:"msp"`
	ID            string            `param:"id"`
	Location      string            `param:"location"`
	OperationsURL string            `param:"operationsUrl"`
	Tags          []string          `param:"tags"`
	TLSCert       string            `param:"tlsCert"`
	Headers       map[string]string `param:"-"`
}

// UpdateCaOptions holds the parameters of UpdateCa.
type UpdateCaOptions struct {
	ID             string            `param:"id"`
	ConfigOverride map[string]any    `param:"configOverride"`
	Replicas       *int              `param:"replicas"`
	Resources      map[string]any    `param:"resources"`
	Version        string            `param:"version"`
	Zone           string            `param:"zone"`
	Headers        map[string]string `param:"-"`
}

// EditCaOptions holds the parameters of EditCa.
type EditCaOptions struct {
	ID            string            `param:"id"`
	DisplayName   string            `param:"displayName"`
	APIURL        string            `param:"apiUrl"`
	OperationsURL string            `param:"operationsUrl"`
	CaName        string            `param:"caName"`
	Location      string            `param:"location"`
	Tags          []string          `param:"tags"`
	Headers       map[string]string `param:"-"`
}

// CaActionOptions holds the parameters of CaAction.
type CaActionOptions struct {
	ID      string            `param:"id"`
	Restart *bool             `param:"restart"`
	Renew   map[string]any    `param:"renew"`
	Headers map[string]string `param:"-"`
}

// CreatePeerOptions holds the parameters of CreatePeer.
type CreatePeerOptions struct {
	MspID          string            `param:"mspId"`
	DisplayName    string            `param:"displayName"`
	Crypto         map[string]any    `param:"crypto"`
	ID             string            `param:"id"`
	ConfigOverride map[string]any    `param:"configOverride"`
	Resources      map[string]any    `param:"resources"`
	Storage        map[string]any    `param:"storage"`
	Zone           string            `param:"zone"`
	StateDB        model.StateDB     `param:"stateDb"`
	Tags           []string          `param:"tags"`
	Hsm            map[string]any    `param:"hsm"`
	Region         string            `param:"region"`
	Version        string            `param:"version"`
	Headers        map[string]string `param:"-"`
}

// ImportPeerOptions holds the parameters of ImportPeer.
type ImportPeerOptions struct {
	DisplayName   string            `param:"displayName"`
	GrpcwpURL     string            `param:"grpcwpUrl"`
	Msp           map[string]any    `param:"msp"`
	MspID         string            `param:"mspId"`
	ID            string            `param:"id"`
	APIURL        string            `param:"apiUrl"`
	Location      string            `param:"location"`
	OperationsURL string            `param:"operationsUrl"`
	Tags          []string          `param:"tags"`
	Headers       map[string]string `param:"-"`
}

// EditPeerOptions holds the parameters of EditPeer.
type EditPeerOptions struct {
	ID            string            `param:"id"`
	DisplayName   string            `param:"displayName"`
	APIURL        string            `param:"apiUrl"`
	OperationsURL string            `param:"operationsUrl"`
	GrpcwpURL     string            `param:"grpcwpUrl"`
	MspID         string            `param:"mspId"`
	Location      string            `param:"location"`
	Tags          []string          `param:"tags"`
	Headers       map[string]string `param:"-"`
}

// PeerActionOptions holds the parameters of PeerAction.
type PeerActionOptions struct {
	ID         string            `param:"id"`
	Restart    *bool             `param:"restart"`
	Reenroll   map[string]any    `param:"reenroll"`
	Enroll     map[string]any    `param:"enroll"`
	UpgradeDbs *bool             `param:"upgradeDbs"`
	Headers    map[string]string `param:"-"`
}

// UpdatePeerOptions holds the parameters of UpdatePeer.
type UpdatePeerOptions struct {
	ID             string            `param:"id"`
	AdminCerts     []string          `param:"adminCerts"`
	ConfigOverride map[string]any    `param:"configOverride"`
	Crypto         map[string]any    `param:"crypto"`
	NodeOu         map[string]any    `param:"nodeOu"`
	Replicas       *int              `param:"replicas"`
	Resources      map[string]any    `param:"resources"`
	Version        string            `param:"version"`
	Zone           string            `param:"zone"`
	Headers        map[string]string `param:"-"`
}

// CreateOrdererOptions holds the parameters of CreateOrderer.
type CreateOrdererOptions struct {
	OrdererType     model.OrdererType `param:"ordererType"`
	MspID           string            `param:"mspId"`
	DisplayName     string            `param:"displayName"`
	Crypto          []map[string]any  `param:"crypto"`
	ClusterName     string            `param:"clusterName"`
	ID              string            `param:"id"`
	ClusterID       string            `param:"clusterId"`
	ExternalAppend  *bool             `param:"externalAppend"`
	ConfigOverride  []map[string]any  `param:"configOverride"`
	Resources       map[string]any    `param:"resources"`
	Storage         map[string]any    `param:"storage"`
	SystemChannelID string            `param:"systemChannelId"`
	Zone            []string          `param:"zone"`
	Tags            []string          `param:"tags"`
	Region          []string          `param:"region"`
	Hsm             map[string]any    `param:"hsm"`
	Version         string            `param:"version"`
	Headers         map[string]string `param:"-"`
}

// ImportOrdererOptions holds the parameters of ImportOrderer.
type ImportOrdererOptions struct {
	ClusterName     string            `param:"clusterName"`
	DisplayName     string            `param:"displayName"`
	GrpcwpURL       string            `param:"grpcwpUrl"`
	Msp             map[string]any    `param:"msp"`
	MspID           string            `param:"mspId"`
	APIURL          string            `param:"apiUrl"`
	ClusterID       string            `param:"clusterId"`
	ID              string            `param:"id"`
	Location        string            `param:"location"`
	OperationsURL   string            `param:"operationsUrl"`
	SystemChannelID string            `param:"systemChannelId"`
	Tags            []string          `param:"tags"`
	Headers         map[string]string `param:"-"`
}

// EditOrdererOptions holds the parameters of EditOrderer.
type EditOrdererOptions struct {
	ID                   string            `param:"id"`
	ClusterName          string            `param:"clusterName"`
	DisplayName          string            `param:"displayName"`
	APIURL               string            `param:"apiUrl"`
	OperationsURL        string            `param:"operationsUrl"`
	GrpcwpURL            string            `param:"grpcwpUrl"`
	MspID                string            `param:"mspId"`
	ConsenterProposalFin *bool             `param:"consenterProposalFin"`
	Location             string            `param:"location"`
	SystemChannelID      string            `param:"systemChannelId"`
	Tags                 []string          `param:"tags"`
	Headers              map[string]string `param:"-"`
}

// OrdererActionOptions holds the parameters of OrdererAction.
type OrdererActionOptions struct {
	ID       string            `param:"id"`
	Restart  *bool             `param:"restart"`
	Reenroll map[string]any    `param:"reenroll"`
	Enroll   map[string]any    `param:"enroll"`
	Headers  map[string]string `param:"-"`
}

// UpdateOrdererOptions holds the parameters of UpdateOrderer.
type UpdateOrdererOptions struct {
	ID             string            `param:"id"`
	AdminCerts     []string          `param:"adminCerts"`
	ConfigOverride map[string]any    `param:"configOverride"`
	Crypto         map[string]any    `param:"crypto"`
	NodeOu         map[string]any    `param:"nodeOu"`
	Replicas       *int              `param:"replicas"`
	Resources      map[string]any    `param:"resources"`
	Version        string            `param:"version"`
	Zone           string            `param:"zone"`
	Headers        map[string]string `param:"-"`
}

// SubmitBlockOptions holds the parameters of SubmitBlock.
type SubmitBlockOptions struct {
	ID       string            `param:"id"`
	B64Block string            `param:"b64Block"`
	Headers  map[string]string `param:"-"`
}

// ImportMspOptions holds the parameters of ImportMsp.
type ImportMspOptions struct {
	MspID             string            `param:"mspId"`
	DisplayName       string            `param:"displayName"`
	RootCerts         []string          `param:"rootCerts"`
	IntermediateCerts []string          `param:"intermediateCerts"`
	Admins            []string          `param:"admins"`
	TLSRootCerts      []string          `param:"tlsRootCerts"`
	Headers           map[string]string `param:"-"`
}

// EditMspOptions holds the parameters of EditMsp.
type EditMspOptions struct {
	ID                string            `param:"id"`
	MspID             string            `param:"mspId"`
	DisplayName       string            `param:"displayName"`
	RootCerts         []string          `param:"rootCerts"`
	IntermediateCerts []string          `param:"intermediateCerts"`
	Admins            []string          `param:"admins"`
	TLSRootCerts      []string          `param:"tlsRootCerts"`
	Headers           map[string]string `param:"-"`
}

// GetMspCertificateOptions holds the parameters of GetMspCertificate.
type GetMspCertificateOptions struct {
	MspID   string            `param:"mspId"`
	Cache   model.Cache       `param:"cache"`
	Headers map[string]string `param:"-"`
}

// EditAdminCertsOptions holds the parameters of EditAdminCerts.
type EditAdminCertsOptions struct {
	ID               string            `param:"id"`
	AppendAdminCerts []string          `param:"appendAdminCerts"`
	RemoveAdminCerts []string          `param:"removeAdminCerts"`
	Headers          map[string]string `param:"-"`
}

// ListComponentsOptions holds the parameters of ListComponents.
type ListComponentsOptions struct {
	DeploymentAttrs model.Attrs       `param:"deploymentAttrs"`
	ParsedCerts     model.Attrs       `param:"parsedCerts"`
	Cache           model.Cache       `param:"cache"`
	CaAttrs         model.Attrs       `param:"caAttrs"`
	Headers         map[string]string `param:"-"`
}

// GetComponentsByTypeOptions holds the parameters of GetComponentsByType.
type GetComponentsByTypeOptions struct {
	Type            model.ComponentType `param:"type"`
	DeploymentAttrs model.Attrs         `param:"deploymentAttrs"`
	ParsedCerts     model.Attrs         `param:"parsedCerts"`
	Cache           model.Cache         `param:"cache"`
	Headers         map[string]string   `param:"-"`
}

// GetComponentsByTagOptions holds the parameters of GetComponentsByTag.
type GetComponentsByTagOptions struct {
	Tag             string            `param:"tag"`
	DeploymentAttrs model.Attrs       `param:"deploymentAttrs"`
	ParsedCerts     model.Attrs       `param:"parsedCerts"`
	Cache           model.Cache       `param:"cache"`
	Headers         map[string]string `param:"-"`
}

// RemoveComponentsByTagOptions holds the parameters of RemoveComponentsByTag.
type RemoveComponentsByTagOptions struct {
	Tag     string            `param:"tag"`
	Headers map[string]string `param:"-"`
}

// DeleteComponentsByTagOptions holds the parameters of DeleteComponentsByTag.
type DeleteComponentsByTagOptions struct {
	Tag     string            `param:"tag"`
	Headers map[string]string `param:"-"`
}

// DeleteAllComponentsOptions holds the parameters of DeleteAllComponents.
type DeleteAllComponentsOptions struct {
	Headers map[string]string `param:"-"`
}

// GetSettingsOptions holds the parameters of GetSettings.
type GetSettingsOptions struct {
	Headers map[string]string `param:"-"`
}

// EditSettingsOptions holds the parameters of EditSettings.
type EditSettingsOptions struct {
	InactivityTimeouts         map[string]any    `param:"inactivityTimeouts"`
	FileLogging                map[string]any    `param:"fileLogging"`
	MaxReqPerMin               *int              `param:"maxReqPerMin"`
	MaxReqPerMinAk             *int              `param:"maxReqPerMinAk"`
	FabricGetBlockTimeoutMs    *int              `param:"fabricGetBlockTimeoutMs"`
	FabricInstantiateTimeoutMs *int              `param:"fabricInstantiateTimeoutMs"`
	FabricJoinChannelTimeoutMs *int              `param:"fabricJoinChannelTimeoutMs"`
	FabricInstallCcTimeoutMs   *int              `param:"fabricInstallCcTimeoutMs"`
	FabricLcInstallCcTimeoutMs *int              `param:"fabricLcInstallCcTimeoutMs"`
	FabricLcGetCcTimeoutMs     *int              `param:"fabricLcGetCcTimeoutMs"`
	FabricGeneralTimeoutMs     *int              `param:"fabricGeneralTimeoutMs"`
	Headers                    map[string]string `param:"-"`
}

// GetFabVersionsOptions holds the parameters of GetFabVersions.
type GetFabVersionsOptions struct {
	Cache   model.Cache       `param:"cache"`
	Headers map[string]string `param:"-"`
}

// GetHealthOptions holds the parameters of GetHealth.
type GetHealthOptions struct {
	Headers map[string]string `param:"-"`
}

// ListNotificationsOptions holds the parameters of ListNotifications.
type ListNotificationsOptions struct {
	Limit       *int              `param:"limit"`
	Skip        *int              `param:"skip"`
	ComponentID string            `param:"componentId"`
	Headers     map[string]string `param:"-"`
}

// DeleteSigTxOptions holds the parameters of DeleteSigTx.
type DeleteSigTxOptions struct {
	ID      string            `param:"id"`
	Headers map[string]string `param:"-"`
}

// ArchiveNotificationsOptions holds the parameters of ArchiveNotifications.
type ArchiveNotificationsOptions struct {
	NotificationIDs []string          `param:"notificationIds"`
	Headers         map[string]string `param:"-"`
}

// RestartOptions holds the parameters of Restart.
type RestartOptions struct {
	Headers map[string]string `param:"-"`
}

// DeleteAllSessionsOptions holds the parameters of DeleteAllSessions.
type DeleteAllSessionsOptions struct {
	Headers map[string]string `param:"-"`
}

// DeleteAllNotificationsOptions holds the parameters of DeleteAllNotifications.
type DeleteAllNotificationsOptions struct {
	Headers map[string]string `param:"-"`
}

// ClearCachesOptions holds the parameters of ClearCaches.
type ClearCachesOptions struct {
	Headers map[string]string `param:"-"`
}

// GetPostmanOptions holds the parameters of GetPostman.
type GetPostmanOptions struct {
	AuthType model.PostmanAuthType `param:"authType"`
	Token    string                `param:"token"`
	APIKey   string                `param:"apiKey"`
	Username string                `param:"username"`
	Password string                `param:"password"`
	Headers  map[string]string     `param:"-"`
}

// GetSwaggerOptions holds the parameters of GetSwagger.
type GetSwaggerOptions struct {
	Headers map[string]string `param:"-"`
}
