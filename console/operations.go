package console

import (
	"context"

	"github.com/pitabwire/fabconsole/internal/catalog"
	"github.com/pitabwire/fabconsole/model"
)

// GetComponent returns one component by id.
func (s *Service) GetComponent(ctx context.Context, opts *GetComponentOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.GetComponent, opts)
}

// RemoveComponent removes an imported component from the console. The deployment is left running.
func (s *Service) RemoveComponent(ctx context.Context, opts *RemoveComponentOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.RemoveComponent, opts)
}

// DeleteComponent deletes a component and its Kubernetes deployment.
func (s *Service) DeleteComponent(ctx context.Context, opts *DeleteComponentOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.DeleteComponent, opts)
}

// CreateCa deploys a new certificate authority.
func (s *Service) CreateCa(ctx context.Context, opts *CreateCaOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.CreateCa, opts)
}

// ImportCa imports an existing certificate authority.
func (s *Service) ImportCa(ctx context.Context, opts *ImportCaOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.ImportCa, opts)
}

// UpdateCa changes the deployment of a certificate authority.
func (s *Service) UpdateCa(ctx context.Context, opts *UpdateCaOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.UpdateCa, opts)
}

// EditCa changes console metadata of a certificate authority.
func (s *Service) EditCa(ctx context.Context, opts *EditCaOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.EditCa, opts)
}

// CaAction restarts a certificate authority or renews its TLS certificate.
func (s *Service) CaAction(ctx context.Context, opts *CaActionOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.CaAction, opts)
}

// CreatePeer deploys a new peer.
func (s *Service) CreatePeer(ctx context.Context, opts *CreatePeerOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.CreatePeer, opts)
}

// ImportPeer imports an existing peer.
func (s *Service) ImportPeer(ctx context.Context, opts *ImportPeerOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.ImportPeer, opts)
}

// EditPeer changes console metadata of a peer.
func (s *Service) EditPeer(ctx context.Context, opts *EditPeerOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.EditPeer, opts)
}

// PeerAction restarts, enrolls or re-enrolls a peer, or upgrades its databases.
func (s *Service) PeerAction(ctx context.Context, opts *PeerActionOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.PeerAction, opts)
}

// UpdatePeer changes the deployment of a peer.
func (s *Service) UpdatePeer(ctx context.Context, opts *UpdatePeerOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.UpdatePeer, opts)
}

// CreateOrderer deploys an ordering service or appends nodes to one.
func (s *Service) CreateOrderer(ctx context.Context, opts *CreateOrdererOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.CreateOrderer, opts)
}

// ImportOrderer imports an existing ordering node.
func (s *Service) ImportOrderer(ctx context.Context, opts *ImportOrdererOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.ImportOrderer, opts)
}

// EditOrderer changes console metadata of an ordering node.
func (s *Service) EditOrderer(ctx context.Context, opts *EditOrdererOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.EditOrderer, opts)
}

// OrdererAction restarts, enrolls or re-enrolls an ordering node.
func (s *Service) OrdererAction(ctx context.Context, opts *OrdererActionOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.OrdererAction, opts)
}

// UpdateOrderer changes the deployment of an ordering node.
func (s *Service) UpdateOrderer(ctx context.Context, opts *UpdateOrdererOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.UpdateOrderer, opts)
}

// SubmitBlock sends an updated system channel config block to an ordering node.
func (s *Service) SubmitBlock(ctx context.Context, opts *SubmitBlockOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.SubmitBlock, opts)
}

// ImportMsp imports a membership service provider definition.
func (s *Service) ImportMsp(ctx context.Context, opts *ImportMspOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.ImportMsp, opts)
}

// EditMsp changes a membership service provider definition.
func (s *Service) EditMsp(ctx context.Context, opts *EditMspOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.EditMsp, opts)
}

// GetMspCertificate returns the certificates of every component with the given MSP id.
func (s *Service) GetMspCertificate(ctx context.Context, opts *GetMspCertificateOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.GetMspCertificate, opts)
}

// EditAdminCerts appends or removes admin certificates on a deployed node.
func (s *Service) EditAdminCerts(ctx context.Context, opts *EditAdminCertsOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.EditAdminCerts, opts)
}

// ListComponents lists every component known to the console.
func (s *Service) ListComponents(ctx context.Context, opts *ListComponentsOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.ListComponents, opts)
}

// GetComponentsByType lists components of one type.
func (s *Service) GetComponentsByType(ctx context.Context, opts *GetComponentsByTypeOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.GetComponentsByType, opts)
}

// GetComponentsByTag lists components carrying a tag.
func (s *Service) GetComponentsByTag(ctx context.Context, opts *GetComponentsByTagOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.GetComponentsByTag, opts)
}

// RemoveComponentsByTag removes every imported component carrying a tag.
func (s *Service) RemoveComponentsByTag(ctx context.Context, opts *RemoveComponentsByTagOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.RemoveComponentsByTag, opts)
}

// DeleteComponentsByTag deletes every deployed component carrying a tag.
func (s *Service) DeleteComponentsByTag(ctx context.Context, opts *DeleteComponentsByTagOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.DeleteComponentsByTag, opts)
}

// DeleteAllComponents deletes every deployed component.
func (s *Service) DeleteAllComponents(ctx context.Context, opts *DeleteAllComponentsOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.DeleteAllComponents, opts)
}

// GetSettings returns the console settings.
func (s *Service) GetSettings(ctx context.Context, opts *GetSettingsOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.GetSettings, opts)
}

// EditSettings changes console settings.
func (s *Service) EditSettings(ctx context.Context, opts *EditSettingsOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.EditSettings, opts)
}

// GetFabVersions returns the Fabric versions the console can deploy.
func (s *Service) GetFabVersions(ctx context.Context, opts *GetFabVersionsOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.GetFabVersions, opts)
}

// GetHealth returns console health.
func (s *Service) GetHealth(ctx context.Context, opts *GetHealthOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.GetHealth, opts)
}

// ListNotifications lists console notifications, newest first.
func (s *Service) ListNotifications(ctx context.Context, opts *ListNotificationsOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.ListNotifications, opts)
}

// DeleteSigTx deletes a signature collection transaction.
func (s *Service) DeleteSigTx(ctx context.Context, opts *DeleteSigTxOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.DeleteSigTx, opts)
}

// ArchiveNotifications archives notifications by id.
func (s *Service) ArchiveNotifications(ctx context.Context, opts *ArchiveNotificationsOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.ArchiveNotifications, opts)
}

// Restart restarts the console.
func (s *Service) Restart(ctx context.Context, opts *RestartOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.Restart, opts)
}

// DeleteAllSessions logs out every console session.
func (s *Service) DeleteAllSessions(ctx context.Context, opts *DeleteAllSessionsOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.DeleteAllSessions, opts)
}

// DeleteAllNotifications deletes every notification.
func (s *Service) DeleteAllNotifications(ctx context.Context, opts *DeleteAllNotificationsOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.DeleteAllNotifications, opts)
}

// ClearCaches clears the console caches.
func (s *Service) ClearCaches(ctx context.Context, opts *ClearCachesOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.ClearCaches, opts)
}

// GetPostman returns a Postman collection for the console API.
func (s *Service) GetPostman(ctx context.Context, opts *GetPostmanOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.GetPostman, opts)
}

// GetSwagger returns the console OpenAPI document as text.
func (s *Service) GetSwagger(ctx context.Context, opts *GetSwaggerOptions) (*model.ResponseEnvelope, error) {
	return s.call(ctx, catalog.GetSwagger, opts)
}
