package console

// optionsByOperation pairs every catalog operation with a zero options value.
var optionsByOperation = map[string]any{
	"getComponent":           &GetComponentOptions{},
	"removeComponent":        &RemoveComponentOptions{},
	"deleteComponent":        &DeleteComponentOptions{},
	"createCa":               &CreateCaOptions{},
	"importCa":               &ImportCaOptions{},
	"updateCa":               &UpdateCaOptions{},
	"editCa":                 &EditCaOptions{},
	"caAction":               &CaActionOptions{},
	"createPeer":             &CreatePeerOptions{},
	"importPeer":             &ImportPeerOptions{},
	"editPeer":               &EditPeerOptions{},
	"peerAction":             &PeerActionOptions{},
	"updatePeer":             &UpdatePeerOptions{},
	"createOrderer":          &CreateOrdererOptions{},
	"importOrderer":          &ImportOrdererOptions{},
	"editOrderer":            &EditOrdererOptions{},
	"ordererAction":          &OrdererActionOptions{},
	"updateOrderer":          &UpdateOrdererOptions{},
	"submitBlock":            &SubmitBlockOptions{},
	"importMsp":              &ImportMspOptions{},
	"editMsp":                &EditMspOptions{},
	"getMspCertificate":      &GetMspCertificateOptions{},
	"editAdminCerts":         &EditAdminCertsOptions{},
	"listComponents":         &ListComponentsOptions{},
	"getComponentsByType":    &GetComponentsByTypeOptions{},
	"getComponentsByTag":     &GetComponentsByTagOptions{},
	"removeComponentsByTag":  &RemoveComponentsByTagOptions{},
	"deleteComponentsByTag":  &DeleteComponentsByTagOptions{},
	"deleteAllComponents":    &DeleteAllComponentsOptions{},
	"getSettings":            &GetSettingsOptions{},
	"editSettings":           &EditSettingsOptions{},
	"getFabVersions":         &GetFabVersionsOptions{},
	"getHealth":              &GetHealthOptions{},
	"listNotifications":      &ListNotificationsOptions{},
	"deleteSigTx":            &DeleteSigTxOptions{},
	"archiveNotifications":   &ArchiveNotificationsOptions{},
	"restart":                &RestartOptions{},
	"deleteAllSessions":      &DeleteAllSessionsOptions{},
	"deleteAllNotifications": &DeleteAllNotificationsOptions{},
	"clearCaches":            &ClearCachesOptions{},
	"getPostman":             &GetPostmanOptions{},
	"getSwagger":             &GetSwaggerOptions{},
}
