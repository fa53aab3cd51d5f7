package vo

import "github.com/google/uuid"

// MassiveLoadParams keeps the remote field spelling of oganization_id.
type MassiveLoadParams struct {
	LoadID         uuid.UUID `json:"load_id" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	CommunityName  string    `json:"community_name" validate:"required"`
	OrganizationID uuid.UUID `json:"oganization_id"`
}

type MassiveLoadPackageParams struct {
	PackageID    uuid.UUID `json:"package_id" validate:"required"`
	LoadID       uuid.UUID `json:"load_id" validate:"required"`
	OntologyRute string    `json:"ontology_rute" validate:"required"`
	SearchRute   string    `json:"search_rute" validate:"required"`
	SQLRute      string    `json:"sql_rute" validate:"required"`
	Ontology     string    `json:"ontology" validate:"required"`
	IsLast       bool      `json:"isLast"`
}

type CloseMassiveLoadParams struct {
	DataLoadIdentifier uuid.UUID `json:"DataLoadIdentifier" validate:"required"`
}

type MassiveLoadStatus struct {
	LoadID    uuid.UUID `json:"load_id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	Packages  int       `json:"packages"`
	Resources int       `json:"resources"`
}
