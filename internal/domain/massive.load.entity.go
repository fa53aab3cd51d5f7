package domain

import (
	"time"

	"github.com/google/uuid"
)

type MassiveLoadState string

const (
	MassiveLoadOpen   MassiveLoadState = "open"
	MassiveLoadClosed MassiveLoadState = "closed"
	MassiveLoadFailed MassiveLoadState = "failed"
)

// DefaultOrganizationID is used by the remote service when a load does not
// name its organization.
var DefaultOrganizationID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

type MassiveLoad struct {
	ID             uuid.UUID
	Name           string
	Community      string
	OrganizationID uuid.UUID
	State          MassiveLoadState
	CreatedAt      time.Time
	ClosedAt       *time.Time
}

type LoadPackage struct {
	ID           uuid.UUID
	LoadID       uuid.UUID
	Ontology     string
	Sequence     int
	OntologyPath string
	SearchPath   string
	AcidPath     string
	IsLast       bool
	Resources    int
}

// MassiveResource is one resource already rendered to the staged formats:
// N-Quads for the ontology and search graphs plus a relational value keyed by
// resource id.
type MassiveResource struct {
	ID              uuid.UUID
	OntologyTriples []string
	SearchTriples   []string
	AcidValue       string
}
