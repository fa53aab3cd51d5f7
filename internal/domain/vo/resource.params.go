package vo

import (
	"time"

	"github.com/google/uuid"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
)

// GnossResourceProperty marks a triple that also updates a built-in resource
// field on the remote side.
type GnossResourceProperty int16

const (
	GnossPropertyNone GnossResourceProperty = iota
	GnossPropertyTitle
	GnossPropertyDescription
)

// ResourceTypeOntology is the remote document type of semantic resources.
const ResourceTypeOntology int16 = 5

type SemanticAttachedResource struct {
	FileRDFProperty  string `json:"file_rdf_property"`
	FilePropertyType int16  `json:"file_property_type"`
	RDFAttachedFile  []byte `json:"rdf_attached_file,omitempty"`
	DeleteFile       bool   `json:"delete_file"`
}

type LoadResourceParams struct {
	ResourceID              uuid.UUID                  `json:"resource_id"`
	CommunityShortName      string                     `json:"community_short_name" validate:"required"`
	Title                   string                     `json:"title" validate:"required"`
	Description             string                     `json:"description"`
	Tags                    []string                   `json:"tags"`
	Categories              []uuid.UUID                `json:"categories"`
	ResourceType            int16                      `json:"resource_type"`
	ResourceURL             string                     `json:"resource_url,omitempty"`
	ResourceFile            []byte                     `json:"resource_file,omitempty"`
	ResourceAttachedFiles   []SemanticAttachedResource `json:"resource_attached_files,omitempty"`
	CreatorIsAuthor         bool                       `json:"creator_is_author"`
	Authors                 string                     `json:"authors,omitempty"`
	AutoTagsTitleText       string                     `json:"auto_tags_title_text,omitempty"`
	AutoTagsDescriptionText string                     `json:"auto_tags_description_text,omitempty"`
	CreateScreenshot        bool                       `json:"create_screenshot"`
	URLScreenshot           string                     `json:"url_screenshot,omitempty"`
	PredicateScreenshot     string                     `json:"predicate_screenshot,omitempty"`
	ScreenshotSizes         []int                      `json:"screenshot_sizes,omitempty"`
	EndOfLoad               bool                       `json:"end_of_load"`
	CreationDate            *time.Time                 `json:"creation_date,omitempty"`
	PublisherEmail          string                     `json:"publisher_email,omitempty"`
	PublishHome             bool                       `json:"publish_home"`
	LoadID                  string                     `json:"load_id,omitempty"`
	MainImage               string                     `json:"main_image,omitempty"`
	Visibility              int16                      `json:"visibility"`
	EditorsList             []domain.ReaderEditor      `json:"editors_list,omitempty"`
	ReadersList             []domain.ReaderEditor      `json:"readers_list,omitempty"`
	CreateVersion           bool                       `json:"create_version,omitempty"`
}

type DeleteParams struct {
	ResourceID         uuid.UUID `json:"resource_id" validate:"required"`
	CommunityShortName string    `json:"community_short_name" validate:"required"`
	ChargeID           string    `json:"charge_id,omitempty"`
	EndOfLoad          bool      `json:"end_of_load"`
}

type PersistentDeleteParams struct {
	ResourceID         uuid.UUID `json:"resource_id" validate:"required"`
	CommunityShortName string    `json:"community_short_name" validate:"required"`
	DeleteAttached     bool      `json:"delete_attached"`
	EndOfLoad          bool      `json:"end_of_load"`
}

type ModifyResourceTriple struct {
	OldObject     string                `json:"old_object,omitempty"`
	Predicate     string                `json:"predicate" validate:"required"`
	NewObject     string                `json:"new_object,omitempty"`
	GnossProperty GnossResourceProperty `json:"gnoss_property"`
}

type ModifyResourceTripleListParams struct {
	ResourceTriples       []ModifyResourceTriple     `json:"resource_triples" validate:"required,min=1,dive"`
	ChargeID              string                     `json:"charge_id,omitempty"`
	ResourceID            uuid.UUID                  `json:"resource_id" validate:"required"`
	CommunityShortName    string                     `json:"community_short_name" validate:"required"`
	PublishHome           bool                       `json:"publish_home"`
	MainImage             string                     `json:"main_image,omitempty"`
	ResourceAttachedFiles []SemanticAttachedResource `json:"resource_attached_files,omitempty"`
	EndOfLoad             bool                       `json:"end_of_load"`
}

type TriplesParams struct {
	ResourceID         uuid.UUID       `json:"resource_id" validate:"required"`
	CommunityShortName string          `json:"community_short_name" validate:"required"`
	PublishHome        bool            `json:"publish_home"`
	TriplesList        []domain.Triple `json:"triples_list" validate:"required,min=1"`
	EndOfLoad          bool            `json:"end_of_load"`
}

type ModifyResourcePropertyParams struct {
	ResourceID         uuid.UUID `json:"resource_id" validate:"required"`
	CommunityShortName string    `json:"community_short_name" validate:"required"`
	Property           string    `json:"property" validate:"required"`
	NewObject          string    `json:"new_object"`
}

type ExistsURLParams struct {
	CommunityShortName string `json:"community_short_name" validate:"required"`
	URL                string `json:"url" validate:"required,url"`
}

type ResourceTags struct {
	ResourceID uuid.UUID `json:"resource_id"`
	Tags       []string  `json:"tags"`
}

type SecondaryEntityParams struct {
	OntologyURL        string `json:"ontology_url" validate:"required"`
	CommunityShortName string `json:"community_short_name" validate:"required"`
	RDF                []byte `json:"rdf,omitempty"`
	EntityID           string `json:"entity_id,omitempty"`
}

type RegisterLoadParams struct {
	LoadID             string `json:"load_id" validate:"required"`
	CommunityShortName string `json:"community_short_name" validate:"required"`
	EmailResponsible   string `json:"email_responsible" validate:"required,email"`
}
