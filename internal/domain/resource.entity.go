package domain

import (
	"time"

	"github.com/google/uuid"
)

type ResourceVisibility int16

const (
	VisibilityOpen ResourceVisibility = iota
	VisibilityEditors
	VisibilityCommunityMembers
	VisibilitySpecific
)

type AttachedFileType int16

const (
	AttachedFileArchive AttachedFileType = iota
	AttachedFileImage
	AttachedFileDownloadableFile
)

// ReaderEditor grants read or edit rights on a resource to a user, a group or
// an organization.
type ReaderEditor struct {
	UserShortName         string `json:"user_short_name,omitempty"`
	GroupShortName        string `json:"group_short_name,omitempty"`
	OrganizationShortName string `json:"organization_short_name,omitempty"`
}

type AttachedFile struct {
	Property string
	Type     AttachedFileType
	Content  []byte
}

// BasicOntologyResource is a non-semantic resource: notes, links, files or
// videos.
type BasicOntologyResource struct {
	ID                  uuid.UUID
	Title               string
	Description         string
	Tags                []string
	TextCategories      []string
	CategoryIDs         []uuid.UUID
	ResourceType        int16
	DownloadURL         string
	AttachedFile        []byte
	CreatorIsAuthor     bool
	Author              string
	AutoTagsTitle       string
	AutoTagsDescription string
	GenerateSnapshot    bool
	SnapshotSizes       []int
	CreationDate        *time.Time
	PublishInHome       bool
	Visibility          ResourceVisibility
	Editors             []ReaderEditor
	Readers             []ReaderEditor
}

// ComplexOntologyResource is a semantic resource described by an RDF file
// conforming to an ontology.
type ComplexOntologyResource struct {
	ID                     uuid.UUID
	Title                  string
	Description            string
	Tags                   []string
	TextCategories         []string
	CategoryIDs            []uuid.UUID
	OntologyURL            string
	RDFFile                []byte
	AttachedFiles          []AttachedFile
	CreatorIsAuthor        bool
	Author                 string
	AutoTagsTitle          string
	AutoTagsDescription    string
	MustGenerateScreenshot bool
	ScreenshotURL          string
	ScreenshotPredicate    string
	ScreenshotSizes        []int
	CreationDate           *time.Time
	PublisherEmail         string
	PublishInHome          bool
	MainImage              string
	Visibility             ResourceVisibility
	Editors                []ReaderEditor
	Readers                []ReaderEditor
	CreateVersion          bool
}

type TriplesToInclude struct {
	Predicate   string
	NewValue    string
	Title       bool
	Description bool
}

type RemoveTriples struct {
	Predicate   string
	Value       string
	Title       bool
	Description bool
}

type TriplesToModify struct {
	Predicate   string
	OldValue    string
	NewValue    string
	Title       bool
	Description bool
}

// Triple is a subject-predicate-object statement of a loaded resource.
type Triple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

type SecondaryEntity struct {
	OntologyURL string
	EntityID    string
	RDF         []byte
}
