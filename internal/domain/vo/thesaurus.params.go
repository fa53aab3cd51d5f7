package vo

type MoveNodeParams struct {
	ThesaurusOntologyURL string   `json:"thesaurus_ontology_url" validate:"required"`
	ResourcesOntologyURL string   `json:"resources_ontology_url" validate:"required"`
	CommunityShortName   string   `json:"community_short_name" validate:"required"`
	CategoryID           string   `json:"category_id" validate:"required"`
	Path                 []string `json:"path"`
}

// ParentNodeParams keeps the remote field spelling of parent_catergory_id.
type ParentNodeParams struct {
	ThesaurusOntologyURL string `json:"thesaurus_ontology_url" validate:"required"`
	CommunityShortName   string `json:"community_short_name" validate:"required"`
	ParentCategoryID     string `json:"parent_catergory_id" validate:"required"`
	ChildCategoryID      string `json:"child_category_id" validate:"required"`
}

type ChangeNodeNameParams struct {
	ThesaurusOntologyURL string `json:"thesaurus_ontology_url" validate:"required"`
	CommunityShortName   string `json:"community_short_name" validate:"required"`
	CategoryID           string `json:"category_id" validate:"required"`
	CategoryName         string `json:"category_name" validate:"required"`
}

type InsertNodeParams struct {
	ThesaurusOntologyURL string `json:"thesaurus_ontology_url" validate:"required"`
	CommunityShortName   string `json:"community_short_name" validate:"required"`
	RDFCategory          []byte `json:"rdf_category" validate:"required"`
}
