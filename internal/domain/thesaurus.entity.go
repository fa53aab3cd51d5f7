package domain

import "github.com/google/uuid"

// ThesaurusCategory is a node of a community thesaurus. Multi-language names
// are encoded as "name@lang|||name@lang".
type ThesaurusCategory struct {
	ID       uuid.UUID           `json:"category_id"`
	Name     string              `json:"category_name"`
	ParentID uuid.UUID           `json:"parent_category_id"`
	Children []ThesaurusCategory `json:"children"`
}
