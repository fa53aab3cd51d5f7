package vo

type SparqlQueryParams struct {
	Ontology           string `json:"ontology" validate:"required"`
	CommunityShortName string `json:"community_short_name"`
	QuerySelect        string `json:"query_select" validate:"required"`
	QueryWhere         string `json:"query_where" validate:"required"`
}

type SparqlValue struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// SparqlObject follows the SPARQL 1.1 JSON results format.
type SparqlObject struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []map[string]SparqlValue `json:"bindings"`
	} `json:"results"`
}
