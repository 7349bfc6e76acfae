package sonarqube

// paging is the pagination block shared by SonarQube search endpoints.
type paging struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
}

// measure is a single metric value. SonarQube sends numbers as strings.
type measure struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// projectsSearchResponse is the body of api/projects/search.
type projectsSearchResponse struct {
	Paging     paging `json:"paging"`
	Components []struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"components"`
}

// branchesResponse is the body of api/project_branches/list.
type branchesResponse struct {
	Branches []struct {
		Name   string `json:"name"`
		IsMain bool   `json:"isMain"`
		Type   string `json:"type"`
	} `json:"branches"`
}

// componentMeasuresResponse is the body of api/measures/component.
type componentMeasuresResponse struct {
	Component struct {
		Key      string    `json:"key"`
		Measures []measure `json:"measures"`
	} `json:"component"`
}

// componentTreeResponse is the body of api/measures/component_tree.
type componentTreeResponse struct {
	Paging     paging `json:"paging"`
	Components []struct {
		Key       string    `json:"key"`
		Path      string    `json:"path"`
		Qualifier string    `json:"qualifier"`
		Measures  []measure `json:"measures"`
	} `json:"components"`
}
