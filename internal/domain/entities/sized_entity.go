package entities

// SizedEntity is anything measured in lines of code: a file path or a project key.
type SizedEntity struct {
	Identifier    string
	NumberOfLines int
}

// BranchEntity is the size of one branch of a project. Identifier holds the project key.
type BranchEntity struct {
	SizedEntity
	BranchName string
}

// NewBranchEntity creates a BranchEntity for the given project and branch.
func NewBranchEntity(projectKey, branchName string, numberOfLines int) BranchEntity {
	return BranchEntity{
		SizedEntity: SizedEntity{Identifier: projectKey, NumberOfLines: numberOfLines},
		BranchName:  branchName,
	}
}
