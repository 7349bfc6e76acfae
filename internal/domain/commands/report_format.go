package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

const (
	branchReportHeader   = "Project, Branch, Number of lines of code\n"
	topFilesReportHeader = "Project, Branch, Path, Number of lines of code\n"
	projectReportHeader  = "Project, Number of lines of code\n"
)

func renderBranchReport(branches []entities.BranchEntity) string {
	var sb strings.Builder
	sb.WriteString(branchReportHeader)
	for _, branch := range branches {
		fmt.Fprintf(&sb, "%s, %s, %d\n", branch.Identifier, branch.BranchName, branch.NumberOfLines)
	}
	return sb.String()
}

func renderTopFilesReport(projectKey, branchName string, files []entities.SizedEntity) string {
	var sb strings.Builder
	sb.WriteString(topFilesReportHeader)
	for _, file := range files {
		fmt.Fprintf(&sb, "%s, %s, %s, %d\n", projectKey, branchName, file.Identifier, file.NumberOfLines)
	}
	return sb.String()
}

func renderProjectReport(projects []entities.SizedEntity) string {
	var sb strings.Builder
	sb.WriteString(projectReportHeader)
	for _, project := range projects {
		fmt.Fprintf(&sb, "%s, %d\n", project.Identifier, project.NumberOfLines)
	}
	return sb.String()
}

// outputOf falls back to stdout when no writer was given.
func outputOf(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
