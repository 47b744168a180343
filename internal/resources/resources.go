// Package resources builds search and reference links for study subjects.
// Links are constructed, never fetched.
package resources

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/validate"
)

const (
	YouTubeBase      = "https://www.youtube.com/results"
	GoogleSearchBase = "https://www.google.com/search"
	FreeCodeCampURL  = "https://www.freecodecamp.org/learn/"
)

// SubjectResources holds the links for one subject.
type SubjectResources struct {
	Subject       string `json:"subject"`
	YouTubeSearch string `json:"youtube_search"`
	PDFSearch     string `json:"pdf_search"`
	FreeCodeCamp  string `json:"freecodecamp"`
	Description   string `json:"description"`
}

// Generate maps every non-blank subject to its links. Blank entries are
// skipped and repeated subjects collapse to one entry. An empty input is an
// error; an input of only blanks yields an empty map.
func Generate(subjects []string) (map[string]SubjectResources, error) {
	if len(subjects) == 0 {
		return nil, fmt.Errorf("%w: at least one subject is required", validate.ErrInvalidInput)
	}

	out := make(map[string]SubjectResources, len(subjects))
	for _, subject := range subjects {
		if strings.TrimSpace(subject) == "" {
			continue
		}
		if _, seen := out[subject]; seen {
			continue
		}
		out[subject] = For(subject)
	}
	return out, nil
}

// For builds the links for a single subject.
func For(subject string) SubjectResources {
	return SubjectResources{
		Subject:       subject,
		YouTubeSearch: searchURL(YouTubeBase, "search_query", subject+" course"),
		PDFSearch:     searchURL(GoogleSearchBase, "q", subject+" notes pdf"),
		FreeCodeCamp:  FreeCodeCampURL,
		Description:   "Learning resources for " + subject,
	}
}

func searchURL(base, param, query string) string {
	v := url.Values{}
	v.Set(param, query)
	return base + "?" + v.Encode()
}
