package domain

import "fmt"

const (
	videoURLTemplate     = "https://www.youtube.com/watch?v=%s"
	thumbnailURLTemplate = "https://img.youtube.com/vi/%s/mqdefault.jpg"
)

// Resource is a link shown in the interview preparation list.
// URL is the identity used for deduplication.
type Resource struct {
	Name string `json:"name"` // "owner/repo" style label
	URL  string `json:"url"`
}

// GeneralResource is a row of the static recommended-resources table.
type GeneralResource struct {
	Name        string
	URL         string
	Description string
}

// Video is a rendered search hit.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// NewVideo derives the watch and thumbnail URLs from the platform id.
func NewVideo(id, title string) Video {
	return Video{
		ID:           id,
		Title:        title,
		VideoURL:     fmt.Sprintf(videoURLTemplate, id),
		ThumbnailURL: fmt.Sprintf(thumbnailURLTemplate, id),
	}
}

// RepoRecord is one raw item of a repository search response.
// A null description decodes to "".
type RepoRecord struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
}
