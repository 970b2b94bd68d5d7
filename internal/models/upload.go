package models

type Bucket string

const (
	BucketProjects Bucket = "projects"
	BucketGallery  Bucket = "gallery"
	BucketLogos    Bucket = "logos"
)

func (b Bucket) Valid() bool {
	switch b {
	case BucketProjects, BucketGallery, BucketLogos:
		return true
	}
	return false
}

type UploadResult struct {
	URL    string `json:"url"`
	Path   string `json:"path"`
	Bucket Bucket `json:"bucket"`
}

type UploadProgress struct {
	ID      string `json:"id"`
	Percent int    `json:"percent"`
	Done    bool   `json:"done"`
	Failed  bool   `json:"failed"`
}
