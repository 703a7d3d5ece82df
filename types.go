package gallery

// Record is one manifest entry describing a single gallery image. The JSON
// field names match what the gallery front-end expects.
type Record struct {
	File     string `json:"file"`
	Sort     int    `json:"sort"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Aspect   string `json:"aspect"`
}

// Rejection describes a filename that matched an image extension but failed
// validation against the naming convention.
type Rejection struct {
	File   string
	Reason string
}
