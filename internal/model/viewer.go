package model

// Viewer is the user a view is built for.
type Viewer struct {
	UserID string `json:"id"`
	IsGM   bool   `json:"is_gm"`
}

// AccessToken is the object carried by a signed access token.
type AccessToken struct {
	ID   string `json:"id"`
	IsGM bool   `json:"is_gm"`
}

// ViewConfig holds the setting values the view pipeline depends on.
type ViewConfig struct {
	AllowPlayersDrag bool
	CountHidden      bool
	ShowTasks        string
	Locale           string
	Concurrency      int
}
