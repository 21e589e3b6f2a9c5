package schemas

// Favorite is one entry in a user's favorites list (favorites:<id>)
type Favorite struct {
	ID       string `json:"id"`
	ItemID   string `json:"itemId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	SavedAt  string `json:"savedAt"`
}

// AddFavoriteSchema struct
type AddFavoriteSchema struct {
	ItemID   string `json:"itemId" validate:"required"`
	Name     string `json:"name" validate:"required,max=200"`
	Type     string `json:"type" validate:"required,max=50"`
	Location string `json:"location" validate:"max=200"`
}

// AddFavoriteResponse struct
type AddFavoriteResponse struct {
	Success  bool     `json:"success"`
	Favorite Favorite `json:"favorite"`
}

// RemoveFavoriteSchema struct
type RemoveFavoriteSchema struct {
	FavoriteID string `json:"favoriteId" validate:"required"`
}

// FavoritesResponse struct
type FavoritesResponse struct {
	Favorites []Favorite `json:"favorites"`
}

// TravelLog is one entry in a user's travel log list, newest first
type TravelLog struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
}

// AddLogSchema struct
type AddLogSchema struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Location    string `json:"location" validate:"max=200"`
}

// AddLogResponse struct
type AddLogResponse struct {
	Success bool      `json:"success"`
	Log     TravelLog `json:"log"`
}

// LogsResponse struct
type LogsResponse struct {
	Logs []TravelLog `json:"logs"`
}

// TravelDocument is metadata for an uploaded document; content bytes live in
// object storage under Object
type TravelDocument struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Size       int    `json:"size"`
	Object     string `json:"object"`
	UploadedAt string `json:"uploadedAt"`
}

// AddDocumentSchema struct
type AddDocumentSchema struct {
	Name    string `json:"name" validate:"required,max=200"`
	Type    string `json:"type" validate:"required,max=100"`
	Content string `json:"content" validate:"required"` // base64
}

// AddDocumentResponse struct
type AddDocumentResponse struct {
	Success  bool           `json:"success"`
	Document TravelDocument `json:"document"`
}

// DocumentsResponse struct
type DocumentsResponse struct {
	Documents []TravelDocument `json:"documents"`
}
