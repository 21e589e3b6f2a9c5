package schemas

// BuddyRequest is the stored request record (buddy_request:<id>). Created by
// the sender, mutated exactly once by the recipient, never deleted.
type BuddyRequest struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Status    string `json:"status"` // pending, accepted, declined
	CreatedAt string `json:"createdAt"`
}

// AddBuddySchema struct
type AddBuddySchema struct {
	BuddyID string `json:"buddyId" validate:"required"`
}

// AddBuddyResponse struct
type AddBuddyResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId"`
}

// RequestActionSchema struct
type RequestActionSchema struct {
	RequestID string `json:"requestId" validate:"required"`
}

// BuddyRequestEntry is a pending request joined with its sender's profile
type BuddyRequestEntry struct {
	ID          string `json:"id"`
	From        string `json:"from"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	AvatarColor string `json:"avatar_color"`
	Status      string `json:"status"`
}

// BuddyRequestsResponse struct
type BuddyRequestsResponse struct {
	Requests []BuddyRequestEntry `json:"requests"`
}

// BuddiesResponse struct
type BuddiesResponse struct {
	Buddies []UserProfile `json:"buddies"`
}
