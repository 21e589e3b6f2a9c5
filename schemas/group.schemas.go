package schemas

// Group is the stored fleet record (group:<id>). Membership is fixed at
// creation; there is no add or remove member operation.
type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedBy string   `json:"createdBy"`
	Members   []string `json:"members"`
	CreatedAt string   `json:"createdAt"`
}

// GroupMessage carries a snapshot of the sender's name and color taken at
// send time; renaming a user does not rewrite past messages.
type GroupMessage struct {
	ID          string `json:"id"`
	SenderID    string `json:"senderId"`
	SenderName  string `json:"senderName"`
	SenderColor string `json:"senderColor"`
	Content     string `json:"content"`
	Timestamp   string `json:"timestamp"`
}

// CreateGroupSchema struct
type CreateGroupSchema struct {
	Name    string   `json:"name" validate:"required,max=100"`
	Members []string `json:"members"`
}

// CreateGroupResponse struct
type CreateGroupResponse struct {
	Success bool  `json:"success"`
	Group   Group `json:"group"`
}

// GroupResponse struct
type GroupResponse struct {
	Group Group `json:"group"`
}

// GroupSummary struct
type GroupSummary struct {
	Group
	MemberCount int `json:"memberCount"`
}

// GroupsResponse struct
type GroupsResponse struct {
	Groups []GroupSummary `json:"groups"`
}

// GroupMessagesResponse struct
type GroupMessagesResponse struct {
	Messages []GroupMessage `json:"messages"`
}

// SendGroupMessageSchema struct
type SendGroupMessageSchema struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// SendGroupMessageResponse struct
type SendGroupMessageResponse struct {
	Success bool         `json:"success"`
	Message GroupMessage `json:"message"`
}
