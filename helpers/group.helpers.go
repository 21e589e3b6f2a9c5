package helpers

import (
	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/kv"
	"NAKAMA_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// GetGroupChecked fetches a group and enforces membership for the requester.
// Responds 404 for a missing group and 403 for a non-member.
func GetGroupChecked(c *fiber.Ctx, groupID string, userID string) (*schemas.Group, error) {
	group := new(schemas.Group)
	err := kv.GetJSON(c.Context(), global.Store, kv.GroupKey(groupID), group)
	if err != nil {
		if err == kv.ErrNotFound {
			return nil, errors.HandleNotFoundError(c, "Group", "not found")
		}
		return nil, errors.HandleInternalError(c, "group", "Store: "+err.Error())
	}

	if !GroupHasMember(group, userID) {
		return nil, errors.HandleForbiddenError(c, "Group", "not a member")
	}

	return group, nil
}

// GroupHasMember reports membership by linear scan; member lists are small
// and fixed at creation
func GroupHasMember(group *schemas.Group, userID string) bool {
	for _, id := range group.Members {
		if id == userID {
			return true
		}
	}
	return false
}
