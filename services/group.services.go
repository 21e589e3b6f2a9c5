package services

import (
	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/helpers"
	"NAKAMA_server/kv"
	"NAKAMA_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// GetGroups lists the user's groups with member counts
func GetGroups(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	groupIDs, err := kv.GetList(c.Context(), global.Store, kv.UserGroupsKey(userID))
	if err != nil {
		return errors.HandleInternalError(c, "user_groups", "Store: "+err.Error())
	}

	groups := []schemas.GroupSummary{}
	for _, groupID := range groupIDs {
		var group schemas.Group
		err = kv.GetJSON(c.Context(), global.Store, kv.GroupKey(groupID), &group)
		if err != nil {
			if err == kv.ErrNotFound {
				continue
			}
			return errors.HandleInternalError(c, "group", "Store: "+err.Error())
		}
		groups = append(groups, schemas.GroupSummary{
			Group:       group,
			MemberCount: len(group.Members),
		})
	}

	return c.JSON(schemas.GroupsResponse{Groups: groups})
}

// CreateGroup creates a fixed-membership group of the creator plus the
// invited members. Caller-supplied duplicate ids are stored as given, so a
// duplicated invite inflates the member count.
func CreateGroup(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.CreateGroupSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	groupID, err := helpers.NewID()
	if err != nil {
		return errors.HandleInternalError(c, "id", err.Error())
	}

	group := schemas.Group{
		ID:        groupID,
		Name:      req.Name,
		CreatedBy: userID,
		Members:   append([]string{userID}, req.Members...),
		CreatedAt: helpers.Timestamp(),
	}

	if err = kv.SetJSON(c.Context(), global.Store, kv.GroupKey(groupID), group); err != nil {
		return errors.HandleInternalError(c, "group", "Store: "+err.Error())
	}

	for _, memberID := range group.Members {
		indexKey := kv.UserGroupsKey(memberID)
		unlock := global.Locks.Key(indexKey)

		memberGroups, err := kv.GetList(c.Context(), global.Store, indexKey)
		if err != nil {
			unlock()
			return errors.HandleInternalError(c, "user_groups", "Store: "+err.Error())
		}
		memberGroups = append(memberGroups, groupID)

		err = kv.SetJSON(c.Context(), global.Store, indexKey, memberGroups)
		unlock()
		if err != nil {
			return errors.HandleInternalError(c, "user_groups", "Store: "+err.Error())
		}
	}

	return c.JSON(schemas.CreateGroupResponse{Success: true, Group: group})
}

// GetGroup returns one group to a member
func GetGroup(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)
	groupID := c.Params("groupID")

	group, err := helpers.GetGroupChecked(c, groupID, userID)
	if group == nil {
		return err
	}

	return c.JSON(schemas.GroupResponse{Group: *group})
}

// GetGroupMessages returns the retained message window in append order; no
// re-sort, unlike the 1:1 listing
func GetGroupMessages(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)
	groupID := c.Params("groupID")

	group, err := helpers.GetGroupChecked(c, groupID, userID)
	if group == nil {
		return err
	}

	messages := []schemas.GroupMessage{}
	err = kv.GetJSON(c.Context(), global.Store, kv.GroupMessagesKey(groupID), &messages)
	if err != nil && err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "group_messages", "Store: "+err.Error())
	}

	return c.JSON(schemas.GroupMessagesResponse{Messages: messages})
}

// SendGroupMessage appends a message carrying a sender snapshot and trims
// the stored array to the retention window, dropping the oldest entries
// with no archival
func SendGroupMessage(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)
	groupID := c.Params("groupID")

	req := new(schemas.SendGroupMessageSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	group, err := helpers.GetGroupChecked(c, groupID, userID)
	if group == nil {
		return err
	}

	senderName := "Unknown"
	senderColor := "bg-blue-500"
	var sender schemas.UserProfile
	err = kv.GetJSON(c.Context(), global.Store, kv.UserKey(userID), &sender)
	if err == nil {
		senderName = sender.Name
		senderColor = sender.AvatarColor
	} else if err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "sender", "Store: "+err.Error())
	}

	messageID, err := helpers.NewID()
	if err != nil {
		return errors.HandleInternalError(c, "id", err.Error())
	}

	message := schemas.GroupMessage{
		ID:          messageID,
		SenderID:    userID,
		SenderName:  senderName,
		SenderColor: senderColor,
		Content:     req.Message,
		Timestamp:   helpers.Timestamp(),
	}

	messagesKey := kv.GroupMessagesKey(groupID)
	unlock := global.Locks.Key(messagesKey)
	defer unlock()

	messages := []schemas.GroupMessage{}
	err = kv.GetJSON(c.Context(), global.Store, messagesKey, &messages)
	if err != nil && err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "group_messages", "Store: "+err.Error())
	}

	messages = append(messages, message)
	if len(messages) > global.GroupMessageLimit {
		messages = messages[len(messages)-global.GroupMessageLimit:]
	}

	if err = kv.SetJSON(c.Context(), global.Store, messagesKey, messages); err != nil {
		return errors.HandleInternalError(c, "group_messages", "Store: "+err.Error())
	}

	return c.JSON(schemas.SendGroupMessageResponse{Success: true, Message: message})
}
