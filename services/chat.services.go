package services

import (
	"sort"

	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/helpers"
	"NAKAMA_server/kv"
	"NAKAMA_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// SendMessage stores a 1:1 message once and appends its id to both
// directions of the pair index in one MSet
func SendMessage(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.SendMessageSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	messageID, err := helpers.NewID()
	if err != nil {
		return errors.HandleInternalError(c, "id", err.Error())
	}

	message := schemas.ChatMessage{
		ID:          messageID,
		SenderID:    userID,
		RecipientID: req.RecipientID,
		Message:     req.Message,
		Timestamp:   helpers.Timestamp(),
		Read:        false,
	}

	if err = kv.SetJSON(c.Context(), global.Store, kv.MessageKey(messageID), message); err != nil {
		return errors.HandleInternalError(c, "message", "Store: "+err.Error())
	}

	senderKey := kv.ChatKey(userID, req.RecipientID)
	recipientKey := kv.ChatKey(req.RecipientID, userID)
	unlock := global.Locks.Keys(senderKey, recipientKey)
	defer unlock()

	senderIDs, err := kv.GetList(c.Context(), global.Store, senderKey)
	if err != nil {
		return errors.HandleInternalError(c, "chat_index", "Store: "+err.Error())
	}
	recipientIDs, err := kv.GetList(c.Context(), global.Store, recipientKey)
	if err != nil {
		return errors.HandleInternalError(c, "chat_index", "Store: "+err.Error())
	}

	senderIDs = append(senderIDs, messageID)
	recipientIDs = append(recipientIDs, messageID)

	senderPair, err := kv.PairJSON(senderKey, senderIDs)
	if err != nil {
		return errors.HandleInternalError(c, "chat_marshal", err.Error())
	}
	recipientPair, err := kv.PairJSON(recipientKey, recipientIDs)
	if err != nil {
		return errors.HandleInternalError(c, "chat_marshal", err.Error())
	}

	if err = global.Store.MSet(c.Context(), senderPair, recipientPair); err != nil {
		return errors.HandleInternalError(c, "chat_write", "Store: "+err.Error())
	}

	return c.JSON(schemas.SendMessageResponse{Message: message})
}

// GetMessages returns the full pair history sorted ascending by timestamp.
// The index preserves append order, but concurrent sends can land out of
// order, so the listing re-sorts every call. No pagination.
func GetMessages(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)
	buddyID := c.Params("buddyID")

	messageIDs, err := kv.GetList(c.Context(), global.Store, kv.ChatKey(userID, buddyID))
	if err != nil {
		return errors.HandleInternalError(c, "chat_index", "Store: "+err.Error())
	}

	messages := []schemas.ChatMessage{}
	for _, messageID := range messageIDs {
		var message schemas.ChatMessage
		err = kv.GetJSON(c.Context(), global.Store, kv.MessageKey(messageID), &message)
		if err != nil {
			if err == kv.ErrNotFound {
				continue
			}
			return errors.HandleInternalError(c, "message", "Store: "+err.Error())
		}
		messages = append(messages, message)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return helpers.ParseTimestamp(messages[i].Timestamp).Before(helpers.ParseTimestamp(messages[j].Timestamp))
	})

	return c.JSON(schemas.MessagesResponse{Messages: messages})
}
