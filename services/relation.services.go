package services

import (
	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/helpers"
	"NAKAMA_server/kv"
	"NAKAMA_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// GetBuddies resolves the user's buddy list to profiles, skipping ids whose
// profile record has gone missing
func GetBuddies(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	buddyIDs, err := kv.GetList(c.Context(), global.Store, kv.BuddiesKey(userID))
	if err != nil {
		return errors.HandleInternalError(c, "buddies", "Store: "+err.Error())
	}

	buddies := []schemas.UserProfile{}
	for _, buddyID := range buddyIDs {
		var buddy schemas.UserProfile
		err = kv.GetJSON(c.Context(), global.Store, kv.UserKey(buddyID), &buddy)
		if err != nil {
			if err == kv.ErrNotFound {
				continue
			}
			return errors.HandleInternalError(c, "buddies_user", "Store: "+err.Error())
		}
		buddies = append(buddies, buddy)
	}

	return c.JSON(schemas.BuddiesResponse{Buddies: buddies})
}

// AddBuddy creates a pending buddy request and indexes it on the recipient.
// Self-requests are rejected; a duplicate pending request to the same user is
// not (the pending listing filters by status, so duplicates are noise).
func AddBuddy(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.AddBuddySchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if req.BuddyID == userID {
		return errors.HandleBadRequestError(c, "BuddyID", "cannot request yourself")
	}

	requestID, err := helpers.NewID()
	if err != nil {
		return errors.HandleInternalError(c, "id", err.Error())
	}

	request := schemas.BuddyRequest{
		ID:        requestID,
		From:      userID,
		To:        req.BuddyID,
		Status:    "pending",
		CreatedAt: helpers.Timestamp(),
	}

	if err = kv.SetJSON(c.Context(), global.Store, kv.BuddyRequestKey(requestID), request); err != nil {
		return errors.HandleInternalError(c, "buddy_request", "Store: "+err.Error())
	}

	indexKey := kv.BuddyRequestsKey(req.BuddyID)
	unlock := global.Locks.Key(indexKey)
	defer unlock()

	pending, err := kv.GetList(c.Context(), global.Store, indexKey)
	if err != nil {
		return errors.HandleInternalError(c, "buddy_requests", "Store: "+err.Error())
	}
	pending = append(pending, requestID)

	if err = kv.SetJSON(c.Context(), global.Store, indexKey, pending); err != nil {
		return errors.HandleInternalError(c, "buddy_requests", "Store: "+err.Error())
	}

	return c.JSON(schemas.AddBuddyResponse{Success: true, RequestID: requestID})
}

// GetBuddyRequests lists the user's pending requests joined with each
// sender's profile
func GetBuddyRequests(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	requestIDs, err := kv.GetList(c.Context(), global.Store, kv.BuddyRequestsKey(userID))
	if err != nil {
		return errors.HandleInternalError(c, "buddy_requests", "Store: "+err.Error())
	}

	requests := []schemas.BuddyRequestEntry{}
	for _, requestID := range requestIDs {
		var request schemas.BuddyRequest
		err = kv.GetJSON(c.Context(), global.Store, kv.BuddyRequestKey(requestID), &request)
		if err != nil {
			if err == kv.ErrNotFound {
				continue
			}
			return errors.HandleInternalError(c, "buddy_request", "Store: "+err.Error())
		}
		if request.Status != "pending" {
			continue
		}

		var from schemas.UserProfile
		err = kv.GetJSON(c.Context(), global.Store, kv.UserKey(request.From), &from)
		if err != nil {
			if err == kv.ErrNotFound {
				continue
			}
			return errors.HandleInternalError(c, "request_user", "Store: "+err.Error())
		}

		requests = append(requests, schemas.BuddyRequestEntry{
			ID:          request.ID,
			From:        request.From,
			Name:        from.Name,
			Username:    from.Username,
			AvatarColor: from.AvatarColor,
			Status:      "Wants to be your buddy",
		})
	}

	return c.JSON(schemas.BuddyRequestsResponse{Requests: requests})
}

// AcceptBuddy marks the request accepted and derives the symmetric buddy
// lists. List membership is idempotent, so re-accepting reaches the same end
// state without duplicating entries. Both list writes go out in one MSet.
func AcceptBuddy(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.RequestActionSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	request := new(schemas.BuddyRequest)
	err := kv.GetJSON(c.Context(), global.Store, kv.BuddyRequestKey(req.RequestID), request)
	if err != nil {
		if err == kv.ErrNotFound {
			return errors.HandleBadRequestError(c, "RequestID", "invalid")
		}
		return errors.HandleInternalError(c, "buddy_request", "Store: "+err.Error())
	}

	if request.To != userID {
		return errors.HandleBadRequestError(c, "RequestID", "invalid")
	}

	request.Status = "accepted"
	if err = kv.SetJSON(c.Context(), global.Store, kv.BuddyRequestKey(request.ID), request); err != nil {
		return errors.HandleInternalError(c, "buddy_request", "Store: "+err.Error())
	}

	userKey := kv.BuddiesKey(userID)
	fromKey := kv.BuddiesKey(request.From)
	unlock := global.Locks.Keys(userKey, fromKey)
	defer unlock()

	userBuddies, err := kv.GetList(c.Context(), global.Store, userKey)
	if err != nil {
		return errors.HandleInternalError(c, "buddies", "Store: "+err.Error())
	}
	fromBuddies, err := kv.GetList(c.Context(), global.Store, fromKey)
	if err != nil {
		return errors.HandleInternalError(c, "buddies", "Store: "+err.Error())
	}

	userBuddies = appendMissing(userBuddies, request.From)
	fromBuddies = appendMissing(fromBuddies, userID)

	userPair, err := kv.PairJSON(userKey, userBuddies)
	if err != nil {
		return errors.HandleInternalError(c, "buddies_marshal", err.Error())
	}
	fromPair, err := kv.PairJSON(fromKey, fromBuddies)
	if err != nil {
		return errors.HandleInternalError(c, "buddies_marshal", err.Error())
	}

	if err = global.Store.MSet(c.Context(), userPair, fromPair); err != nil {
		return errors.HandleInternalError(c, "buddies_write", "Store: "+err.Error())
	}

	return helpers.SuccessResponse(c)
}

// DeclineBuddy marks the request declined; buddy lists are untouched
func DeclineBuddy(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.RequestActionSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	request := new(schemas.BuddyRequest)
	err := kv.GetJSON(c.Context(), global.Store, kv.BuddyRequestKey(req.RequestID), request)
	if err != nil {
		if err == kv.ErrNotFound {
			return errors.HandleBadRequestError(c, "RequestID", "invalid")
		}
		return errors.HandleInternalError(c, "buddy_request", "Store: "+err.Error())
	}

	if request.To != userID {
		return errors.HandleBadRequestError(c, "RequestID", "invalid")
	}

	request.Status = "declined"
	if err = kv.SetJSON(c.Context(), global.Store, kv.BuddyRequestKey(request.ID), request); err != nil {
		return errors.HandleInternalError(c, "buddy_request", "Store: "+err.Error())
	}

	return helpers.SuccessResponse(c)
}

func appendMissing(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}
