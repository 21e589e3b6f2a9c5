package services

import (
	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/kv"
	"NAKAMA_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// Profile returns the authenticated user's stored profile record
func Profile(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	profile := new(schemas.UserProfile)
	err := kv.GetJSON(c.Context(), global.Store, kv.UserKey(userID), profile)
	if err != nil {
		if err == kv.ErrNotFound {
			// provider account without a profile record; mirror the store
			return c.JSON(schemas.ProfileResponse{Profile: nil})
		}
		return errors.HandleInternalError(c, "profile", "Store: "+err.Error())
	}

	return c.JSON(schemas.ProfileResponse{Profile: profile})
}
