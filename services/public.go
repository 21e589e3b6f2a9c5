package services

import (
	"strings"

	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/kv"
	"NAKAMA_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// Health reports server liveness
func Health(c *fiber.Ctx) error {
	return c.JSON(schemas.HealthResponse{Status: "ok"})
}

// UserByUsername resolves a username pointer to the public profile subset
func UserByUsername(c *fiber.Ctx) error {

	username := strings.ToLower(c.Query("username"))
	if username == "" {
		return errors.HandleBadRequestError(c, "Username", "required")
	}

	var userID string
	err := kv.GetJSON(c.Context(), global.Store, kv.UsernameKey(username), &userID)
	if err != nil {
		if err == kv.ErrNotFound {
			return errors.HandleNotFoundError(c, "Username", "not found")
		}
		return errors.HandleInternalError(c, "username", "Store: "+err.Error())
	}

	var profile schemas.UserProfile
	err = kv.GetJSON(c.Context(), global.Store, kv.UserKey(userID), &profile)
	if err != nil {
		if err == kv.ErrNotFound {
			return errors.HandleNotFoundError(c, "User", "not found")
		}
		return errors.HandleInternalError(c, "user", "Store: "+err.Error())
	}

	return c.JSON(schemas.PublicUser{
		ID:          profile.ID,
		Name:        profile.Name,
		Username:    profile.Username,
		AvatarColor: profile.AvatarColor,
	})
}
