package services

import (
	"crypto/subtle"
	"regexp"
	"strings"

	"NAKAMA_server/config"
	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/helpers"
	"NAKAMA_server/identity"
	"NAKAMA_server/kv"
	"NAKAMA_server/schemas"

	"github.com/gofiber/fiber/v2"
)

var validUsername = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// CheckUsername reports whether a username is still unreserved
func CheckUsername(c *fiber.Ctx) error {

	req := new(schemas.CheckUsernameSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	username := strings.ToLower(req.Username)

	_, err := global.Store.Get(c.Context(), kv.UsernameKey(username))
	if err != nil && err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "username", "Store: "+err.Error())
	}

	return c.JSON(schemas.CheckUsernameResponse{
		Available: err == kv.ErrNotFound,
		Username:  username,
	})
}

// Signup creates a provider account, stores the profile record and reserves
// the username pointer. The availability check and the reservation are two
// separate writes; two signups racing the same name can both pass the check.
func Signup(c *fiber.Ctx) error {

	req := new(schemas.SignupSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if !validUsername.MatchString(req.Username) {
		return errors.HandleBadRequestError(c, "Username", "must be 3-20 characters (letters, numbers, underscore only)")
	}

	username := strings.ToLower(req.Username)
	email := strings.ToLower(req.Email)

	_, err := global.Store.Get(c.Context(), kv.UsernameKey(username))
	if err == nil {
		return errors.HandleBadRequestError(c, "Username", "already taken")
	}
	if err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "username", "Store: "+err.Error())
	}

	created := helpers.Timestamp()
	avatarColor := helpers.RandomAvatarColor()

	userID, err := global.Identity.AdminCreateUser(c.Context(), email, req.Password, identity.UserMetadata{
		Name:        req.Name,
		Username:    username,
		AvatarColor: avatarColor,
		CreatedAt:   created,
	})
	if err != nil {
		if err == identity.ErrDuplicate {
			return errors.HandleBadRequestError(c, "Email", "already registered")
		}
		return errors.HandleInternalError(c, "identity_create", err.Error())
	}

	profile := &schemas.UserProfile{
		ID:          userID,
		Name:        req.Name,
		Username:    username,
		AvatarColor: avatarColor,
		Status:      "online",
		CreatedAt:   created,
	}

	profilePair, err := kv.PairJSON(kv.UserKey(userID), profile)
	if err != nil {
		return errors.HandleInternalError(c, "profile_marshal", err.Error())
	}
	usernamePair, err := kv.PairJSON(kv.UsernameKey(username), userID)
	if err != nil {
		return errors.HandleInternalError(c, "username_marshal", err.Error())
	}

	if err = global.Store.MSet(c.Context(), profilePair, usernamePair); err != nil {
		return errors.HandleInternalError(c, "signup_write", "Store: "+err.Error())
	}

	return c.JSON(schemas.SignupResponse{User: profile})
}

// InitDemo idempotently creates the demo account. Guarded by the service
// credential header instead of a bearer token.
func InitDemo(c *fiber.Ctx) error {

	serviceKey := c.Request().Header.Peek("x-service-key")
	if subtle.ConstantTimeCompare(serviceKey, []byte(config.Config.Auth.ServiceKey)) != 1 {
		return errors.HandleUnauthorizedError(c)
	}

	created := helpers.Timestamp()

	userID, err := global.Identity.AdminCreateUser(c.Context(), "luffy@strawhat.com", "password123", identity.UserMetadata{
		Name:        "Monkey D. Luffy",
		Username:    "captain_luffy",
		AvatarColor: helpers.CharacterColor("luffy"),
		CreatedAt:   created,
	})
	if err != nil {
		if err == identity.ErrDuplicate {
			return helpers.SuccessResponse(c)
		}
		return errors.HandleInternalError(c, "identity_create", err.Error())
	}

	profile := &schemas.UserProfile{
		ID:          userID,
		Name:        "Monkey D. Luffy",
		Username:    "captain_luffy",
		AvatarColor: helpers.CharacterColor("luffy"),
		Status:      "online",
		CreatedAt:   created,
	}

	profilePair, err := kv.PairJSON(kv.UserKey(userID), profile)
	if err != nil {
		return errors.HandleInternalError(c, "profile_marshal", err.Error())
	}
	usernamePair, err := kv.PairJSON(kv.UsernameKey("captain_luffy"), userID)
	if err != nil {
		return errors.HandleInternalError(c, "username_marshal", err.Error())
	}

	if err = global.Store.MSet(c.Context(), profilePair, usernamePair); err != nil {
		return errors.HandleInternalError(c, "demo_write", "Store: "+err.Error())
	}

	return helpers.SuccessResponse(c)
}
