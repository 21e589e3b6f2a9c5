package helpers

import (
	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/kv"
	"NAKAMA_server/schemas"
	"crypto/rand"
	"math/big"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile gets a stored profile by id; responds bad request for a
// missing user and internal error for a store failure
func GetUserProfile(c *fiber.Ctx, id string) (*schemas.UserProfile, error) {
	profile := new(schemas.UserProfile)
	err := kv.GetJSON(c.Context(), global.Store, kv.UserKey(id), profile)
	if err != nil {
		if err == kv.ErrNotFound {
			return nil, errors.HandleBadRequestError(c, "UserID", "invalid")
		}
		return nil, errors.HandleInternalError(c, "user", "Store: "+err.Error())
	}
	return profile, nil
}

var avatarColors = []string{
	"bg-red-500",
	"bg-green-500",
	"bg-orange-500",
	"bg-yellow-500",
	"bg-blue-500",
	"bg-pink-500",
	"bg-purple-500",
	"bg-cyan-500",
	"bg-indigo-500",
	"bg-teal-500",
	"bg-lime-500",
	"bg-rose-500",
}

var characterColors = map[string]string{
	"luffy":   "bg-red-500",
	"zoro":    "bg-green-500",
	"nami":    "bg-orange-500",
	"usopp":   "bg-yellow-500",
	"sanji":   "bg-blue-500",
	"chopper": "bg-pink-500",
	"robin":   "bg-purple-500",
	"franky":  "bg-cyan-500",
	"brook":   "bg-gray-500",
	"jinbe":   "bg-indigo-500",
}

// RandomAvatarColor picks a color tag for a new user
func RandomAvatarColor() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(avatarColors))))
	if err != nil {
		return avatarColors[0]
	}
	return avatarColors[n.Int64()]
}

// CharacterColor maps a known demo character to its fixed color tag
func CharacterColor(character string) string {
	if color, ok := characterColors[character]; ok {
		return color
	}
	return "bg-gray-500"
}
