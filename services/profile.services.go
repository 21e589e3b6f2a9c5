package services

import (
	"bytes"
	"encoding/base64"

	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/helpers"
	"NAKAMA_server/kv"
	"NAKAMA_server/schemas"

	"github.com/gofiber/fiber/v2"
	minio "github.com/minio/minio-go/v7"
)

// GetFavorites returns the user's saved favorites
func GetFavorites(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	favorites := []schemas.Favorite{}
	err := kv.GetJSON(c.Context(), global.Store, kv.FavoritesKey(userID), &favorites)
	if err != nil && err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "favorites", "Store: "+err.Error())
	}

	return c.JSON(schemas.FavoritesResponse{Favorites: favorites})
}

// AddFavorite appends a favorite after a linear dedup scan. The scan matches
// on itemId alone and ignores type, so one item id cannot be favorited under
// two types; kept as the documented behavior.
func AddFavorite(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.AddFavoriteSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	favoritesKey := kv.FavoritesKey(userID)
	unlock := global.Locks.Key(favoritesKey)
	defer unlock()

	favorites := []schemas.Favorite{}
	err := kv.GetJSON(c.Context(), global.Store, favoritesKey, &favorites)
	if err != nil && err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "favorites", "Store: "+err.Error())
	}

	for _, favorite := range favorites {
		if favorite.ItemID == req.ItemID {
			return errors.HandleBadRequestError(c, "Favorites", "Already in favorites")
		}
	}

	favoriteID, err := helpers.NewID()
	if err != nil {
		return errors.HandleInternalError(c, "id", err.Error())
	}

	favorite := schemas.Favorite{
		ID:       favoriteID,
		ItemID:   req.ItemID,
		Name:     req.Name,
		Type:     req.Type,
		Location: req.Location,
		SavedAt:  helpers.Timestamp(),
	}

	favorites = append(favorites, favorite)
	if err = kv.SetJSON(c.Context(), global.Store, favoritesKey, favorites); err != nil {
		return errors.HandleInternalError(c, "favorites", "Store: "+err.Error())
	}

	return c.JSON(schemas.AddFavoriteResponse{Success: true, Favorite: favorite})
}

// RemoveFavorite filters the list by favorite id; removing an id that is not
// present is a no-op success
func RemoveFavorite(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.RemoveFavoriteSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	favoritesKey := kv.FavoritesKey(userID)
	unlock := global.Locks.Key(favoritesKey)
	defer unlock()

	favorites := []schemas.Favorite{}
	err := kv.GetJSON(c.Context(), global.Store, favoritesKey, &favorites)
	if err != nil && err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "favorites", "Store: "+err.Error())
	}

	kept := favorites[:0]
	for _, favorite := range favorites {
		if favorite.ID != req.FavoriteID {
			kept = append(kept, favorite)
		}
	}

	if err = kv.SetJSON(c.Context(), global.Store, favoritesKey, kept); err != nil {
		return errors.HandleInternalError(c, "favorites", "Store: "+err.Error())
	}

	return helpers.SuccessResponse(c)
}

// GetLogs returns the user's travel log, newest first
func GetLogs(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	logs := []schemas.TravelLog{}
	err := kv.GetJSON(c.Context(), global.Store, kv.LogsKey(userID), &logs)
	if err != nil && err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "logs", "Store: "+err.Error())
	}

	return c.JSON(schemas.LogsResponse{Logs: logs})
}

// AddLog prepends a travel log entry so the list stays newest first
func AddLog(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.AddLogSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	logID, err := helpers.NewID()
	if err != nil {
		return errors.HandleInternalError(c, "id", err.Error())
	}

	entry := schemas.TravelLog{
		ID:          logID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        helpers.Timestamp(),
	}

	logsKey := kv.LogsKey(userID)
	unlock := global.Locks.Key(logsKey)
	defer unlock()

	logs := []schemas.TravelLog{}
	err = kv.GetJSON(c.Context(), global.Store, logsKey, &logs)
	if err != nil && err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "logs", "Store: "+err.Error())
	}

	logs = append([]schemas.TravelLog{entry}, logs...)
	if err = kv.SetJSON(c.Context(), global.Store, logsKey, logs); err != nil {
		return errors.HandleInternalError(c, "logs", "Store: "+err.Error())
	}

	return c.JSON(schemas.AddLogResponse{Success: true, Log: entry})
}

// GetDocuments returns the user's travel document metadata
func GetDocuments(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	documents := []schemas.TravelDocument{}
	err := kv.GetJSON(c.Context(), global.Store, kv.DocumentsKey(userID), &documents)
	if err != nil && err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "documents", "Store: "+err.Error())
	}

	return c.JSON(schemas.DocumentsResponse{Documents: documents})
}

// AddDocument stores the document bytes in object storage and appends its
// metadata to the user's document list
func AddDocument(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.AddDocumentSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	content, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return errors.HandleBadRequestError(c, "Content", "invalid base64")
	}

	documentID, err := helpers.NewID()
	if err != nil {
		return errors.HandleInternalError(c, "id", err.Error())
	}

	object := userID + "/" + documentID
	_, err = global.MinIOClient.PutObject(c.Context(), "documents", object, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{ContentType: req.Type})
	if err != nil {
		return errors.HandleInternalError(c, "minio_put", err.Error())
	}

	document := schemas.TravelDocument{
		ID:         documentID,
		Name:       req.Name,
		Type:       req.Type,
		Size:       len(content),
		Object:     object,
		UploadedAt: helpers.Timestamp(),
	}

	documentsKey := kv.DocumentsKey(userID)
	unlock := global.Locks.Key(documentsKey)
	defer unlock()

	documents := []schemas.TravelDocument{}
	err = kv.GetJSON(c.Context(), global.Store, documentsKey, &documents)
	if err != nil && err != kv.ErrNotFound {
		return errors.HandleInternalError(c, "documents", "Store: "+err.Error())
	}

	documents = append(documents, document)
	if err = kv.SetJSON(c.Context(), global.Store, documentsKey, documents); err != nil {
		return errors.HandleInternalError(c, "documents", "Store: "+err.Error())
	}

	return c.JSON(schemas.AddDocumentResponse{Success: true, Document: document})
}
