package services

import (
	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/helpers"
	"NAKAMA_server/kv"
	"NAKAMA_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// BookHotel records a confirmed booking and indexes it on the user.
// Bookings are append-only; there is no cancellation path.
func BookHotel(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.BookHotelSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	bookingID, err := helpers.NewID()
	if err != nil {
		return errors.HandleInternalError(c, "id", err.Error())
	}

	booking := schemas.Booking{
		ID:        bookingID,
		UserID:    userID,
		HotelID:   req.HotelID,
		HotelName: req.HotelName,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Price:     req.Price,
		Status:    "confirmed",
		BookedAt:  helpers.Timestamp(),
	}

	if err = kv.SetJSON(c.Context(), global.Store, kv.BookingKey(bookingID), booking); err != nil {
		return errors.HandleInternalError(c, "booking", "Store: "+err.Error())
	}

	indexKey := kv.BookingsKey(userID)
	unlock := global.Locks.Key(indexKey)
	defer unlock()

	bookings, err := kv.GetList(c.Context(), global.Store, indexKey)
	if err != nil {
		return errors.HandleInternalError(c, "bookings", "Store: "+err.Error())
	}
	bookings = append(bookings, bookingID)

	if err = kv.SetJSON(c.Context(), global.Store, indexKey, bookings); err != nil {
		return errors.HandleInternalError(c, "bookings", "Store: "+err.Error())
	}

	return c.JSON(schemas.BookingResponse{Booking: booking})
}

// RsvpEvent records a going RSVP and indexes it on the user; append-only
func RsvpEvent(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.RsvpEventSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	rsvpID, err := helpers.NewID()
	if err != nil {
		return errors.HandleInternalError(c, "id", err.Error())
	}

	rsvp := schemas.Rsvp{
		ID:        rsvpID,
		UserID:    userID,
		EventID:   req.EventID,
		EventName: req.EventName,
		Status:    "going",
		RsvpAt:    helpers.Timestamp(),
	}

	if err = kv.SetJSON(c.Context(), global.Store, kv.RsvpKey(rsvpID), rsvp); err != nil {
		return errors.HandleInternalError(c, "rsvp", "Store: "+err.Error())
	}

	indexKey := kv.RsvpsKey(userID)
	unlock := global.Locks.Key(indexKey)
	defer unlock()

	rsvps, err := kv.GetList(c.Context(), global.Store, indexKey)
	if err != nil {
		return errors.HandleInternalError(c, "rsvps", "Store: "+err.Error())
	}
	rsvps = append(rsvps, rsvpID)

	if err = kv.SetJSON(c.Context(), global.Store, indexKey, rsvps); err != nil {
		return errors.HandleInternalError(c, "rsvps", "Store: "+err.Error())
	}

	return c.JSON(schemas.RsvpResponse{Rsvp: rsvp})
}
