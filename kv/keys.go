package kv

import "strings"

// Key builders for the flat record namespace. Usernames are lowercased by
// callers before they reach UsernameKey; the builder lowercases again so a
// missed call site cannot split the namespace.

func UserKey(id string) string           { return "user:" + id }
func UsernameKey(name string) string     { return "username:" + strings.ToLower(name) }
func BuddiesKey(id string) string        { return "buddies:" + id }
func BuddyRequestKey(id string) string   { return "buddy_request:" + id }
func BuddyRequestsKey(id string) string  { return "buddy_requests:" + id }
func GroupKey(id string) string          { return "group:" + id }
func UserGroupsKey(id string) string     { return "user_groups:" + id }
func GroupMessagesKey(id string) string  { return "group_messages:" + id }
func MessageKey(id string) string        { return "message:" + id }
func FavoritesKey(id string) string      { return "favorites:" + id }
func LogsKey(id string) string           { return "logs:" + id }
func DocumentsKey(id string) string      { return "documents:" + id }
func BookingKey(id string) string        { return "booking:" + id }
func BookingsKey(id string) string       { return "bookings:" + id }
func RsvpKey(id string) string           { return "rsvp:" + id }
func RsvpsKey(id string) string          { return "rsvps:" + id }

// ChatKey is the per-pair message index; one exists per direction
func ChatKey(owner string, counterparty string) string {
	return "chat:" + owner + ":" + counterparty
}
