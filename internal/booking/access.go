package booking

// Access predicates for bookings. Stateless; callers load the booking first.

// CanDecide reports whether the user may approve or reject the booking:
// only the owner of the booked item may.
func CanDecide(userID int64, b *Booking) bool {
	return userID == b.ItemOwnerID
}

// CanView reports whether the user may see the booking: the booker and the
// item's owner may, nobody else.
func CanView(userID int64, b *Booking) bool {
	return userID == b.ItemOwnerID || userID == b.BookerID
}

// CanComment reports whether the user may comment on the item. pastBookings
// must be the user's bookings that already ended; one of them referencing the
// item grants the right.
func CanComment(userID, itemID int64, pastBookings []*Booking) bool {
	for _, b := range pastBookings {
		if b.ItemID == itemID && b.BookerID == userID {
			return true
		}
	}
	return false
}
