package booking

import "time"

// Windows derives the item's booking windows from its full booking set:
// last is the finished booking (end < now) that started most recently,
// next is the upcoming booking (start > now) that starts soonest.
// A booking currently in progress belongs to neither window. When several
// finished bookings share the latest start, the one later in the input wins.
func Windows(bookings []*Booking, now time.Time) (last, next *Booking) {
	for _, b := range bookings {
		switch {
		case b.End.Before(now):
			if last == nil || !b.Start.Before(last.Start) {
				last = b
			}
		case b.Start.After(now):
			if next == nil || b.Start.Before(next.Start) {
				next = b
			}
		}
	}
	return last, next
}
