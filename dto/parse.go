package dto

import "time"

// DateLayout is the wire format for room stay dates.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Interval parses the availability query's date range.
func (r *AvailabilityRequest) Interval() (time.Time, time.Time, error) {
	return parseRange(r.CheckInDate, r.CheckOutDate)
}

// StayInterval parses the batch request's shared room date range.
func (r *BatchBookingRequest) StayInterval() (time.Time, time.Time, error) {
	return parseRange(r.CheckInDate, r.CheckOutDate)
}

// Interval parses the hall item's RFC 3339 datetime range.
func (h *HallBookingItem) Interval() (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, h.StartDateTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.RFC3339, h.EndDateTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	start, err := ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
