package services

// RoomStatus is the lifecycle state of a room.
type RoomStatus string

const (
	RoomNotActive    RoomStatus = "Not Active"
	RoomActive       RoomStatus = "Active"
	RoomInQuotation  RoomStatus = "In Quotation"
	RoomReadyToStart RoomStatus = "Ready to Start"
	RoomInProgress   RoomStatus = "In Progress"
	RoomCompleted    RoomStatus = "Completed"
)

// RoomStatuses lists every room status in lifecycle order.
var RoomStatuses = []RoomStatus{
	RoomNotActive,
	RoomActive,
	RoomInQuotation,
	RoomReadyToStart,
	RoomInProgress,
	RoomCompleted,
}

// roomStatusRank orders statuses along the lifecycle so transitions can be
// checked for forward movement.
var roomStatusRank = map[RoomStatus]int{
	RoomNotActive:    0,
	RoomActive:       0, // parking states, interchangeable before quotation
	RoomInQuotation:  1,
	RoomReadyToStart: 2,
	RoomInProgress:   3,
	RoomCompleted:    4,
}

// ParseRoomStatus maps a stored string to a RoomStatus.
func ParseRoomStatus(s string) (RoomStatus, bool) {
	for _, st := range RoomStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// CanTransition reports whether a room may move from its current status to
// next. Transitions are monotonic: a room never moves backward along the
// lifecycle. Not Active and Active are interchangeable parking states.
func (s RoomStatus) CanTransition(next RoomStatus) bool {
	cur, ok := roomStatusRank[s]
	if !ok {
		return false
	}
	nxt, ok := roomStatusRank[next]
	if !ok {
		return false
	}
	if s == next {
		return false
	}
	return nxt >= cur
}

// EligibleForQuotation reports whether a room in this status may be offered
// on the quotation room-selection screen. Rooms already in a quotation or
// further along are excluded.
func (s RoomStatus) EligibleForQuotation() bool {
	return s == RoomNotActive || s == RoomActive
}

// WorkerStatuses lists the statuses a worker may set from the progress
// update screen.
var WorkerStatuses = []RoomStatus{RoomReadyToStart, RoomInProgress, RoomCompleted}

// QuotationStatus is the lifecycle state of a quotation.
type QuotationStatus string

const (
	QuotationPending QuotationStatus = "Pending"
	QuotationActive  QuotationStatus = "Active"
	// QuotationClosed marks the quotation as assigned and actionable;
	// only closed quotations appear on the worker dashboard.
	QuotationClosed QuotationStatus = "Closed"
)

// QuotationStatuses lists every quotation status.
var QuotationStatuses = []QuotationStatus{QuotationPending, QuotationActive, QuotationClosed}

// ParseQuotationStatus maps a stored string to a QuotationStatus.
func ParseQuotationStatus(s string) (QuotationStatus, bool) {
	for _, st := range QuotationStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}
