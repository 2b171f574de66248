package timeclock

import "time"

type TimeEntryResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
}

func ToTimeEntryResponse(e TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:        e.ID,
		StaffID:   e.StaffID,
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Action:    string(e.Action),
	}
}
