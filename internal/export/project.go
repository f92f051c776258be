package export

import (
	"fmt"
	"strconv"
	"strings"
)

// FlatRow is one exported appointment. Field order here is the artifact
// column order.
type FlatRow struct {
	AppointmentID            string
	Location                 string
	OrganizerPrimaryID       string
	AppointmentType          string
	StartTime                string
	ScheduledStudentServices string
	IsNoShow                 string
	IsCancelled              string
	AttendeesPrimaryIDs      string
}

// Header is the artifact header row, matching FlatRow's field order.
var Header = []string{
	"appointment_id",
	"location",
	"organizer_primary_id",
	"appointment_type",
	"start_time",
	"scheduled_student_services",
	"is_no_show",
	"is_cancelled",
	"attendees_primary_ids",
}

func (r FlatRow) record() []string {
	return []string{
		r.AppointmentID,
		r.Location,
		r.OrganizerPrimaryID,
		r.AppointmentType,
		r.StartTime,
		r.ScheduledStudentServices,
		r.IsNoShow,
		r.IsCancelled,
		r.AttendeesPrimaryIDs,
	}
}

// Project flattens raw appointment records into export rows. It is total:
// missing or differently-typed fields become empty cells and an absent
// attendee list is treated as empty. Output order and length match the input
// 1:1.
func Project(records []map[string]any) []FlatRow {
	rows := make([]FlatRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, FlatRow{
			AppointmentID:            scalar(rec["id"]),
			Location:                 scalar(rec["location"]),
			OrganizerPrimaryID:       nested(rec, "organizer", "primary_id"),
			AppointmentType:          scalar(rec["type"]),
			StartTime:                scalar(rec["start_time"]),
			ScheduledStudentServices: scalar(rec["scheduled_student_services"]),
			IsNoShow:                 scalar(rec["is_no_show"]),
			IsCancelled:              scalar(rec["is_cancelled"]),
			AttendeesPrimaryIDs:      joinAttendees(rec["attendees"]),
		})
	}
	return rows
}

// scalar renders a decoded JSON scalar as a cell. Integral numbers print
// without a trailing fraction; nil prints as an empty cell.
func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// nested looks up rec[key][sub], returning an empty cell when either level is
// missing or not an object.
func nested(rec map[string]any, key, sub string) string {
	m, ok := rec[key].(map[string]any)
	if !ok {
		return ""
	}
	return scalar(m[sub])
}

// joinAttendees collects attendee primary_ids in API order, skipping entries
// without one. No deduplication, no sorting.
func joinAttendees(v any) string {
	list, ok := v.([]any)
	if !ok {
		return ""
	}
	ids := make([]string, 0, len(list))
	for _, item := range list {
		att, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := att["primary_id"]
		if !ok {
			continue
		}
		ids = append(ids, scalar(id))
	}
	return strings.Join(ids, ",")
}
