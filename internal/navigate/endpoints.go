package navigate

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// QueryOption adds a query parameter to an endpoint call. Endpoints accept
// different filter sets (see the Navigate API reference); unknown parameters
// are ignored server-side, so filters are plain key/value options rather than
// a typed struct per endpoint.
type QueryOption func(url.Values)

// WithParam sets an arbitrary query parameter.
func WithParam(key, value string) QueryOption {
	return func(q url.Values) { q.Set(key, value) }
}

// WithPage requests a specific page of paginated results.
func WithPage(n int) QueryOption {
	return func(q url.Values) { q.Set("page", strconv.Itoa(n)) }
}

// WithPerPage sets the number of records per page.
func WithPerPage(n int) QueryOption {
	return func(q url.Values) { q.Set("per_page", strconv.Itoa(n)) }
}

// WithCreatedAfter filters to records created on or after date.
func WithCreatedAfter(date string) QueryOption {
	return func(q url.Values) { q.Set("created_after", date) }
}

// WithCreatedBefore filters to records created on or before date.
func WithCreatedBefore(date string) QueryOption {
	return func(q url.Values) { q.Set("created_before", date) }
}

// WithBeginDate filters to records starting on or after date (mm/dd/yyyy).
func WithBeginDate(date string) QueryOption {
	return func(q url.Values) { q.Set("begin_date", date) }
}

// WithEndDate filters to records starting before date (mm/dd/yyyy).
func WithEndDate(date string) QueryOption {
	return func(q url.Values) { q.Set("end_date", date) }
}

func buildQuery(opts []QueryOption) url.Values {
	q := url.Values{}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Alerts fetches alert records.
func (c *Client) Alerts(ctx context.Context, opts ...QueryOption) ([]Record, error) {
	return c.getJSON(ctx, "v3/alerts", "list alerts", buildQuery(opts))
}

// Users fetches user records.
func (c *Client) Users(ctx context.Context, opts ...QueryOption) ([]Record, error) {
	return c.getJSON(ctx, "v3/users", "list users", buildQuery(opts))
}

// UserByID fetches a single user by its Navigate user ID.
func (c *Client) UserByID(ctx context.Context, userID string) (Record, error) {
	records, err := c.getJSON(ctx, "v3/users/"+url.PathEscape(userID), "get user", nil)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("get user: empty response for user %s", userID)
	}
	return records[0], nil
}

// Notes fetches note records.
func (c *Client) Notes(ctx context.Context, opts ...QueryOption) ([]Record, error) {
	return c.getJSON(ctx, "v3/notes", "list notes", buildQuery(opts))
}

// Reminders fetches reminder records.
func (c *Client) Reminders(ctx context.Context, opts ...QueryOption) ([]Record, error) {
	return c.getJSON(ctx, "v3/reminders", "list reminders", buildQuery(opts))
}

// Visits fetches visit records.
func (c *Client) Visits(ctx context.Context, opts ...QueryOption) ([]Record, error) {
	return c.getJSON(ctx, "v3/visits", "list visits", buildQuery(opts))
}

// Attendance fetches enrollment attendance records.
func (c *Client) Attendance(ctx context.Context, opts ...QueryOption) ([]Record, error) {
	return c.getJSON(ctx, "v3/enrollment_attendances", "list attendance", buildQuery(opts))
}

// Assignments fetches assignment records.
func (c *Client) Assignments(ctx context.Context, opts ...QueryOption) ([]Record, error) {
	return c.getJSON(ctx, "v3/assignments", "list assignments", buildQuery(opts))
}

// AssignmentFeedback fetches enrollment assignment (feedback) records.
func (c *Client) AssignmentFeedback(ctx context.Context, opts ...QueryOption) ([]Record, error) {
	return c.getJSON(ctx, "v3/enrollment_assignments", "list assignment feedback", buildQuery(opts))
}

// Appointments fetches appointment records. Unlike the v3 endpoints above,
// appointments live at the API root.
func (c *Client) Appointments(ctx context.Context, opts ...QueryOption) ([]Record, error) {
	return c.getJSON(ctx, "appointments", "list appointments", buildQuery(opts))
}

// Endpoint fetches records from an arbitrary v3 endpoint by name, for
// endpoints that have no dedicated wrapper yet.
func (c *Client) Endpoint(ctx context.Context, endpoint string, opts ...QueryOption) ([]Record, error) {
	return c.getJSON(ctx, "v3/"+url.PathEscape(endpoint), "list "+endpoint, buildQuery(opts))
}

// FetchAppointments retrieves appointments for the half-open date range
// [beginDate, endDate), both in mm/dd/yyyy form. It implements the export
// pipeline's fetch capability.
func (c *Client) FetchAppointments(ctx context.Context, beginDate, endDate string) ([]Record, error) {
	return c.Appointments(ctx, WithBeginDate(beginDate), WithEndDate(endDate))
}
