package tracker

import (
	"fmt"
	"strconv"
	"strings"
)

// LogQuery describes a filtered log retrieval: an optional inclusive
// [From, To] date window and an optional positive result limit. The zero
// value selects a user's full log.
//
// Both the data query and the count query are derived from the same where
// clause and argument list, so the reported count can never observe the
// limit or drift from the returned page.
type LogQuery struct {
	From  string
	To    string
	Limit int // 0 means no limit
}

// ParseLogQuery validates raw from/to/limit query parameters. Dates must
// match YYYY-MM-DD; limit must parse as a strictly positive integer. Empty
// parameters are simply absent filters. A From later than To is accepted
// and yields an empty result set.
func ParseLogQuery(from, to, limit string) (LogQuery, error) {
	var q LogQuery

	if from != "" {
		if !ValidDate(from) {
			return LogQuery{}, newValidationError("from must be YYYY-MM-DD")
		}
		q.From = from
	}

	if to != "" {
		if !ValidDate(to) {
			return LogQuery{}, newValidationError("to must be YYYY-MM-DD")
		}
		q.To = to
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return LogQuery{}, newValidationError("invalid limit")
		}
		q.Limit = n
	}

	return q, nil
}

// whereClause builds the shared WHERE conditions and ordered argument list
// scoped to one user. Dates are stored normalized to YYYY-MM-DD, so the
// inclusive comparisons are plain lexicographic string comparisons.
func (q LogQuery) whereClause(userID string) (string, []interface{}) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}

	if q.From != "" {
		args = append(args, q.From)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}

	if q.To != "" {
		args = append(args, q.To)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

// DataQuery returns the SQL and arguments for the log page: filtered,
// ordered ascending by date with insertion order breaking ties, and
// truncated to Limit when one is set.
func (q LogQuery) DataQuery(userID string) (string, []interface{}) {
	where, args := q.whereClause(userID)

	sql := "SELECT description, duration, date FROM exercises WHERE " + where +
		" ORDER BY date ASC, seq ASC"

	if q.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", q.Limit)
	}

	return sql, args
}

// CountQuery returns the SQL and arguments for the matching-row count.
// It shares DataQuery's where clause and ignores Limit.
func (q LogQuery) CountQuery(userID string) (string, []interface{}) {
	where, args := q.whereClause(userID)
	return "SELECT COUNT(*) FROM exercises WHERE " + where, args
}
