// Package history rebuilds per-session threads from a user's flat message log.
package history

import (
	"github.com/yungbote/legalkaz/backend/internal/types"
)

// Record is the minimum a grouped entry needs to carry.
type Record interface {
	GetSessionID() string
	GetTurn() types.Turn
}

// Group partitions records by session id. Sessions come out in the order their
// first record appears and each session keeps its records in input order, so
// callers must pass records already sorted by creation time. Roles are copied
// as-is, including ones that should never have been stored.
func Group[R Record](records []R) []types.Session {
	sessions := make([]types.Session, 0)
	index := make(map[string]int)
	for _, r := range records {
		sid := r.GetSessionID()
		i, ok := index[sid]
		if !ok {
			i = len(sessions)
			index[sid] = i
			sessions = append(sessions, types.Session{ID: sid, Messages: []types.Turn{}})
		}
		sessions[i].Messages = append(sessions[i].Messages, r.GetTurn())
	}
	return sessions
}
