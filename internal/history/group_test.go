package history

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/legalkaz/backend/internal/types"
)

func entry(sid string, role types.Role, msg string) types.HistoryEntry {
	return types.HistoryEntry{SessionID: sid, Role: role, Message: msg}
}

func TestGroup(t *testing.T) {
	t.Run("empty input yields an empty sequence", func(t *testing.T) {
		got := Group([]types.HistoryEntry{})
		require.NotNil(t, got)
		require.Empty(t, got)

		require.Empty(t, Group[*types.ChatMessage](nil))
	})

	t.Run("single session round trip", func(t *testing.T) {
		got := Group([]types.HistoryEntry{
			entry("s1", types.RoleUser, "Hello"),
			entry("s1", types.RoleAssistant, "Hi there"),
		})
		want := []types.Session{{ID: "s1", Messages: []types.Turn{
			{Role: types.RoleUser, Content: "Hello"},
			{Role: types.RoleAssistant, Content: "Hi there"},
		}}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("sessions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sessions ordered by first message, interleaving preserved", func(t *testing.T) {
		got := Group([]types.HistoryEntry{
			entry("b", types.RoleUser, "b1"),
			entry("a", types.RoleUser, "a1"),
			entry("b", types.RoleAssistant, "b2"),
			entry("a", types.RoleAssistant, "a2"),
			entry("c", types.RoleUser, "c1"),
		})
		require.Len(t, got, 3)
		require.Equal(t, []string{"b", "a", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
		require.Equal(t, []types.Turn{{Role: types.RoleUser, Content: "b1"}, {Role: types.RoleAssistant, Content: "b2"}}, got[0].Messages)
		require.Equal(t, []types.Turn{{Role: types.RoleUser, Content: "a1"}, {Role: types.RoleAssistant, Content: "a2"}}, got[1].Messages)
	})

	t.Run("unknown roles pass through", func(t *testing.T) {
		got := Group([]types.HistoryEntry{entry("s", types.Role("system"), "legacy"), entry("s", types.Role("tool"), "odd")})
		require.Equal(t, types.RoleSystem, got[0].Messages[0].Role)
		require.Equal(t, types.Role("tool"), got[0].Messages[1].Role)
	})

	t.Run("works on stored messages", func(t *testing.T) {
		got := Group([]*types.ChatMessage{
			{SessionID: "s1", Role: types.RoleUser, Content: "Hello"},
			{SessionID: "s2", Role: types.RoleUser, Content: "Salem"},
		})
		require.Len(t, got, 2)
		require.Equal(t, "Salem", got[1].Messages[0].Content)
	})
}

// Every record lands in exactly one session, sessions follow first-seen order
// and each session keeps the input order.
func TestGroupPartitionProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(40)
		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		records := make([]types.HistoryEntry, n)
		for i := range records {
			records[i] = types.HistoryEntry{
				SessionID: fmt.Sprintf("s%d", rng.Intn(5)),
				Role:      []types.Role{types.RoleUser, types.RoleAssistant}[rng.Intn(2)],
				Message:   fmt.Sprintf("m%d", i),
				Timestamp: base.Add(time.Duration(i) * time.Second),
			}
		}
		sessions := Group(records)

		total := 0
		seen := map[string]bool{}
		for _, s := range sessions {
			require.False(t, seen[s.ID], "session %s emitted twice", s.ID)
			seen[s.ID] = true
			total += len(s.Messages)

			var want []types.Turn
			for _, r := range records {
				if r.SessionID == s.ID {
					want = append(want, r.GetTurn())
				}
			}
			require.Equal(t, want, s.Messages)
		}
		require.Equal(t, n, total)

		var firstSeen []string
		known := map[string]bool{}
		for _, r := range records {
			if !known[r.SessionID] {
				known[r.SessionID] = true
				firstSeen = append(firstSeen, r.SessionID)
			}
		}
		var order []string
		for _, s := range sessions {
			order = append(order, s.ID)
		}
		require.Equal(t, firstSeen, order)
	}
}
