package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func commentAt(id uint64, parentID *uint64, createdAt time.Time) Comment {
	return Comment{ID: id, TaskID: 1, ParentID: parentID, Author: AnonymousAuthor{Name: "Visitante"}, CreatedAt: createdAt}
}

func TestBuildThreads_GroupsAndSortsOldestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p1, p2 := uint64(1), uint64(2)

	comments := []Comment{
		commentAt(2, nil, base.Add(1*time.Hour)),
		commentAt(1, nil, base),
		commentAt(5, &p1, base.Add(3*time.Hour)),
		commentAt(4, &p1, base.Add(2*time.Hour)),
		commentAt(6, &p2, base.Add(4*time.Hour)),
	}

	threads := BuildThreads(comments)

	require.Len(t, threads, 2)
	require.Equal(t, uint64(1), threads[0].Comment.ID)
	require.Equal(t, uint64(2), threads[1].Comment.ID)

	require.Len(t, threads[0].Replies, 2)
	require.Equal(t, uint64(4), threads[0].Replies[0].ID)
	require.Equal(t, uint64(5), threads[0].Replies[1].ID)

	require.Len(t, threads[1].Replies, 1)
	require.Equal(t, uint64(6), threads[1].Replies[0].ID)
}

func TestBuildThreads_OrphanRepliesDropped(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	missing := uint64(99)

	threads := BuildThreads([]Comment{
		commentAt(1, nil, base),
		commentAt(2, &missing, base.Add(time.Hour)),
	})

	require.Len(t, threads, 1)
	require.Empty(t, threads[0].Replies)
}

func TestBuildThreads_Empty(t *testing.T) {
	require.Empty(t, BuildThreads(nil))
}

func TestCanLikeComment(t *testing.T) {
	admin := &Session{UserID: 1, Role: UserRoleAdmin}
	editor := &Session{UserID: 2, Role: UserRoleEditor}

	own := Comment{Author: RegisteredAuthor{UserID: 2, Name: "Ana"}}
	other := Comment{Author: RegisteredAuthor{UserID: 1, Name: "Rui"}}
	anonymous := Comment{Author: AnonymousAuthor{Name: "Visitante"}}

	require.False(t, CanLikeComment(nil, anonymous), "anonymous viewers cannot like")
	require.False(t, CanLikeComment(editor, own), "own comments cannot be liked")
	require.True(t, CanLikeComment(editor, other))
	require.True(t, CanLikeComment(admin, anonymous))
}

func TestCanModifyComment(t *testing.T) {
	admin := &Session{UserID: 1, Role: UserRoleAdmin}
	editor := &Session{UserID: 2, Role: UserRoleEditor}
	other := &Session{UserID: 3, Role: UserRoleEditor}

	registered := Comment{Author: RegisteredAuthor{UserID: 2, Name: "Ana"}}
	anonymous := Comment{Author: AnonymousAuthor{Name: "Visitante"}}

	tests := []struct {
		name    string
		viewer  *Session
		comment Comment
		action  CommentAction
		want    bool
	}{
		{"anonymous viewer cannot edit", nil, registered, CommentActionEdit, false},
		{"creator edits own", editor, registered, CommentActionEdit, true},
		{"creator deletes own", editor, registered, CommentActionDelete, true},
		{"other editor cannot edit", other, registered, CommentActionEdit, false},
		{"admin edits any registered", admin, registered, CommentActionEdit, true},
		{"admin deletes any registered", admin, registered, CommentActionDelete, true},
		{"nobody edits anonymous", admin, anonymous, CommentActionEdit, false},
		{"editor cannot delete anonymous", editor, anonymous, CommentActionDelete, false},
		{"admin deletes anonymous", admin, anonymous, CommentActionDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CanModifyComment(tt.viewer, tt.comment, tt.action))
		})
	}
}
