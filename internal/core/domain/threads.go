package domain

import "sort"

// Thread is a top-level comment plus its direct replies. Replies never nest
// further.
type Thread struct {
	Comment Comment
	Replies []Comment
}

// BuildThreads groups a flat comment list into threads, oldest first at both
// levels. Replies whose parent is missing from the input are dropped.
func BuildThreads(comments []Comment) []Thread {
	var roots []Comment
	replies := make(map[uint64][]Comment)
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		replies[*c.ParentID] = append(replies[*c.ParentID], c)
	}

	sortByCreation(roots)

	threads := make([]Thread, 0, len(roots))
	for _, root := range roots {
		rs := replies[root.ID]
		sortByCreation(rs)
		threads = append(threads, Thread{Comment: root, Replies: rs})
	}
	return threads
}

func sortByCreation(comments []Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}

type CommentAction string

const (
	CommentActionEdit   CommentAction = "edit"
	CommentActionDelete CommentAction = "delete"
)

// CanLikeComment reports whether viewer may toggle the like on c. Anonymous
// viewers never can. A registered viewer can like anything except their own
// comments; anonymous comments are likeable by any registered viewer.
func CanLikeComment(viewer *Session, c Comment) bool {
	if viewer == nil {
		return false
	}
	if author, ok := c.Author.(RegisteredAuthor); ok && author.UserID == viewer.UserID {
		return false
	}
	return true
}

// CanModifyComment reports whether viewer may apply action to c. Anonymous
// comments carry no ownership token, so nobody edits them and only an admin
// may delete them. Registered comments are open to their creator and to
// admins.
func CanModifyComment(viewer *Session, c Comment, action CommentAction) bool {
	if viewer == nil {
		return false
	}
	switch author := c.Author.(type) {
	case RegisteredAuthor:
		return viewer.IsAdmin() || viewer.UserID == author.UserID
	case AnonymousAuthor:
		return action == CommentActionDelete && viewer.IsAdmin()
	}
	return false
}
