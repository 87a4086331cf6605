package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agenciathoth/checklist/internal/core/domain"
)

func TestMapCommentRow_RegisteredAuthor(t *testing.T) {
	comment := mapCommentRow(commentRow{
		ID:            1,
		TaskID:        7,
		CreatedByID:   sql.NullInt64{Int64: 2, Valid: true},
		CreatedByName: sql.NullString{String: "Ana", Valid: true},
		Text:          "pronto para revisão",
	})

	author, ok := comment.Author.(domain.RegisteredAuthor)
	require.True(t, ok)
	require.Equal(t, uint64(2), author.UserID)
	require.Equal(t, "Ana", author.Name)
}

func TestMapCommentRow_AnonymousAuthor(t *testing.T) {
	comment := mapCommentRow(commentRow{
		ID:     1,
		TaskID: 7,
		Author: sql.NullString{String: "Seu João", Valid: true},
		Text:   "ficou ótimo",
	})

	author, ok := comment.Author.(domain.AnonymousAuthor)
	require.True(t, ok)
	require.Equal(t, "Seu João", author.Name)
}

func TestMapCommentRow_DeletedAuthorGetsTombstoneName(t *testing.T) {
	// created_by_id is zeroed by the FK when the user is removed, leaving
	// both author columns NULL.
	comment := mapCommentRow(commentRow{
		ID:     1,
		TaskID: 7,
		Text:   "comentário órfão",
	})

	author, ok := comment.Author.(domain.AnonymousAuthor)
	require.True(t, ok)
	require.NotEmpty(t, author.Name)
	require.Equal(t, "Usuário removido", author.Name)
}
