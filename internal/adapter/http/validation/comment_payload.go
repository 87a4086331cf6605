package validation

import (
	"errors"
	"strings"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/core/domain"
)

var ErrInvalidCommentPayload = errors.New("invalid comment payload")

// ValidateCreateComment enforces the author rule: a request without a
// session must carry a non-blank free-text author; with a session the field
// is ignored.
func ValidateCreateComment(req dto.CreateCommentRequest, session *domain.Session) (text, author string, err error) {
	text = strings.TrimSpace(req.Text)
	if text == "" {
		return "", "", ErrInvalidCommentPayload
	}

	if session != nil {
		return text, "", nil
	}

	if req.Author == nil || strings.TrimSpace(*req.Author) == "" {
		return "", "", ErrInvalidCommentPayload
	}
	return text, strings.TrimSpace(*req.Author), nil
}
