package apierrors_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/agenciathoth/checklist/pkg/apierrors"
	"github.com/agenciathoth/checklist/pkg/translator"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.BrazilianPortuguese)
	// Add a test message
	err := translator.Translator.AddMessages(language.BrazilianPortuguese, &i18n.Message{
		ID:    "test_key",
		Other: "Mensagem de teste",
	})
	if err != nil {
		return
	}
	m.Run()
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "pt")
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "Mensagem de teste", err.ErrDetails.Message)
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("test_key", "pt")
	assert.Equal(t, "Mensagem de teste", msg)
}

func TestGetTransErrorMsg_UnknownLangFallsBackToDefault(t *testing.T) {
	// "de" has no messages, so the Portuguese default is used.
	msg := apierrors.GetTransErrorMsg("test_key", "de")
	assert.Equal(t, "Mensagem de teste", msg)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := apierrors.GetTransErrorMsg("unknown_key", "pt")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "pt")
	assert.Equal(t, "Code: 500, Message: Mensagem de teste", err.Error())
}
