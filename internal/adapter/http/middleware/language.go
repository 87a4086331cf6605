package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/agenciathoth/checklist/pkg/translator"
)

// LanguageMiddleware stores the request language based on the
// Accept-Language header. Portuguese is the portal's default.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguagePt
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguagePt
}
