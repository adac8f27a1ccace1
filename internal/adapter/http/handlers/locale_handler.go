package handlers

import (
	"net/http"

	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/infrastructure/locale"
	"obsydia_retail/pkg"

	"github.com/gin-gonic/gin"
)

// GetLocale godoc
// @Summary      Translated strings for the order page
// @Tags         locales
// @Produce      json
// @Param        lang  path      string  true  "Language code (en, es)"
// @Success      200   {object}  locale.Catalog
// @Failure      404   {object}  pkg.HTTPError
// @Router       /locales/{lang} [get]
func GetLocale(c *gin.Context) {
	lang := c.Param("lang")
	if entities.NormalizeLanguage(lang) != lang {
		appErr := pkg.NewDomainErrorSimple("LOCALE_NOT_FOUND", "Locale not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, locale.Get(lang))
}
