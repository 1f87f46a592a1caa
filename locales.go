package formstate

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-formstate/pkg/locale"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// LocalesFS exposes the bundled locale documents (en, zh-cn) so hosts can
// ship them alongside their own translations.
func LocalesFS() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return embeddedLocales
	}
	return sub
}

// Locales parses the bundled locale documents into a catalog.
func Locales() (*locale.Catalog, error) {
	return locale.LoadFS(LocalesFS())
}
