package templates

import (
	"embed"
)

//go:embed markup/*.html
var markupTemplates embed.FS

// Template and host ids declared by the default page.
const (
	AppHostID     = "app"
	FormTemplate  = "add-car"
	LineTemplate  = "line"
	CarTemplate   = "car"
	FormElementID = "new-car"
)

// GetPage returns the default page markup.
func GetPage() (string, error) {
	content, err := markupTemplates.ReadFile("markup/index.html")
	if err != nil {
		return "", err
	}
	return string(content), nil
}
