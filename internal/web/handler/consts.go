package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix for all JSON API routes.
	APIPath = "/api"

	// ErrNilACDFatalLogMsg is used if app or cfg or store var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or store is nil"
)
