package input

import "trucktrack/internal/router"

// ModelContext is a snapshot of model state handed to mode handlers
type ModelContext struct {
	View    router.ViewID
	Path    string
	Query   string
	Filters int
}

func (c *ModelContext) CurrentView() router.ViewID { return c.View }

func (c *ModelContext) CurrentPath() string { return c.Path }

func (c *ModelContext) SearchQuery() string { return c.Query }

func (c *ModelContext) FilterCount() int { return c.Filters }
