package views

import (
	"fmt"

	"trucktrack/internal/router"
)

// NotFoundView is shown for any path the route table does not match
type NotFoundView struct {
	base
	env  *Env
	path string
}

func NewNotFoundView(env *Env, in router.Input) View {
	return &NotFoundView{env: env, path: in.Path}
}

func (v *NotFoundView) ID() router.ViewID { return router.ViewNotFound }

func (v *NotFoundView) Title() string { return "Not found" }

func (v *NotFoundView) Render() string {
	s := v.env.styles()
	return fmt.Sprintf("%s\n\nNothing lives at %s.\n%s",
		s.Headline.Render("404 · Page not found"),
		s.Path.Render(v.path),
		s.Dim.Render("Press g h to go home or ⌫ to go back."))
}
