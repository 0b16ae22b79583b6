package views

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"trucktrack/internal/catalog"
	"trucktrack/internal/domain"
	"trucktrack/internal/router"
)

// DetailsView shows one truck. An unknown id renders a "truck not found"
// panel; the route itself matched, so this is not the not-found view.
type DetailsView struct {
	base
	env   *Env
	id    string
	truck domain.Truck
	found bool
}

func NewDetailsView(env *Env, in router.Input) View {
	v := &DetailsView{env: env, id: in.Params["id"]}
	if env.Catalog == nil {
		return v
	}

	t, err := env.Catalog.Truck(v.id)
	switch {
	case err == nil:
		v.truck, v.found = t, true
	case errors.Is(err, catalog.ErrTruckNotFound):
		env.logger().Debug("truck lookup missed", zap.String("id", v.id))
	default:
		env.logger().Warn("truck lookup failed", zap.String("id", v.id), zap.Error(err))
	}
	return v
}

func (v *DetailsView) ID() router.ViewID { return router.ViewTruckDetails }

func (v *DetailsView) Title() string {
	if v.found {
		return v.truck.Name
	}
	return "Truck"
}

// Found reports whether the id resolved to a truck
func (v *DetailsView) Found() bool { return v.found }

func (v *DetailsView) Render() string {
	s := v.env.styles()

	if !v.found {
		return s.Panel.Render(fmt.Sprintf("Truck not found\n\nNo truck with id %q is listed.\n%s",
			v.id, s.Dim.Render("Press ⌫ to go back or g t to browse all trucks.")))
	}

	t := v.truck
	var b strings.Builder
	b.WriteString(s.Headline.Render(t.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  ★ %.1f  %s  %s\n\n", s.Badge.Render(string(t.Cuisine)), t.Rating, t.Location, s.Dim.Render(t.Hours))
	b.WriteString(t.Description)
	b.WriteString("\n")
	if len(t.Tags) > 0 {
		b.WriteString(s.Dim.Render("#" + strings.Join(t.Tags, " #")))
		b.WriteString("\n")
	}

	if len(t.Menu) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Accent.Render("Menu"))
		b.WriteString("\n")
		for _, item := range t.Menu {
			fmt.Fprintf(&b, "  %-24s $%6.2f\n", item.Name, item.Price)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
