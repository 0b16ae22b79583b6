package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"trucktrack/internal/domain"
	"trucktrack/internal/router"
	"trucktrack/internal/ui/input/types"
)

// MsgSignInUnavailable is the only outcome of submitting a login form
const MsgSignInUnavailable = "Sign-in is not available in this preview"

// LoginView is a presentational sign-in form. Nothing is authenticated and
// field values are never stored beyond the view.
type LoginView struct {
	base
	env     *Env
	id      router.ViewID
	title   string
	blurb   string
	labels  []string
	fields  []textinput.Model
	focus   int
	editing bool
}

func NewUserLoginView(env *Env, in router.Input) View {
	return newLoginView(env, router.ViewUserLogin, "Sign in",
		"Save your favorite trucks and get notified when they are nearby.",
		[]string{"Email", "Password"})
}

func NewVendorLoginView(env *Env, in router.Input) View {
	return newLoginView(env, router.ViewVendorLogin, "Vendor sign in",
		"Update your location, menu and hours for your customers.",
		[]string{"Business name", "Email", "Password"})
}

func newLoginView(env *Env, id router.ViewID, title, blurb string, labels []string) *LoginView {
	v := &LoginView{env: env, id: id, title: title, blurb: blurb, labels: labels}
	for _, label := range labels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strings.ToLower(label)
		ti.CharLimit = 128
		if label == "Password" {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		v.fields = append(v.fields, ti)
	}
	return v
}

func (v *LoginView) ID() router.ViewID { return v.id }

func (v *LoginView) Title() string { return v.title }

// Focused returns the index of the active field, or -1 when not editing
func (v *LoginView) Focused() int {
	if !v.editing {
		return -1
	}
	return v.focus
}

// Value returns the text of field i
func (v *LoginView) Value(i int) string {
	return v.fields[i].Value()
}

func (v *LoginView) HandleAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.FormFocusAction:
		v.editing = true
		v.focus = (v.focus + a.Delta + len(v.fields)) % len(v.fields)
		return v.focusField()
	case types.FormBlurAction:
		v.editing = false
		for i := range v.fields {
			v.fields[i].Blur()
		}
	case types.FormInputAction:
		if !v.editing {
			return nil
		}
		var cmd tea.Cmd
		v.fields[v.focus], cmd = v.fields[v.focus].Update(a.Msg)
		return cmd
	case types.SubmitFormAction:
		v.env.Notify.Notify(domain.NotifyError, MsgSignInUnavailable)
	}
	return nil
}

func (v *LoginView) focusField() tea.Cmd {
	var cmd tea.Cmd
	for i := range v.fields {
		if i == v.focus {
			cmd = v.fields[i].Focus()
		} else {
			v.fields[i].Blur()
		}
	}
	return cmd
}

func (v *LoginView) Update(msg tea.Msg) tea.Cmd {
	if !v.editing {
		return nil
	}
	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return cmd
}

func (v *LoginView) Render() string {
	s := v.env.styles()

	var b strings.Builder
	b.WriteString(s.Headline.Render(v.title))
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(v.blurb))
	b.WriteString("\n\n")

	for i, label := range v.labels {
		style := s.Field
		if v.editing && i == v.focus {
			style = s.FieldFocused
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(style.Render(v.fields[i].View()))
		b.WriteString("\n")
	}

	if v.editing {
		b.WriteString(s.Dim.Render("tab next field · enter sign in · esc done"))
	} else {
		b.WriteString(s.Dim.Render("press i to fill in the form"))
	}
	return b.String()
}
