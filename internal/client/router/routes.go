// Package router holds the client-side route table and the navigation guard
// evaluated before every page transition.
package router

// Route names.
const (
	Home              = "home"
	Login             = "login"
	Map               = "map"
	Dashboard         = "dashboard"
	CriarOcorrencia   = "criar-ocorrencia"
	EditarOcorrencia  = "editar-ocorrencia"
	Perfil            = "perfil"
	Cadastro          = "cadastro"
	LoginPath         = "/login"
	DashboardPath     = "/dashboard"
	RedirectQueryName = "redirect"
)

// Route describes one navigable page. Template uses gorilla/mux syntax.
type Route struct {
	Name         string
	Template     string
	RequiresAuth bool
	// CitizenOnly routes are closed to authority profiles.
	CitizenOnly bool
}

// DefaultRoutes is the application's route table.
var DefaultRoutes = []Route{
	{Name: Home, Template: "/"},
	{Name: Login, Template: LoginPath},
	{Name: Map, Template: "/map"},
	{Name: Dashboard, Template: DashboardPath, RequiresAuth: true},
	{Name: CriarOcorrencia, Template: "/criar-ocorrencia", RequiresAuth: true, CitizenOnly: true},
	{Name: EditarOcorrencia, Template: "/editar-ocorrencia/{id}", RequiresAuth: true, CitizenOnly: true},
	{Name: Perfil, Template: "/perfil", RequiresAuth: true},
	{Name: Cadastro, Template: "/cadastro"},
}
