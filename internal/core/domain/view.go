package domain

// Dashboard identifies which top-level dashboard composition is mounted.
type Dashboard string

const (
	DashboardStaff   Dashboard = "staff"
	DashboardCliente Dashboard = "cliente"
)

// Sidebar section IDs. These are the SPA's section keys and are part of the
// wire contract with the frontend.
const (
	SectionDashboard    = "dashboard"
	SectionRRHH         = "recursos-humanos"
	SectionProductos    = "productos"
	SectionMaquinas     = "maquinas"
	SectionPersonal     = "personal"
	SectionClientes     = "clientes"
	SectionVentas       = "ventas"
	SectionFinanzas     = "finanzas"
	SectionEnDesarrollo = "en-desarrollo"
	SectionOfertas      = "ofertas"
	SectionInformacion  = "informacion"
	SectionTienda       = "tienda"
	SectionCarrito      = "carrito"
	SectionPerfil       = "perfil"
)

// MenuItem is one sidebar entry.
type MenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// View describes what an authenticated identity gets to see: which dashboard
// shell, which sidebar menu, and which section it lands on.
type View struct {
	Dashboard Dashboard  `json:"dashboard"`
	Landing   string     `json:"landing"`
	Menu      []MenuItem `json:"menu"`
}

var clienteMenu = []MenuItem{
	{ID: SectionOfertas, Label: "Ofertas"},
	{ID: SectionInformacion, Label: "Información"},
	{ID: SectionTienda, Label: "Tienda"},
	{ID: SectionCarrito, Label: "Carrito"},
	{ID: SectionPerfil, Label: "Perfil"},
}

// staffMenus is the role-keyed sidebar table. The fundador sees the broadest
// menu; an unrecognised role falls through to the common section only.
var staffMenus = map[string][]MenuItem{
	RoleFundador: {
		{ID: SectionDashboard, Label: "Dashboard"},
		{ID: SectionRRHH, Label: "Recursos Humanos"},
		{ID: SectionProductos, Label: "Productos"},
		{ID: SectionMaquinas, Label: "Máquinas"},
		{ID: SectionPersonal, Label: "Personal"},
		{ID: SectionClientes, Label: "Clientes"},
		{ID: SectionVentas, Label: "Ventas"},
		{ID: SectionFinanzas, Label: "Finanzas"},
	},
	RoleGerente: {
		{ID: SectionDashboard, Label: "Dashboard"},
		{ID: SectionVentas, Label: "Ventas"},
		{ID: SectionFinanzas, Label: "Flujo de Dinero"},
		{ID: SectionProductos, Label: "Productos"},
		{ID: SectionClientes, Label: "Clientes"},
		{ID: SectionPersonal, Label: "Personal"},
	},
	RoleAdministrador: {
		{ID: SectionDashboard, Label: "Dashboard"},
		{ID: SectionProductos, Label: "Productos"},
		{ID: SectionVentas, Label: "Ventas"},
	},
}

// defaultMenu is what an identity with an unrecognised role gets: the common
// section rendered as an "under construction" placeholder. Unknown roles
// degrade, they never block rendering.
var defaultMenu = []MenuItem{
	{ID: SectionDashboard, Label: "Dashboard"},
}

// ViewFor resolves the dashboard view for an identity. Client identities win
// over any staff role also present on the record; that priority order is the
// dispatch contract.
func ViewFor(identity Identity) View {
	if identity.IsClient() {
		return View{
			Dashboard: DashboardCliente,
			Landing:   SectionOfertas,
			Menu:      clienteMenu,
		}
	}

	menu, ok := staffMenus[identity.Role]
	if !ok {
		// unrecognised roles degrade to the under-construction placeholder
		return View{
			Dashboard: DashboardStaff,
			Landing:   SectionEnDesarrollo,
			Menu:      defaultMenu,
		}
	}
	return View{
		Dashboard: DashboardStaff,
		Landing:   SectionDashboard,
		Menu:      menu,
	}
}
