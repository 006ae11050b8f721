package domain

import "testing"

func menuIDs(menu []MenuItem) []string {
	ids := make([]string, 0, len(menu))
	for _, item := range menu {
		ids = append(ids, item.ID)
	}
	return ids
}

func containsID(menu []MenuItem, id string) bool {
	for _, item := range menu {
		if item.ID == id {
			return true
		}
	}
	return false
}

func TestViewFor_ClientPriorityOverStaffRole(t *testing.T) {
	// A record carrying both a staff role and the client user type routes to
	// the client dashboard.
	identity := Identity{Name: "Pedro", Role: RoleGerente, UserType: UserTypeCliente}

	view := ViewFor(identity)
	if view.Dashboard != DashboardCliente {
		t.Fatalf("dashboard = %s, want %s", view.Dashboard, DashboardCliente)
	}
	if view.Landing != SectionOfertas {
		t.Fatalf("landing = %s, want %s", view.Landing, SectionOfertas)
	}
	if containsID(view.Menu, SectionRRHH) {
		t.Fatalf("client menu leaked staff sections: %v", menuIDs(view.Menu))
	}
}

func TestViewFor_ClientByRole(t *testing.T) {
	view := ViewFor(Identity{Name: "Maria", Role: RoleCliente})
	if view.Dashboard != DashboardCliente {
		t.Fatalf("role=cliente should route to the client dashboard, got %s", view.Dashboard)
	}
	if !containsID(view.Menu, SectionCarrito) || !containsID(view.Menu, SectionTienda) {
		t.Fatalf("client menu incomplete: %v", menuIDs(view.Menu))
	}
}

func TestViewFor_StaffMenus(t *testing.T) {
	cases := []struct {
		role        string
		wantLen     int
		mustInclude string
		mustExclude string
	}{
		{RoleFundador, 8, SectionMaquinas, SectionCarrito},
		{RoleGerente, 6, SectionFinanzas, SectionMaquinas},
		{RoleAdministrador, 3, SectionProductos, SectionPersonal},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			view := ViewFor(Identity{Name: "x", Role: tc.role, UserType: UserTypeStaff})
			if view.Dashboard != DashboardStaff {
				t.Fatalf("dashboard = %s", view.Dashboard)
			}
			if view.Landing != SectionDashboard {
				t.Fatalf("landing = %s", view.Landing)
			}
			if len(view.Menu) != tc.wantLen {
				t.Fatalf("menu length = %d, want %d (%v)", len(view.Menu), tc.wantLen, menuIDs(view.Menu))
			}
			if !containsID(view.Menu, tc.mustInclude) {
				t.Fatalf("menu missing %s: %v", tc.mustInclude, menuIDs(view.Menu))
			}
			if containsID(view.Menu, tc.mustExclude) {
				t.Fatalf("menu must not include %s: %v", tc.mustExclude, menuIDs(view.Menu))
			}
		})
	}
}

func TestViewFor_UnknownRoleDegrades(t *testing.T) {
	view := ViewFor(Identity{Name: "x", Role: "recepcionista", UserType: UserTypeStaff})
	if view.Dashboard != DashboardStaff {
		t.Fatalf("unknown role must still render the staff shell, got %s", view.Dashboard)
	}
	if view.Landing != SectionEnDesarrollo {
		t.Fatalf("unknown role should land on the placeholder, got %s", view.Landing)
	}
	if len(view.Menu) != 1 || view.Menu[0].ID != SectionDashboard {
		t.Fatalf("unknown role should get the placeholder menu, got %v", menuIDs(view.Menu))
	}
}

func TestRecordStr(t *testing.T) {
	r := Record{"nombre": "Ana", "edad": 30}
	if r.Str("nombre") != "Ana" {
		t.Fatalf("Str(nombre) = %q", r.Str("nombre"))
	}
	if r.Str("edad") != "" {
		t.Fatalf("non-string field should read as empty, got %q", r.Str("edad"))
	}
	if r.Str("missing") != "" {
		t.Fatalf("missing field should read as empty")
	}
}
