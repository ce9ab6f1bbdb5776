package entity

// Claves de permiso usadas por el middleware de autorización. El panel web
// consulta las mismas claves para decidir qué páginas y acciones mostrar.
const (
	PermInventarioView = "inventario.view"
	PermInventarioEdit = "inventario.edit"
	PermVentasView     = "ventas.view"
	PermVentasCreate   = "ventas.create"
	PermVentasAnular   = "ventas.anular"
	PermPedidosView    = "pedidos.view"
	PermPedidosManage  = "pedidos.manage"
	PermUsuariosView   = "usuarios.view"
	PermUsuariosEdit   = "usuarios.edit"
	PermReportesView   = "reportes.view"
)

// permisosPorRol matriz estática rol → permisos. Solo admin puede anular
// ventas y administrar usuarios; cliente no tiene acceso al panel.
var permisosPorRol = map[string][]string{
	RolAdmin: {
		PermInventarioView, PermInventarioEdit,
		PermVentasView, PermVentasCreate, PermVentasAnular,
		PermPedidosView, PermPedidosManage,
		PermUsuariosView, PermUsuariosEdit,
		PermReportesView,
	},
	RolVendedor: {
		PermInventarioView,
		PermVentasView, PermVentasCreate,
		PermPedidosView, PermPedidosManage,
		PermReportesView,
	},
	RolEmpleado: {
		PermInventarioView,
		PermVentasView,
		PermPedidosView,
	},
	RolCliente: {},
}

// RolTienePermiso indica si el rol posee la clave de permiso.
func RolTienePermiso(rol, permiso string) bool {
	for _, p := range permisosPorRol[rol] {
		if p == permiso {
			return true
		}
	}
	return false
}

// PermisosDeRol devuelve la lista de permisos del rol.
func PermisosDeRol(rol string) []string {
	return permisosPorRol[rol]
}
