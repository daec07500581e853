package viewmodel

import (
	"context"

	"github.com/jcancelado/fiapp/internal/models"
	"github.com/jcancelado/fiapp/internal/service"
	"github.com/jcancelado/fiapp/internal/transport"
)

// ViewModel is the single entry point for the presentation layer. It holds
// no state of its own and does not translate errors; every method forwards
// to the auth service or the use-case layer unchanged.
type ViewModel struct {
	Auth  *service.AuthService
	Store *service.StoreService
}

func New(auth *service.AuthService, store *service.StoreService) *ViewModel {
	return &ViewModel{Auth: auth, Store: store}
}

// --- Usuarios ---

func (v *ViewModel) CrearUsuario(ctx context.Context, email, password, userID string) (string, error) {
	return v.Auth.Register(ctx, email, password, userID)
}

func (v *ViewModel) Autenticar(ctx context.Context, email, password string) (*service.Identity, error) {
	return v.Auth.Authenticate(ctx, email, password)
}

func (v *ViewModel) AsignarTipoUsuario(ctx context.Context, email, tipoUsuario string) (*models.User, error) {
	return v.Auth.AssignRole(ctx, email, tipoUsuario)
}

func (v *ViewModel) ListarUsuarios(ctx context.Context) ([]models.User, error) {
	return v.Auth.ListUsers(ctx)
}

func (v *ViewModel) EliminarUsuario(ctx context.Context, email string) error {
	return v.Auth.DeleteUser(ctx, email)
}

// --- Locales ---

func (v *ViewModel) CrearLocal(ctx context.Context, nombre, propietarioID, localID string) (*models.Store, error) {
	return v.Store.CreateStore(ctx, nombre, propietarioID, localID)
}

func (v *ViewModel) ObtenerLocal(ctx context.Context, localID string) (*models.Store, error) {
	return v.Store.GetStore(ctx, localID)
}

func (v *ViewModel) ListarLocalesPorPropietario(ctx context.Context, propietarioID string) ([]models.Store, error) {
	return v.Store.ListStoresByOwner(ctx, propietarioID)
}

func (v *ViewModel) ActualizarLocal(ctx context.Context, localID, nombre string) (*models.Store, error) {
	return v.Store.RenameStore(ctx, localID, nombre)
}

func (v *ViewModel) EliminarLocal(ctx context.Context, localID string) error {
	return v.Store.DeleteStore(ctx, localID)
}

// --- Productos ---

func (v *ViewModel) CrearProducto(ctx context.Context, localID string, req transport.CreateProductRequest) (*models.Product, error) {
	return v.Store.CreateProduct(ctx, localID, req)
}

func (v *ViewModel) ListarProductos(ctx context.Context, localID string, offset, limit int) (int64, []models.Product, error) {
	return v.Store.ListProducts(ctx, localID, offset, limit)
}

func (v *ViewModel) ActualizarProducto(ctx context.Context, localID, productoID string, req transport.PatchProductRequest) (*models.Product, error) {
	return v.Store.PatchProduct(ctx, localID, productoID, req)
}

func (v *ViewModel) EliminarProducto(ctx context.Context, localID, productoID string) error {
	return v.Store.DeleteProduct(ctx, localID, productoID)
}

func (v *ViewModel) BuscarProductos(ctx context.Context, localID, query string, from, size int) (int64, []models.Product, error) {
	return v.Store.SearchProducts(ctx, localID, query, from, size)
}

// --- Clientes ---

func (v *ViewModel) RegistrarCliente(ctx context.Context, localID string, req transport.RegisterCustomerRequest) (*models.Customer, error) {
	return v.Store.RegisterCustomer(ctx, localID, req)
}

func (v *ViewModel) ListarClientes(ctx context.Context, localID string) ([]models.Customer, error) {
	return v.Store.ListCustomers(ctx, localID)
}

// --- Deudas ---

func (v *ViewModel) RegistrarDeuda(ctx context.Context, localID, clienteID string, monto float64, plazoDias *int) (*models.Debt, error) {
	return v.Store.RecordDebt(ctx, localID, clienteID, monto, plazoDias)
}

func (v *ViewModel) ObtenerHistorialDeudas(ctx context.Context, localID, clienteID string) ([]models.Debt, error) {
	return v.Store.DebtHistory(ctx, localID, clienteID)
}

func (v *ViewModel) GetDeudasCliente(ctx context.Context, clienteID string) ([]models.Debt, error) {
	return v.Store.AllDebtsForCustomer(ctx, clienteID)
}
