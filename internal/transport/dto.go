package transport

type RegisterRequest struct {
	Email           string `form:"email"`
	Password        string `form:"password"`
	PasswordConfirm string `form:"password_confirm"`
	UserID          string `form:"user_id"`
}

type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type SelectTypeRequest struct {
	TipoUsuario string `form:"tipo_usuario"`
}

type CreateStoreRequest struct {
	Nombre string `form:"nombre"`
}

type CreateProductRequest struct {
	ProductID string  `form:"producto_id" json:"producto_id"`
	Nombre    string  `form:"nombre"      json:"nombre"`
	Precio    float64 `form:"precio"      json:"precio"`
	Stock     uint    `form:"stock"       json:"stock"`
}

// PatchProductRequest carries a partial update: nil fields keep their
// stored value.
type PatchProductRequest struct {
	Nombre *string  `json:"nombre"`
	Precio *float64 `json:"precio"`
	Stock  *uint    `json:"stock"`
}

type RegisterCustomerRequest struct {
	CustomerID string `form:"cliente_id" json:"cliente_id"`
	Nombre     string `form:"nombre"     json:"nombre"`
	Telefono   string `form:"telefono"   json:"telefono"`
}

type RecordDebtRequest struct {
	Monto     float64 `form:"monto"      json:"monto"`
	PlazoDias *int    `form:"plazo_dias" json:"plazo_dias"`
}
