package http

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/application/usecase"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
	"github.com/jmgutierrez/ferreteria-api/pkg/config"
)

// extensiones de imagen aceptadas en la subida
var extensionesImagen = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ProductoHandler maneja las peticiones HTTP del inventario (protegido).
type ProductoHandler struct {
	uc     *usecase.ProductoUseCase
	upload config.UploadConfig
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase, upload config.UploadConfig) *ProductoHandler {
	return &ProductoHandler{uc: uc, upload: upload}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Envelope{data=dto.ProductoResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/products [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Nombre == "" || in.CategoriaID == "" {
		return badRequest(c, "VALIDATION", "nombre y categoria_id son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope{data=dto.ProductoResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q            query  string  false  "Búsqueda por nombre"
// @Param        categoria_id query  string  false  "Filtrar por categoría"
// @Param        activos      query  bool    false  "Solo productos activos"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.Envelope{data=dto.ProductoListResponse}
// @Router       /api/products [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	f := repository.ProductoFilter{
		Query:       c.Query("q"),
		CategoriaID: c.Query("categoria_id"),
		SoloActivos: c.QueryBool("activos", false),
		Limit:       c.QueryInt("limit", 20),
		Offset:      c.QueryInt("offset", 0),
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	out, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.ProductoResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/products/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Desactivar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Envelope{Success: true, Message: "producto desactivado"})
}

// UploadImagen godoc
// @Summary      Subir imagen de producto
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        imagen  formData  file  true  "Archivo jpg/png/webp"
// @Success      201  {object}  dto.Envelope{data=dto.UploadImagenResponse}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/products/upload-image [post]
func (h *ProductoHandler) UploadImagen(c *fiber.Ctx) error {
	file, err := c.FormFile("imagen")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "se espera el campo multipart 'imagen'")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extensionesImagen[ext] {
		return badRequest(c, "INVALID_EXTENSION", "solo se aceptan jpg, jpeg, png o webp")
	}
	maxSize := int64(h.upload.MaxSizeMB) * 1024 * 1024
	if file.Size > maxSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).
			JSON(dto.Error("FILE_TOO_LARGE", "la imagen excede el tamaño máximo"))
	}

	// nombre aleatorio: nunca se confía en el nombre del cliente
	filename := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(h.upload.Dir, filename)); err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, dto.UploadImagenResponse{
		URL: h.upload.PublicPath + "/" + filename,
	})
}
