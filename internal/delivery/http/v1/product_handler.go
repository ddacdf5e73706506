package v1

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go-ishop-backend/internal/delivery/http/response"
	"go-ishop-backend/internal/domain"
	"go-ishop-backend/internal/forms"
	"go-ishop-backend/pkg/apperror"
	"go-ishop-backend/pkg/upload"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	maxUploadBytes = 8 << 20 // 8 MB cap on product images
	maxImageWidth  = 1200
	jpegQuality    = 85
)

type ProductHandler struct {
	catalogUC  domain.CatalogUsecase
	productUC  domain.ProductUsecase
	uploadsDir string
}

func NewProductHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase, productUC domain.ProductUsecase, uploadsDir string) {
	handler := &ProductHandler{
		catalogUC:  catalogUC,
		productUC:  productUC,
		uploadsDir: uploadsDir,
	}

	products := public.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/:id", handler.GetDetails)
		products.POST("", handler.Create)
	}
}

// listProductsQuery carries the optional catalog filter predicates.
type listProductsQuery struct {
	Name     string   `form:"name"`
	PriceMin *float64 `form:"price_min" binding:"omitempty,gte=0"`
	PriceMax *float64 `form:"price_max" binding:"omitempty,gte=0"`
}

// List godoc
// @Summary      List products
// @Description  Catalog listing with optional name/price filters and fixed-size pagination (10 per page)
// @Tags         products
// @Produce      json
// @Param        name       query     string  false  "Name substring (case-insensitive)"
// @Param        price_min  query     number  false  "Minimum price"
// @Param        price_max  query     number  false  "Maximum price"
// @Param        page       query     int     false  "Page number"
// @Success      200  {object}  response.Response
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	// Malformed filter values are ignored and the full catalog is listed,
	// matching the storefront's original behavior.
	var q listProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		q = listProductsQuery{}
	}

	filter := domain.ProductFilter{
		Name:     q.Name,
		PriceMin: q.PriceMin,
		PriceMax: q.PriceMax,
	}

	products, total, err := h.catalogUC.ListProducts(c.Request.Context(), filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Product list", gin.H{
		"products":  products,
		"total":     total,
		"page":      page,
		"page_size": domain.CatalogPageSize,
	})
}

// GetDetails godoc
// @Summary      Get product details
// @Description  Product info including its reviews
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /products/{id} [get]
func (h *ProductHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	product, reviews, err := h.catalogUC.GetProductDetails(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Product not found"))
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Product details", gin.H{
		"product": product,
		"reviews": reviews,
	})
}

// Create godoc
// @Summary      Create a product
// @Description  Validates the product form, applies the discount/stock derivation and stores the optional image
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        name                 formData  string  true   "Product name (e.g. 'Mac Book')"
// @Param        price                formData  number  true   "Price before discount, minimum 10"
// @Param        discount_percentage  formData  number  false  "Discount in [0,100]"
// @Param        extra_stock          formData  int     false  "Stock on top of the default 10"
// @Param        image                formData  file    false  "Product image (jpg/png/gif/webp)"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.Error(apperror.BadRequest("Could not parse form data"))
		return
	}

	draft, errs := forms.ParseProductForm(c.Request.PostForm)
	if errs != nil {
		c.Error(apperror.Validation("The submission contains invalid fields.", errs))
		return
	}

	// Optional image: validated and stored before the row is written so a
	// bad upload never leaves a half-created product behind.
	if fileHeader, err := c.FormFile("image"); err == nil {
		storedPath, appErr := h.storeImage(fileHeader)
		if appErr != nil {
			c.Error(appErr)
			return
		}
		draft.Image = &storedPath
	}

	product, err := h.productUC.CreateProduct(c.Request.Context(), draft)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Product created", product)
}

// storeImage validates an uploaded product image, bounds its width and
// writes it under the uploads directory with a random name.
func (h *ProductHandler) storeImage(fileHeader *multipart.FileHeader) (string, *apperror.AppError) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", apperror.BadRequest("Could not read uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return "", apperror.BadRequest("Could not read uploaded image")
	}
	if len(data) > maxUploadBytes {
		return "", apperror.BadRequest("Image exceeds the 8 MB upload limit")
	}

	if result := upload.ValidateImage(fileHeader.Filename, data); !result.Valid {
		return "", apperror.BadRequest(result.Error)
	}

	processed, err := boundImageWidth(data, maxImageWidth, jpegQuality)
	if err != nil {
		return "", apperror.BadRequest("Uploaded file is not a decodable image")
	}

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		return "", apperror.Internal(err)
	}

	name := uuid.NewString() + ".jpg"
	path := filepath.Join(h.uploadsDir, name)
	if err := os.WriteFile(path, processed, 0o644); err != nil {
		return "", apperror.Internal(err)
	}

	return path, nil
}

// boundImageWidth re-encodes the image as JPEG, downscaling it when wider
// than maxWidth. Aspect ratio is preserved.
func boundImageWidth(data []byte, maxWidth, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth {
		newWidth := maxWidth
		newHeight := height * maxWidth / width
		resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
		img = resized
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
