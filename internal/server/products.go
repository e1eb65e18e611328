package server

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Harshith29124/craftconnect/internal/catalog"
)

const maxImageBytes = 5 << 20 // 5 MB

// handleProductUpload accepts one image under the "image" multipart field
// plus the product form fields, persists the image for static serving, and
// runs the image pipeline.
func (s *Server) handleProductUpload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		s.fail(c, http.StatusBadRequest, "No image provided", err)
		return
	}
	if header.Size > maxImageBytes {
		s.fail(c, http.StatusBadRequest, "Image exceeds the 5 MB limit", nil)
		return
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		s.fail(c, http.StatusBadRequest, "Only image files are allowed", nil)
		return
	}

	name := c.PostForm("name")
	if name == "" {
		s.fail(c, http.StatusBadRequest, "Product name is required", nil)
		return
	}

	priceStr := c.PostForm("price")
	price := 0.0
	priceGiven := false
	if priceStr != "" {
		price, err = strconv.ParseFloat(priceStr, 64)
		if err != nil {
			s.fail(c, http.StatusBadRequest, "Price must be a number", err)
			return
		}
		if price < 0 {
			s.fail(c, http.StatusBadRequest, "Price must not be negative", nil)
			return
		}
		priceGiven = price != 0
	}

	file, err := header.Open()
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Failed to read image file", err)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Failed to read image file", err)
		return
	}

	imagePath, err := s.saveProductImage(header.Filename, image)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to store image", err)
		return
	}

	result, err := s.catalog.IngestProduct(c.Request.Context(), catalog.Input{
		Image:        image,
		ImagePath:    imagePath,
		Name:         name,
		Description:  c.PostForm("description"),
		Price:        price,
		PriceGiven:   priceGiven,
		Category:     c.PostForm("category"),
		BusinessType: c.PostForm("businessType"),
		Region:       c.PostForm("region"),
		ArtisanID:    c.PostForm("artisanId"),
	})
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to upload product", err)
		return
	}

	response := gin.H{
		"success":            true,
		"product":            result.Product,
		"imageAnalysis":      gin.H{"labels": result.Labels},
		"pricingSuggestions": result.Product.PricingSuggestions,
	}
	if result.AICategorySuggestion != "" {
		response["aiCategorySuggestion"] = result.AICategorySuggestion
	}
	c.JSON(http.StatusOK, response)
}

// saveProductImage writes the upload under UPLOAD_DIR/products with a
// timestamped filename, and returns the path relative to the upload root so
// it can be served under /uploads.
func (s *Server) saveProductImage(original string, image []byte) (string, error) {
	dir := filepath.Join(s.cfg.UploadDir, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := fmt.Sprintf("product-%d-%d%s", time.Now().UnixMilli(), rand.Intn(1e9), filepath.Ext(original))
	if err := os.WriteFile(filepath.Join(dir, filename), image, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return filepath.ToSlash(filepath.Join("products", filename)), nil
}

func (s *Server) handleListProducts(c *gin.Context) {
	products, err := s.store.ListProducts(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}
