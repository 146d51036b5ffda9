package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"space_fleet/internal/app/ds"
	"space_fleet/internal/app/service"
)

const maxImageSize = 10 << 20 // 10 MB

// ShipService is the record service behind the ship routes.
type ShipService interface {
	Create(ctx context.Context, in ds.ShipInput) (ds.Ship, error)
	List(ctx context.Context, q ds.ShipQuery) ([]ds.Ship, error)
	Count(ctx context.Context, f ds.ShipFilter) (int, error)
	GetByID(ctx context.Context, id string) (ds.Ship, error)
	UpdateByID(ctx context.Context, id string, in *ds.ShipInput) (ds.Ship, error)
	DeleteByID(ctx context.Context, id string) error
	AttachImage(ctx context.Context, id, objectName string) (ds.Ship, string, error)
}

// ImageStorage stores ship photos; nil disables the image route.
type ImageStorage interface {
	PutImage(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	RemoveImage(ctx context.Context, name string) error
}

type ShipHandler struct {
	Service ShipService
	Images  ImageStorage
}

// CreateShipAPI godoc
// @Summary Create ship
// @Description Validate a ship, compute its rating and store it
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body ds.ShipInput true "Ship"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Router /rest/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var in ds.ShipInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	ship, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ship)
}

// GetShipsAPI godoc
// @Summary List ships
// @Description Filter, sort and paginate ships
// @Tags ships
// @Produce json
// @Param name query string false "Name substring"
// @Param planet query string false "Planet substring"
// @Param shipType query string false "TRANSPORT, MILITARY or MERCHANT"
// @Param after query int false "prodDate strictly after, epoch ms"
// @Param before query int false "prodDate strictly before, epoch ms"
// @Param isUsed query bool false "Used flag"
// @Param minSpeed query number false "Minimum speed"
// @Param maxSpeed query number false "Maximum speed"
// @Param minCrewSize query int false "Minimum crew size"
// @Param maxCrewSize query int false "Maximum crew size"
// @Param minRating query number false "Minimum rating"
// @Param maxRating query number false "Maximum rating"
// @Param order query string false "ID, DATE, SPEED or RATING" default(ID)
// @Param pageNumber query int false "Zero-based page" default(0)
// @Param pageSize query int false "Page size" default(3)
// @Success 200 {array} ds.Ship
// @Failure 400 {object} object "error: message"
// @Router /rest/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	q, err := parseShipQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	ships, err := h.Service.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ships)
}

// GetShipsCountAPI godoc
// @Summary Count ships
// @Description Count ships matching the same filters as the list
// @Tags ships
// @Produce json
// @Param name query string false "Name substring"
// @Param planet query string false "Planet substring"
// @Param shipType query string false "TRANSPORT, MILITARY or MERCHANT"
// @Param after query int false "prodDate strictly after, epoch ms"
// @Param before query int false "prodDate strictly before, epoch ms"
// @Param isUsed query bool false "Used flag"
// @Param minSpeed query number false "Minimum speed"
// @Param maxSpeed query number false "Maximum speed"
// @Param minCrewSize query int false "Minimum crew size"
// @Param maxCrewSize query int false "Maximum crew size"
// @Param minRating query number false "Minimum rating"
// @Param maxRating query number false "Maximum rating"
// @Success 200 {integer} int
// @Failure 400 {object} object "error: message"
// @Router /rest/ships/count [get]
func (h *ShipHandler) GetShipsCountAPI(c *gin.Context) {
	f, err := parseShipFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	count, err := h.Service.Count(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// GetShipAPI godoc
// @Summary Get ship
// @Tags ships
// @Produce json
// @Param id path string true "Ship ID"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	ship, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ship)
}

// UpdateShipAPI godoc
// @Summary Update ship
// @Description Change the supplied fields and recompute the rating
// @Tags ships
// @Accept json
// @Produce json
// @Param id path string true "Ship ID"
// @Param ship body ds.ShipInput true "Fields to change"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [post]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var in *ds.ShipInput
	if body := bytes.TrimSpace(raw); len(body) > 0 && !bytes.Equal(body, []byte("null")) {
		in = &ds.ShipInput{}
		if err := binding.JSON.BindBody(body, in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
	}

	ship, err := h.Service.UpdateByID(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ship)
}

// DeleteShipAPI godoc
// @Summary Delete ship
// @Tags ships
// @Param id path string true "Ship ID"
// @Success 200
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	if err := h.Service.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AddShipImageAPI godoc
// @Summary Upload ship image
// @Description Store the image in MinIO and replace the ship photo
// @Tags ships
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Ship ID"
// @Param file formData file true "Image"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id}/image [post]
func (h *ShipHandler) AddShipImageAPI(c *gin.Context) {
	if h.Images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "image storage is not configured",
		})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	// Проверяем существование корабля до загрузки файла
	if _, err := h.Service.GetByID(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize)
	header, err := c.FormFile("file")
	if err != nil {
		header, err = c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "no image file provided",
			})
			return
		}
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	defer file.Close()

	// Генерируем уникальное имя файла
	name := uuid.New().String() + filepath.Ext(header.Filename)
	if err := h.Images.PutImage(ctx, name, file, header.Size, header.Header.Get("Content-Type")); err != nil {
		logrus.Errorf("upload image for ship %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to upload image",
		})
		return
	}

	ship, previous, err := h.Service.AttachImage(ctx, id, name)
	if err != nil {
		_ = h.Images.RemoveImage(ctx, name)
		respondError(c, err)
		return
	}
	if previous != "" {
		if err := h.Images.RemoveImage(ctx, previous); err != nil {
			logrus.Warnf("remove old image %s: %v", previous, err)
		}
	}
	c.JSON(http.StatusOK, ship)
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseShipQuery(c *gin.Context) (ds.ShipQuery, error) {
	f, err := parseShipFilter(c)
	if err != nil {
		return ds.ShipQuery{}, err
	}
	order, err := ds.ParseShipOrder(c.Query("order"))
	if err != nil {
		return ds.ShipQuery{}, err
	}
	q := ds.ShipQuery{
		Filter:     f,
		Order:      order,
		PageNumber: service.DefaultPageNumber,
		PageSize:   service.DefaultPageSize,
	}
	if v, ok := c.GetQuery("pageNumber"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return ds.ShipQuery{}, fmt.Errorf("invalid pageNumber %q", v)
		}
		q.PageNumber = n
	}
	if v, ok := c.GetQuery("pageSize"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return ds.ShipQuery{}, fmt.Errorf("invalid pageSize %q", v)
		}
		q.PageSize = n
	}
	return q, nil
}

func parseShipFilter(c *gin.Context) (ds.ShipFilter, error) {
	var (
		f   ds.ShipFilter
		err error
	)
	if v, ok := c.GetQuery("name"); ok {
		f.Name = &v
	}
	if v, ok := c.GetQuery("planet"); ok {
		f.Planet = &v
	}
	if v, ok := c.GetQuery("shipType"); ok {
		t, err := ds.ParseShipType(v)
		if err != nil {
			return ds.ShipFilter{}, err
		}
		f.ShipType = &t
	}
	if f.After, err = queryTime(c, "after"); err != nil {
		return ds.ShipFilter{}, err
	}
	if f.Before, err = queryTime(c, "before"); err != nil {
		return ds.ShipFilter{}, err
	}
	if v, ok := c.GetQuery("isUsed"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ds.ShipFilter{}, fmt.Errorf("invalid isUsed %q", v)
		}
		f.IsUsed = &b
	}
	if f.MinSpeed, err = queryFloat(c, "minSpeed"); err != nil {
		return ds.ShipFilter{}, err
	}
	if f.MaxSpeed, err = queryFloat(c, "maxSpeed"); err != nil {
		return ds.ShipFilter{}, err
	}
	if f.MinCrewSize, err = queryInt(c, "minCrewSize"); err != nil {
		return ds.ShipFilter{}, err
	}
	if f.MaxCrewSize, err = queryInt(c, "maxCrewSize"); err != nil {
		return ds.ShipFilter{}, err
	}
	if f.MinRating, err = queryFloat(c, "minRating"); err != nil {
		return ds.ShipFilter{}, err
	}
	if f.MaxRating, err = queryFloat(c, "maxRating"); err != nil {
		return ds.ShipFilter{}, err
	}
	return f, nil
}

func queryTime(c *gin.Context, key string) (*time.Time, error) {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, v)
	}
	t := time.UnixMilli(ms).UTC()
	return &t, nil
}

func queryFloat(c *gin.Context, key string) (*float64, error) {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, fmt.Errorf("invalid %s %q", key, v)
	}
	return &n, nil
}

func queryInt(c *gin.Context, key string) (*int, error) {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, v)
	}
	return &n, nil
}
