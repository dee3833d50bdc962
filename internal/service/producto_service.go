package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/model"
	"github.com/adrianLames/Sistema-Pedidos/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	stockAlertCacheKey = "cache:stock_alert"
	stockAlertCacheTTL = 30 * time.Second
)

type ProductoService interface {
	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.CrearProductoResponse, error)
	ActualizarProducto(ctx context.Context, req dto.ActualizarProductoRequest) error
	ListarProductos(ctx context.Context) ([]model.Producto, error)
	ListarAlertasStock(ctx context.Context) ([]dto.StockAlertItem, error)
}

type productoService struct {
	repo    repository.ProductoRepository
	alertas AlertaService
	rdb     *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, alertas AlertaService, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, alertas: alertas, rdb: rdb}
}

func (s *productoService) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.CrearProductoResponse, error) {
	exists, err := s.repo.ExistsByCodigo(ctx, req.Codigo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCodigoDuplicado
	}

	stockMinimo := 5
	if req.StockMinimo != nil {
		stockMinimo = *req.StockMinimo
	}
	p := &model.Producto{
		Codigo:      req.Codigo,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       *req.Stock,
		StockMinimo: stockMinimo,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return &dto.CrearProductoResponse{
		Success: true,
		Message: "Producto creado correctamente",
		ID:      p.ID,
	}, nil
}

// ActualizarProducto applies the provided fields only. When the stock value
// changes, the product is re-read and a low-stock alert is raised if it sits
// at or below its minimum.
func (s *productoService) ActualizarProducto(ctx context.Context, req dto.ActualizarProductoRequest) error {
	campos := map[string]interface{}{}
	if req.Codigo != "" {
		campos["codigo"] = req.Codigo
	}
	if req.Nombre != "" {
		campos["nombre"] = req.Nombre
	}
	if req.Descripcion != nil {
		campos["descripcion"] = *req.Descripcion
	}
	if req.Precio != nil {
		campos["precio"] = *req.Precio
	}
	if req.Stock != nil {
		campos["stock"] = *req.Stock
	}
	if req.StockMinimo != nil {
		campos["stock_minimo"] = *req.StockMinimo
	}
	if len(campos) == 0 {
		return nil
	}

	if err := s.repo.UpdateCampos(ctx, req.ID, campos); err != nil {
		return err
	}

	if req.Stock != nil || req.StockMinimo != nil {
		p, err := s.repo.FindByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if p.Stock <= p.StockMinimo {
			s.alertas.NotificarStockBajo(ctx, []dto.AlertaStock{{
				Nombre:      p.Nombre,
				Stock:       p.Stock,
				StockMinimo: p.StockMinimo,
			}})
		}
	}
	return nil
}

func (s *productoService) ListarProductos(ctx context.Context) ([]model.Producto, error) {
	return s.repo.List(ctx)
}

// ListarAlertasStock serves the low-stock list behind a short Redis cache.
// The dashboard polls this endpoint, so 30 seconds of staleness buys a large
// reduction in query load. Cache failures fall through to the database.
func (s *productoService) ListarAlertasStock(ctx context.Context) ([]dto.StockAlertItem, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, stockAlertCacheKey).Result(); err == nil {
			var items []dto.StockAlertItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	productos, err := s.repo.ListStockBajo(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockAlertItem, len(productos))
	for i, p := range productos {
		items[i] = dto.StockAlertItem{
			ID:          p.ID,
			Codigo:      p.Codigo,
			Nombre:      p.Nombre,
			Stock:       p.Stock,
			StockMinimo: p.StockMinimo,
		}
	}

	if s.rdb != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.rdb.Set(ctx, stockAlertCacheKey, data, stockAlertCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Msg("failed to cache stock alerts")
			}
		}
	}
	return items, nil
}
