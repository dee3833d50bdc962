package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/model"
	"github.com/adrianLames/Sistema-Pedidos/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type PedidoService interface {
	CrearPedido(ctx context.Context, recepcionistaID uint, req dto.CrearPedidoRequest) (*dto.CrearPedidoResponse, error)
	// ActualizarEstado applies the transition and returns the products that
	// crossed their minimum while preparing, for the stock_alerta payload.
	ActualizarEstado(ctx context.Context, bodegueroID uint, req dto.ActualizarEstadoRequest) ([]dto.AlertaStock, error)
	EnviarABodega(ctx context.Context, req dto.EnviarABodegaRequest) error
	ListarPedidos(ctx context.Context) ([]dto.PedidoListItem, error)
	ObtenerDetalle(ctx context.Context, id uint) (*dto.PedidoDetalleResponse, error)
}

type pedidoService struct {
	repo         repository.PedidoRepository
	productoRepo repository.ProductoRepository
	alertas      AlertaService
}

func NewPedidoService(
	repo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	alertas AlertaService,
) PedidoService {
	return &pedidoService{repo: repo, productoRepo: productoRepo, alertas: alertas}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// TransicionesValidas is the order state machine. Anything not listed here
// is rejected.
var TransicionesValidas = map[string][]string{
	model.EstadoPendiente:   {model.EstadoPreparacion, model.EstadoCancelado},
	model.EstadoPreparacion: {model.EstadoCamino, model.EstadoCancelado},
	model.EstadoCamino:      {model.EstadoEntregado},
}

// TransicionValida reports whether the state machine allows desde → hacia.
func TransicionValida(desde, hacia string) bool {
	for _, permitido := range TransicionesValidas[desde] {
		if permitido == hacia {
			return true
		}
	}
	return false
}

// generarCodigo builds a PED<yyyymmdd><nnn> order code. The 3-digit suffix is
// random, so collisions within a day are possible; CrearPedido retries on the
// unique-index violation.
func generarCodigo() string {
	return fmt.Sprintf("PED%s%03d", time.Now().Format("20060102"), rand.Intn(999)+1)
}

const maxIntentosCodigo = 5

// ── CrearPedido ───────────────────────────────────────────────────────────────
// All-or-nothing: the order header, every line and every stock decrement
// commit together or not at all. On a stock shortfall the whole transaction
// rolls back, and only then is the low-stock notification written through the
// base connection so it survives the rollback.

func (s *pedidoService) CrearPedido(ctx context.Context, recepcionistaID uint, req dto.CrearPedidoRequest) (*dto.CrearPedidoResponse, error) {
	if len(req.Detalles) == 0 {
		return nil, ErrPedidoSinDetalles
	}

	var fechaEntrega *time.Time
	if req.FechaEntrega != "" {
		t, err := parseFechaEntrega(req.FechaEntrega)
		if err != nil {
			return nil, fmt.Errorf("fecha_entrega inválida: %w", err)
		}
		fechaEntrega = &t
	}

	var (
		pedido      *model.Pedido
		faltanteID  uint
		hayFaltante bool
	)

	intento := 0
	for {
		intento++
		codigo := generarCodigo()
		hayFaltante = false

		err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			p := &model.Pedido{
				CodigoPedido:      codigo,
				RecepcionistaID:   recepcionistaID,
				Estado:            model.EstadoPendiente,
				Observaciones:     req.Observaciones,
				TiempoPreparacion: req.TiempoPreparacion,
				FechaEntrega:      fechaEntrega,
			}
			if err := s.repo.CreateTx(tx, p); err != nil {
				return err
			}

			for _, linea := range req.Detalles {
				det := &model.DetallePedido{
					PedidoID:       p.ID,
					ProductoID:     linea.ProductoID,
					Cantidad:       linea.Cantidad,
					PrecioUnitario: linea.PrecioUnitario,
				}
				if err := s.repo.CreateDetalleTx(tx, det); err != nil {
					return err
				}
				ok, err := s.productoRepo.DescontarStockTx(tx, linea.ProductoID, linea.Cantidad)
				if err != nil {
					return err
				}
				if !ok {
					faltanteID = linea.ProductoID
					hayFaltante = true
					return &ErrStockInsuficiente{ProductoID: linea.ProductoID}
				}
			}

			pedido = p
			return nil
		})

		if err == nil {
			break
		}
		if hayFaltante {
			// The transaction already rolled back; the alert goes through the
			// base connection so it is not lost with it.
			s.notificarFaltante(ctx, faltanteID)
			return nil, &ErrStockInsuficiente{ProductoID: faltanteID}
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && intento < maxIntentosCodigo {
			log.Warn().Str("codigo", codigo).Int("intento", intento).Msg("codigo_pedido collision, retrying")
			continue
		}
		return nil, err
	}

	return &dto.CrearPedidoResponse{
		Success:      true,
		Message:      "Pedido creado correctamente",
		CodigoPedido: pedido.CodigoPedido,
		PedidoID:     pedido.ID,
	}, nil
}

func parseFechaEntrega(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("formato no reconocido: %q", raw)
}

// notificarFaltante raises a low-stock alert for the single product that
// blocked an order. Best effort.
func (s *pedidoService) notificarFaltante(ctx context.Context, productoID uint) {
	p, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		log.Error().Err(err).Uint("producto_id", productoID).Msg("failed to load product for stock alert")
		return
	}
	s.alertas.NotificarStockBajo(ctx, []dto.AlertaStock{{
		Nombre:      p.Nombre,
		Stock:       p.Stock,
		StockMinimo: p.StockMinimo,
	}})
}

// ── ActualizarEstado ──────────────────────────────────────────────────────────
// The preparacion branch decrements stock line by line OUTSIDE any
// transaction: a shortfall on line N leaves lines 1..N-1 decremented, skips
// the status write and returns the conflict. Operators resolve the partial
// decrement by hand. This mirrors long-standing warehouse procedure; do not
// quietly make it atomic without coordinating a data migration for the
// in-flight conflicts.

func (s *pedidoService) ActualizarEstado(ctx context.Context, bodegueroID uint, req dto.ActualizarEstadoRequest) ([]dto.AlertaStock, error) {
	pedido, err := s.repo.FindByID(ctx, req.PedidoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPedidoNoEncontrado
		}
		return nil, err
	}

	if !TransicionValida(pedido.Estado, req.Estado) {
		return nil, &ErrTransicionInvalida{Desde: pedido.Estado, Hacia: req.Estado}
	}

	var asignarBodeguero *uint
	var bajos []dto.AlertaStock
	if req.Estado == model.EstadoPreparacion {
		asignarBodeguero = &bodegueroID

		detalles, err := s.repo.ListDetalles(ctx, req.PedidoID)
		if err != nil {
			return nil, err
		}
		for _, d := range detalles {
			ok, err := s.productoRepo.DescontarStock(ctx, d.ProductoID, d.Cantidad)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, &ErrStockInsuficiente{ProductoID: d.ProductoID}
			}
		}

		// After decrementing, gather everything that crossed its minimum into
		// one batched alert.
		for _, d := range detalles {
			p, err := s.productoRepo.FindByID(ctx, d.ProductoID)
			if err != nil {
				log.Error().Err(err).Uint("producto_id", d.ProductoID).Msg("failed to re-read product after decrement")
				continue
			}
			if p.Stock <= p.StockMinimo {
				bajos = append(bajos, dto.AlertaStock{Nombre: p.Nombre, Stock: p.Stock, StockMinimo: p.StockMinimo})
			}
		}
		if len(bajos) > 0 {
			s.alertas.NotificarStockBajo(ctx, bajos)
		}
	}

	if err := s.repo.UpdateEstado(ctx, req.PedidoID, req.Estado, asignarBodeguero); err != nil {
		return nil, err
	}
	return bajos, nil
}

// ── EnviarABodega ─────────────────────────────────────────────────────────────
// Transactional pendiente → preparacion: every line's stock decrements and
// the status write commit together. A shortfall rolls everything back.

func (s *pedidoService) EnviarABodega(ctx context.Context, req dto.EnviarABodegaRequest) error {
	pedido, err := s.repo.FindByID(ctx, req.PedidoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPedidoNoEncontrado
		}
		return err
	}
	if pedido.Estado != model.EstadoPendiente {
		return &ErrTransicionInvalida{Desde: pedido.Estado, Hacia: model.EstadoPreparacion}
	}

	detalles, err := s.repo.ListDetalles(ctx, req.PedidoID)
	if err != nil {
		return err
	}
	if len(detalles) == 0 {
		return ErrPedidoSinDetalles
	}

	var (
		faltanteID  uint
		hayFaltante bool
	)

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, d := range detalles {
			ok, err := s.productoRepo.DescontarStockTx(tx, d.ProductoID, d.Cantidad)
			if err != nil {
				return err
			}
			if !ok {
				faltanteID = d.ProductoID
				hayFaltante = true
				return &ErrStockInsuficiente{ProductoID: d.ProductoID}
			}
		}
		if tx == nil {
			return nil
		}
		return tx.Model(&model.Pedido{}).
			Where("id = ?", req.PedidoID).
			Updates(map[string]interface{}{
				"estado":              model.EstadoPreparacion,
				"fecha_actualizacion": gorm.Expr("NOW()"),
			}).Error
	})
	if err != nil {
		if hayFaltante {
			s.notificarFaltante(ctx, faltanteID)
			return &ErrStockInsuficiente{ProductoID: faltanteID}
		}
		return err
	}
	return nil
}

func (s *pedidoService) ListarPedidos(ctx context.Context) ([]dto.PedidoListItem, error) {
	return s.repo.List(ctx)
}

func (s *pedidoService) ObtenerDetalle(ctx context.Context, id uint) (*dto.PedidoDetalleResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPedidoNoEncontrado
		}
		return nil, err
	}
	detalles, err := s.repo.ListDetallesConProducto(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PedidoDetalleResponse{
		Pedido: dto.PedidoInfo{
			ID:                 pedido.ID,
			CodigoPedido:       pedido.CodigoPedido,
			RecepcionistaID:    pedido.RecepcionistaID,
			BodegueroID:        pedido.BodegueroID,
			Estado:             pedido.Estado,
			Observaciones:      pedido.Observaciones,
			TiempoPreparacion:  pedido.TiempoPreparacion,
			FechaEntrega:       pedido.FechaEntrega,
			FechaCreacion:      pedido.FechaCreacion,
			FechaActualizacion: pedido.FechaActualizacion,
		},
		Detalles: detalles,
	}, nil
}
