package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// ReturnUseCase flujo de devoluciones: el cliente las crea desde un pedido
// entregado o enviado; el staff del CRM las mueve de estado.
type ReturnUseCase struct {
	returnRepo  repository.ReturnRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewReturnUseCase construye el caso de uso.
func NewReturnUseCase(
	returnRepo repository.ReturnRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) *ReturnUseCase {
	return &ReturnUseCase{returnRepo: returnRepo, orderRepo: orderRepo, productRepo: productRepo}
}

// Create registra una devolución del cliente.
//
// Con OrderID: el pedido debe ser del usuario, estar delivered o shipped,
// contener el producto, y no puede haber otra devolución activa (pending/
// processing) para el mismo par (pedido, producto). La cantidad no puede
// superar la comprada.
//
// Sin OrderID: devolución suelta contra el catálogo (importación de casos
// legados); solo se valida que el producto exista.
func (uc *ReturnUseCase) Create(ctx context.Context, userID string, in dto.CreateReturnRequest) (*dto.ReturnResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}

	productName := ""
	if in.OrderID != "" {
		order, err := uc.orderRepo.GetByID(ctx, in.OrderID)
		if err != nil {
			return nil, fmt.Errorf("obtener pedido: %w", err)
		}
		if order == nil || order.UserID != userID {
			return nil, domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusDelivered && order.Status != entity.OrderStatusShipped {
			return nil, domain.ErrInvalidStatusTransition
		}

		var bought *entity.OrderItem
		for i := range order.Items {
			if order.Items[i].ProductID == in.ProductID {
				bought = &order.Items[i]
				break
			}
		}
		if bought == nil {
			return nil, domain.ErrNotFound
		}
		if in.Quantity > bought.Quantity {
			return nil, domain.ErrInvalidInput
		}
		productName = bought.ProductName

		active, err := uc.returnRepo.CountActive(ctx, in.OrderID, in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("verificar devoluciones activas: %w", err)
		}
		if active > 0 {
			return nil, domain.ErrActiveReturnExists
		}
	} else {
		p, err := uc.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("obtener producto: %w", err)
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		productName = p.Name
	}

	now := time.Now()
	ret := &entity.Return{
		ID:          uuid.NewString(),
		UserID:      userID,
		OrderID:     in.OrderID,
		ProductID:   in.ProductID,
		ProductName: productName,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Status:      entity.ReturnStatusPending,
		Images:      in.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.returnRepo.Create(ctx, ret); err != nil {
		return nil, fmt.Errorf("crear devolución: %w", err)
	}
	resp := toReturnResponse(*ret)
	return &resp, nil
}

// ListByUser devoluciones del cliente.
func (uc *ReturnUseCase) ListByUser(ctx context.Context, userID string, page dto.PageRequest) (*dto.ReturnListResponse, error) {
	page.DefaultPage()
	returns, err := uc.returnRepo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar devoluciones: %w", err)
	}
	return buildReturnList(returns, page), nil
}

// ListCRM listado completo para el CRM.
func (uc *ReturnUseCase) ListCRM(ctx context.Context, page dto.PageRequest) (*dto.ReturnListResponse, error) {
	page.DefaultPage()
	returns, err := uc.returnRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar devoluciones CRM: %w", err)
	}
	return buildReturnList(returns, page), nil
}

// UpdateStatus mueve la devolución de estado (solo staff CRM).
// rejected y completed son terminales: de ahí no se sale.
func (uc *ReturnUseCase) UpdateStatus(ctx context.Context, returnID, status string) error {
	if !entity.ValidReturnStatus(status) {
		return domain.ErrInvalidInput
	}
	ret, err := uc.returnRepo.GetByID(ctx, returnID)
	if err != nil {
		return fmt.Errorf("obtener devolución: %w", err)
	}
	if ret == nil {
		return domain.ErrNotFound
	}
	if ret.Status == entity.ReturnStatusRejected || ret.Status == entity.ReturnStatusCompleted {
		return domain.ErrInvalidStatusTransition
	}
	if err := uc.returnRepo.UpdateStatus(ctx, returnID, status); err != nil {
		return fmt.Errorf("actualizar estado de devolución: %w", err)
	}
	return nil
}

func buildReturnList(returns []entity.Return, page dto.PageRequest) *dto.ReturnListResponse {
	items := make([]dto.ReturnResponse, 0, len(returns))
	for _, ret := range returns {
		items = append(items, toReturnResponse(ret))
	}
	return &dto.ReturnListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}

func toReturnResponse(ret entity.Return) dto.ReturnResponse {
	return dto.ReturnResponse{
		ID:          ret.ID,
		OrderID:     ret.OrderID,
		ProductID:   ret.ProductID,
		ProductName: ret.ProductName,
		Quantity:    ret.Quantity,
		Reason:      ret.Reason,
		Status:      ret.Status,
		StatusLabel: entity.ReturnStatusLabel(ret.Status),
		Images:      ret.Images,
		CreatedAt:   ret.CreatedAt.Format(time.RFC3339),
	}
}
