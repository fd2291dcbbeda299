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

// DefectUseCase registro de defectos de bodega. Se crean y se consultan;
// no hay flujo de mutación.
type DefectUseCase struct {
	defectRepo repository.DefectRepository
}

// NewDefectUseCase construye el caso de uso.
func NewDefectUseCase(defectRepo repository.DefectRepository) *DefectUseCase {
	return &DefectUseCase{defectRepo: defectRepo}
}

// Create registra unidades defectuosas reportadas por bodega.
func (uc *DefectUseCase) Create(ctx context.Context, in dto.CreateDefectRequest) (*dto.DefectResponse, error) {
	if in.ProductName == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidDefectType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	d := &entity.Defect{
		ID:          uuid.NewString(),
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Type:        in.Type,
		Description: in.Description,
		Status:      entity.DefectStatusOpen,
		CreatedAt:   time.Now(),
	}
	if err := uc.defectRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("crear defecto: %w", err)
	}
	resp := toDefectResponse(*d)
	return &resp, nil
}

// List todos los defectos para el CRM.
func (uc *DefectUseCase) List(ctx context.Context) (*dto.DefectListResponse, error) {
	defects, err := uc.defectRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar defectos: %w", err)
	}
	items := make([]dto.DefectResponse, 0, len(defects))
	for _, d := range defects {
		items = append(items, toDefectResponse(d))
	}
	return &dto.DefectListResponse{Items: items}, nil
}

func toDefectResponse(d entity.Defect) dto.DefectResponse {
	return dto.DefectResponse{
		ID:          d.ID,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		Type:        d.Type,
		TypeLabel:   entity.DefectTypeLabel(d.Type),
		Description: d.Description,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}
