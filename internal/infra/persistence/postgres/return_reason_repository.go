package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// returnReasonRelationPreloads maps public relation names to GORM association paths.
var returnReasonRelationPreloads = map[string]string{
	"parent_return_reason":   "ParentReturnReason",
	"return_reason_children": "ReturnReasonChildren",
}

// returnReasonRepository implements the domain.ReturnReasonRepository interface using GORM.
type returnReasonRepository struct {
	db *gorm.DB
}

// NewReturnReasonRepository is the constructor for returnReasonRepository.
func NewReturnReasonRepository(db *gorm.DB) repository.ReturnReasonRepository {
	return &returnReasonRepository{db: db}
}

// FindByID retrieves a single return reason by its unique ID without relations.
func (repo *returnReasonRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReturnReason, error) {
	var reasonM model.ReturnReasonModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reasonM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReturnReasonNotFound
		}

		return nil, errors.Wrap(err, "failed to find return reason by id")
	}

	return toReturnReasonDomain(&reasonM), nil
}

// FindByIDWithRelations retrieves a return reason by ID, preloading the named relations.
func (repo *returnReasonRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID, relations []string) (*entity.ReturnReason, error) {
	query := repo.db.WithContext(ctx)
	for _, relation := range relations {
		preload, ok := returnReasonRelationPreloads[relation]
		if !ok {
			return nil, errors.Errorf("unknown return reason relation %q", relation)
		}
		query = query.Preload(preload)
	}

	var reasonM model.ReturnReasonModel
	if err := query.Where("id = ?", id).First(&reasonM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReturnReasonNotFound
		}

		return nil, errors.Wrap(err, "failed to find return reason by id")
	}

	return toReturnReasonDomain(&reasonM), nil
}

// Update persists the return reason's mutable display fields. The unique
// value code never changes after creation.
func (repo *returnReasonRepository) Update(ctx context.Context, reason *entity.ReturnReason) error {
	values := map[string]any{
		"label":       reason.Label,
		"description": reason.Description,
		"metadata":    datatypes.JSONMap(reason.Metadata),
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ReturnReasonModel{}).
		Where("id = ?", reason.ID).
		Updates(values).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update return reason")
	}

	return nil
}

// --- Mapper Functions ---

func toReturnReasonDomain(data *model.ReturnReasonModel) *entity.ReturnReason {
	if data == nil {
		return nil
	}

	reason := &entity.ReturnReason{
		ID:                   data.ID,
		Value:                data.Value,
		Label:                data.Label,
		Description:          data.Description,
		ParentReturnReasonID: data.ParentReturnReasonID,
		ParentReturnReason:   toReturnReasonDomain(data.ParentReturnReason),
		Metadata:             data.Metadata,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	if len(data.ReturnReasonChildren) > 0 {
		children := make([]*entity.ReturnReason, 0, len(data.ReturnReasonChildren))
		for _, child := range data.ReturnReasonChildren {
			children = append(children, toReturnReasonDomain(child))
		}
		reason.ReturnReasonChildren = children
	}

	return reason
}
