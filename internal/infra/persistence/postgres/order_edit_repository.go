package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderEditRelationPreloads maps public relation names to GORM association
// paths, including the nested order projection used after confirmation.
var orderEditRelationPreloads = map[string]string{
	"changes":                "Changes",
	"items":                  "Items",
	"order":                  "Order",
	"order.items":            "Order.Items",
	"order.shipping_methods": "Order.ShippingMethods",
}

// orderEditRepository implements the domain.OrderEditRepository interface using GORM.
type orderEditRepository struct {
	db *gorm.DB
}

// NewOrderEditRepository is the constructor for orderEditRepository.
func NewOrderEditRepository(db *gorm.DB) repository.OrderEditRepository {
	return &orderEditRepository{db: db}
}

// FindByID retrieves a single order edit by its unique ID without relations.
func (repo *orderEditRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderEdit, error) {
	var editM model.OrderEditModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&editM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderEditNotFound
		}

		return nil, errors.Wrap(err, "failed to find order edit by id")
	}

	return toOrderEditDomain(&editM), nil
}

// FindByIDWithRelations retrieves an order edit by ID, preloading the named relations.
func (repo *orderEditRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID, relations []string) (*entity.OrderEdit, error) {
	query := repo.db.WithContext(ctx)
	for _, relation := range relations {
		preload, ok := orderEditRelationPreloads[relation]
		if !ok {
			return nil, errors.Errorf("unknown order edit relation %q", relation)
		}
		query = query.Preload(preload)
	}

	var editM model.OrderEditModel
	if err := query.Where("id = ?", id).First(&editM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderEditNotFound
		}

		return nil, errors.Wrap(err, "failed to find order edit by id")
	}

	return toOrderEditDomain(&editM), nil
}

// Update persists the edit's status and actor/timestamp stamps.
func (repo *orderEditRepository) Update(ctx context.Context, edit *entity.OrderEdit) error {
	values := map[string]any{
		"status":       string(edit.Status),
		"confirmed_by": edit.ConfirmedBy,
		"confirmed_at": edit.ConfirmedAt,
		"declined_by":  edit.DeclinedBy,
		"declined_at":  edit.DeclinedAt,
		"canceled_by":  edit.CanceledBy,
		"canceled_at":  edit.CanceledAt,
	}

	err := repo.db.WithContext(ctx).
		Model(&model.OrderEditModel{}).
		Where("id = ?", edit.ID).
		Updates(values).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order edit")
	}

	return nil
}

// CommitItemsToOrder detaches the parent order's current line items and
// attaches the edit's proposed set in their place. Must run inside the same
// transaction as the status update.
func (repo *orderEditRepository) CommitItemsToOrder(ctx context.Context, edit *entity.OrderEdit) error {
	err := repo.db.WithContext(ctx).
		Model(&model.LineItemModel{}).
		Where("order_id = ? AND (order_edit_id IS NULL OR order_edit_id <> ?)", edit.OrderID, edit.ID).
		Update("order_id", nil).Error
	if err != nil {
		return errors.Wrap(err, "failed to detach original line items")
	}

	err = repo.db.WithContext(ctx).
		Model(&model.LineItemModel{}).
		Where("order_edit_id = ?", edit.ID).
		Update("order_id", edit.OrderID).Error
	if err != nil {
		return errors.Wrap(err, "failed to attach edited line items")
	}

	return nil
}

// --- Mapper Functions ---

func toOrderEditDomain(data *model.OrderEditModel) *entity.OrderEdit {
	if data == nil {
		return nil
	}

	edit := &entity.OrderEdit{
		ID:           data.ID,
		OrderID:      data.OrderID,
		Order:        toOrderDomain(data.Order),
		Status:       entity.OrderEditStatus(data.Status),
		InternalNote: data.InternalNote,
		CreatedBy:    data.CreatedBy,
		RequestedBy:  data.RequestedBy,
		RequestedAt:  data.RequestedAt,
		ConfirmedBy:  data.ConfirmedBy,
		ConfirmedAt:  data.ConfirmedAt,
		DeclinedBy:   data.DeclinedBy,
		DeclinedAt:   data.DeclinedAt,
		CanceledBy:   data.CanceledBy,
		CanceledAt:   data.CanceledAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if len(data.Changes) > 0 {
		changes := make([]*entity.OrderEditChange, 0, len(data.Changes))
		for _, change := range data.Changes {
			changes = append(changes, &entity.OrderEditChange{
				ID:                 change.ID,
				OrderEditID:        change.OrderEditID,
				Type:               entity.OrderEditChangeType(change.Type),
				OriginalLineItemID: change.OriginalLineItemID,
				LineItemID:         change.LineItemID,
				CreatedAt:          change.CreatedAt,
			})
		}
		edit.Changes = changes
	}

	if len(data.Items) > 0 {
		edit.Items = toLineItemsDomain(data.Items)
	}

	return edit
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Currency:   data.Currency,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if len(data.Items) > 0 {
		order.Items = toLineItemsDomain(data.Items)
	}

	if len(data.ShippingMethods) > 0 {
		methods := make([]*entity.ShippingMethod, 0, len(data.ShippingMethods))
		for _, method := range data.ShippingMethods {
			methods = append(methods, &entity.ShippingMethod{
				ID:        method.ID,
				OrderID:   method.OrderID,
				Name:      method.Name,
				Price:     method.Price,
				CreatedAt: method.CreatedAt,
			})
		}
		order.ShippingMethods = methods
	}

	return order
}

func toLineItemsDomain(data []*model.LineItemModel) []*entity.LineItem {
	items := make([]*entity.LineItem, 0, len(data))
	for _, item := range data {
		items = append(items, &entity.LineItem{
			ID:             item.ID,
			OrderID:        item.OrderID,
			OrderEditID:    item.OrderEditID,
			Title:          item.Title,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			DiscountAmount: item.DiscountAmount,
			TaxAmount:      item.TaxAmount,
			CreatedAt:      item.CreatedAt,
			UpdatedAt:      item.UpdatedAt,
		})
	}

	return items
}
