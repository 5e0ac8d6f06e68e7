// Package lifecycle implements the soft-delete status lifecycle shared by
// customers and products: rows are never removed, only flagged inactive.
package lifecycle

import (
	"context"

	"github.com/romana/rlog"
	"order_management/constants"
	"order_management/custom/store"
	"order_management/model"
)

// StatusEntity is satisfied by pointers to entities carrying an id and a status flag.
type StatusEntity[T any] interface {
	*T
	GetID() uint
	GetStatus() model.Status
	SetStatus(model.Status)
}

// Policy describes one entity kind.
type Policy[T any] struct {
	Name string
	// Validate checks the caller supplied fields.
	Validate func(entity *T) error
	// Fields lists the columns written by Update.
	Fields func(entity *T) map[string]interface{}
	// MaskInactive reports inactive rows as not found on direct lookup.
	MaskInactive bool
}

type Service[T any, PT StatusEntity[T]] struct {
	repo   store.Repository[T]
	policy Policy[T]
}

func NewService[T any, PT StatusEntity[T]](repo store.Repository[T], policy Policy[T]) *Service[T, PT] {
	return &Service[T, PT]{repo: repo, policy: policy}
}

// Create validates entity, defaults its status to active and stores it.
// status nil means the caller did not supply one.
func (s *Service[T, PT]) Create(ctx context.Context, entity *T, status *model.Status) (*T, error) {
	if err := s.policy.Validate(entity); err != nil {
		return nil, err
	}
	PT(entity).SetStatus(statusOrActive(status))
	if err := s.repo.Insert(ctx, entity); err != nil {
		return nil, err
	}
	rlog.Infof("Created %s %d", s.policy.Name, PT(entity).GetID())
	return entity, nil
}

func (s *Service[T, PT]) ListActive(ctx context.Context) ([]T, error) {
	return s.repo.FindMany(ctx, store.Filter{"status": model.StatusActive})
}

func (s *Service[T, PT]) GetByID(ctx context.Context, id uint) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch PT(entity).GetStatus() {
	case model.StatusActive:
		return entity, nil
	case model.StatusInactive:
		if s.policy.MaskInactive {
			return nil, constants.ErrNotFound
		}
		return entity, nil
	}
	rlog.Warnf("%s %d has unexpected status %d", s.policy.Name, id, PT(entity).GetStatus())
	return entity, nil
}

// Update rewrites the mutable fields of row id. A nil status resets the row to
// active, so deactivation only happens through SoftDelete.
func (s *Service[T, PT]) Update(ctx context.Context, id uint, entity *T, status *model.Status) (*T, error) {
	if err := s.policy.Validate(entity); err != nil {
		return nil, err
	}
	PT(entity).SetStatus(statusOrActive(status))
	fields := s.policy.Fields(entity)
	fields["status"] = PT(entity).GetStatus()
	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	rlog.Infof("Updated %s %d", s.policy.Name, id)
	return updated, nil
}

// SoftDelete flags row id inactive. Deleting an inactive row again succeeds.
func (s *Service[T, PT]) SoftDelete(ctx context.Context, id uint) error {
	if _, err := s.repo.Update(ctx, id, map[string]interface{}{"status": model.StatusInactive}); err != nil {
		return err
	}
	rlog.Infof("Soft deleted %s %d", s.policy.Name, id)
	return nil
}

func statusOrActive(status *model.Status) model.Status {
	if status == nil || !status.IsValid() {
		return model.StatusActive
	}
	return *status
}
