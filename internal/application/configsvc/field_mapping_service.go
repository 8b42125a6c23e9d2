package configsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/execdash/backend/internal/domain/reconcile"
	"github.com/execdash/backend/internal/domain/shared"
	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FieldMappingService owns the reconciliation flow: persistent aliases,
// verification of submitted records against the taxonomy, and application of
// reviewer decisions.
type FieldMappingService struct {
	itemRepo  taxonomy.ItemRepository
	aliasRepo taxonomy.AliasRepository
	log       *zap.Logger
}

// NewFieldMappingService creates a new FieldMappingService. A nil logger
// silences it.
func NewFieldMappingService(itemRepo taxonomy.ItemRepository, aliasRepo taxonomy.AliasRepository, log *zap.Logger) *FieldMappingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FieldMappingService{itemRepo: itemRepo, aliasRepo: aliasRepo, log: log}
}

// ListAliases returns every active alias
func (s *FieldMappingService) ListAliases(ctx context.Context) ([]AliasResponse, error) {
	aliases, err := s.aliasRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]AliasResponse, 0, len(aliases))
	for idx := range aliases {
		responses = append(responses, *ToAliasResponse(&aliases[idx]))
	}
	return responses, nil
}

// CreateAlias registers a raw-value-to-label mapping
func (s *FieldMappingService) CreateAlias(ctx context.Context, req CreateAliasRequest) (*AliasResponse, error) {
	if err := s.ensureAliasFree(ctx, req.FieldName, req.RawValue); err != nil {
		return nil, err
	}

	alias, err := taxonomy.NewFieldAlias(req.FieldName, req.RawValue, req.TargetLabel)
	if err != nil {
		return nil, err
	}
	if err := s.aliasRepo.Save(ctx, alias); err != nil {
		return nil, err
	}
	return ToAliasResponse(alias), nil
}

// UpdateAlias patches an alias
func (s *FieldMappingService) UpdateAlias(ctx context.Context, id uuid.UUID, req UpdateAliasRequest) (*AliasResponse, error) {
	alias, err := s.aliasRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, target := "", ""
	if req.RawValue != nil {
		raw = *req.RawValue
	}
	if req.TargetLabel != nil {
		target = *req.TargetLabel
	}
	if raw != "" && !alias.Matches(alias.FieldName, raw) {
		if err := s.ensureAliasFree(ctx, alias.FieldName, raw); err != nil {
			return nil, err
		}
	}
	if err := alias.Update(raw, target); err != nil {
		return nil, err
	}

	if err := s.aliasRepo.Save(ctx, alias); err != nil {
		return nil, err
	}
	return ToAliasResponse(alias), nil
}

// DeactivateAlias soft-deletes an alias
func (s *FieldMappingService) DeactivateAlias(ctx context.Context, id uuid.UUID) error {
	alias, err := s.aliasRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	alias.Deactivate()
	return s.aliasRepo.Save(ctx, alias)
}

// Verify resolves one record's taxonomy-backed fields against the current
// taxonomy snapshot and active aliases. Read-only.
func (s *FieldMappingService) Verify(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	items, aliases, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	result := reconcile.Resolve(req.Record, items, aliases)
	return ToVerifyResponse(result), nil
}

// Apply rewrites a record per the reviewer's decisions. Decisions are applied
// independently: a failing decision is reported in its outcome and leaves its
// field untouched, while the others still go through. Nothing is rolled back.
func (s *FieldMappingService) Apply(ctx context.Context, req ApplyRequest) (*ApplyResponse, error) {
	record := reconcile.CloneRecord(req.Record)
	outcomes := make([]DecisionOutcome, 0, len(req.Decisions))
	created := make([]ItemResponse, 0)

	for _, dr := range req.Decisions {
		decision := reconcile.MappingDecision{
			FieldName:   dr.FieldName,
			Action:      reconcile.DecisionAction(dr.Action),
			TargetValue: dr.TargetValue,
		}
		outcome := DecisionOutcome{FieldName: dr.FieldName, Action: dr.Action}

		newItem, err := s.applyDecision(ctx, record, decision)
		if err != nil {
			outcome.Error = err.Error()
		} else {
			outcome.Applied = true
			if newItem != nil {
				created = append(created, *ToItemResponse(newItem))
			}
		}
		outcomes = append(outcomes, outcome)
	}

	return &ApplyResponse{Record: record, Outcomes: outcomes, CreatedItems: created}, nil
}

// applyDecision mutates record in place and returns the taxonomy item it
// created, if any
func (s *FieldMappingService) applyDecision(ctx context.Context, record map[string]any, decision reconcile.MappingDecision) (*taxonomy.Item, error) {
	if err := decision.Validate(); err != nil {
		return nil, err
	}

	switch decision.Action {
	case reconcile.ActionKeepAsIs:
		return nil, nil

	case reconcile.ActionSkip:
		delete(record, decision.FieldName)
		return nil, nil

	case reconcile.ActionUseExisting:
		category, _ := taxonomy.CategoryForField(decision.FieldName)
		item, err := s.itemRepo.FindActiveByLabel(ctx, category, decision.TargetValue)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_TARGET",
					fmt.Sprintf("No active item labeled %q in %s", decision.TargetValue, category))
			}
			return nil, err
		}
		s.rewrite(ctx, record, decision.FieldName, item.Label)
		return nil, nil

	case reconcile.ActionCreateNew:
		category, _ := taxonomy.CategoryForField(decision.FieldName)
		if existing, err := s.itemRepo.FindActiveByLabel(ctx, category, decision.TargetValue); err == nil {
			// Duplicate labels fail rather than reuse the existing item,
			// including the second of two identical labels in one batch.
			return nil, shared.NewDomainError("ALREADY_EXISTS",
				fmt.Sprintf("An active item labeled %q already exists in %s", existing.Label, category))
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		// Concurrent apply calls may race past the check; the partial
		// unique index turns the loser's Save into ALREADY_EXISTS.
		item, err := s.createItem(ctx, category, decision.TargetValue)
		if err != nil {
			return nil, err
		}
		s.rewrite(ctx, record, decision.FieldName, item.Label)
		return item, nil
	}

	return nil, shared.NewDomainError("INVALID_DECISION", "Unknown decision action: "+string(decision.Action))
}

// rewrite sets the field to the canonical label and records an alias when
// the record's raw value spelled it differently. Alias recording is best
// effort: the rewrite already happened, so a failed save only costs the next
// submission a manual decision.
func (s *FieldMappingService) rewrite(ctx context.Context, record map[string]any, fieldName, label string) {
	raw, _ := record[fieldName].(string)
	record[fieldName] = label

	if raw == "" || taxonomy.NormalizeLabel(raw) == taxonomy.NormalizeLabel(label) {
		return
	}
	if err := s.recordAlias(ctx, fieldName, raw, label); err != nil {
		s.log.Warn("Failed to record field alias",
			zap.String("field", fieldName),
			zap.String("raw_value", raw),
			zap.String("target_label", label),
			zap.Error(err),
		)
	}
}

func (s *FieldMappingService) recordAlias(ctx context.Context, fieldName, raw, label string) error {
	if err := s.ensureAliasFree(ctx, fieldName, raw); err != nil {
		// An existing alias for this raw value is fine as is.
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "ALREADY_EXISTS" {
			return nil
		}
		return err
	}
	alias, err := taxonomy.NewFieldAlias(fieldName, raw, label)
	if err != nil {
		return err
	}
	return s.aliasRepo.Save(ctx, alias)
}

func (s *FieldMappingService) createItem(ctx context.Context, category taxonomy.Category, label string) (*taxonomy.Item, error) {
	item, err := taxonomy.NewItem(category, label, "")
	if err != nil {
		return nil, err
	}
	maxOrder, err := s.itemRepo.MaxSortOrder(ctx, category)
	if err != nil {
		return nil, err
	}
	item.SetSortOrder(maxOrder + 1)
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FieldMappingService) snapshot(ctx context.Context) ([]taxonomy.Item, []taxonomy.FieldAlias, error) {
	items, err := s.itemRepo.FindAllActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	aliases, err := s.aliasRepo.FindAllActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	return items, aliases, nil
}

func (s *FieldMappingService) ensureAliasFree(ctx context.Context, fieldName, rawValue string) error {
	existing, err := s.aliasRepo.FindByField(ctx, fieldName)
	if err != nil {
		return err
	}
	for idx := range existing {
		if existing[idx].Matches(fieldName, rawValue) {
			return shared.NewDomainError("ALREADY_EXISTS",
				fmt.Sprintf("An alias for %q on field %s already exists", existing[idx].RawValue, fieldName))
		}
	}
	return nil
}
