// Package cache holds read-through cache decorators for the repositories
// read on every quote.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	keyMaterials    = "catalog:materials"
	keyPricingRules = "catalog:pricing"
)

func materialKey(id int64) string       { return fmt.Sprintf("catalog:material:%d", id) }
func ruleByMaterialKey(id int64) string { return fmt.Sprintf("catalog:pricing:material:%d", id) }

// Store is the byte cache the decorators sit on. Any Get error, including a
// plain miss, falls through to the wrapped repository.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type base struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

func (b base) load(ctx context.Context, key string, dst any) bool {
	data, err := b.store.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		b.logger.Warn("dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		_ = b.store.Del(ctx, key)
		return false
	}
	return true
}

func (b base) save(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := b.store.Set(ctx, key, data, b.ttl); err != nil {
		b.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (b base) invalidate(ctx context.Context, keys ...string) {
	if err := b.store.Del(ctx, keys...); err != nil {
		b.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// MaterialRepository caches material reads. Not-found results are not
// cached so a new material is quotable immediately.
type MaterialRepository struct {
	base
	next interfaces.IMaterialRepository
}

var _ interfaces.IMaterialRepository = (*MaterialRepository)(nil)

func NewMaterialRepository(next interfaces.IMaterialRepository, store Store, ttl time.Duration, logger *zap.Logger) *MaterialRepository {
	return &MaterialRepository{base: base{store: store, ttl: ttl, logger: logger}, next: next}
}

func (r *MaterialRepository) List(ctx context.Context) ([]entities.Material, error) {
	var cached []entities.Material
	if r.load(ctx, keyMaterials, &cached) {
		return cached, nil
	}
	list, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	r.save(ctx, keyMaterials, list)
	return list, nil
}

func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (entities.Material, error) {
	var cached entities.Material
	if r.load(ctx, materialKey(id), &cached) {
		return cached, nil
	}
	m, err := r.next.GetByID(ctx, id)
	if err != nil || m.ID == 0 {
		return m, err
	}
	r.save(ctx, materialKey(id), m)
	return m, nil
}

func (r *MaterialRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	created, err := r.next.Create(ctx, m)
	if err == nil {
		r.invalidate(ctx, keyMaterials)
	}
	return created, err
}

func (r *MaterialRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	updated, err := r.next.Update(ctx, m)
	if err == nil {
		r.invalidate(ctx, keyMaterials, materialKey(m.ID))
	}
	return updated, err
}

// Delete also drops the rule entry since the rule row cascades with the
// material.
func (r *MaterialRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := r.next.Delete(ctx, id)
	if err == nil {
		r.invalidate(ctx, keyMaterials, materialKey(id), keyPricingRules, ruleByMaterialKey(id))
	}
	return ok, err
}

// PricingRuleRepository caches rule reads by material.
type PricingRuleRepository struct {
	base
	next interfaces.IPricingRuleRepository
}

var _ interfaces.IPricingRuleRepository = (*PricingRuleRepository)(nil)

func NewPricingRuleRepository(next interfaces.IPricingRuleRepository, store Store, ttl time.Duration, logger *zap.Logger) *PricingRuleRepository {
	return &PricingRuleRepository{base: base{store: store, ttl: ttl, logger: logger}, next: next}
}

func (r *PricingRuleRepository) List(ctx context.Context) ([]entities.PricingRule, error) {
	var cached []entities.PricingRule
	if r.load(ctx, keyPricingRules, &cached) {
		return cached, nil
	}
	list, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	r.save(ctx, keyPricingRules, list)
	return list, nil
}

func (r *PricingRuleRepository) GetByID(ctx context.Context, id int64) (entities.PricingRule, error) {
	return r.next.GetByID(ctx, id)
}

func (r *PricingRuleRepository) GetByMaterialID(ctx context.Context, materialID int64) (entities.PricingRule, error) {
	var cached entities.PricingRule
	if r.load(ctx, ruleByMaterialKey(materialID), &cached) {
		return cached, nil
	}
	pr, err := r.next.GetByMaterialID(ctx, materialID)
	if err != nil || pr.ID == 0 {
		return pr, err
	}
	r.save(ctx, ruleByMaterialKey(materialID), pr)
	return pr, nil
}

func (r *PricingRuleRepository) Create(ctx context.Context, pr entities.PricingRule) (entities.PricingRule, error) {
	created, err := r.next.Create(ctx, pr)
	if err == nil {
		r.invalidate(ctx, keyPricingRules, ruleByMaterialKey(created.MaterialID))
	}
	return created, err
}

// Update invalidates by the stored material id: the caller may not know it.
func (r *PricingRuleRepository) Update(ctx context.Context, pr entities.PricingRule) (entities.PricingRule, error) {
	updated, err := r.next.Update(ctx, pr)
	if err != nil {
		return updated, err
	}
	keys := []string{keyPricingRules}
	if updated.MaterialID != 0 {
		keys = append(keys, ruleByMaterialKey(updated.MaterialID))
	}
	r.invalidate(ctx, keys...)
	return updated, nil
}
