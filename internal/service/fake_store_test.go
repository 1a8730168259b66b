package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/sakif/packlist/internal/apperror"
	"github.com/sakif/packlist/internal/model"
	"github.com/sakif/packlist/internal/repository"
)

// fakeStore is an in-memory repository.Store. It mirrors the database's
// cascade rules so service tests can check delete behaviour without SQLite.
type fakeStore struct {
	lists  map[int64]model.PackingList
	items  map[int64]model.GearItem
	alts   map[int64]model.AlternateProduct
	nextID int64

	// writes counts every mutation so tests can assert that nothing was written.
	writes int
	// failWith, when set, is returned by every method.
	failWith error
}

var _ repository.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		lists: make(map[int64]model.PackingList),
		items: make(map[int64]model.GearItem),
		alts:  make(map[int64]model.AlternateProduct),
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) CreatePackingList(_ context.Context, in model.CreatePackingListInput) (*model.PackingList, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.writes++
	now := time.Now().UTC()
	pl := model.PackingList{ID: f.id(), Name: in.Name, Description: in.Description, CreatedAt: now, UpdatedAt: now}
	f.lists[pl.ID] = pl
	return &pl, nil
}

func (f *fakeStore) GetPackingList(_ context.Context, id int64) (*model.PackingList, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	pl, ok := f.lists[id]
	if !ok {
		return nil, apperror.NotFound("packing list", id)
	}
	return &pl, nil
}

func (f *fakeStore) ListPackingLists(_ context.Context) ([]model.PackingList, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]model.PackingList, 0, len(f.lists))
	for _, pl := range f.lists {
		out = append(out, pl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpdatePackingList(_ context.Context, id int64, in model.UpdatePackingListInput) (*model.PackingList, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	pl, ok := f.lists[id]
	if !ok {
		return nil, apperror.NotFound("packing list", id)
	}
	f.writes++
	if in.Name.Present() {
		pl.Name = in.Name.Value
	}
	if in.Description.Set {
		pl.Description = in.Description.Ptr()
	}
	pl.UpdatedAt = time.Now().UTC()
	f.lists[id] = pl
	return &pl, nil
}

func (f *fakeStore) DeletePackingList(_ context.Context, id int64) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, ok := f.lists[id]; !ok {
		return false, nil
	}
	f.writes++
	delete(f.lists, id)
	for itemID, item := range f.items {
		if item.PackingListID == id {
			f.deleteItem(itemID)
		}
	}
	return true, nil
}

func (f *fakeStore) deleteItem(id int64) {
	delete(f.items, id)
	for altID, alt := range f.alts {
		if alt.GearItemID == id {
			delete(f.alts, altID)
		}
	}
}

func (f *fakeStore) CreateGearItem(_ context.Context, in model.CreateGearItemInput) (*model.GearItem, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if _, ok := f.lists[in.PackingListID]; !ok {
		return nil, errors.New("FOREIGN KEY constraint failed")
	}
	f.writes++
	now := time.Now().UTC()
	g := model.GearItem{
		ID: f.id(), PackingListID: in.PackingListID, Name: in.Name,
		IndividualWeight: in.IndividualWeight, Quantity: in.Quantity, Category: in.Category,
		Notes: in.Notes, CreatedAt: now, UpdatedAt: now,
	}
	f.items[g.ID] = g
	return &g, nil
}

func (f *fakeStore) GetGearItem(_ context.Context, id int64) (*model.GearItem, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	g, ok := f.items[id]
	if !ok {
		return nil, apperror.NotFound("gear item", id)
	}
	return &g, nil
}

func (f *fakeStore) ListGearItems(_ context.Context, packingListID int64) ([]model.GearItem, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]model.GearItem, 0)
	for _, g := range f.items {
		if g.PackingListID == packingListID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpdateGearItem(_ context.Context, id int64, in model.UpdateGearItemInput) (*model.GearItem, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	g, ok := f.items[id]
	if !ok {
		return nil, apperror.NotFound("gear item", id)
	}
	f.writes++
	if in.Name.Present() {
		g.Name = in.Name.Value
	}
	if in.IndividualWeight.Present() {
		g.IndividualWeight = in.IndividualWeight.Value
	}
	if in.Quantity.Present() {
		g.Quantity = in.Quantity.Value
	}
	if in.Category.Present() {
		g.Category = in.Category.Value
	}
	if in.Notes.Set {
		g.Notes = in.Notes.Ptr()
	}
	g.UpdatedAt = time.Now().UTC()
	f.items[id] = g
	return &g, nil
}

func (f *fakeStore) DeleteGearItem(_ context.Context, id int64) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	f.writes++
	f.deleteItem(id)
	return true, nil
}

func (f *fakeStore) CreateAlternateProduct(_ context.Context, in model.CreateAlternateProductInput) (*model.AlternateProduct, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if _, ok := f.items[in.GearItemID]; !ok {
		return nil, errors.New("FOREIGN KEY constraint failed")
	}
	f.writes++
	a := model.AlternateProduct{
		ID: f.id(), GearItemID: in.GearItemID, Name: in.Name, Weight: in.Weight,
		ProductLink: in.ProductLink, Notes: in.Notes, CreatedAt: time.Now().UTC(),
	}
	f.alts[a.ID] = a
	return &a, nil
}

func (f *fakeStore) ListAlternateProductsByPackingList(_ context.Context, packingListID int64) ([]model.AlternateProduct, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]model.AlternateProduct, 0)
	for _, a := range f.alts {
		if g, ok := f.items[a.GearItemID]; ok && g.PackingListID == packingListID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpdateAlternateProduct(_ context.Context, id int64, in model.UpdateAlternateProductInput) (*model.AlternateProduct, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	a, ok := f.alts[id]
	if !ok {
		return nil, apperror.NotFound("alternate product", id)
	}
	f.writes++
	if in.Name.Present() {
		a.Name = in.Name.Value
	}
	if in.Weight.Present() {
		a.Weight = in.Weight.Value
	}
	if in.ProductLink.Set {
		a.ProductLink = in.ProductLink.Ptr()
	}
	if in.Notes.Set {
		a.Notes = in.Notes.Ptr()
	}
	f.alts[id] = a
	return &a, nil
}

func (f *fakeStore) DeleteAlternateProduct(_ context.Context, id int64) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, ok := f.alts[id]; !ok {
		return false, nil
	}
	f.writes++
	delete(f.alts, id)
	return true, nil
}

// services bundles the three services over one shared fake store.
type services struct {
	lists *PackingListService
	items *GearItemService
	alts  *AlternateProductService
	store *fakeStore
}

func newTestServices(t *testing.T) services {
	t.Helper()
	store := newFakeStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services{
		lists: NewPackingListService(store, logger),
		items: NewGearItemService(store, logger),
		alts:  NewAlternateProductService(store, logger),
		store: store,
	}
}

func strPtr(s string) *string { return &s }
