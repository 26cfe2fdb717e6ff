package list

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

// fakeClock returns a fixed instant.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

// fakeListRepository is an in-memory ListRepository with the same optimistic
// version semantics as the real one.
type fakeListRepository struct {
	lists       map[uuid.UUID]*entity.ShoppingList
	forceStale  bool
	updateCalls int
}

func newFakeListRepository() *fakeListRepository {
	return &fakeListRepository{lists: make(map[uuid.UUID]*entity.ShoppingList)}
}

func (r *fakeListRepository) Create(_ context.Context, list *entity.ShoppingList) error {
	cp := *list
	r.lists[list.ID] = &cp
	return nil
}

func (r *fakeListRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.ShoppingList, error) {
	stored, ok := r.lists[id]
	if !ok {
		return nil, domainerror.ErrListNotFound
	}
	cp := *stored
	cp.Entries = append([]entity.ProductEntry(nil), stored.Entries...)
	cp.Shares = append([]entity.ShareGrant(nil), stored.Shares...)
	return &cp, nil
}

func (r *fakeListRepository) Update(_ context.Context, list *entity.ShoppingList) error {
	r.updateCalls++
	stored, ok := r.lists[list.ID]
	if !ok {
		return domainerror.ErrListNotFound
	}
	if r.forceStale || stored.Version != list.Version {
		return domainerror.ErrListConflict
	}
	list.Version++
	cp := *list
	r.lists[list.ID] = &cp
	return nil
}

func (r *fakeListRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.lists, id)
	return nil
}

func (r *fakeListRepository) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.ShoppingList, error) {
	var out []*entity.ShoppingList
	for _, list := range r.lists {
		if list.OwnerID == ownerID {
			out = append(out, list)
		}
	}
	return out, nil
}

func (r *fakeListRepository) FindSharedWith(_ context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error) {
	var out []*entity.ShoppingList
	for _, list := range r.lists {
		for i := range list.Shares {
			if list.Shares[i].GranteeUserID == userID {
				out = append(out, list)
				break
			}
		}
	}
	return out, nil
}

// fakeUserRepository is an in-memory UserRepository.
type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

// fakeCatalogRepository is an in-memory CatalogRepository.
type fakeCatalogRepository struct {
	items map[uuid.UUID]*entity.CatalogItem
}

func newFakeCatalogRepository(items ...*entity.CatalogItem) *fakeCatalogRepository {
	repo := &fakeCatalogRepository{items: make(map[uuid.UUID]*entity.CatalogItem)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeCatalogRepository) Create(_ context.Context, item *entity.CatalogItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeCatalogRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.CatalogItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrCatalogItemNotFound
	}
	return item, nil
}

func (r *fakeCatalogRepository) ExistsByNameAndCategory(_ context.Context, name string, categoryPath []string) (bool, error) {
	key := entity.CategoryKey(categoryPath)
	for _, item := range r.items {
		if strings.EqualFold(item.Name, name) && entity.CategoryKey(item.CategoryPath) == key {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCatalogRepository) Search(_ context.Context, query string, limit int) ([]*entity.CatalogItem, error) {
	var out []*entity.CatalogItem
	for _, item := range r.items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(query)) {
			out = append(out, item)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeCatalogRepository) FindTopUsed(_ context.Context, limit int) ([]*entity.CatalogItem, error) {
	var out []*entity.CatalogItem
	for _, item := range r.items {
		if item.UsageCount > 0 {
			out = append(out, item)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeCatalogRepository) FindByNames(_ context.Context, names []string) ([]*entity.CatalogItem, error) {
	var out []*entity.CatalogItem
	for _, name := range names {
		for _, item := range r.items {
			if strings.EqualFold(item.Name, name) {
				out = append(out, item)
			}
		}
	}
	return out, nil
}

func (r *fakeCatalogRepository) IncrementUsage(_ context.Context, id uuid.UUID, usedAt time.Time) error {
	item, ok := r.items[id]
	if !ok {
		return domainerror.ErrCatalogItemNotFound
	}
	item.UsageCount++
	item.LastUsedAt = &usedAt
	return nil
}

func (r *fakeCatalogRepository) CountEntryReferences(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeCatalogRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

// fakePopularityStore records increments in memory.
type fakePopularityStore struct {
	scores map[string]int64
}

func newFakePopularityStore() *fakePopularityStore {
	return &fakePopularityStore{scores: make(map[string]int64)}
}

func (s *fakePopularityStore) IncrementUsage(_ context.Context, name string) error {
	s.scores[name]++
	return nil
}

func (s *fakePopularityStore) Top(_ context.Context, limit int) ([]adapter.PopularityEntry, error) {
	var out []adapter.PopularityEntry
	for name, score := range s.scores {
		out = append(out, adapter.PopularityEntry{Name: name, Score: score})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// fakeShareNotifier records notifications in memory.
type fakeShareNotifier struct {
	notifications []adapter.ShareNotificationInput
	failErr       error
}

func (n *fakeShareNotifier) NotifyListShared(_ context.Context, input adapter.ShareNotificationInput) error {
	if n.failErr != nil {
		return n.failErr
	}
	n.notifications = append(n.notifications, input)
	return nil
}
