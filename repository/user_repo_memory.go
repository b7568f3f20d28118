package repository

import (
	"context"
	"sort"
	"sync"

	"usersapi/models"
)

// MemoryUserRepo keeps users in process memory. It backs DB_TYPE=memory and
// stands in for a real store in handler tests.
type MemoryUserRepo struct {
	mu     sync.Mutex
	users  map[int64]models.User
	nextID int64
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: map[int64]models.User{}}
}

func (r *MemoryUserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *MemoryUserRepo) ListUsers(_ context.Context, skip, take int) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := []*models.User{}
	for i := skip; i < len(ids) && len(users) < take; i++ {
		u := r.users[ids[i]]
		users = append(users, &u)
	}
	return users, nil
}

func (r *MemoryUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepo) DeleteUser(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// Ping always succeeds.
func (r *MemoryUserRepo) Ping(context.Context) error { return nil }

var _ UserRepository = (*MemoryUserRepo)(nil)
