package repositories

import "context"

// DeleteAccount removes an account and its profile.
func (s *MemoryStore) DeleteAccount(ctx context.Context, id int64) {
	defer s.lock(ctx)()
	delete(s.accounts, id)
	delete(s.profiles, id)
}
