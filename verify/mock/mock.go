package mock

import "context"

type (
	IsVerifiedDelegate  func(context.Context, int64) (bool, error)
	SetVerifiedDelegate func(context.Context, int64, bool) error
)

type Store struct {
	IsVerifiedFn  IsVerifiedDelegate
	SetVerifiedFn SetVerifiedDelegate
}

func (m *Store) IsVerified(ctx context.Context, userID int64) (bool, error) {
	if m.IsVerifiedFn != nil {
		return m.IsVerifiedFn(ctx, userID)
	}

	return false, nil
}

func (m *Store) SetVerified(ctx context.Context, userID int64, verified bool) error {
	if m.SetVerifiedFn != nil {
		return m.SetVerifiedFn(ctx, userID, verified)
	}

	return nil
}
