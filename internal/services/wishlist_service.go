package services

import (
	"context"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
)

type WishlistService struct {
	wishlists repository.WishlistRepository
}

func NewWishlistService(wishlists repository.WishlistRepository) *WishlistService {
	return &WishlistService{wishlists: wishlists}
}

func (s *WishlistService) Get(ctx context.Context, userID uint64) ([]uint64, error) {
	w, err := s.wishlists.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return []uint64{}, nil
	}
	return w.ProductIDs, nil
}

// Add is idempotent; adding an already-listed product is a no-op.
func (s *WishlistService) Add(ctx context.Context, userID, productID uint64) ([]uint64, error) {
	w, err := s.wishlists.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = &domain.Wishlist{UserID: userID, ProductIDs: []uint64{}}
	}

	for _, id := range w.ProductIDs {
		if id == productID {
			return w.ProductIDs, nil
		}
	}
	w.ProductIDs = append(w.ProductIDs, productID)

	if err := s.wishlists.Save(ctx, w); err != nil {
		return nil, err
	}
	return w.ProductIDs, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID uint64) ([]uint64, error) {
	w, err := s.wishlists.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return []uint64{}, nil
	}

	kept := w.ProductIDs[:0]
	for _, id := range w.ProductIDs {
		if id != productID {
			kept = append(kept, id)
		}
	}
	w.ProductIDs = kept

	if err := s.wishlists.Save(ctx, w); err != nil {
		return nil, err
	}
	return w.ProductIDs, nil
}
