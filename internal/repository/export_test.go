package repository

import model "marketplace-bidding/internal/models"

// addPlacedBidRaw stores a placed bid exactly as given, bypassing status normalisation
func (r *MemoryRepo) addPlacedBidRaw(bid model.PlacedBid) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placedBids[bid.ID] = bid
}
