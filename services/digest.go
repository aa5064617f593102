package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/utils"
)

var ErrNothingToReport = errors.New("no expired or expiring items to report")

// PartitionByExpiry splits items into already-expired and expiring-soon
// buckets. An item qualifying for both counts as expired only.
func PartitionByExpiry(items []models.FoodItem, now time.Time) (expired, expiring []models.FoodItem) {
	for _, it := range items {
		switch {
		case it.IsExpired(now):
			expired = append(expired, it)
		case it.IsExpiringSoon(now):
			expiring = append(expiring, it)
		}
	}
	return expired, expiring
}

// SendExpiryDigest emails a one-off summary of expired and expiring-soon
// items. Always user-triggered; nothing schedules this.
func (s *ItemService) SendExpiryDigest(to string) error {
	items, err := s.List()
	if err != nil {
		return err
	}

	expired, expiring := PartitionByExpiry(items, time.Now())
	if len(expired) == 0 && len(expiring) == 0 {
		return ErrNothingToReport
	}

	return utils.SendExpiryDigest(to, expired, expiring)
}
