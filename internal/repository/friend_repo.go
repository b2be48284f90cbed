package repository

import (
	"spotter/internal/domain"
	"spotter/internal/models"

	"gorm.io/gorm"
)

type FriendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

func (r *FriendRepository) Create(fr *models.FriendRequest) error {
	return r.db.Create(fr).Error
}

func (r *FriendRepository) GetByID(id uint) (*models.FriendRequest, error) {
	var fr models.FriendRequest
	if err := r.db.First(&fr, id).Error; err != nil {
		return nil, err
	}
	return &fr, nil
}

// GetPending returns the unaccepted request from one user to another, if any.
func (r *FriendRepository) GetPending(fromID, toID uint) (*models.FriendRequest, error) {
	var fr models.FriendRequest
	err := r.db.Where("from_id = ? AND to_id = ? AND is_accepted = ?", fromID, toID, false).
		First(&fr).Error
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

// EdgesBetween returns the request rows between two users in either direction,
// reduced to the shape the relation computation needs.
func (r *FriendRepository) EdgesBetween(a, b uint) ([]domain.RequestEdge, error) {
	var rows []models.FriendRequest
	err := r.db.Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)", a, b, b, a).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	edges := make([]domain.RequestEdge, 0, len(rows))
	for _, row := range rows {
		edges = append(edges, row.Edge())
	}
	return edges, nil
}

func (r *FriendRepository) Accept(id uint) error {
	return r.db.Model(&models.FriendRequest{}).Where("id = ?", id).
		Update("is_accepted", true).Error
}

func (r *FriendRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.FriendRequest{}, id)
	return res.RowsAffected, res.Error
}

// DeleteBetween removes the request row between two users regardless of
// direction. Covers both cancelling a pending request and unfriending.
func (r *FriendRepository) DeleteBetween(a, b uint) (int64, error) {
	res := r.db.Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)", a, b, b, a).
		Delete(&models.FriendRequest{})
	return res.RowsAffected, res.Error
}

// ListIncomingPending returns pending requests addressed to the user, newest first.
func (r *FriendRepository) ListIncomingPending(userID uint, limit, offset int) ([]models.FriendRequest, error) {
	var list []models.FriendRequest
	err := r.db.Where("to_id = ? AND is_accepted = ?", userID, false).
		Preload("From").Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// ListFriends returns accepted requests touching the user in either direction.
func (r *FriendRepository) ListFriends(userID uint) ([]models.FriendRequest, error) {
	var list []models.FriendRequest
	err := r.db.Where("(from_id = ? OR to_id = ?) AND is_accepted = ?", userID, userID, true).
		Preload("From").Preload("To").Order("created_at DESC").Find(&list).Error
	return list, err
}

// FriendIDs returns the user IDs of all accepted friends.
func (r *FriendRepository) FriendIDs(userID uint) ([]uint, error) {
	list, err := r.ListFriends(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(list))
	for _, fr := range list {
		if fr.FromID == userID {
			ids = append(ids, fr.ToID)
		} else {
			ids = append(ids, fr.FromID)
		}
	}
	return ids, nil
}
