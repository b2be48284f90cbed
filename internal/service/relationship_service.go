package service

import (
	"errors"
	"time"

	"spotter/internal/domain"
	"spotter/internal/models"
	"spotter/internal/repository"
	"spotter/internal/ws"

	"gorm.io/gorm"
)

var (
	// ErrRequestNotFound signals a stale accept/refuse: the request was
	// cancelled (or already resolved) between render and tap. Handlers map it
	// to 404 so the client refreshes its request lists instead of showing a
	// generic failure.
	ErrRequestNotFound = errors.New("friend request no longer exists")
	ErrSelfRequest     = errors.New("cannot send a friend request to yourself")
	ErrAlreadyRelated  = errors.New("a request or friendship already exists")
	ErrNotFriends      = errors.New("users are not friends")
	ErrPokeCooldown    = errors.New("poke cooldown has not elapsed")
)

// RelationshipService mediates every transition of the friend relation and the
// poke action. Each mutation has at most one dependent side effect (the
// notification); the side effect is not transactional with the primary write.
// If it fails the row stays and the error surfaces to the caller.
type RelationshipService struct {
	friendRepo *repository.FriendRepository
	userRepo   *repository.UserRepository
	notifRepo  *repository.NotificationRepository
	notifSvc   *NotificationService
	hub        *ws.Hub
	cooldown   time.Duration
}

func NewRelationshipService(
	friendRepo *repository.FriendRepository,
	userRepo *repository.UserRepository,
	notifRepo *repository.NotificationRepository,
	notifSvc *NotificationService,
	hub *ws.Hub,
	cooldown time.Duration,
) *RelationshipService {
	return &RelationshipService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		notifRepo:  notifRepo,
		notifSvc:   notifSvc,
		hub:        hub,
		cooldown:   cooldown,
	}
}

// Status derives the relation between two users from the request rows.
func (s *RelationshipService) Status(selfID, otherID uint) (domain.Relation, error) {
	edges, err := s.friendRepo.EdgesBetween(selfID, otherID)
	if err != nil {
		return "", err
	}
	return domain.ComputeRelation(selfID, otherID, edges), nil
}

// CreateRequest inserts the pending row and notifies the target.
// NONE -> ASKING (from self's perspective).
func (s *RelationshipService) CreateRequest(self *models.User, toID uint) error {
	if self.ID == toID {
		return ErrSelfRequest
	}
	if _, err := s.userRepo.GetByID(toID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	edges, err := s.friendRepo.EdgesBetween(self.ID, toID)
	if err != nil {
		return err
	}
	if domain.ComputeRelation(self.ID, toID, edges) != domain.RelationNone {
		return ErrAlreadyRelated
	}
	fr := &models.FriendRequest{FromID: self.ID, ToID: toID}
	if err := s.friendRepo.Create(fr); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Publish(toID, ws.Event{Type: ws.EventFriendRequest, Payload: fr})
	}
	return s.notifSvc.NotifyFriendRequest(toID, self)
}

// AcceptRequest re-validates that the request still exists before accepting.
// The lookup is by id when given, else by sender + self as recipient, which
// guards against the sender having cancelled in the meantime.
// ASKED -> FRIEND.
func (s *RelationshipService) AcceptRequest(self *models.User, requestID, fromUserID uint) error {
	fr, err := s.resolvePending(self.ID, requestID, fromUserID)
	if err != nil {
		return err
	}
	if err := s.friendRepo.Accept(fr.ID); err != nil {
		return err
	}
	return s.notifSvc.NotifyFriendAccepted(fr.FromID, self)
}

// RefuseRequest deletes the pending row. No notification is sent on refusal.
// Refusing a request that is already gone is a graceful no-op.
// ASKED -> NONE.
func (s *RelationshipService) RefuseRequest(selfID, requestID, fromUserID uint) error {
	fr, err := s.resolvePending(selfID, requestID, fromUserID)
	if errors.Is(err, ErrRequestNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = s.friendRepo.Delete(fr.ID)
	return err
}

// Unfriend deletes the request row between self and other in either direction:
// both "cancel my pending request" and "end the friendship".
// ASKING -> NONE, FRIEND -> NONE.
func (s *RelationshipService) Unfriend(selfID, otherID uint) error {
	_, err := s.friendRepo.DeleteBetween(selfID, otherID)
	return err
}

// Poke sends a nudge notification to a friend. No relation row changes.
// Rejected when the pair is not FRIEND or the cooldown has not elapsed.
func (s *RelationshipService) Poke(self *models.User, friendID uint, now time.Time) error {
	rel, err := s.Status(self.ID, friendID)
	if err != nil {
		return err
	}
	if rel != domain.RelationFriend {
		return ErrNotFriends
	}
	last, err := s.notifRepo.LatestPokeAt(self.ID, friendID)
	if err != nil {
		return err
	}
	if !PokeAllowed(last, now, s.cooldown) {
		return ErrPokeCooldown
	}
	return s.notifSvc.NotifyPoke(friendID, self)
}

// PokeAllowed reports whether a poke at now is permitted given the previous
// poke time and the cooldown. A nil last poke always permits.
func PokeAllowed(last *time.Time, now time.Time, cooldown time.Duration) bool {
	if last == nil {
		return true
	}
	return !now.Before(last.Add(cooldown))
}

func (s *RelationshipService) resolvePending(selfID, requestID, fromUserID uint) (*models.FriendRequest, error) {
	if requestID != 0 {
		fr, err := s.friendRepo.GetByID(requestID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		if err != nil {
			return nil, err
		}
		if fr.ToID != selfID || fr.IsAccepted {
			return nil, ErrRequestNotFound
		}
		return fr, nil
	}
	fr, err := s.friendRepo.GetPending(fromUserID, selfID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return fr, nil
}
